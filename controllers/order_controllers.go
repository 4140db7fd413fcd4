package controllers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/flexipack-labs/order-portal/dashboard"
	"github.com/flexipack-labs/order-portal/hub"
	"github.com/flexipack-labs/order-portal/models"
	"github.com/flexipack-labs/order-portal/upstream"
	"github.com/flexipack-labs/order-portal/utils"
)

type OrderController struct {
	Upstream *upstream.Client
	Now      func() time.Time
}

func NewOrderController(client *upstream.Client) *OrderController {
	return &OrderController{Upstream: client, Now: time.Now}
}

// ShowOrderPage renders the single-order view: header, specs, financials,
// shipment block and timeline.
func (oc *OrderController) ShowOrderPage(c *gin.Context) {
	orderNo := c.Param("order_id")

	order, err := oc.Upstream.GetOrder(c.Request.Context(), orderNo)
	if err != nil {
		utils.ErrorLogger.Printf("order page: fetching %s: %v", orderNo, err)
		if errors.Is(err, upstream.ErrNotFound) {
			c.String(http.StatusNotFound, "Order not found")
			return
		}
		c.String(http.StatusBadGateway, "Order is unavailable right now")
		return
	}

	timeline := order.Timeline
	if len(timeline) == 0 {
		timeline = models.SynthesizeTimeline(order.OrderStatus)
	} else {
		timeline = models.NormalizeTimeline(timeline)
	}

	now := oc.Now()
	theme, _ := c.Cookie("theme")

	deliveryLabel := "Expected Delivery:"
	deliveryValue := orDash(order.ExpectedDelivery)
	if order.OrderStatus == models.StatusDelivered {
		deliveryLabel = "Delivered On:"
		deliveryValue = orDash(order.DeliveredDate)
	}

	c.HTML(http.StatusOK, "order_detail.html", gin.H{
		"Order":          order,
		"Badge":          dashboard.PaymentBadgeFor(order, now),
		"Timeline":       timeline,
		"DeliveryLabel":  deliveryLabel,
		"DeliveryValue":  deliveryValue,
		"TotalDisplay":   utils.FormatIndianCurrency(order.Total()),
		"AdvanceDisplay": utils.FormatIndianCurrency(order.Advance()),
		"BalanceDisplay": utils.FormatIndianCurrency(order.Balance()),
		"Carrier":        orPending(order.Carrier),
		"AWB":            orPending(order.AWB),
		"ShipmentStatus": orPending(order.ShipmentStatus),
		"Theme":          theme,
	})
}

// DetailFragment serves the order-detail modal body. Fetch errors log and
// come back empty: the modal simply shows nothing, matching the silent
// failure policy for detail views.
func (oc *OrderController) DetailFragment(c *gin.Context) {
	orderNo := c.Param("order_id")

	order, err := oc.Upstream.GetOrder(c.Request.Context(), orderNo)
	if err != nil {
		utils.ErrorLogger.Printf("detail fragment: fetching %s: %v", orderNo, err)
		c.Status(http.StatusNoContent)
		return
	}

	c.HTML(http.StatusOK, "order_detail_fragment.html", gin.H{
		"Order":           order,
		"AmountDisplay":   utils.FormatIndianCurrency(order.Total()),
		"UnitCostDisplay": utils.FormatIndianCurrency(order.UnitCost),
	})
}

// TrackingFragment serves the tracking modal timeline.
func (oc *OrderController) TrackingFragment(c *gin.Context) {
	orderNo := c.Param("order_id")

	steps, err := oc.Upstream.GetTracking(c.Request.Context(), orderNo)
	if err != nil {
		utils.ErrorLogger.Printf("tracking fragment: fetching %s: %v", orderNo, err)
		c.Status(http.StatusNoContent)
		return
	}

	c.HTML(http.StatusOK, "tracking_fragment.html", gin.H{
		"Steps": models.NormalizeTimeline(steps),
	})
}

// Cancel relays a cancellation upstream. Success returns the banner text
// for the timed notification (and tells other open dashboards); failure is
// a blocking error.
func (oc *OrderController) Cancel(c *gin.Context) {
	orderNo := c.Param("order_id")

	var body struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	message, err := oc.Upstream.CancelOrder(c.Request.Context(), orderNo, body.Reason)
	if err != nil {
		utils.ErrorLogger.Printf("cancel: %s: %v", orderNo, err)
		utils.RespondError(c, http.StatusBadGateway, errors.New("Failed to cancel order"))
		return
	}
	if message == "" {
		message = "Order cancelled. We are sorry that we could not serve you to your satisfaction."
	}

	hub.BroadcastOrderCancelled(orderNo, message)

	utils.RespondJSON(c, http.StatusOK, message, gin.H{"order_no": orderNo})
}

// Invoice relays the upstream invoice document so the browser can open it
// in a new view.
func (oc *OrderController) Invoice(c *gin.Context) {
	orderNo := c.Param("order_id")

	resp, err := oc.Upstream.Invoice(c.Request.Context(), orderNo)
	if err != nil {
		utils.ErrorLogger.Printf("invoice: %s: %v", orderNo, err)
		if errors.Is(err, upstream.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	c.Header("Content-Type", resp.Header.Get("Content-Type"))
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		c.Header("Content-Disposition", cd)
	}
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, resp.Body); err != nil {
		utils.ErrorLogger.Printf("invoice: relaying %s: %v", orderNo, err)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func orPending(s string) string {
	if s == "" {
		return "Pending"
	}
	return s
}
