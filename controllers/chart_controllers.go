package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/flexipack-labs/order-portal/charts"
	"github.com/flexipack-labs/order-portal/dashboard"
	"github.com/flexipack-labs/order-portal/models"
	"github.com/flexipack-labs/order-portal/upstream"
	"github.com/flexipack-labs/order-portal/utils"
)

type ChartController struct {
	Upstream *upstream.Client
	Now      func() time.Time
}

func NewChartController(client *upstream.Client) *ChartController {
	return &ChartController{Upstream: client, Now: time.Now}
}

// ChartPNG renders one chart of the dashboard under the active filter
// selection (carried in the image URL's query, so chart drill-down links
// and the table always agree on the view).
func (cc *ChartController) ChartPNG(c *gin.Context) {
	name := strings.TrimSuffix(c.Param("name"), ".png")

	sel := models.ParseFilters(c.Request.URL.Query())
	now := cc.Now()

	orders, err := cc.Upstream.ListOrders(c.Request.Context())
	if err != nil {
		utils.ErrorLogger.Printf("chart %s: fetching orders: %v", name, err)
		c.Status(http.StatusNoContent)
		return
	}
	filtered := dashboard.ApplyFilters(orders, sel, now)

	var png []byte
	switch name {
	case "status":
		png, err = charts.StatusDistributionPNG(dashboard.StatusCounts(filtered))
	case "spend":
		png, err = charts.SpendByTypePNG(dashboard.SpendByType(filtered))
	case "aging":
		png, err = charts.AgingPNG(dashboard.AgingBuckets(filtered, now))
	case "trend":
		png, err = charts.MonthlyTrendPNG(dashboard.MonthlyTrend(filtered))
	case "overdue":
		png, err = charts.OverduePNG(dashboard.OverdueBuckets(filtered, now))
	case "top":
		png, err = charts.TopItemsPNG(dashboard.TopItems(filtered, 5))
	default:
		c.Status(http.StatusNotFound)
		return
	}

	if errors.Is(err, charts.ErrNoData) {
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		utils.ErrorLogger.Printf("chart %s: rendering: %v", name, err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}
