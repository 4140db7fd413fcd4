package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/flexipack-labs/order-portal/dashboard"
	"github.com/flexipack-labs/order-portal/models"
	"github.com/flexipack-labs/order-portal/upstream"
	"github.com/flexipack-labs/order-portal/utils"
)

type DashboardController struct {
	Upstream *upstream.Client

	// Now is swappable so tests can pin badge and aging computations.
	Now func() time.Time
}

func NewDashboardController(client *upstream.Client) *DashboardController {
	return &DashboardController{Upstream: client, Now: time.Now}
}

// ShowDashboard fetches the full order collection, runs the filter/sort
// pipeline and renders the table with its header cards. A failed fetch
// logs and renders the empty shell; the page itself never errors.
func (dc *DashboardController) ShowDashboard(c *gin.Context) {
	sel := models.ParseFilters(c.Request.URL.Query())
	now := dc.Now()

	orders, err := dc.Upstream.ListOrders(c.Request.Context())
	if err != nil {
		utils.ErrorLogger.Printf("dashboard: fetching orders: %v", err)
		orders = nil
	}

	filtered := dashboard.ApplyFilters(orders, sel, now)
	rows := dashboard.BuildRows(filtered, now)
	stats := dashboard.Summarize(orders, now)

	theme, _ := c.Cookie("theme")

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Rows":               rows,
		"Stats":              stats,
		"TotalSpendDisplay":  utils.FormatCompactNumber(stats.TotalSpend),
		"OutstandingDisplay": utils.FormatIndianCurrency(stats.OutstandingBalance),
		"Filters":            sel,
		"FilterQuery":        sel.Query(),
		"Types":              dashboard.DistinctTypes(orders),
		"Statuses":           []string{models.StatusOrdered, models.StatusPackaging, models.StatusShipped, models.StatusDelivered, models.StatusCancelled},
		"Theme":              theme,
		"Username":           c.GetString("username"),
	})
}
