package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flexipack-labs/order-portal/controllers"
	"github.com/flexipack-labs/order-portal/middlewares"
	"github.com/flexipack-labs/order-portal/templates"
	"github.com/flexipack-labs/order-portal/upstream"
)

// SetupRouter wires the portal routes around one upstream API client.
func SetupRouter(client *upstream.Client) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.SetHTMLTemplate(templates.Load())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())

	authCtrl := controllers.NewAuthController(client)
	dashCtrl := controllers.NewDashboardController(client)
	orderCtrl := controllers.NewOrderController(client)
	chartCtrl := controllers.NewChartController(client)
	chatCtrl := controllers.NewChatController(client)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/login")
	})
	r.GET("/login", authCtrl.ShowLogin)
	r.GET("/logout", authCtrl.Logout)
	r.POST("/theme", authCtrl.SetTheme)

	login := r.Group("/")
	login.Use(middlewares.NewStrictRateLimiter())
	{
		login.POST("/login", authCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      SESSION-GUARDED ROUTES
	// ----------------------------------------------------------------
	guarded := r.Group("/")
	guarded.Use(middlewares.SessionGuard())
	{
		guarded.GET("/dashboard", dashCtrl.ShowDashboard)
		guarded.GET("/dashboard/charts/:name", chartCtrl.ChartPNG)

		guarded.GET("/orders/:order_id", orderCtrl.ShowOrderPage)
		guarded.GET("/orders/:order_id/detail", orderCtrl.DetailFragment)
		guarded.GET("/orders/:order_id/tracking", orderCtrl.TrackingFragment)
		guarded.GET("/orders/:order_id/invoice", orderCtrl.Invoice)
		guarded.POST("/orders/:order_id/cancel", orderCtrl.Cancel)

		guarded.POST("/api/chat", chatCtrl.Relay)

		guarded.GET("/ws", controllers.EventsHandler)
	}

	return r
}
