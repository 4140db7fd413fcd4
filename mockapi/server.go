package mockapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/flexipack-labs/order-portal/models"
	"github.com/flexipack-labs/order-portal/utils"
)

type Server struct {
	DB *gorm.DB
}

// NewRouter builds the mock upstream API around a migrated database.
func NewRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	s := &Server{DB: db}

	r.POST("/api/login", s.Login)
	r.GET("/api/orders", s.ListOrders)
	r.GET("/api/order/:order_id", s.GetOrder)
	r.GET("/api/track/:order_id", s.Track)
	r.POST("/api/cancel/:order_id", s.Cancel)
	r.GET("/api/invoice/:order_id", s.Invoice)
	r.POST("/api/chat", s.Chat)

	return r
}

func (s *Server) Login(c *gin.Context) {
	var body struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	var user PortalUser
	if err := s.DB.Where("username = ?", body.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "redirect": "/dashboard"})
}

func (s *Server) ListOrders(c *gin.Context) {
	var records []OrderRecord
	if err := s.DB.Order("id").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	orders := make([]models.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].ToOrder())
	}
	c.JSON(http.StatusOK, models.OrderList{Orders: orders})
}

func (s *Server) findOrder(c *gin.Context) (*OrderRecord, bool) {
	var record OrderRecord
	if err := s.DB.Where("order_no = ?", c.Param("order_id")).First(&record).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Order not found"})
		return nil, false
	}
	return &record, true
}

func (s *Server) GetOrder(c *gin.Context) {
	record, ok := s.findOrder(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, record.ToDetailedOrder())
}

func (s *Server) Track(c *gin.Context) {
	record, ok := s.findOrder(c)
	if !ok {
		return
	}

	steps := models.SynthesizeTimeline(record.OrderStatus)
	for i := range steps {
		if steps[i].Completed {
			steps[i].Timestamp = record.OrderDate + " 10:00"
		}
	}
	c.JSON(http.StatusOK, models.TrackingResponse{
		Tracking:      steps,
		CurrentStatus: record.OrderStatus,
	})
}

func (s *Server) Cancel(c *gin.Context) {
	var body struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	record, ok := s.findOrder(c)
	if !ok {
		return
	}

	order := record.ToOrder()
	if !order.CanCancel() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Could not cancel order"})
		return
	}

	record.OrderStatus = models.StatusCancelled
	record.CancelReason = body.Reason
	if err := s.DB.Save(record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not cancel order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order cancelled successfully. Refund will be processed within 30 days.",
	})
}

func (s *Server) Invoice(c *gin.Context) {
	record, ok := s.findOrder(c)
	if !ok {
		return
	}

	var sb strings.Builder
	sb.WriteString("INVOICE\n")
	sb.WriteString(fmt.Sprintf("Invoice No: INV-%s\n", strings.TrimPrefix(record.OrderNo, "ORD-")))
	sb.WriteString(fmt.Sprintf("Order No: %s\nOrder Date: %s\n\n", record.OrderNo, record.OrderDate))
	sb.WriteString(fmt.Sprintf("Buyer: %s\nAddress: %s\nGST No: %s\n\n", record.BuyerName, record.BuyerAddress, record.BuyerGST))
	sb.WriteString(fmt.Sprintf("Item: %s\nQuantity: %d\nUnit Cost (INR): %.2f\n", record.Item, record.Quantity, record.UnitCost))
	sb.WriteString(fmt.Sprintf("Total Amount: INR %.2f\n", record.TotalAmount))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice_%s.txt", record.OrderNo))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(sb.String()))

	if utils.InfoLogger != nil {
		utils.InfoLogger.Printf("mockapi: served invoice for %s", record.OrderNo)
	}
}
