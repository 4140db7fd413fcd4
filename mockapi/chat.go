package mockapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/flexipack-labs/order-portal/chatstream"
	"github.com/flexipack-labs/order-portal/models"
	"github.com/flexipack-labs/order-portal/utils"
)

var orderNoPattern = regexp.MustCompile(`ORD-\d+`)

func nowDate() string {
	return time.Now().Format(models.DateLayout)
}

// Chat answers a query as a scripted event stream: two progress records,
// then a complete (or error) record, newline-delimited and
// "data: "-prefixed like the real assistant.
func (s *Server) Chat(c *gin.Context) {
	var body struct {
		Query string `json:"query" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request"})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")

	emit := func(ev chatstream.Event) {
		payload, err := json.Marshal(ev)
		if err != nil {
			return
		}
		fmt.Fprintf(c.Writer, "data: %s\n", payload)
		c.Writer.Flush()
	}

	emit(chatstream.Event{
		Type:    chatstream.EventProgress,
		Stage:   "planning",
		Message: "Analyzing your question...",
	})
	emit(chatstream.Event{
		Type:    chatstream.EventProgress,
		Stage:   "executing",
		Message: "Looking up your orders...",
	})
	emit(s.answer(body.Query))
}

func (s *Server) answer(query string) chatstream.Event {
	q := strings.ToLower(strings.TrimSpace(query))

	if q == "" || q == "hi" || q == "hello" || strings.HasPrefix(q, "hey") {
		return chatstream.Event{
			Type:     chatstream.EventComplete,
			Response: "Hello! I'm your assistant for order tracking. Ask me about order status, amounts or where a specific order is.",
		}
	}

	if orderNo := orderNoPattern.FindString(strings.ToUpper(query)); orderNo != "" {
		var record OrderRecord
		if err := s.DB.Where("order_no = ?", orderNo).First(&record).Error; err != nil {
			return chatstream.Event{
				Type:     chatstream.EventComplete,
				Response: fmt.Sprintf("I searched the database but could not find Order No: %s.", orderNo),
				Thinking: fmt.Sprintf("Looked up %s, no matching record.", orderNo),
			}
		}
		return chatstream.Event{
			Type: chatstream.EventComplete,
			Response: fmt.Sprintf("Order %s is currently %s. Amount: %s. Expected: %s.",
				record.OrderNo, record.OrderStatus,
				utils.FormatIndianCurrency(record.TotalAmount), record.ExpectedDelivery),
			Thinking: fmt.Sprintf("Matched %s by order number.", record.OrderNo),
			Action:   chatstream.ActionHighlightOrder,
			OrderID:  record.OrderNo,
		}
	}

	if strings.Contains(q, "total") || strings.Contains(q, "spend") {
		var total float64
		if err := s.DB.Model(&OrderRecord{}).Select("COALESCE(SUM(total_amount), 0)").Scan(&total).Error; err != nil {
			return chatstream.Event{Type: chatstream.EventError}
		}
		return chatstream.Event{
			Type:     chatstream.EventComplete,
			Response: fmt.Sprintf("Your total spend across all orders is %s.", utils.FormatIndianCurrency(total)),
			Thinking: "Summed total_amount over all orders.",
		}
	}

	if strings.Contains(q, "overdue") || strings.Contains(q, "pending payment") {
		var count int64
		err := s.DB.Model(&OrderRecord{}).
			Where("order_status = ? AND total_amount > advance_amount AND payment_due_date < ?",
				models.StatusDelivered, nowDate()).
			Count(&count).Error
		if err != nil {
			return chatstream.Event{Type: chatstream.EventError}
		}
		return chatstream.Event{
			Type:     chatstream.EventComplete,
			Response: fmt.Sprintf("You have %d delivered orders with overdue payments.", count),
			Thinking: "Counted delivered orders with outstanding balance past due date.",
		}
	}

	return chatstream.Event{
		Type:     chatstream.EventComplete,
		Response: "I can help with order status, amounts and payments. Try asking about a specific order number, your total spend, or overdue payments.",
	}
}
