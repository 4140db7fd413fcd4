package mockapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/flexipack-labs/order-portal/chatstream"
	"github.com/flexipack-labs/order-portal/models"
	"github.com/flexipack-labs/order-portal/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// one shared in-memory database per test, so seeded order numbers
	// never collide across tests
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	assert.NoError(t, Migrate(db))
	return db
}

func setupAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.InitLogger()

	db := setupTestDB(t)
	assert.NoError(t, SeedOrders(db, 20, rand.New(rand.NewSource(1))))
	assert.NoError(t, SeedUser(db, "admin", "password"))
	return NewRouter(db), db
}

func doJSON(r http.Handler, method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	req, _ := http.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginFlow(t *testing.T) {
	r, _ := setupAPI(t)

	w := doJSON(r, "POST", "/api/login", gin.H{"username": "admin", "password": "password"})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "/dashboard", resp["redirect"])

	w = doJSON(r, "POST", "/api/login", gin.H{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestListAndGetOrder(t *testing.T) {
	r, _ := setupAPI(t)

	w := doJSON(r, "GET", "/api/orders", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var list models.OrderList
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Orders, 20)
	assert.Equal(t, "ORD-10000", list.Orders[0].OrderNo)

	w = doJSON(r, "GET", "/api/order/ORD-10000", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.NotNil(t, order.Financials)
	assert.InDelta(t, order.TotalAmount-order.AdvanceAmount, order.Financials.Balance, 0.01)
	assert.Len(t, order.Timeline, 5)

	w = doJSON(r, "GET", "/api/order/ORD-99999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Order not found")
}

func TestTracking(t *testing.T) {
	r, _ := setupAPI(t)

	w := doJSON(r, "GET", "/api/track/ORD-10000", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var tr models.TrackingResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &tr))
	assert.Len(t, tr.Tracking, 5)

	current := 0
	for _, s := range tr.Tracking {
		if s.Completed {
			assert.NotEmpty(t, s.Timestamp)
		}
		if s.Current {
			current++
		}
	}
	assert.LessOrEqual(t, current, 1)
}

func TestCancelLifecycle(t *testing.T) {
	r, db := setupAPI(t)

	db.Create(&OrderRecord{OrderNo: "ORD-20000", OrderStatus: models.StatusOrdered, OrderDate: "2025-06-01"})
	db.Create(&OrderRecord{OrderNo: "ORD-20001", OrderStatus: models.StatusDelivered, OrderDate: "2025-06-01"})

	w := doJSON(r, "POST", "/api/cancel/ORD-20000", gin.H{"reason": "Ordered by mistake"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Order cancelled successfully")

	var rec OrderRecord
	assert.NoError(t, db.Where("order_no = ?", "ORD-20000").First(&rec).Error)
	assert.Equal(t, models.StatusCancelled, rec.OrderStatus)
	assert.Equal(t, "Ordered by mistake", rec.CancelReason)

	// delivered orders cannot be cancelled
	w = doJSON(r, "POST", "/api/cancel/ORD-20001", gin.H{"reason": "changed my mind"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// neither can already-cancelled ones
	w = doJSON(r, "POST", "/api/cancel/ORD-20000", gin.H{"reason": "again"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvoiceDocument(t *testing.T) {
	r, db := setupAPI(t)

	db.Create(&OrderRecord{
		OrderNo: "ORD-20002", OrderStatus: models.StatusDelivered, OrderDate: "2025-06-01",
		Item: "BOPP Film", Quantity: 1000, UnitCost: 50, TotalAmount: 50000,
		BuyerName: "XYZ Industries Pvt Ltd",
	})

	w := doJSON(r, "GET", "/api/invoice/ORD-20002", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "invoice_ORD-20002.txt")
	body := w.Body.String()
	assert.Contains(t, body, "INVOICE")
	assert.Contains(t, body, "Invoice No: INV-20002")
	assert.Contains(t, body, "BOPP Film")
}

func chatEvents(t *testing.T, r http.Handler, query string) []chatstream.Event {
	t.Helper()
	w := doJSON(r, "POST", "/api/chat", gin.H{"query": query})
	assert.Equal(t, http.StatusOK, w.Code)

	p := &chatstream.Parser{}
	events := p.Feed(w.Body.Bytes())
	return append(events, p.Flush()...)
}

func TestChatOrderLookup(t *testing.T) {
	r, db := setupAPI(t)
	db.Create(&OrderRecord{
		OrderNo: "ORD-20003", OrderStatus: models.StatusShipped, OrderDate: "2025-06-01",
		TotalAmount: 1500000, ExpectedDelivery: "2025-06-20 18:00",
	})

	events := chatEvents(t, r, "Where is ORD-20003?")
	assert.GreaterOrEqual(t, len(events), 3)

	final := events[len(events)-1]
	assert.Equal(t, chatstream.EventComplete, final.Type)
	assert.Contains(t, final.Response, "ORD-20003")
	assert.Contains(t, final.Response, "Shipped")
	assert.Contains(t, final.Response, "₹15,00,000")
	assert.Equal(t, chatstream.ActionHighlightOrder, final.Action)
	assert.Equal(t, "ORD-20003", final.OrderID)

	for _, ev := range events[:len(events)-1] {
		assert.Equal(t, chatstream.EventProgress, ev.Type)
	}
}

func TestChatOrderNotFound(t *testing.T) {
	r, _ := setupAPI(t)

	events := chatEvents(t, r, "status of ORD-77777")
	final := events[len(events)-1]
	assert.Equal(t, chatstream.EventComplete, final.Type)
	assert.Contains(t, final.Response, "could not find Order No: ORD-77777")
	assert.Empty(t, final.Action)
}

func TestChatTotalSpend(t *testing.T) {
	r, _ := setupAPI(t)

	events := chatEvents(t, r, "what is my total spend?")
	final := events[len(events)-1]
	assert.Equal(t, chatstream.EventComplete, final.Type)
	assert.Contains(t, final.Response, "total spend")
	assert.Contains(t, final.Response, "₹")
}

func TestChatFallback(t *testing.T) {
	r, _ := setupAPI(t)

	events := chatEvents(t, r, "sing me a song")
	final := events[len(events)-1]
	assert.Equal(t, chatstream.EventComplete, final.Type)
	assert.Contains(t, final.Response, "order status")
}
