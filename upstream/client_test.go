package upstream

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListOrders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"orders":[
			{"Order No":"ORD-10001","Order Status":"Shipped","Total Amount":50000,"Advance Amount":10000},
			{"Order No":"ORD-10002","Order Status":"Delivered","Total Amount":80000,"Advance Amount":80000}
		]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	orders, err := c.ListOrders(context.Background())
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, "ORD-10001", orders[0].OrderNo)
	assert.Equal(t, 40000.0, orders[0].Balance())
}

func TestGetOrderNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Order not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.GetOrder(context.Background(), "ORD-99999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetOrderServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.GetOrder(context.Background(), "ORD-10001")

	var statusErr *StatusError
	assert.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
}

func TestLoginRelaysFailureInline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"success":false,"message":"Invalid credentials"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	result, err := c.Login(context.Background(), "admin", "wrong")
	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid credentials", result.Message)
}

func TestCancelOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cancel/ORD-10001", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"reason":"Ordered by mistake"}`, string(body))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"success":true,"message":"Order cancelled successfully."}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	msg, err := c.CancelOrder(context.Background(), "ORD-10001", "Ordered by mistake")
	assert.NoError(t, err)
	assert.Equal(t, "Order cancelled successfully.", msg)
}

func TestCancelOrderRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"success":false,"message":"Could not cancel order"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.CancelOrder(context.Background(), "ORD-10001", "")

	var statusErr *StatusError
	assert.True(t, errors.As(err, &statusErr))
	assert.Equal(t, "Could not cancel order", statusErr.Message)
}

func TestGetTracking(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/track/ORD-10001", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"tracking":[
			{"status":"Order Placed","completed":true},
			{"status":"Packaging","current":true}
		],"current_status":"Ordered"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	steps, err := c.GetTracking(context.Background(), "ORD-10001")
	assert.NoError(t, err)
	assert.Len(t, steps, 2)
	assert.True(t, steps[0].Completed)
	assert.True(t, steps[1].Current)
}

func TestChatReturnsRawStream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		io.WriteString(w, "data: {\"type\":\"complete\",\"response\":\"hi\"}\n")
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	body, err := c.Chat(context.Background(), "hello")
	assert.NoError(t, err)
	defer body.Close()

	raw, err := io.ReadAll(body)
	assert.NoError(t, err)
	assert.Contains(t, string(raw), "data: ")
}

func TestInvoiceRelaysHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", "attachment; filename=invoice_ORD-10001.txt")
		io.WriteString(w, "INVOICE")
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	resp, err := c.Invoice(context.Background(), "ORD-10001")
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "invoice_ORD-10001")
}
