package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderDecodesDisplayNameKeys(t *testing.T) {
	raw := `{
		"Order No": "ORD-10001",
		"Order Date": "2025-05-01",
		"Order Status": "Shipped",
		"Order Type": "Packaging Films",
		"Item": "BOPP Film",
		"Quantity": 1000,
		"Unit Cost": 150,
		"Total Amount": 150000,
		"Advance Amount": 30000,
		"Expected Delivery": "2025-05-10 18:00"
	}`

	var o Order
	assert.NoError(t, json.Unmarshal([]byte(raw), &o))
	assert.Equal(t, "ORD-10001", o.OrderNo)
	assert.Equal(t, StatusShipped, o.OrderStatus)
	assert.Equal(t, 150000.0, o.TotalAmount)
	assert.Equal(t, 120000.0, o.Balance())
}

func TestFinancialsAuthoritativeOverFlatFields(t *testing.T) {
	o := Order{
		TotalAmount:   100,
		AdvanceAmount: 10,
		Financials:    &Financials{Total: 200000, Advance: 50000, Balance: 150000},
	}
	assert.Equal(t, 200000.0, o.Total())
	assert.Equal(t, 50000.0, o.Advance())
	assert.Equal(t, 150000.0, o.Balance())
}

func TestBalanceFallsBackToFlatFields(t *testing.T) {
	o := Order{TotalAmount: 100000, AdvanceAmount: 25000}
	assert.Equal(t, 75000.0, o.Balance())
}

func TestCanCancel(t *testing.T) {
	assert.True(t, (&Order{OrderStatus: StatusOrdered}).CanCancel())
	assert.True(t, (&Order{OrderStatus: StatusPackaging}).CanCancel())
	assert.True(t, (&Order{OrderStatus: StatusShipped}).CanCancel())
	assert.False(t, (&Order{OrderStatus: StatusDelivered}).CanCancel())
	assert.False(t, (&Order{OrderStatus: StatusCancelled}).CanCancel())
}

func TestDateParsingBothLayouts(t *testing.T) {
	o := Order{OrderDate: "2025-05-01", ShippedDate: "2025-05-03 09:30"}

	d, ok := o.OrderDateTime()
	assert.True(t, ok)
	assert.Equal(t, 2025, d.Year())

	s, ok := o.ShippedTime()
	assert.True(t, ok)
	assert.Equal(t, 9, s.Hour())

	_, ok = o.DeliveredTime()
	assert.False(t, ok)

	o.PaymentDueDate = "garbage"
	_, ok = o.PaymentDueTime()
	assert.False(t, ok)
}
