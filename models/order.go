package models

import (
	"time"
)

// Order statuses as reported by the upstream order API.
const (
	StatusOrdered   = "Ordered"
	StatusPackaging = "Packaging"
	StatusShipped   = "Shipped"
	StatusDelivered = "Delivered"
	StatusCancelled = "Cancelled"
)

// Date layouts used by the upstream API. Order/due dates come as bare
// dates, shipment timestamps carry a time component.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"
)

// Financials is the precomputed money block optionally nested in a single
// order response. When present it is authoritative over the flat fields.
type Financials struct {
	Total   float64 `json:"total"`
	Advance float64 `json:"advance"`
	Balance float64 `json:"balance"`
}

// Order mirrors one record of the upstream order API. The JSON keys are
// the display-name keys the API uses, kept verbatim so the decoder maps
// responses without a translation layer.
type Order struct {
	OrderNo          string  `json:"Order No"`
	OrderDate        string  `json:"Order Date"`
	CustomerRef      string  `json:"Customer Ref,omitempty"`
	OrderStatus      string  `json:"Order Status"`
	OrderType        string  `json:"Order Type"`
	Item             string  `json:"Item"`
	Structure        string  `json:"Structure,omitempty"`
	Thickness        string  `json:"Thickness,omitempty"`
	Width            string  `json:"Width,omitempty"`
	Quantity         int     `json:"Quantity"`
	UnitCost         float64 `json:"Unit Cost"`
	TotalAmount      float64 `json:"Total Amount"`
	AdvanceAmount    float64 `json:"Advance Amount"`
	CreditDays       int     `json:"Credit Days,omitempty"`
	ExpectedDelivery string  `json:"Expected Delivery,omitempty"`
	ShippedDate      string  `json:"Shipped Date,omitempty"`
	DeliveredDate    string  `json:"Delivered Date,omitempty"`
	PaymentDueDate   string  `json:"Payment Due Date,omitempty"`
	Carrier          string  `json:"Carrier,omitempty"`
	AWB              string  `json:"AWB,omitempty"`
	ShipmentStatus   string  `json:"Shipment Status,omitempty"`
	TrackingLink     string  `json:"Tracking Link,omitempty"`
	BuyerName        string  `json:"Buyer Name,omitempty"`
	BuyerAddress     string  `json:"Buyer Address,omitempty"`
	BuyerGST         string  `json:"Buyer GST,omitempty"`

	Financials *Financials    `json:"financials,omitempty"`
	Timeline   []TrackingStep `json:"timeline,omitempty"`
}

// Balance returns total minus advance. The nested financials block wins
// when the API precomputed it.
func (o *Order) Balance() float64 {
	if o.Financials != nil {
		return o.Financials.Balance
	}
	return o.TotalAmount - o.AdvanceAmount
}

// Total returns the authoritative total amount.
func (o *Order) Total() float64 {
	if o.Financials != nil {
		return o.Financials.Total
	}
	return o.TotalAmount
}

// Advance returns the authoritative advance amount.
func (o *Order) Advance() float64 {
	if o.Financials != nil {
		return o.Financials.Advance
	}
	return o.AdvanceAmount
}

// CanCancel reports whether the upstream API still accepts a cancellation
// for this order.
func (o *Order) CanCancel() bool {
	return o.OrderStatus != StatusCancelled && o.OrderStatus != StatusDelivered
}

// parseUpstreamDate accepts both upstream layouts.
func parseUpstreamDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(DateTimeLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// OrderDateTime parses the order date. The second result is false when the
// field is absent or malformed.
func (o *Order) OrderDateTime() (time.Time, bool) {
	return parseUpstreamDate(o.OrderDate)
}

// ExpectedDeliveryTime parses the expected delivery timestamp.
func (o *Order) ExpectedDeliveryTime() (time.Time, bool) {
	return parseUpstreamDate(o.ExpectedDelivery)
}

// ShippedTime parses the shipped timestamp.
func (o *Order) ShippedTime() (time.Time, bool) {
	return parseUpstreamDate(o.ShippedDate)
}

// DeliveredTime parses the delivered timestamp.
func (o *Order) DeliveredTime() (time.Time, bool) {
	return parseUpstreamDate(o.DeliveredDate)
}

// PaymentDueTime parses the payment due date.
func (o *Order) PaymentDueTime() (time.Time, bool) {
	return parseUpstreamDate(o.PaymentDueDate)
}

// OrderList is the envelope of the upstream list endpoint.
type OrderList struct {
	Orders []Order `json:"orders"`
}
