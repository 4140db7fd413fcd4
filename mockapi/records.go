// Package mockapi is a stand-in for the upstream order API, used for local
// development and integration tests. It reproduces the documented
// interface of the real service: the order list, single-order detail with
// financials and timeline, tracking, cancellation, invoices, login and the
// chat event stream.
package mockapi

import (
	"time"

	"gorm.io/gorm"

	"github.com/flexipack-labs/order-portal/models"
)

// OrderRecord is the stored form of one order.
type OrderRecord struct {
	ID               uint   `gorm:"primaryKey"`
	OrderNo          string `gorm:"uniqueIndex;type:varchar(20)"`
	OrderDate        string
	CustomerRef      string
	OrderStatus      string `gorm:"type:varchar(20);not null"`
	OrderType        string
	Item             string
	Structure        string
	Thickness        string
	Width            string
	Quantity         int
	UnitCost         float64
	TotalAmount      float64 `gorm:"type:decimal(14,2)"`
	AdvanceAmount    float64 `gorm:"type:decimal(14,2)"`
	CreditDays       int
	ExpectedDelivery string
	ShippedDate      string
	DeliveredDate    string
	PaymentDueDate   string
	Carrier          string
	AWB              string
	ShipmentStatus   string
	BuyerName        string
	BuyerAddress     string
	BuyerGST         string
	CancelReason     string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PortalUser is a login credential for the mock API.
type PortalUser struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;type:varchar(64)"`
	PasswordHash string
	CreatedAt    time.Time
}

// Migrate creates the mock API schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&OrderRecord{}, &PortalUser{})
}

// ToOrder converts a record into the wire shape the portal consumes.
func (r *OrderRecord) ToOrder() models.Order {
	return models.Order{
		OrderNo:          r.OrderNo,
		OrderDate:        r.OrderDate,
		CustomerRef:      r.CustomerRef,
		OrderStatus:      r.OrderStatus,
		OrderType:        r.OrderType,
		Item:             r.Item,
		Structure:        r.Structure,
		Thickness:        r.Thickness,
		Width:            r.Width,
		Quantity:         r.Quantity,
		UnitCost:         r.UnitCost,
		TotalAmount:      r.TotalAmount,
		AdvanceAmount:    r.AdvanceAmount,
		CreditDays:       r.CreditDays,
		ExpectedDelivery: r.ExpectedDelivery,
		ShippedDate:      r.ShippedDate,
		DeliveredDate:    r.DeliveredDate,
		PaymentDueDate:   r.PaymentDueDate,
		Carrier:          r.Carrier,
		AWB:              r.AWB,
		ShipmentStatus:   r.ShipmentStatus,
		BuyerName:        r.BuyerName,
		BuyerAddress:     r.BuyerAddress,
		BuyerGST:         r.BuyerGST,
	}
}

// ToDetailedOrder adds the nested financials and a synthesized timeline,
// the richer shape of the single-order endpoint.
func (r *OrderRecord) ToDetailedOrder() models.Order {
	order := r.ToOrder()
	order.Financials = &models.Financials{
		Total:   r.TotalAmount,
		Advance: r.AdvanceAmount,
		Balance: r.TotalAmount - r.AdvanceAmount,
	}
	order.Timeline = models.SynthesizeTimeline(r.OrderStatus)
	return order
}
