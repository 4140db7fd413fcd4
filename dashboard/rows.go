package dashboard

import (
	"time"

	"github.com/flexipack-labs/order-portal/models"
	"github.com/flexipack-labs/order-portal/utils"
)

// PaymentBadge classifies an order's payment state for the table.
type PaymentBadge string

const (
	BadgePaid    PaymentBadge = "PAID"
	BadgeOverdue PaymentBadge = "OVERDUE"
	BadgePending PaymentBadge = "PENDING"
)

// PaymentBadgeFor computes the payment badge: settled balance always wins,
// a delivered order past its due date with money outstanding is overdue,
// everything else is pending.
func PaymentBadgeFor(o *models.Order, now time.Time) PaymentBadge {
	if o.Balance() <= 0 {
		return BadgePaid
	}
	if o.OrderStatus == models.StatusDelivered {
		if due, ok := o.PaymentDueTime(); ok && due.Before(now) {
			return BadgeOverdue
		}
	}
	return BadgePending
}

// IsLate reports whether an undelivered order has blown past its expected
// delivery date.
func IsLate(o *models.Order, now time.Time) bool {
	if o.OrderStatus == models.StatusDelivered {
		return false
	}
	expected, ok := o.ExpectedDeliveryTime()
	return ok && expected.Before(now)
}

// RowView is one rendered table row.
type RowView struct {
	Order          models.Order
	Badge          PaymentBadge
	Late           bool
	CanCancel      bool
	AmountDisplay  string
	BalanceDisplay string
}

// BuildRows projects the filtered sequence into table rows, one per order,
// preserving sequence order.
func BuildRows(orders []models.Order, now time.Time) []RowView {
	rows := make([]RowView, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		rows = append(rows, RowView{
			Order:          *o,
			Badge:          PaymentBadgeFor(o, now),
			Late:           IsLate(o, now),
			CanCancel:      o.CanCancel(),
			AmountDisplay:  utils.FormatIndianCurrency(o.Total()),
			BalanceDisplay: utils.FormatIndianCurrency(o.Balance()),
		})
	}
	return rows
}
