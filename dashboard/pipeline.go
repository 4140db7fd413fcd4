// Package dashboard derives the table and chart view models from an order
// collection. Everything here is a pure function of its inputs so the
// rendering layer stays a thin projection.
package dashboard

import (
	"sort"
	"time"

	"github.com/flexipack-labs/order-portal/models"
)

// ApplyFilters derives the filtered, sorted view of the order collection.
// The input slice is never mutated; equal sort keys keep their original
// relative order, and an unrecognized sort key leaves the sequence as-is.
func ApplyFilters(orders []models.Order, sel models.FilterSelection, now time.Time) []models.Order {
	filtered := make([]models.Order, 0, len(orders))

	days, dateFilterOn := sel.DateWindowDays()
	cutoff := now.AddDate(0, 0, -days)

	for _, o := range orders {
		if dateFilterOn {
			d, ok := o.OrderDateTime()
			if !ok || d.Before(cutoff) {
				continue
			}
		}
		if sel.OrderType != models.FilterAll && o.OrderType != sel.OrderType {
			continue
		}
		if sel.Status != models.FilterAll && o.OrderStatus != sel.Status {
			continue
		}
		filtered = append(filtered, o)
	}

	sortOrders(filtered, sel.SortKey)
	return filtered
}

// DistinctTypes lists the order types present in the collection, in
// first-encounter order, for the filter dropdown.
func DistinctTypes(orders []models.Order) []string {
	seen := make(map[string]bool)
	var out []string
	for i := range orders {
		t := orders[i].OrderType
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func orderDateOrZero(o *models.Order) time.Time {
	d, _ := o.OrderDateTime()
	return d
}

func sortOrders(orders []models.Order, key string) {
	switch key {
	case models.SortDateAsc:
		sort.SliceStable(orders, func(i, j int) bool {
			return orderDateOrZero(&orders[i]).Before(orderDateOrZero(&orders[j]))
		})
	case models.SortDateDesc:
		sort.SliceStable(orders, func(i, j int) bool {
			return orderDateOrZero(&orders[j]).Before(orderDateOrZero(&orders[i]))
		})
	case models.SortAmountAsc:
		sort.SliceStable(orders, func(i, j int) bool {
			return orders[i].TotalAmount < orders[j].TotalAmount
		})
	case models.SortAmountDesc:
		sort.SliceStable(orders, func(i, j int) bool {
			return orders[j].TotalAmount < orders[i].TotalAmount
		})
	case models.SortOrderAsc:
		sort.SliceStable(orders, func(i, j int) bool {
			return orders[i].OrderNo < orders[j].OrderNo
		})
	case models.SortOrderDesc:
		sort.SliceStable(orders, func(i, j int) bool {
			return orders[j].OrderNo < orders[i].OrderNo
		})
	}
}
