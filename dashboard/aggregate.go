package dashboard

import (
	"math"
	"sort"
	"time"

	"github.com/flexipack-labs/order-portal/models"
)

// canonicalStatuses fixes the display order of known statuses in charts.
var canonicalStatuses = []string{
	models.StatusOrdered,
	models.StatusPackaging,
	models.StatusShipped,
	models.StatusDelivered,
	models.StatusCancelled,
}

// StatusCount is one slice of the status distribution chart.
type StatusCount struct {
	Status string
	Count  int
}

// StatusCounts tallies orders per status. Known statuses come out in
// lifecycle order, anything unexpected follows in first-encounter order.
func StatusCounts(orders []models.Order) []StatusCount {
	counts := make(map[string]int)
	var extras []string
	for _, o := range orders {
		if _, seen := counts[o.OrderStatus]; !seen && !isCanonicalStatus(o.OrderStatus) {
			extras = append(extras, o.OrderStatus)
		}
		counts[o.OrderStatus]++
	}

	var out []StatusCount
	for _, s := range canonicalStatuses {
		if n, ok := counts[s]; ok {
			out = append(out, StatusCount{Status: s, Count: n})
		}
	}
	for _, s := range extras {
		out = append(out, StatusCount{Status: s, Count: counts[s]})
	}
	return out
}

func isCanonicalStatus(s string) bool {
	for _, c := range canonicalStatuses {
		if c == s {
			return true
		}
	}
	return false
}

// TypeSpend is one bar of the spend-by-type chart.
type TypeSpend struct {
	OrderType string
	Amount    float64
}

// SpendByType sums order amounts per order type in first-encounter order.
func SpendByType(orders []models.Order) []TypeSpend {
	idx := make(map[string]int)
	var out []TypeSpend
	for _, o := range orders {
		i, ok := idx[o.OrderType]
		if !ok {
			i = len(out)
			idx[o.OrderType] = i
			out = append(out, TypeSpend{OrderType: o.OrderType})
		}
		out[i].Amount += o.Total()
	}
	return out
}

// AgingBucketLabels are the day-count ranges used by both aging charts.
var AgingBucketLabels = []string{"0-30 Days", "31-60 Days", "61-90 Days", "90+ Days"}

func bucketIndex(days int) int {
	switch {
	case days <= 30:
		return 0
	case days <= 60:
		return 1
	case days <= 90:
		return 2
	}
	return 3
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// AgingBucket carries the balance and advance sums of one order-age range.
type AgingBucket struct {
	Label   string
	Balance float64
	Advance float64
}

// AgingBuckets groups outstanding money by elapsed days since the order
// date. Orders without a parseable order date are skipped.
func AgingBuckets(orders []models.Order, now time.Time) []AgingBucket {
	out := make([]AgingBucket, len(AgingBucketLabels))
	for i, label := range AgingBucketLabels {
		out[i].Label = label
	}
	for i := range orders {
		o := &orders[i]
		d, ok := o.OrderDateTime()
		if !ok {
			continue
		}
		b := bucketIndex(daysBetween(d, now))
		out[b].Balance += o.Balance()
		out[b].Advance += o.Advance()
	}
	return out
}

// MonthCount is one point of the monthly order trend.
type MonthCount struct {
	Month string // "Jan 2006"
	Count int
}

// MonthlyTrend counts orders per calendar month in chronological order.
func MonthlyTrend(orders []models.Order) []MonthCount {
	counts := make(map[string]int)
	var keys []string
	for i := range orders {
		d, ok := orders[i].OrderDateTime()
		if !ok {
			continue
		}
		key := d.Format("2006-01")
		if _, seen := counts[key]; !seen {
			keys = append(keys, key)
		}
		counts[key]++
	}
	sort.Strings(keys)

	out := make([]MonthCount, 0, len(keys))
	for _, key := range keys {
		d, _ := time.Parse("2006-01", key)
		out = append(out, MonthCount{Month: d.Format("Jan 2006"), Count: counts[key]})
	}
	return out
}

// OverdueBucket is one range of the overdue-payments chart.
type OverdueBucket struct {
	Label   string
	Count   int
	Balance float64
}

// OverdueBuckets groups overdue receivables by days past the payment due
// date, restricted to delivered orders that still owe money.
func OverdueBuckets(orders []models.Order, now time.Time) []OverdueBucket {
	out := make([]OverdueBucket, len(AgingBucketLabels))
	for i, label := range AgingBucketLabels {
		out[i].Label = label
	}
	for i := range orders {
		o := &orders[i]
		if o.OrderStatus != models.StatusDelivered || o.Balance() <= 0 {
			continue
		}
		due, ok := o.PaymentDueTime()
		if !ok || !due.Before(now) {
			continue
		}
		b := bucketIndex(daysBetween(due, now))
		out[b].Count++
		out[b].Balance += o.Balance()
	}
	return out
}

// ItemSpend is one row of the top-products chart.
type ItemSpend struct {
	Item   string
	Amount float64
}

// TopItems returns the top n items by summed amount, descending. Ties keep
// first-encounter order.
func TopItems(orders []models.Order, n int) []ItemSpend {
	idx := make(map[string]int)
	var all []ItemSpend
	for i := range orders {
		o := &orders[i]
		j, ok := idx[o.Item]
		if !ok {
			j = len(all)
			idx[o.Item] = j
			all = append(all, ItemSpend{Item: o.Item})
		}
		all[j].Amount += o.Total()
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[j].Amount < all[i].Amount
	})
	if len(all) > n {
		all = all[:n]
	}
	return all
}

// SummaryStats feeds the header cards above the table.
type SummaryStats struct {
	TotalOrders        int
	PendingOrders      int
	DeliveredOrders    int
	TotalSpend         float64
	OutstandingBalance float64
	OverdueCount       int
	AvgTransitDays     float64
}

// Summarize computes the headline figures for an order collection.
func Summarize(orders []models.Order, now time.Time) SummaryStats {
	var stats SummaryStats
	stats.TotalOrders = len(orders)

	var transitDays []int
	for i := range orders {
		o := &orders[i]
		switch o.OrderStatus {
		case models.StatusOrdered, models.StatusPackaging, models.StatusShipped:
			stats.PendingOrders++
		case models.StatusDelivered:
			stats.DeliveredOrders++
			shipped, okS := o.ShippedTime()
			delivered, okD := o.DeliveredTime()
			if okS && okD {
				transitDays = append(transitDays, daysBetween(shipped, delivered))
			}
		}

		stats.TotalSpend += o.Total()
		if balance := o.Balance(); balance > 0 {
			stats.OutstandingBalance += balance
			if due, ok := o.PaymentDueTime(); ok && due.Before(now) {
				stats.OverdueCount++
			}
		}
	}

	if len(transitDays) > 0 {
		sum := 0
		for _, d := range transitDays {
			sum += d
		}
		avg := float64(sum) / float64(len(transitDays))
		stats.AvgTransitDays = math.Round(avg*10) / 10
	}
	return stats
}
