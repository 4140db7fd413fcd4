// Package charts renders the dashboard aggregates into PNG images served
// next to the table. Each renderer is a straight projection of one
// aggregate; empty or all-zero datasets return ErrNoData instead of a
// broken image.
package charts

import (
	"bytes"
	"errors"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/flexipack-labs/order-portal/dashboard"
)

// ErrNoData marks a dataset with nothing to draw.
var ErrNoData = errors.New("charts: no data")

const (
	chartWidth  = 640
	chartHeight = 360
)

// StatusDistributionPNG draws the per-status order counts as a pie chart.
func StatusDistributionPNG(counts []dashboard.StatusCount) ([]byte, error) {
	values := make([]chart.Value, 0, len(counts))
	total := 0
	for _, c := range counts {
		if c.Count == 0 {
			continue
		}
		total += c.Count
		values = append(values, chart.Value{Value: float64(c.Count), Label: c.Status})
	}
	if total == 0 {
		return nil, ErrNoData
	}

	pie := chart.PieChart{
		Title:  "Order Status",
		Width:  chartWidth,
		Height: chartHeight,
		Values: values,
	}
	return renderPNG(&pie)
}

// SpendByTypePNG draws total spend per order type.
func SpendByTypePNG(spend []dashboard.TypeSpend) ([]byte, error) {
	values := make([]chart.Value, 0, len(spend))
	var total float64
	for _, s := range spend {
		total += s.Amount
		values = append(values, chart.Value{Value: s.Amount, Label: s.OrderType})
	}
	if len(values) == 0 || total == 0 {
		return nil, ErrNoData
	}
	return barPNG("Spend by Type", values)
}

// AgingPNG draws balance against advance per order-age bucket.
func AgingPNG(buckets []dashboard.AgingBucket) ([]byte, error) {
	bars := make([]chart.StackedBar, 0, len(buckets))
	var total float64
	for _, b := range buckets {
		// empty buckets cannot be stacked, their bar has no height to split
		if b.Balance+b.Advance == 0 {
			continue
		}
		total += b.Balance + b.Advance
		bars = append(bars, chart.StackedBar{
			Name: b.Label,
			Values: []chart.Value{
				{Value: b.Balance, Label: "Balance"},
				{Value: b.Advance, Label: "Advance"},
			},
		})
	}
	if total == 0 {
		return nil, ErrNoData
	}

	sbc := chart.StackedBarChart{
		Title:  "Order Aging",
		Width:  chartWidth,
		Height: chartHeight,
		Bars:   bars,
	}
	return renderPNG(&sbc)
}

// MonthlyTrendPNG draws the order count per calendar month.
func MonthlyTrendPNG(trend []dashboard.MonthCount) ([]byte, error) {
	values := make([]chart.Value, 0, len(trend))
	total := 0
	for _, m := range trend {
		total += m.Count
		values = append(values, chart.Value{Value: float64(m.Count), Label: m.Month})
	}
	if len(values) == 0 || total == 0 {
		return nil, ErrNoData
	}
	return barPNG("Monthly Orders", values)
}

// OverduePNG draws the overdue balance per due-age bucket.
func OverduePNG(buckets []dashboard.OverdueBucket) ([]byte, error) {
	values := make([]chart.Value, 0, len(buckets))
	var total float64
	for _, b := range buckets {
		total += b.Balance
		values = append(values, chart.Value{Value: b.Balance, Label: b.Label})
	}
	if total == 0 {
		return nil, ErrNoData
	}
	return barPNG("Overdue Payments", values)
}

// TopItemsPNG draws the top items by summed amount.
func TopItemsPNG(items []dashboard.ItemSpend) ([]byte, error) {
	values := make([]chart.Value, 0, len(items))
	var total float64
	for _, it := range items {
		total += it.Amount
		values = append(values, chart.Value{Value: it.Amount, Label: it.Item})
	}
	if len(values) == 0 || total == 0 {
		return nil, ErrNoData
	}
	return barPNG("Top Products", values)
}

func barPNG(title string, values []chart.Value) ([]byte, error) {
	var max float64
	for _, v := range values {
		if v.Value > max {
			max = v.Value
		}
	}

	bc := chart.BarChart{
		Title:    title,
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 48,
		Bars:     values,
		YAxis: chart.YAxis{
			// zero baseline, headroom above the tallest bar; also keeps
			// the range valid when every bar has the same value
			Range: &chart.ContinuousRange{Min: 0, Max: max * 1.1},
		},
	}
	return renderPNG(&bc)
}

type renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

func renderPNG(c renderable) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
