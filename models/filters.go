package models

import (
	"net/url"
	"strconv"
)

// FilterAll disables a filter dimension.
const FilterAll = "all"

// Sort keys accepted by the dashboard. Anything else leaves the sequence
// in its original order.
const (
	SortDateAsc    = "date_asc"
	SortDateDesc   = "date_desc"
	SortAmountAsc  = "amount_asc"
	SortAmountDesc = "amount_desc"
	SortOrderAsc   = "orderno_asc"
	SortOrderDesc  = "orderno_desc"
)

// FilterSelection is the ephemeral filter/sort state of one dashboard view.
type FilterSelection struct {
	DateWindow string `form:"date" json:"date"`
	OrderType  string `form:"type" json:"type"`
	Status     string `form:"status" json:"status"`
	SortKey    string `form:"sort" json:"sort"`
}

// DefaultFilters selects everything, newest first.
func DefaultFilters() FilterSelection {
	return FilterSelection{
		DateWindow: FilterAll,
		OrderType:  FilterAll,
		Status:     FilterAll,
		SortKey:    SortDateDesc,
	}
}

// ParseFilters reads a selection from dashboard query parameters, falling
// back to the defaults for absent dimensions.
func ParseFilters(q url.Values) FilterSelection {
	sel := DefaultFilters()
	if v := q.Get("date"); v != "" {
		sel.DateWindow = v
	}
	if v := q.Get("type"); v != "" {
		sel.OrderType = v
	}
	if v := q.Get("status"); v != "" {
		sel.Status = v
	}
	if v := q.Get("sort"); v != "" {
		sel.SortKey = v
	}
	return sel
}

// DateWindowDays returns the date window as a day count; ok is false when
// the window is "all" or unparseable, which disables the date filter.
func (s FilterSelection) DateWindowDays() (int, bool) {
	if s.DateWindow == FilterAll || s.DateWindow == "" {
		return 0, false
	}
	days, err := strconv.Atoi(s.DateWindow)
	if err != nil || days <= 0 {
		return 0, false
	}
	return days, true
}

// Query re-encodes the selection so chart image URLs and drill-down links
// keep the active view.
func (s FilterSelection) Query() string {
	q := url.Values{}
	q.Set("date", s.DateWindow)
	q.Set("type", s.OrderType)
	q.Set("status", s.Status)
	q.Set("sort", s.SortKey)
	return q.Encode()
}
