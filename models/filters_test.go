package models

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFiltersDefaults(t *testing.T) {
	sel := ParseFilters(url.Values{})
	assert.Equal(t, DefaultFilters(), sel)
	assert.Equal(t, SortDateDesc, sel.SortKey)
}

func TestParseFiltersOverrides(t *testing.T) {
	q := url.Values{}
	q.Set("date", "90")
	q.Set("type", "Chemicals")
	q.Set("status", StatusShipped)
	q.Set("sort", SortAmountDesc)

	sel := ParseFilters(q)
	assert.Equal(t, "90", sel.DateWindow)
	assert.Equal(t, "Chemicals", sel.OrderType)
	assert.Equal(t, StatusShipped, sel.Status)
	assert.Equal(t, SortAmountDesc, sel.SortKey)
}

func TestDateWindowDays(t *testing.T) {
	sel := DefaultFilters()
	_, ok := sel.DateWindowDays()
	assert.False(t, ok)

	sel.DateWindow = "30"
	days, ok := sel.DateWindowDays()
	assert.True(t, ok)
	assert.Equal(t, 30, days)

	sel.DateWindow = "junk"
	_, ok = sel.DateWindowDays()
	assert.False(t, ok)

	sel.DateWindow = "-5"
	_, ok = sel.DateWindowDays()
	assert.False(t, ok)
}

func TestQueryRoundTrips(t *testing.T) {
	sel := FilterSelection{DateWindow: "60", OrderType: "Chemicals", Status: StatusDelivered, SortKey: SortOrderAsc}
	back := ParseFilters(mustParseQuery(t, sel.Query()))
	assert.Equal(t, sel, back)
}

func mustParseQuery(t *testing.T, s string) url.Values {
	t.Helper()
	q, err := url.ParseQuery(s)
	assert.NoError(t, err)
	return q
}
