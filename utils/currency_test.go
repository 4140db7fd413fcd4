package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatIndianCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "₹0"},
		{5, "₹5"},
		{999, "₹999"},
		{1000, "₹1,000"},
		{100000, "₹1,00,000"},
		{1500000, "₹15,00,000"},
		{12345678, "₹1,23,45,678"},
		{1234567.89, "₹12,34,568"},
		{-1500000, "-₹15,00,000"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatIndianCurrency(tc.in), "input %v", tc.in)
	}
}

func TestFormatCompactNumber(t *testing.T) {
	assert.Equal(t, "1.50 Cr", FormatCompactNumber(15000000))
	assert.Equal(t, "2.50 L", FormatCompactNumber(250000))
	assert.Equal(t, "5.00 K", FormatCompactNumber(5000))
	assert.Equal(t, "999", FormatCompactNumber(999))
	assert.Equal(t, "0", FormatCompactNumber(0))
}
