package utils

import (
	"fmt"
	"math"
	"strconv"
)

// FormatIndianCurrency formats an amount as Indian Rupees with lakh/crore
// digit grouping: the last three digits form one group, everything above
// groups in pairs.
// Example: 1500000 -> "₹15,00,000"
func FormatIndianCurrency(amount float64) string {
	rounded := int64(math.Round(amount))

	sign := ""
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}

	x := strconv.FormatInt(rounded, 10)
	if len(x) <= 3 {
		return sign + "₹" + x
	}

	lastThree := x[len(x)-3:]
	rest := x[:len(x)-3]

	grouped := ""
	for len(rest) > 2 {
		grouped = "," + rest[len(rest)-2:] + grouped
		rest = rest[:len(rest)-2]
	}
	grouped = rest + grouped

	return sign + "₹" + grouped + "," + lastThree
}

// FormatCompactNumber renders a number in compact Indian magnitude form:
// crores above 1,00,00,000, lakhs above 1,00,000, thousands above 1,000.
// Example: 15000000 -> "1.50 Cr"
func FormatCompactNumber(number float64) string {
	switch {
	case number >= 10000000:
		return fmt.Sprintf("%.2f Cr", number/10000000)
	case number >= 100000:
		return fmt.Sprintf("%.2f L", number/100000)
	case number >= 1000:
		return fmt.Sprintf("%.2f K", number/1000)
	}
	return strconv.FormatFloat(number, 'f', -1, 64)
}
