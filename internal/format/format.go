// Package format renders card values: whole-dollar USD, grouped counts and percentages.
package format

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Currency rounds half away from zero to whole dollars: 1234.5 -> "$1,235".
func Currency(v float64) string {
	d := whole(v)
	if d.Sign() < 0 {
		return "-$" + humanize.BigComma(d.Neg().BigInt())
	}
	return "$" + humanize.BigComma(d.BigInt())
}

// Count groups thousands of the rounded value: 1234567 -> "1,234,567".
func Count(v float64) string { return humanize.BigComma(whole(v).BigInt()) }

// Percent renders v with two decimals and a % suffix.
func Percent(v float64) string { return fmt.Sprintf("%.2f%%", v) }

// Ratio renders a nullable ratio such as ROAS, "N/A" when absent.
func Ratio(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2fx", *v)
}

var (
	maxInt = decimal.NewFromInt(math.MaxInt64)
	minInt = decimal.NewFromInt(math.MinInt64)
)

// Round is half-away-from-zero rounding to an integer, clamped to the int64 range.
func Round(v float64) int64 {
	d := whole(v)
	switch {
	case d.GreaterThan(maxInt):
		return math.MaxInt64
	case d.LessThan(minInt):
		return math.MinInt64
	}
	return d.IntPart()
}

func whole(v float64) decimal.Decimal {
	if !finite(v) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v).Round(0)
}

// Round2 rounds to cents for table cells.
func Round2(v float64) float64 {
	if !finite(v) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
