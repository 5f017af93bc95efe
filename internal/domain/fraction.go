package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

var quarterNames = map[int]string{1: "1/4", 2: "1/2", 3: "3/4"}

// QuarterFraction decomposes an amount into a whole part and a quarter
// fraction using arithmetic (no string inspection). The fractional part is
// quantized to the nearest quarter; ok is false when it quantizes to a whole
// number and there is no fraction to show. This is the display-side helper
// for small spoon and piece amounts, where snapping to a quarter is wanted.
func QuarterFraction(amount float64) (string, bool) {
	whole := int(math.Floor(amount))
	quarters := int(math.Round((amount - float64(whole)) * 4))

	name, ok := quarterNames[quarters]
	if !ok {
		return "", false
	}
	if whole == 0 {
		return name, true
	}
	return fmt.Sprintf("%d %s", whole, name), true
}

// FormatFraction renders an amount as a kitchen fraction ("1/4", "1 1/2")
// when it sits exactly on a quarter, falling back to plain one-decimal
// formatting otherwise. Unlike QuarterFraction it never quantizes: 3.2 stays
// "3.2", not "3 1/4".
func FormatFraction(amount float64) string {
	whole := math.Floor(amount)
	quarters := math.Round((amount - whole) * 4)
	if math.Abs(amount-(whole+quarters/4)) > 1e-9 {
		return FormatAmount(amount)
	}
	if s, ok := QuarterFraction(amount); ok {
		return s
	}
	return FormatAmount(amount)
}

// FormatAmount prints an amount with at most one decimal, trimming the
// trailing ".0" from whole values.
func FormatAmount(amount float64) string {
	if amount == math.Trunc(amount) {
		return strconv.FormatFloat(amount, 'f', 0, 64)
	}
	s := strconv.FormatFloat(amount, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}
