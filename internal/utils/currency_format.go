package utils

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	rialsPerToman = decimal.NewFromInt(10)
	maxRial       = decimal.NewFromInt(math.MaxInt64)
	minRial       = decimal.NewFromInt(math.MinInt64)
)

// RialToToman converts a rial amount to toman, keeping any fractional part.
// Example: 1500005 returns "150000.5"
func RialToToman(rial int64) string {
	return decimal.NewFromInt(rial).Div(rialsPerToman).String()
}

// FormatAmount groups the integer part of an amount in thousands.
// Example: "1500000" returns "1,500,000", "-12345.5" returns "-12,345.5"
func FormatAmount(amount string) string {
	d, err := decimal.NewFromString(strings.ReplaceAll(amount, ",", ""))
	if err != nil {
		return amount
	}
	s := d.String()
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := sign + b.String()
	if hasFrac {
		out += "." + frac
	}
	return out
}

// ParseAmount reads a user-entered amount such as "1,500,000" into rials.
// Fractional and out-of-range amounts are rejected.
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("amount %q is not a whole number of rials", s)
	}
	if d.GreaterThan(maxRial) || d.LessThan(minRial) {
		return 0, fmt.Errorf("amount %q is out of range", s)
	}
	return d.IntPart(), nil
}
