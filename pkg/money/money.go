package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MinorUnitsPerMajor is the number of minor units (kobo, cents) in one currency unit.
const MinorUnitsPerMajor = 100

// Amount is a monetary value in integer minor units. It never carries a currency;
// the service runs in a single settlement currency.
type Amount int64

// Zero is the zero amount.
const Zero Amount = 0

// FromMajor converts whole currency units to minor units.
func FromMajor(units int64) Amount {
	return Amount(units * MinorUnitsPerMajor)
}

// FromDecimal converts a decimal amount in currency units to minor units,
// rounding half away from zero to the nearest minor unit.
func FromDecimal(d decimal.Decimal) Amount {
	return Amount(d.Shift(2).Round(0).IntPart())
}

// ParseMajor parses a currency-unit string such as "1500.25".
func ParseMajor(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	if d.Exponent() < -2 {
		return 0, fmt.Errorf("parse amount %q: more than two decimal places", s)
	}
	return FromDecimal(d), nil
}

// Int64 returns the raw minor-unit value.
func (a Amount) Int64() int64 { return int64(a) }

// Decimal returns the amount in currency units.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -2)
}

// IsNegative reports whether a is below zero.
func (a Amount) IsNegative() bool { return a < 0 }

// IsPositive reports whether a is above zero.
func (a Amount) IsPositive() bool { return a > 0 }

// String renders the amount as a plain two-decimal number, e.g. "1500.00".
func (a Amount) String() string {
	return a.Decimal().StringFixed(2)
}

// Format renders the amount with a currency symbol and thousands separators,
// e.g. Format(150000025, "₦") == "₦1,500,000.25".
func Format(a Amount, symbol string) string {
	sign := ""
	if a < 0 {
		sign = "-"
		a = -a
	}
	fixed := a.Decimal().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + symbol + b.String() + "." + frac
}
