// Package money provides an integer-cents amount type and decimal parsing.
//
// Amounts are stored as cents to keep ledger arithmetic exact; floats are only
// produced for display.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Money is a monetary amount in cents.
type Money int64

// ErrInvalidAmount is returned for amounts that cannot be parsed or are not
// strictly positive.
var ErrInvalidAmount = errors.New("invalid amount")

// FromCents constructs a Money from a raw cent count.
func FromCents(cents int64) Money {
	return Money(cents)
}

// Cents returns the raw cent count.
func (m Money) Cents() int64 {
	return int64(m)
}

// Float64 returns the amount in major units for display purposes. Use cents
// for any arithmetic.
func (m Money) Float64() float64 {
	return float64(m) / 100.0
}

// String formats the amount as a plain decimal, e.g. "12.34" or "-0.05".
func (m Money) String() string {
	c := int64(m)
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

// ParseDecimal converts a decimal string to Money with half-up rounding on the
// third decimal place. Both dot and comma separators are accepted. Only
// strictly positive amounts are valid.
//
//	ParseDecimal("12.34")  -> 1234 cents
//	ParseDecimal("12,345") -> 1235 cents (rounds up)
func ParseDecimal(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart + fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	const maxSafe = (1<<63 - 1) / 100
	if iv > maxSafe {
		return 0, ErrInvalidAmount
	}

	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}

	cents := iv*100 + fracCents
	if cents <= 0 {
		return 0, ErrInvalidAmount
	}
	return Money(cents), nil
}
