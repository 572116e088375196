// Package types provides common type aliases and utilities.
package types

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors; values are only
// rounded when formatted for display.
type Money = decimal.Decimal

// DisplayPlaces is the number of fractional digits shown to the user.
const DisplayPlaces = 2

// CurrencySymbol prefixes formatted amounts.
const CurrencySymbol = "R$"

// NewMoney creates a Money value from a float.
// WARNING: Use ParseMoney for precise values.
func NewMoney(f float64) Money {
	return decimal.NewFromFloat(f)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants and tests.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}

// ParseMoney parses user input such as "12,50" or "12.5".
// A comma is accepted as the decimal separator.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	d, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return d, nil
}

// Amount is a Money field of a request body. It accepts a JSON number or a
// string, with a comma or a dot as the decimal separator ("2,50").
// It marshals like Money.
type Amount struct {
	Money
}

// UnmarshalJSON implements json.Unmarshaler through ParseMoney.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		a.Money = decimal.Zero
		return nil
	}
	m, err := ParseMoney(strings.Trim(s, `"`))
	if err != nil {
		return err
	}
	a.Money = m
	return nil
}

// Times multiplies a unit price by an integer quantity.
func Times(price Money, quantity int) Money {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

// Fixed formats m with DisplayPlaces fractional digits ("12.50").
func Fixed(m Money) string {
	return m.StringFixed(DisplayPlaces)
}

// Format formats m for display with the currency symbol ("R$ 12.50").
func Format(m Money) string {
	return CurrencySymbol + " " + Fixed(m)
}

// Float returns m as float64 for consumers that need plain numbers (charts).
func Float(m Money) float64 {
	return m.InexactFloat64()
}
