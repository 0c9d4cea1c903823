// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

// Package money holds the integer-cents amount type shared by the catalog,
// pricing and cart packages.
//
// All arithmetic happens on Cents. Decimal values only appear at the edges
// (catalog files, HTTP bodies) and are converted with half-up rounding to
// two places, where "half-up" rounds ties away from zero.
package money

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var (
	// ErrNonFinite is returned when a float input is NaN or infinite.
	ErrNonFinite = errors.New("money: non-finite amount")
	// ErrOutOfRange is returned when an amount does not fit in Cents.
	ErrOutOfRange = errors.New("money: amount out of range")
)

// Cents is a signed monetary amount in minor units.
type Cents int64

var (
	// hundred is the number of cents in one major unit.
	hundred  = decimal.NewFromInt(100)
	minCents = decimal.NewFromInt(math.MinInt64)
	maxCents = decimal.NewFromInt(math.MaxInt64)
)

// FromDecimal rounds d half-up to two places and returns it in cents.
// Amounts outside the int64 cent range fail with ErrOutOfRange.
func FromDecimal(d decimal.Decimal) (Cents, error) {
	c := d.Round(2).Mul(hundred)
	if c.GreaterThan(maxCents) || c.LessThan(minCents) {
		return 0, fmt.Errorf("%w: %s", ErrOutOfRange, d.String())
	}
	return Cents(c.IntPart()), nil
}

// FromFloat converts a float amount in major units to cents.
// NaN and ±Inf are rejected rather than coerced.
func FromFloat(f float64) (Cents, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v", ErrNonFinite, f)
	}
	return FromDecimal(decimal.NewFromFloat(f))
}

// Parse parses a decimal string such as "12.50" or "-0.75".
func Parse(s string) (Cents, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("money: parse %q: %w", s, err)
	}
	c, err := FromDecimal(d)
	if err != nil {
		return 0, fmt.Errorf("money: parse %q: %w", s, err)
	}
	return c, nil
}

// Units returns n whole major units as cents.
func Units(n int64) Cents {
	return Cents(n * 100)
}

// Decimal returns c as an exact decimal in major units.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// Float64 returns c in major units. Use only for scoring ratios, never for totals.
func (c Cents) Float64() float64 {
	return float64(c) / 100
}

// String formats c with exactly two decimals.
func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}

// MarshalJSON encodes c as a JSON number with two decimals.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (c *Cents) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("money: %w", err)
	}
	v, err := FromDecimal(d)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
