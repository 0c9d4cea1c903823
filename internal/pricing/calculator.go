// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package pricing

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/tomtom215/platewise/internal/catalog"
	"github.com/tomtom215/platewise/internal/money"
)

// Quote is a priced line.
type Quote struct {
	Unit     money.Cents `json:"unit_price"`
	Quantity int         `json:"quantity"`
	Total    money.Cents `json:"total"`
}

// UnitPrice returns base plus every modifier.
func UnitPrice(base money.Cents, modifiers []money.Cents) (money.Cents, error) {
	if base < 0 {
		return 0, &ComputationError{Op: "unit_price", Field: "base_price", Value: base.String(), Reason: "negative base price"}
	}

	unit := base
	for i, m := range modifiers {
		sum, ok := addCents(unit, m)
		if !ok {
			return 0, &ComputationError{Op: "unit_price", Field: fmt.Sprintf("modifiers[%d]", i), Value: m.String(), Reason: "overflow"}
		}
		unit = sum
	}

	if unit < 0 {
		return 0, &ComputationError{Op: "unit_price", Field: "unit_price", Value: unit.String(), Reason: "modifiers make the unit price negative"}
	}
	return unit, nil
}

// LineTotal returns unit × quantity.
func LineTotal(unit money.Cents, quantity int) (money.Cents, error) {
	if quantity <= 0 {
		return 0, &ComputationError{Op: "line_total", Field: "quantity", Value: strconv.Itoa(quantity), Reason: "quantity must be positive"}
	}
	if unit < 0 {
		return 0, &ComputationError{Op: "line_total", Field: "unit_price", Value: unit.String(), Reason: "negative unit price"}
	}
	total, ok := mulCents(unit, int64(quantity))
	if !ok {
		return 0, &ComputationError{Op: "line_total", Field: "quantity", Value: strconv.Itoa(quantity), Reason: "overflow"}
	}
	return total, nil
}

// Sum adds amounts and fails instead of wrapping.
func Sum(amounts ...money.Cents) (money.Cents, error) {
	var total money.Cents
	for i, a := range amounts {
		var ok bool
		if total, ok = addCents(total, a); !ok {
			return 0, &ComputationError{Op: "sum", Field: fmt.Sprintf("amounts[%d]", i), Value: a.String(), Reason: "overflow"}
		}
	}
	return total, nil
}

// Price computes a full quote from cents.
func Price(base money.Cents, modifiers []money.Cents, quantity int) (Quote, error) {
	unit, err := UnitPrice(base, modifiers)
	if err != nil {
		return Quote{}, err
	}
	total, err := LineTotal(unit, quantity)
	if err != nil {
		return Quote{}, err
	}
	return Quote{Unit: unit, Quantity: quantity, Total: total}, nil
}

// PriceDecimal sums exact decimal inputs and rounds the unit price once,
// half away from zero, to two places.
func PriceDecimal(base decimal.Decimal, modifiers []decimal.Decimal, quantity int) (Quote, error) {
	if base.IsNegative() {
		return Quote{}, &ComputationError{Op: "unit_price", Field: "base_price", Value: base.String(), Reason: "negative base price"}
	}

	sum := base
	for _, m := range modifiers {
		sum = sum.Add(m)
	}

	unit, err := money.FromDecimal(sum)
	if err != nil {
		return Quote{}, &ComputationError{Op: "unit_price", Field: "unit_price", Value: sum.String(), Reason: "overflow"}
	}
	if unit < 0 {
		return Quote{}, &ComputationError{Op: "unit_price", Field: "unit_price", Value: unit.String(), Reason: "modifiers make the unit price negative"}
	}

	total, err := LineTotal(unit, quantity)
	if err != nil {
		return Quote{}, err
	}
	return Quote{Unit: unit, Quantity: quantity, Total: total}, nil
}

// PriceFloat is PriceDecimal for float inputs. NaN and ±Inf fail.
func PriceFloat(base float64, modifiers []float64, quantity int) (Quote, error) {
	if !finite(base) {
		return Quote{}, &ComputationError{Op: "unit_price", Field: "base_price", Value: strconv.FormatFloat(base, 'g', -1, 64), Reason: "non-finite amount"}
	}
	mods := make([]decimal.Decimal, len(modifiers))
	for i, m := range modifiers {
		if !finite(m) {
			return Quote{}, &ComputationError{
				Op:     "unit_price",
				Field:  fmt.Sprintf("modifiers[%d]", i),
				Value:  strconv.FormatFloat(m, 'g', -1, 64),
				Reason: "non-finite amount",
			}
		}
		mods[i] = decimal.NewFromFloat(m)
	}
	return PriceDecimal(decimal.NewFromFloat(base), mods, quantity)
}

// Modifiers collects the price modifiers for selections on item, in
// selection order. An option id the item does not define is a
// *catalog.ConfigurationError; availability is the validator's concern.
func Modifiers(item *catalog.Item, selections []catalog.Selection) ([]money.Cents, error) {
	var mods []money.Cents
	for _, sel := range selections {
		def, ok := item.Customization(sel.CustomizationID)
		if !ok {
			return nil, &catalog.ConfigurationError{ItemID: item.ID, CustomizationID: sel.CustomizationID, Reason: "unknown customization"}
		}
		for _, optID := range sel.OptionIDs {
			opt, ok := def.Option(optID)
			if !ok {
				return nil, &catalog.ConfigurationError{
					ItemID:          item.ID,
					CustomizationID: def.ID,
					Reference:       catalog.ByID(optID).String(),
					Reason:          "unknown option",
				}
			}
			mods = append(mods, opt.PriceModifier)
		}
	}
	return mods, nil
}

// ItemQuote prices quantity units of item with selections applied.
func ItemQuote(item *catalog.Item, selections []catalog.Selection, quantity int) (Quote, error) {
	mods, err := Modifiers(item, selections)
	if err != nil {
		return Quote{}, err
	}
	q, err := Price(item.BasePrice, mods, quantity)
	if err != nil {
		return Quote{}, fmt.Errorf("item %s: %w", item.ID, err)
	}
	return q, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func addCents(a, b money.Cents) (money.Cents, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

func mulCents(a money.Cents, n int64) (money.Cents, bool) {
	if a == 0 || n == 0 {
		return 0, true
	}
	p := int64(a) * n
	if p/n != int64(a) {
		return 0, false
	}
	return money.Cents(p), true
}
