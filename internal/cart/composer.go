// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package cart

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/platewise/internal/catalog"
	"github.com/tomtom215/platewise/internal/customize"
	"github.com/tomtom215/platewise/internal/pricing"
)

// InvalidSelectionError carries the violations that stopped a compose.
type InvalidSelectionError struct {
	Violations []customize.Violation
}

func (e *InvalidSelectionError) Error() string {
	if len(e.Violations) == 1 {
		return "cart: invalid selection: " + e.Violations[0].Message
	}
	return fmt.Sprintf("cart: invalid selection: %d violations", len(e.Violations))
}

// Composer builds line items. It holds no cart state and is safe for
// concurrent use.
type Composer struct {
	validator *customize.Validator
	newID     func() string
	now       func() time.Time
}

// ComposerOption customizes a Composer.
type ComposerOption func(*Composer)

// WithIDGenerator replaces the UUID line id generator.
func WithIDGenerator(fn func() string) ComposerOption {
	return func(c *Composer) { c.newID = fn }
}

// WithClock replaces time.Now.
func WithClock(fn func() time.Time) ComposerOption {
	return func(c *Composer) { c.now = fn }
}

// NewComposer creates a Composer that validates with v.
func NewComposer(v *customize.Validator, opts ...ComposerOption) *Composer {
	c := &Composer{validator: v, newID: uuid.NewString, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose validates and prices selections for quantity units of item and
// returns the resulting line items: a single line holding the full quantity.
//
// Violations are returned as *InvalidSelectionError; bad prices or quantities
// as *pricing.ComputationError.
func (c *Composer) Compose(item *catalog.Item, quantity int, selections []catalog.Selection, note string) ([]LineItem, error) {
	if violations := c.validator.Validate(item, selections); len(violations) > 0 {
		return nil, &InvalidSelectionError{Violations: violations}
	}

	quote, err := pricing.ItemQuote(item, selections, quantity)
	if err != nil {
		return nil, err
	}

	return []LineItem{{
		ID:         c.newID(),
		ItemID:     item.ID,
		Name:       item.Name,
		Quantity:   quote.Quantity,
		UnitPrice:  quote.Unit,
		Selections: cloneSelections(selections),
		Note:       strings.TrimSpace(note),
		AddedAt:    c.now().UTC(),
	}}, nil
}

// Add composes lines and appends them to cart. Line ids that collide with
// an existing line are redrawn. The cart is unchanged on error.
func (c *Composer) Add(cart *Cart, item *catalog.Item, quantity int, selections []catalog.Selection, note string) ([]LineItem, error) {
	lines, err := c.Compose(item, quantity, selections, note)
	if err != nil {
		return nil, err
	}

	for i := range lines {
		for cart.HasLine(lines[i].ID) || duplicateID(lines[:i], lines[i].ID) {
			lines[i].ID = c.newID()
		}
	}

	cart.Lines = append(cart.Lines, lines...)
	cart.UpdatedAt = c.now().UTC()
	return lines, nil
}

func duplicateID(lines []LineItem, id string) bool {
	return slices.ContainsFunc(lines, func(l LineItem) bool { return l.ID == id })
}

func cloneSelections(in []catalog.Selection) []catalog.Selection {
	if len(in) == 0 {
		return nil
	}
	out := make([]catalog.Selection, len(in))
	for i, s := range in {
		out[i] = catalog.Selection{CustomizationID: s.CustomizationID, OptionIDs: slices.Clone(s.OptionIDs), Text: s.Text}
	}
	return out
}
