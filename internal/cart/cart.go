// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package cart

import (
	"errors"
	"time"

	"github.com/tomtom215/platewise/internal/catalog"
	"github.com/tomtom215/platewise/internal/money"
	"github.com/tomtom215/platewise/internal/pricing"
)

var (
	// ErrLineNotFound is returned when removing a line the cart does not have.
	ErrLineNotFound = errors.New("cart: line not found")

	// ErrCartFull is returned when an add would exceed the line limit.
	ErrCartFull = errors.New("cart: too many lines")

	// ErrQuantityLimit is returned when a quantity exceeds the per-line limit.
	ErrQuantityLimit = errors.New("cart: quantity above limit")
)

// LineItem is one priced entry in a cart.
type LineItem struct {
	ID         string              `json:"id"`
	ItemID     string              `json:"item_id"`
	Name       string              `json:"name"`
	Quantity   int                 `json:"quantity"`
	UnitPrice  money.Cents         `json:"unit_price"`
	Selections []catalog.Selection `json:"selections,omitempty"`
	Note       string              `json:"note,omitempty"`
	AddedAt    time.Time           `json:"added_at"`
}

// Total is UnitPrice × Quantity. Composer guarantees it does not overflow.
func (l LineItem) Total() money.Cents {
	return l.UnitPrice * money.Cents(l.Quantity)
}

// Cart is a session's cart aggregate.
type Cart struct {
	SessionID string     `json:"session_id"`
	Lines     []LineItem `json:"lines"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// New returns an empty cart for sessionID.
func New(sessionID string) *Cart {
	return &Cart{SessionID: sessionID, Lines: []LineItem{}}
}

// Total is the sum of every line total. Service.Add rejects lines that would
// push it past the Cents range.
func (c *Cart) Total() money.Cents {
	var total money.Cents
	for _, l := range c.Lines {
		total += l.Total()
	}
	return total
}

// CheckedTotal is Total with overflow reported as a *pricing.ComputationError.
func (c *Cart) CheckedTotal() (money.Cents, error) {
	totals := make([]money.Cents, len(c.Lines))
	for i, l := range c.Lines {
		totals[i] = l.Total()
	}
	return pricing.Sum(totals...)
}

// ItemCount is the number of portions across all lines.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

// HasLine reports whether a line with id exists.
func (c *Cart) HasLine(id string) bool {
	for _, l := range c.Lines {
		if l.ID == id {
			return true
		}
	}
	return false
}

// Remove deletes the line with id.
func (c *Cart) Remove(id string) error {
	for i, l := range c.Lines {
		if l.ID == id {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}
