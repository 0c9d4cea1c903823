// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/platewise/internal/catalog"
	"github.com/tomtom215/platewise/internal/customize"
	"github.com/tomtom215/platewise/internal/logging"
	"github.com/tomtom215/platewise/internal/metrics"
)

// Config bounds cart contents.
type Config struct {
	TTL         time.Duration `koanf:"ttl"`
	MaxQuantity int           `koanf:"max_quantity"`
	MaxLines    int           `koanf:"max_lines"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		TTL:         72 * time.Hour,
		MaxQuantity: 50,
		MaxLines:    100,
	}
}

// AddRequest is one add-to-cart call with canonical selections.
type AddRequest struct {
	ItemID     string
	Quantity   int
	Selections []catalog.Selection
	Note       string
}

// AddResult is the outcome of Add. When Violations is non-empty nothing was
// added and Cart is the unchanged cart.
type AddResult struct {
	Cart       *Cart
	Lines      []LineItem
	Violations []customize.Violation
}

// Service applies cart operations with single-writer-per-session discipline.
type Service struct {
	items    catalog.ItemLookup
	store    Store
	composer *Composer
	locks    *SessionLocks
	cfg      Config
}

// NewService wires the service.
func NewService(items catalog.ItemLookup, store Store, composer *Composer, cfg Config) *Service {
	return &Service{
		items:    items,
		store:    store,
		composer: composer,
		locks:    NewSessionLocks(),
		cfg:      cfg,
	}
}

// Add validates, prices and appends an item to the session's cart.
func (s *Service) Add(ctx context.Context, sessionID string, req AddRequest) (res AddResult, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordCartOperation("add", time.Since(start), len(res.Lines), err)
	}()

	if s.cfg.MaxQuantity > 0 && req.Quantity > s.cfg.MaxQuantity {
		return AddResult{}, fmt.Errorf("%w: %d > %d", ErrQuantityLimit, req.Quantity, s.cfg.MaxQuantity)
	}

	item, err := s.items.Item(req.ItemID)
	if err != nil {
		return AddResult{}, err
	}

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return AddResult{}, err
	}
	if s.cfg.MaxLines > 0 && len(c.Lines) >= s.cfg.MaxLines {
		return AddResult{}, fmt.Errorf("%w: limit %d", ErrCartFull, s.cfg.MaxLines)
	}

	lines, err := s.composer.Add(c, item, req.Quantity, req.Selections, req.Note)
	if err != nil {
		var invalid *InvalidSelectionError
		if errors.As(err, &invalid) {
			logging.Ctx(ctx).Debug().Str("item_id", item.ID).Int("violations", len(invalid.Violations)).Msg("Cart add rejected")
			return AddResult{Cart: c, Violations: invalid.Violations}, nil
		}
		return AddResult{}, err
	}
	if _, err := c.CheckedTotal(); err != nil {
		return AddResult{}, fmt.Errorf("cart %s: %w", sessionID, err)
	}

	if err := s.store.Save(ctx, c); err != nil {
		return AddResult{}, err
	}

	logging.Ctx(ctx).Info().
		Str("item_id", item.ID).
		Int("quantity", req.Quantity).
		Str("line_id", lines[0].ID).
		Str("cart_total", c.Total().String()).
		Msg("Line added to cart")

	return AddResult{Cart: c, Lines: lines}, nil
}

// Get returns the session's cart; an unknown session has an empty cart.
func (s *Service) Get(ctx context.Context, sessionID string) (*Cart, error) {
	return s.store.Load(ctx, sessionID)
}

// RemoveLine deletes one line.
func (s *Service) RemoveLine(ctx context.Context, sessionID, lineID string) (c *Cart, err error) {
	start := time.Now()
	defer func() { metrics.RecordCartOperation("remove_line", time.Since(start), 0, err) }()

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	c, err = s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := c.Remove(lineID); err != nil {
		return nil, err
	}
	c.UpdatedAt = time.Now().UTC()

	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}
	logging.Ctx(ctx).Info().Str("line_id", lineID).Msg("Line removed from cart")
	return c, nil
}

// Clear empties the session's cart.
func (s *Service) Clear(ctx context.Context, sessionID string) (err error) {
	start := time.Now()
	defer func() { metrics.RecordCartOperation("clear", time.Since(start), 0, err) }()

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	return s.store.Delete(ctx, sessionID)
}
