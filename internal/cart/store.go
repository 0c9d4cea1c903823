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

	"github.com/goccy/go-json"

	"github.com/tomtom215/platewise/internal/kvstore"
)

// keyPrefix namespaces carts in the shared store.
const keyPrefix = "cart:"

// Store persists carts.
type Store interface {
	// Load returns the session's cart, or an empty one if none is stored.
	Load(ctx context.Context, sessionID string) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// KVStore keeps carts as JSON in a kvstore.Store. Every Save restarts the
// TTL, so a cart expires ttl after its last change.
type KVStore struct {
	kv  kvstore.Store
	ttl time.Duration
}

// NewKVStore creates a cart store on kv.
func NewKVStore(kv kvstore.Store, ttl time.Duration) *KVStore {
	return &KVStore{kv: kv, ttl: ttl}
}

// Load implements Store.
func (s *KVStore) Load(ctx context.Context, sessionID string) (*Cart, error) {
	data, err := s.kv.Get(ctx, keyPrefix+sessionID)
	if errors.Is(err, kvstore.ErrNotFound) {
		return New(sessionID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart %s: %w", sessionID, err)
	}

	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode cart %s: %w", sessionID, err)
	}
	if c.Lines == nil {
		c.Lines = []LineItem{}
	}
	return &c, nil
}

// Save implements Store.
func (s *KVStore) Save(ctx context.Context, c *Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode cart %s: %w", c.SessionID, err)
	}
	if err := s.kv.Set(ctx, keyPrefix+c.SessionID, data, s.ttl); err != nil {
		return fmt.Errorf("save cart %s: %w", c.SessionID, err)
	}
	return nil
}

// Delete implements Store.
func (s *KVStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.kv.Delete(ctx, keyPrefix+sessionID); err != nil {
		return fmt.Errorf("delete cart %s: %w", sessionID, err)
	}
	return nil
}
