// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

// Package ratelimit stores go-chi/httprate sliding-window counters in a
// kvstore.Store, so limits survive restarts on the badger backend and share
// the store's circuit breaker.
package ratelimit

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/httprate"

	"github.com/tomtom215/platewise/internal/kvstore"
)

// DefaultPrefix namespaces counter keys.
const DefaultPrefix = "ratelimit:"

// opTimeout bounds each store call; httprate does not pass a context.
const opTimeout = 2 * time.Second

// Counter implements httprate.LimitCounter on a kvstore.Store.
type Counter struct {
	kv     kvstore.Store
	prefix string

	mu     sync.RWMutex
	window time.Duration
}

var _ httprate.LimitCounter = (*Counter)(nil)

// NewCounter creates a counter. An empty prefix uses DefaultPrefix.
func NewCounter(kv kvstore.Store, prefix string) *Counter {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Counter{kv: kv, prefix: prefix, window: time.Minute}
}

// Config is called by httprate with the limiter's window.
func (c *Counter) Config(_ int, windowLength time.Duration) {
	c.mu.Lock()
	c.window = windowLength
	c.mu.Unlock()
}

// Increment adds one request to the window.
func (c *Counter) Increment(key string, currentWindow time.Time) error {
	return c.IncrementBy(key, currentWindow, 1)
}

// IncrementBy adds amount requests to the window. Counters live for two
// windows so the previous one is still readable.
func (c *Counter) IncrementBy(key string, currentWindow time.Time, amount int) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	_, err := c.kv.IncrBy(ctx, c.key(key, currentWindow), int64(amount), 2*c.windowLength())
	return err
}

// Get returns the current and previous window counts.
func (c *Counter) Get(key string, currentWindow, previousWindow time.Time) (int, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	curr, err := kvstore.Counter(ctx, c.kv, c.key(key, currentWindow))
	if err != nil {
		return 0, 0, err
	}
	prev, err := kvstore.Counter(ctx, c.kv, c.key(key, previousWindow))
	if err != nil {
		return 0, 0, err
	}
	return int(curr), int(prev), nil
}

func (c *Counter) key(key string, window time.Time) string {
	return c.prefix + key + ":" + strconv.FormatInt(window.Unix(), 10)
}

func (c *Counter) windowLength() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.window
}
