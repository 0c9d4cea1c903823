// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package kvstore

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/platewise/internal/logging"
)

// ErrNotFound is returned by Get for missing or expired keys.
var ErrNotFound = errors.New("kvstore: key not found")

// Store is a key-value store with optional per-key expiry.
// Implementations are safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	IncrBy(ctx context.Context, key string, delta int64, ttl time.Duration) (int64, error)
	Close() error
}

// Backend names a Store implementation.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendBadger Backend = "badger"
)

// Config selects and tunes a backend.
type Config struct {
	Backend Backend `koanf:"backend"`
	// Path is the badger data directory. Empty means in-memory badger.
	Path    string        `koanf:"path"`
	Breaker BreakerConfig `koanf:"breaker"`
	GC      time.Duration `koanf:"gc_interval"`
}

// Open builds the configured store, wrapped in a Breaker when enabled.
func Open(cfg Config) (Store, error) {
	var (
		store Store
		err   error
	)

	switch cfg.Backend {
	case BackendMemory, "":
		store = NewMemory()
	case BackendBadger:
		store, err = OpenBadger(BadgerOptions{Path: cfg.Path, InMemory: cfg.Path == ""})
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("kvstore: unknown backend %q", cfg.Backend)
	}

	logging.Info().Str("backend", string(cfg.Backend)).Str("path", cfg.Path).Bool("breaker", cfg.Breaker.Enabled).Msg("Key-value store opened")

	if cfg.Breaker.Enabled {
		return NewBreaker(store, cfg.Breaker), nil
	}
	return store, nil
}

// Counter reads the counter under key. A missing key reads as zero.
func Counter(ctx context.Context, s Store, key string) (int64, error) {
	raw, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return decodeCounter(key, raw)
}

func decodeCounter(key string, raw []byte) (int64, error) {
	if len(raw) != 8 {
		return 0, fmt.Errorf("kvstore: %s is not a counter", key)
	}
	return int64(binary.BigEndian.Uint64(raw)), nil //nolint:gosec // round-trips the stored int64
}

func encodeCounter(n int64) []byte {
	return binary.BigEndian.AppendUint64(nil, uint64(n)) //nolint:gosec // round-trips the stored int64
}
