// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package kvstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/tomtom215/platewise/internal/logging"
	"github.com/tomtom215/platewise/internal/metrics"
)

// incrRetries bounds IncrBy retries on transaction conflicts.
const incrRetries = 64

// BadgerOptions configures OpenBadger.
type BadgerOptions struct {
	Path     string
	InMemory bool
}

// Badger is a Store on BadgerDB. Expiry uses badger's native entry TTL,
// which has one-second resolution.
type Badger struct {
	db     *badger.DB
	ownsDB bool
}

// OpenBadger opens a database and returns a store that closes it on Close.
func OpenBadger(opts BadgerOptions) (*Badger, error) {
	bo := badger.DefaultOptions(opts.Path)
	if opts.InMemory {
		bo = badger.DefaultOptions("").WithInMemory(true)
	}
	bo = bo.WithLogger(badgerLogger{logger: logging.WithComponent("badger")})

	db, err := badger.Open(bo)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}
	return &Badger{db: db, ownsDB: true}, nil
}

// NewBadger wraps an already open database. Close leaves db open.
func NewBadger(db *badger.DB) *Badger {
	return &Badger{db: db}
}

// Get retrieves the value stored under key.
func (s *Badger) Get(_ context.Context, key string) ([]byte, error) {
	start := time.Now()
	var value []byte

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get %s: %w", key, err)
		}
		value, err = item.ValueCopy(nil)
		return err
	})

	metrics.RecordStoreOperation(string(BackendBadger), "get", time.Since(start), ignoreNotFound(err))
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set stores value under key.
func (s *Badger) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	start := time.Now()

	err := s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(key), value)
		if ttl > 0 {
			entry = entry.WithTTL(ttl)
		}
		if err := txn.SetEntry(entry); err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
		return nil
	})

	metrics.RecordStoreOperation(string(BackendBadger), "set", time.Since(start), err)
	return err
}

// Delete removes key.
func (s *Badger) Delete(_ context.Context, key string) error {
	start := time.Now()

	err := s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(key)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete %s: %w", key, err)
		}
		return nil
	})

	metrics.RecordStoreOperation(string(BackendBadger), "delete", time.Since(start), err)
	return err
}

// IncrBy adds delta to the counter under key in a read-modify-write
// transaction, retrying on conflicts.
func (s *Badger) IncrBy(_ context.Context, key string, delta int64, ttl time.Duration) (int64, error) {
	start := time.Now()
	var (
		n   int64
		err error
	)

	for attempt := 0; attempt < incrRetries; attempt++ {
		err = s.db.Update(func(txn *badger.Txn) error {
			var expiresAt uint64
			item, gerr := txn.Get([]byte(key))
			switch {
			case errors.Is(gerr, badger.ErrKeyNotFound):
				n = 0
			case gerr != nil:
				return fmt.Errorf("get %s: %w", key, gerr)
			default:
				raw, verr := item.ValueCopy(nil)
				if verr != nil {
					return verr
				}
				if n, verr = decodeCounter(key, raw); verr != nil {
					return verr
				}
				expiresAt = item.ExpiresAt()
			}

			n += delta
			entry := badger.NewEntry([]byte(key), encodeCounter(n))
			switch {
			case expiresAt > 0:
				entry.ExpiresAt = expiresAt
			case item == nil && ttl > 0:
				entry = entry.WithTTL(ttl)
			}
			return txn.SetEntry(entry)
		})
		if !errors.Is(err, badger.ErrConflict) {
			break
		}
	}

	metrics.RecordStoreOperation(string(BackendBadger), "incr", time.Since(start), err)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// RunGC runs value log garbage collection until a pass rewrites nothing.
// It reports whether any file was rewritten.
func (s *Badger) RunGC(discardRatio float64) (bool, error) {
	rewritten := false
	for {
		err := s.db.RunValueLogGC(discardRatio)
		switch {
		case err == nil:
			rewritten = true
			continue
		case errors.Is(err, badger.ErrNoRewrite), errors.Is(err, badger.ErrGCInMemoryMode):
			return rewritten, nil
		default:
			return rewritten, fmt.Errorf("value log gc: %w", err)
		}
	}
}

// Close closes the database if the store opened it.
func (s *Badger) Close() error {
	if !s.ownsDB {
		return nil
	}
	return s.db.Close()
}

func ignoreNotFound(err error) error {
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}

// badgerLogger routes badger's internal logging through zerolog. Badger's
// info output is chatty, so it is logged at debug.
type badgerLogger struct {
	logger zerolog.Logger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error().Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn().Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug().Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Trace().Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}
