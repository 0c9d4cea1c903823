// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package kvstore

import (
	"context"
	"sync"
	"time"

	"github.com/tomtom215/platewise/internal/metrics"
)

type memEntry struct {
	value     []byte
	expiresAt time.Time
}

func (e memEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// Memory is an in-process Store. Expired entries are dropped lazily on
// access and by Sweep.
type Memory struct {
	mu      sync.Mutex
	entries map[string]memEntry
	now     func() time.Time
}

// NewMemory creates an empty store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memEntry), now: time.Now}
}

// NewMemoryWithClock creates a store that reads time from now.
func NewMemoryWithClock(now func() time.Time) *Memory {
	return &Memory{entries: make(map[string]memEntry), now: now}
}

// Get returns a copy of the value stored under key.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	start := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.live(key)
	metrics.RecordStoreOperation(string(BackendMemory), "get", time.Since(start), nil)
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), e.value...), nil
}

// Set stores a copy of value.
func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	start := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = memEntry{value: append([]byte(nil), value...), expiresAt: m.deadline(ttl)}
	metrics.RecordStoreOperation(string(BackendMemory), "set", time.Since(start), nil)
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}

// IncrBy adds delta to the counter under key.
func (m *Memory) IncrBy(_ context.Context, key string, delta int64, ttl time.Duration) (int64, error) {
	start := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	e, ok := m.live(key)
	if ok {
		var err error
		if n, err = decodeCounter(key, e.value); err != nil {
			metrics.RecordStoreOperation(string(BackendMemory), "incr", time.Since(start), err)
			return 0, err
		}
	} else {
		e = memEntry{expiresAt: m.deadline(ttl)}
	}

	n += delta
	e.value = encodeCounter(n)
	m.entries[key] = e
	metrics.RecordStoreOperation(string(BackendMemory), "incr", time.Since(start), nil)
	return n, nil
}

// Sweep drops every expired entry and returns how many were removed.
func (m *Memory) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for k, e := range m.entries {
		if e.expired(now) {
			delete(m.entries, k)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored entries, including expired ones not yet swept.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }

// live returns the entry under key, deleting it if it has expired. Caller holds mu.
func (m *Memory) live(key string) (memEntry, bool) {
	e, ok := m.entries[key]
	if !ok {
		return memEntry{}, false
	}
	if e.expired(m.now()) {
		delete(m.entries, key)
		return memEntry{}, false
	}
	return e, true
}

func (m *Memory) deadline(ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return m.now().Add(ttl)
}
