// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

/*
Package kvstore is the key-value store injected into the cart service and
the HTTP rate limiter, so that no per-session or per-client state lives in
process maps.

# Backends

  - Memory: a map with lazy expiry, for tests and single-instance setups.
  - Badger: BadgerDB v4 with native per-entry TTLs. Use an in-memory
    Badger for tests that should exercise the real engine.

Breaker wraps any Store with a sony/gobreaker circuit breaker so a failing
backend is shed quickly instead of stalling every request.

# Semantics

  - Get of a missing or expired key returns ErrNotFound.
  - A ttl of zero means the entry never expires.
  - IncrBy creates a missing counter with the given ttl and keeps the
    existing expiry of a live one. Counters are 8-byte big-endian values
    and must only be accessed through IncrBy.

# Usage

	store, err := kvstore.Open(kvstore.Config{Backend: "badger", Path: "/var/lib/platewise"})
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.IncrBy(ctx, "rl:203.0.113.7", 1, time.Minute)
*/
package kvstore
