// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package kvstore

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/platewise/internal/logging"
	"github.com/tomtom215/platewise/internal/metrics"
)

// BreakerConfig tunes the store circuit breaker.
type BreakerConfig struct {
	Enabled bool `koanf:"enabled"`
	// MaxRequests is the number of probes allowed while half-open.
	MaxRequests uint32 `koanf:"max_requests"`
	// Interval resets the closed-state counts; zero never resets.
	Interval time.Duration `koanf:"interval"`
	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration `koanf:"timeout"`
	// MinRequests and FailureRatio decide when to trip.
	MinRequests  uint32  `koanf:"min_requests"`
	FailureRatio float64 `koanf:"failure_ratio"`
}

// DefaultBreakerConfig returns the production defaults.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Enabled:      true,
		MaxRequests:  3,
		Interval:     time.Minute,
		Timeout:      30 * time.Second,
		MinRequests:  10,
		FailureRatio: 0.6,
	}
}

// breakerName labels the breaker in logs and metrics.
const breakerName = "kvstore"

// Breaker guards a Store with a circuit breaker. ErrNotFound counts as a
// success; only backend failures trip the breaker. While open, calls fail
// with gobreaker.ErrOpenState without reaching the backend.
type Breaker struct {
	next Store
	cb   *gobreaker.CircuitBreaker[any]
}

// NewBreaker wraps next.
func NewBreaker(next Store, cfg BreakerConfig) *Breaker {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			if ratio >= cfg.FailureRatio {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", ratio*100).Msg("[CIRCUIT BREAKER] Opening store circuit")
				return true
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("[CIRCUIT BREAKER] State transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, context.Canceled)
		},
	})

	return &Breaker{next: next, cb: cb}
}

// State returns the current breaker state.
func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}

func (b *Breaker) execute(fn func() (any, error)) (any, error) {
	result, err := b.cb.Execute(fn)
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "rejected").Inc()
	case err != nil && !errors.Is(err, ErrNotFound):
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "failure").Inc()
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "success").Inc()
	}
	return result, err
}

// Get implements Store.
func (b *Breaker) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := b.execute(func() (any, error) {
		return b.next.Get(ctx, key)
	})
	if err != nil {
		return nil, err
	}
	value, _ := v.([]byte)
	return value, nil
}

// Set implements Store.
func (b *Breaker) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	_, err := b.execute(func() (any, error) {
		return nil, b.next.Set(ctx, key, value, ttl)
	})
	return err
}

// Delete implements Store.
func (b *Breaker) Delete(ctx context.Context, key string) error {
	_, err := b.execute(func() (any, error) {
		return nil, b.next.Delete(ctx, key)
	})
	return err
}

// IncrBy implements Store.
func (b *Breaker) IncrBy(ctx context.Context, key string, delta int64, ttl time.Duration) (int64, error) {
	v, err := b.execute(func() (any, error) {
		return b.next.IncrBy(ctx, key, delta, ttl)
	})
	if err != nil {
		return 0, err
	}
	n, _ := v.(int64)
	return n, nil
}

// Close closes the wrapped store.
func (b *Breaker) Close() error {
	return b.next.Close()
}

// Unwrap returns the wrapped store.
func (b *Breaker) Unwrap() Store {
	return b.next
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
