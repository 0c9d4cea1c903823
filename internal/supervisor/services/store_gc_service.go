// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/platewise/internal/kvstore"
	"github.com/tomtom215/platewise/internal/logging"
	"github.com/tomtom215/platewise/internal/metrics"
)

// DefaultDiscardRatio is the badger value log discard ratio used per GC pass.
const DefaultDiscardRatio = 0.5

// valueLogCollector is implemented by disk-backed stores.
type valueLogCollector interface {
	RunGC(discardRatio float64) (bool, error)
}

// expirySweeper is implemented by stores that expire keys lazily.
type expirySweeper interface {
	Sweep() int
}

// StoreGCService periodically reclaims key-value store space: badger gets a
// value log GC pass, the memory store drops expired entries. Abandoned carts
// and stale rate limit windows are reclaimed this way.
type StoreGCService struct {
	store        kvstore.Store
	interval     time.Duration
	discardRatio float64
	logger       zerolog.Logger
	name         string
}

// NewStoreGCService creates a GC service for store. A Breaker is unwrapped
// so maintenance reaches the backend even while the breaker is open.
func NewStoreGCService(store kvstore.Store, interval time.Duration) *StoreGCService {
	if b, ok := store.(*kvstore.Breaker); ok {
		store = b.Unwrap()
	}
	return &StoreGCService{
		store:        store,
		interval:     interval,
		discardRatio: DefaultDiscardRatio,
		logger:       logging.WithComponent("store-gc"),
		name:         "store-gc",
	}
}

// Serve implements suture.Service. A non-positive interval disables
// collection but keeps the service idle until shutdown.
func (s *StoreGCService) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.RunOnce()
		}
	}
}

// RunOnce performs a single collection pass and returns the recorded result:
// "rewritten", "swept", "noop", "error" or "" when the store needs no upkeep.
func (s *StoreGCService) RunOnce() string {
	var result string

	switch st := s.store.(type) {
	case valueLogCollector:
		rewritten, err := st.RunGC(s.discardRatio)
		switch {
		case err != nil:
			result = "error"
			s.logger.Warn().Err(err).Msg("value log GC failed")
		case rewritten:
			result = "rewritten"
		default:
			result = "noop"
		}
	case expirySweeper:
		if removed := st.Sweep(); removed > 0 {
			result = "swept"
			s.logger.Debug().Int("removed", removed).Msg("expired entries swept")
		} else {
			result = "noop"
		}
	default:
		return ""
	}

	metrics.RecordStoreGC(result)
	return result
}

// String implements fmt.Stringer.
func (s *StoreGCService) String() string {
	return s.name
}
