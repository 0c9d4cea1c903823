// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/platewise/internal/logging"
)

// DefaultCacheSweepInterval matches the default recommendation cache TTL.
const DefaultCacheSweepInterval = 5 * time.Minute

// CacheSweeper drops expired cache entries and returns how many it removed.
type CacheSweeper interface {
	SweepCache() int
}

// CacheSweepService periodically clears expired recommendation results so
// lists for sources nobody asks for again do not sit in memory until evicted.
type CacheSweepService struct {
	sweeper  CacheSweeper
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCacheSweepService creates a sweep service. A non-positive interval uses
// DefaultCacheSweepInterval.
func NewCacheSweepService(sweeper CacheSweeper, interval time.Duration) *CacheSweepService {
	if interval <= 0 {
		interval = DefaultCacheSweepInterval
	}
	return &CacheSweepService{
		sweeper:  sweeper,
		interval: interval,
		logger:   logging.WithComponent("cache-sweep"),
		name:     "cache-sweep",
	}
}

// Serve implements suture.Service.
func (s *CacheSweepService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if removed := s.sweeper.SweepCache(); removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("expired recommendations swept")
			}
		}
	}
}

// String implements fmt.Stringer.
func (s *CacheSweepService) String() string {
	return s.name
}
