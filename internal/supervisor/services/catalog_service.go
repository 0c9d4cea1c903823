// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/platewise/internal/catalog"
	"github.com/tomtom215/platewise/internal/logging"
	"github.com/tomtom215/platewise/internal/metrics"
)

// CatalogStore is the writable side of the catalog repository.
type CatalogStore interface {
	Replace(s catalog.Snapshot) error
	Version() uint64
}

// CachePurger drops results derived from a previous catalog.
type CachePurger interface {
	Purge()
}

// CatalogServiceConfig controls file watching and reload pacing.
type CatalogServiceConfig struct {
	Path string

	// ReloadInterval is the minimum spacing between reloads. Zero reloads on
	// every change.
	ReloadInterval time.Duration
	ReloadBurst    int
}

// CatalogService reloads the catalog when its file changes.
//
// File events are coalesced: a change arriving while a reload is pending
// does not queue a second one. A file that fails to load or resolve leaves
// the previous snapshot in place.
type CatalogService struct {
	store   CatalogStore
	purger  CachePurger
	path    string
	limiter *rate.Limiter
	logger  zerolog.Logger
	name    string

	load  func(path string) (catalog.Snapshot, error)
	watch func(path string, onChange func()) (func() error, error)
}

// NewCatalogService creates a catalog reload service. purger may be nil.
func NewCatalogService(store CatalogStore, purger CachePurger, cfg CatalogServiceConfig) *CatalogService {
	limit := rate.Inf
	if cfg.ReloadInterval > 0 {
		limit = rate.Every(cfg.ReloadInterval)
	}
	burst := cfg.ReloadBurst
	if burst < 1 {
		burst = 1
	}

	return &CatalogService{
		store:   store,
		purger:  purger,
		path:    cfg.Path,
		limiter: rate.NewLimiter(limit, burst),
		logger:  logging.WithComponent("catalog-watch"),
		name:    "catalog-watch",
		load:    catalog.LoadFile,
		watch:   catalog.WatchFile,
	}
}

// Serve implements suture.Service. It returns an error only when the file
// cannot be watched; the supervisor then retries with backoff.
func (s *CatalogService) Serve(ctx context.Context) error {
	changed := make(chan struct{}, 1)
	stop, err := s.watch(s.path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := stop(); err != nil {
			s.logger.Debug().Err(err).Msg("catalog watcher stop failed")
		}
	}()

	s.logger.Info().Str("path", s.path).Msg("watching catalog file")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-changed:
			if err := s.limiter.Wait(ctx); err != nil {
				return ctx.Err()
			}
			// Errors are logged and counted; the old catalog keeps serving.
			_ = s.Reload()
		}
	}
}

// Reload loads the file once and swaps it in.
func (s *CatalogService) Reload() error {
	start := time.Now()

	snap, err := s.load(s.path)
	if err == nil {
		err = s.store.Replace(snap)
	}
	if err != nil {
		metrics.RecordCatalogReload(0, 0, 0, err)
		s.logger.Warn().Err(err).Str("path", s.path).Msg("catalog reload rejected, keeping previous catalog")
		return fmt.Errorf("reload catalog: %w", err)
	}

	version := s.store.Version()
	metrics.RecordCatalogReload(version, len(snap.Items), len(snap.Packages), nil)
	if s.purger != nil {
		s.purger.Purge()
	}

	s.logger.Info().
		Uint64("version", version).
		Int("items", len(snap.Items)).
		Int("packages", len(snap.Packages)).
		Dur("duration", time.Since(start)).
		Msg("catalog reloaded")
	return nil
}

// String implements fmt.Stringer.
func (s *CatalogService) String() string {
	return s.name
}
