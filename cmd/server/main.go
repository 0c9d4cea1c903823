// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"

	"github.com/tomtom215/platewise/internal/api"
	"github.com/tomtom215/platewise/internal/cart"
	"github.com/tomtom215/platewise/internal/catalog"
	"github.com/tomtom215/platewise/internal/config"
	"github.com/tomtom215/platewise/internal/customize"
	"github.com/tomtom215/platewise/internal/kvstore"
	"github.com/tomtom215/platewise/internal/logging"
	"github.com/tomtom215/platewise/internal/metrics"
	"github.com/tomtom215/platewise/internal/ratelimit"
	"github.com/tomtom215/platewise/internal/recommend"
	"github.com/tomtom215/platewise/internal/supervisor"
	"github.com/tomtom215/platewise/internal/supervisor/services"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Platewise stopped with an error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

//nolint:gocyclo // sequential setup steps
func run() error {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	logging.Info().
		Str("version", api.Version).
		Str("catalog", cfg.Catalog.Path).
		Str("store_backend", string(cfg.Store.Backend)).
		Msg("Starting Platewise with supervisor tree")
	metrics.AppInfo.WithLabelValues(api.Version, runtime.Version()).Set(1)

	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS_ORIGINS contains '*'; any website may call the API from a browser")
	}

	// Key-value store for carts and rate limit counters
	kv, err := kvstore.Open(cfg.Store)
	if err != nil {
		return fmt.Errorf("open key-value store: %w", err)
	}
	defer func() {
		if err := kv.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing key-value store")
		}
	}()

	// Catalog
	snap, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		metrics.RecordCatalogReload(0, 0, 0, err)
		return err
	}
	validator := customize.New(cfg.Customize)
	repo, err := catalog.NewMemory(snap, validator.CheckIncluded)
	if err != nil {
		metrics.RecordCatalogReload(0, 0, 0, err)
		return fmt.Errorf("resolve catalog %s: %w", cfg.Catalog.Path, err)
	}
	metrics.RecordCatalogReload(repo.Version(), len(snap.Items), len(snap.Packages), nil)
	logging.Info().
		Int("items", len(snap.Items)).
		Int("packages", len(snap.Packages)).
		Msg("Catalog loaded")

	// Domain services
	carts := cart.NewService(repo, cart.NewKVStore(kv, cfg.Cart.TTL), cart.NewComposer(validator), cfg.Cart)
	engine, err := recommend.NewEngine(repo, cfg.Recommend)
	if err != nil {
		return fmt.Errorf("create recommendation engine: %w", err)
	}

	// HTTP API
	handler := api.NewHandler(api.Dependencies{
		Catalog:    repo,
		Validator:  validator,
		Carts:      carts,
		Engine:     engine,
		StoreState: storeState(kv),
	})
	router := api.NewRouter(handler, api.NewChiMiddleware(middlewareConfig(cfg, kv)))

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	server := &http.Server{
		Addr:              addr,
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: cfg.Server.Timeout,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Supervisor tree
	treeCfg := supervisor.DefaultTreeConfig()
	treeCfg.ShutdownTimeout = cfg.Server.ShutdownTimeout + treeCfg.ShutdownTimeout
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), treeCfg)
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	tree.AddDataService(services.NewStoreGCService(kv, cfg.Store.GC))
	if cfg.Catalog.Watch {
		tree.AddCatalogService(services.NewCatalogService(repo, engine, services.CatalogServiceConfig{
			Path:           cfg.Catalog.Path,
			ReloadInterval: cfg.Catalog.ReloadInterval,
			ReloadBurst:    cfg.Catalog.ReloadBurst,
		}))
	}
	if cfg.Recommend.CacheSize >= 0 {
		tree.AddCatalogService(services.NewCacheSweepService(engine, cfg.Recommend.CacheTTL))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, addr, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}
	return nil
}

// middlewareConfig maps security settings onto the chi middleware.
func middlewareConfig(cfg *config.Config, kv kvstore.Store) *api.ChiMiddlewareConfig {
	mw := api.DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mw.RateLimitRequests = cfg.Security.RateLimitReqs
	mw.RateLimitWindow = cfg.Security.RateLimitWindow
	mw.RateLimitDisabled = cfg.Security.RateLimitDisabled
	if cfg.Security.RateLimitShared {
		mw.RateLimitCounter = ratelimit.NewCounter(kv, ratelimit.DefaultPrefix)
	}
	return mw
}

// storeState reports the circuit breaker state for /health, or nil when the
// store is not guarded.
func storeState(kv kvstore.Store) func() string {
	b, ok := kv.(*kvstore.Breaker)
	if !ok {
		return nil
	}
	return func() string { return b.State().String() }
}
