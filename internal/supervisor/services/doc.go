// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

/*
Package services provides suture.Service wrappers for Platewise components.

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

and fmt.Stringer so the supervisor can name it in logs.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Returns ctx.Err() after draining, or the startup error

Catalog Reload (CatalogService):
  - Watches the catalog file and reloads it on change
  - Reloads are paced with a golang.org/x/time/rate limiter and coalesced
  - A rejected file keeps the previous snapshot; recommendation caches are
    purged only after a successful swap
  - Reloads are counted in catalog_reloads_total

Store Maintenance (StoreGCService):
  - Runs badger value log GC or sweeps expired memory entries on a ticker
  - Unwraps the store circuit breaker so upkeep reaches the backend
  - Passes are counted in kvstore_gc_runs_total
*/
package services
