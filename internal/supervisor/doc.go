// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

/*
Package supervisor provides process supervision for Platewise using suture v4.

The supervisor tree manages the lifecycle of every long-running service with
Erlang/OTP-style restarts, failure isolation and graceful shutdown.

# Overview

Services are grouped into three layers:

	RootSupervisor ("platewise")
	├── DataSupervisor ("data-layer")
	│   └── StoreGCService (badger value log GC or memory expiry sweep)
	├── CatalogSupervisor ("catalog-layer")
	│   └── CatalogService (if catalog.watch is enabled)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A catalog watcher that cannot install its file watch is restarted with
backoff while the API keeps serving the catalog loaded at startup.

# Restart Behavior

  - Crashed services are restarted immediately
  - After FailureThreshold failures (decaying at FailureDecay per second)
    the supervisor waits FailureBackoff before the next restart
  - Child supervisors count failures independently

# Logging

Supervisor events are routed to slog through sutureslog. main.go passes an
slog.Logger backed by the zerolog component logger:

	logger := logging.NewSlogLogger("supervisor")
	tree, err := supervisor.NewSupervisorTree(logger, supervisor.DefaultTreeConfig())

# Usage Example

	tree.AddDataService(services.NewStoreGCService(kv, cfg.Store.GC))
	tree.AddCatalogService(services.NewCatalogService(repo, engine, catalogCfg))
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout))

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("supervisor stopped")
	}

After Serve returns, UnstoppedServiceReport lists services that ignored
the shutdown timeout.
*/
package supervisor
