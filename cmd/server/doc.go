// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

/*
Package main is the entry point for the Platewise server application.

Platewise serves a food catalog over HTTP: it validates item customizations,
quotes items and packages, composes session carts and recommends related
items and packages.

# Application Architecture

	RootSupervisor ("platewise")
	├── DataSupervisor ("data-layer")
	│   └── Store GC (badger value log GC / memory expiry sweep)
	├── CatalogSupervisor ("catalog-layer")
	│   └── Catalog reload (when catalog.watch is enabled)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config file and environment variables
 2. Logging: zerolog with JSON/console output modes
 3. Key-value store: memory or badger, behind a gobreaker circuit breaker
 4. Catalog: JSON file loaded and resolved into an in-memory repository
 5. Domain services: customization validator, cart service, recommendation engine
 6. HTTP API: chi router with CORS, httprate rate limiting and Prometheus metrics
 7. Supervisor Tree: suture v4 process supervision

A catalog file that fails to load at startup stops the process. Later
reloads that fail keep the previous catalog.

# Configuration

	Priority: Environment variables > Config file > Defaults

	HTTP_PORT=8080
	LOG_LEVEL=info
	LOG_FORMAT=json
	CATALOG_PATH=/data/catalog.json
	KV_BACKEND=badger
	KV_PATH=/data/kv
	CORS_ORIGINS=https://shop.example

See package config for the full list and config.example.yaml for a sample file.

# Signal Handling

SIGINT and SIGTERM cancel the supervisor context. The HTTP server drains
in-flight requests for HTTP_SHUTDOWN_TIMEOUT, then the store is closed.

# Example Usage

	export CATALOG_PATH=./examples/catalog.json
	export KV_BACKEND=memory
	export LOG_FORMAT=console
	./platewise

	curl -X POST localhost:8080/api/v1/items/pad-thai/quote \
	  -d '{"quantity": 2, "selections": [{"customization": "Spice Level", "options": ["Hot"]}]}'
*/
package main
