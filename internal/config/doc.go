// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

/*
Package config provides centralized configuration management for Platewise.

Configuration is layered with Koanf v2. Later layers override earlier ones:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: $CONFIG_PATH, then config.yaml, config.yml,
    /etc/platewise/config.yaml and /etc/platewise/config.yml
 3. Environment variables listed in envMappings

# Configuration Structure

  - ServerConfig: HTTP listen address and timeouts
  - LoggingConfig: zerolog level, format and caller info
  - CatalogConfig: catalog file location and hot reload pacing
  - kvstore.Config: key-value backend (memory or badger), GC and circuit breaker
  - cart.Config: cart TTL and line/quantity limits
  - customize.Options: free-text length limit
  - recommend.Config: result limits, caching, complements and weight overrides
  - SecurityConfig: rate limiting and CORS origins

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT (default: 0.0.0.0:8080)
  - HTTP_TIMEOUT, HTTP_IDLE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: include caller file and line (default: false)

Catalog:
  - CATALOG_PATH: JSON catalog document (default: /data/catalog.json)
  - CATALOG_WATCH: reload on file change (default: true)
  - CATALOG_RELOAD_INTERVAL, CATALOG_RELOAD_BURST: reload pacing

Store:
  - KV_BACKEND: memory or badger (default: badger)
  - KV_PATH: badger directory; empty keeps badger in memory
  - KV_GC_INTERVAL: value log GC / expiry sweep interval
  - KV_BREAKER_ENABLED, KV_BREAKER_TIMEOUT, KV_BREAKER_MIN_REQUESTS, KV_BREAKER_FAILURE_RATIO

Cart:
  - CART_TTL, CART_MAX_QUANTITY, CART_MAX_LINES

Customization:
  - CUSTOMIZE_MAX_TEXT_LENGTH

Recommendations:
  - RECOMMEND_DEFAULT_LIMIT, RECOMMEND_MAX_LIMIT, RECOMMEND_MIN_SCORE
  - RECOMMEND_CACHE_SIZE, RECOMMEND_CACHE_TTL

Rule weights and complementary category pairs are file-only settings.

Security:
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW (default: 100 per 1m)
  - DISABLE_RATE_LIMIT
  - RATE_LIMIT_SHARED: keep counts in the key-value store (default: true)
  - CORS_ORIGINS: comma-separated origins

# Usage Example

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Printf("listening on %s:%d\n", cfg.Server.Host, cfg.Server.Port)

# Thread Safety

Config is immutable after Load() and safe for concurrent reads.
*/
package config
