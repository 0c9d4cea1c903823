// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package config

import (
	"time"

	"github.com/tomtom215/platewise/internal/cart"
	"github.com/tomtom215/platewise/internal/customize"
	"github.com/tomtom215/platewise/internal/kvstore"
	"github.com/tomtom215/platewise/internal/recommend"
)

// Config holds all application configuration.
//
// Sections that belong to a single package reuse that package's own config
// type, so the koanf tags live next to the code that reads them.
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access from multiple goroutines.
type Config struct {
	Server    ServerConfig      `koanf:"server"`
	Logging   LoggingConfig     `koanf:"logging"`
	Catalog   CatalogConfig     `koanf:"catalog"`
	Store     kvstore.Config    `koanf:"store"`
	Cart      cart.Config       `koanf:"cart"`
	Customize customize.Options `koanf:"customize"`
	Recommend recommend.Config  `koanf:"recommend"`
	Security  SecurityConfig    `koanf:"security"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int    `koanf:"port"`
	Host string `koanf:"host"`
	// Timeout bounds request reads and response writes.
	Timeout         time.Duration `koanf:"timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// CatalogConfig locates the catalog file and controls hot reload.
type CatalogConfig struct {
	// Path is the JSON catalog document loaded at startup.
	Path string `koanf:"path"`

	// Watch reloads the catalog when the file changes.
	Watch bool `koanf:"watch"`

	// ReloadInterval is the minimum spacing between reloads; ReloadBurst
	// file events may be served back to back before it applies.
	ReloadInterval time.Duration `koanf:"reload_interval"`
	ReloadBurst    int           `koanf:"reload_burst"`
}

// SecurityConfig holds rate limiting and CORS settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	// RateLimitShared keeps rate limit counts in the key-value store
	// instead of process memory.
	RateLimitShared bool     `koanf:"rate_limit_shared"`
	CORSOrigins     []string `koanf:"cors_origins"`
}

// Load reads configuration from (in order of increasing priority):
//  1. Built-in defaults
//  2. An optional YAML config file
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// HasWildcardCORS reports whether any CORS origin is "*".
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
