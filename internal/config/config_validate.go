// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/platewise/internal/kvstore"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateLogging(); err != nil {
		return err
	}

	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.validateStore(); err != nil {
		return err
	}

	if err := c.validateCart(); err != nil {
		return err
	}

	if err := c.Recommend.Validate(); err != nil {
		return err
	}

	return c.validateSecurity()
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must not be negative")
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// validateCatalog validates the catalog source and reload pacing
func (c *Config) validateCatalog() error {
	if strings.TrimSpace(c.Catalog.Path) == "" {
		return fmt.Errorf("CATALOG_PATH is required")
	}
	if !c.Catalog.Watch {
		return nil
	}
	if c.Catalog.ReloadInterval < 0 {
		return fmt.Errorf("CATALOG_RELOAD_INTERVAL must not be negative")
	}
	if c.Catalog.ReloadBurst < 1 {
		return fmt.Errorf("CATALOG_RELOAD_BURST must be at least 1")
	}
	return nil
}

// validateStore validates the key-value store backend and breaker
func (c *Config) validateStore() error {
	switch c.Store.Backend {
	case kvstore.BackendMemory, kvstore.BackendBadger:
	default:
		return fmt.Errorf("KV_BACKEND must be one of: memory, badger (got %q)", c.Store.Backend)
	}

	if c.Store.GC < 0 {
		return fmt.Errorf("KV_GC_INTERVAL must not be negative")
	}

	b := c.Store.Breaker
	if !b.Enabled {
		return nil
	}
	if b.FailureRatio <= 0 || b.FailureRatio > 1 {
		return fmt.Errorf("KV_BREAKER_FAILURE_RATIO must be in (0, 1]")
	}
	if b.Timeout <= 0 {
		return fmt.Errorf("KV_BREAKER_TIMEOUT must be positive")
	}
	return nil
}

// validateCart validates cart limits
func (c *Config) validateCart() error {
	if c.Cart.TTL <= 0 {
		return fmt.Errorf("CART_TTL must be positive")
	}
	if c.Cart.MaxQuantity < 1 {
		return fmt.Errorf("CART_MAX_QUANTITY must be at least 1")
	}
	if c.Cart.MaxLines < 1 {
		return fmt.Errorf("CART_MAX_LINES must be at least 1")
	}
	return nil
}

// Rate limiting bounds
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateSecurity validates rate limiting bounds and CORS origins
func (c *Config) validateSecurity() error {
	for _, origin := range c.Security.CORSOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("CORS_ORIGINS entry %q must be \"*\" or an http(s) origin", origin)
		}
	}

	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}
