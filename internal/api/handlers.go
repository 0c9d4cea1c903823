// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package api

import (
	"time"

	"github.com/tomtom215/platewise/internal/cart"
	"github.com/tomtom215/platewise/internal/catalog"
	"github.com/tomtom215/platewise/internal/customize"
	"github.com/tomtom215/platewise/internal/recommend"
)

// Version is reported by /health. It is overridden at build time.
var Version = "dev"

// Dependencies holds the services the handlers call.
type Dependencies struct {
	Catalog   catalog.Repository
	Validator *customize.Validator
	Carts     *cart.Service
	Engine    *recommend.Engine

	// StoreState reports the store's circuit breaker state (optional).
	StoreState func() string
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: Shared response and request helpers
//   - handlers_health.go: Health endpoint
//   - handlers_items.go: Item snapshot, validation and quotes
//   - handlers_packages.go: Package quotes
//   - handlers_recommend.go: Recommendation endpoints
//   - handlers_cart.go: Cart endpoints
type Handler struct {
	catalog    catalog.Repository
	validator  *customize.Validator
	carts      *cart.Service
	engine     *recommend.Engine
	storeState func() string
	startTime  time.Time
}

// NewHandler creates a new API handler.
func NewHandler(deps Dependencies) *Handler {
	v := deps.Validator
	if v == nil {
		v = customize.New(customize.Options{})
	}
	return &Handler{
		catalog:    deps.Catalog,
		validator:  v,
		carts:      deps.Carts,
		engine:     deps.Engine,
		storeState: deps.StoreState,
		startTime:  time.Now(),
	}
}
