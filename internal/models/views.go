// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package models

import (
	"time"

	"github.com/tomtom215/platewise/internal/catalog"
	"github.com/tomtom215/platewise/internal/customize"
	"github.com/tomtom215/platewise/internal/money"
	"github.com/tomtom215/platewise/internal/pricing"
)

// HealthStatus is the /health payload.
type HealthStatus struct {
	Status         string  `json:"status"`
	Version        string  `json:"version"`
	CatalogVersion uint64  `json:"catalog_version"`
	Items          int     `json:"items"`
	Packages       int     `json:"packages"`
	Store          string  `json:"store,omitempty"`
	Uptime         float64 `json:"uptime"`
}

// ValidationResult is the outcome of validating one item's selections.
type ValidationResult struct {
	ItemID     string                `json:"item_id"`
	Valid      bool                  `json:"valid"`
	Selections []catalog.Selection   `json:"selections"`
	Violations []customize.Violation `json:"violations"`
}

// ItemQuote is a priced item.
type ItemQuote struct {
	ItemID     string              `json:"item_id"`
	Selections []catalog.Selection `json:"selections"`
	pricing.Quote
}

// LineView is a cart line with its computed total.
type LineView struct {
	ID         string              `json:"id"`
	ItemID     string              `json:"item_id"`
	Name       string              `json:"name"`
	Quantity   int                 `json:"quantity"`
	UnitPrice  money.Cents         `json:"unit_price"`
	Total      money.Cents         `json:"total"`
	Selections []catalog.Selection `json:"selections,omitempty"`
	Note       string              `json:"note,omitempty"`
	AddedAt    time.Time           `json:"added_at"`
}

// CartView is a cart as returned by the API.
type CartView struct {
	SessionID string      `json:"session_id"`
	Lines     []LineView  `json:"lines"`
	ItemCount int         `json:"item_count"`
	Total     money.Cents `json:"total"`
	UpdatedAt time.Time   `json:"updated_at,omitempty"`
}

// AddLinesResult is returned after lines were appended to a cart.
type AddLinesResult struct {
	Added []LineView `json:"added"`
	Cart  CartView   `json:"cart"`
}

// Recommendation is one ranked suggestion.
type Recommendation struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Price   money.Cents `json:"price"`
	Score   float64     `json:"score"`
	Stage   string      `json:"stage"`
	Reasons []string    `json:"reasons,omitempty"`
}

// RecommendationList is the payload of the recommendation endpoints.
type RecommendationList struct {
	SourceID        string           `json:"source_id"`
	Kind            string           `json:"kind"`
	Limit           int              `json:"limit,omitempty"`
	Recommendations []Recommendation `json:"recommendations"`
}
