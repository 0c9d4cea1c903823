// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/platewise/internal/catalog"
	"github.com/tomtom215/platewise/internal/customize"
	"github.com/tomtom215/platewise/internal/metrics"
	"github.com/tomtom215/platewise/internal/models"
	"github.com/tomtom215/platewise/internal/pricing"
)

// GetItem returns the catalog snapshot of one item.
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	item, err := h.catalog.Item(chi.URLParam(r, "itemID"))
	if err != nil {
		respondServiceError(w, r, "get_item", err)
		return
	}
	respondOK(w, http.StatusOK, item, start)
}

// ValidateItem resolves and validates selections for an item. Violations
// are a successful result with valid=false.
func (h *Handler) ValidateItem(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	item, err := h.catalog.Item(chi.URLParam(r, "itemID"))
	if err != nil {
		respondServiceError(w, r, "validate", err)
		return
	}

	var req SelectionsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	selections, err := catalog.Resolve(item, req.Selections)
	if err != nil {
		respondServiceError(w, r, "validate", err)
		return
	}

	violations := h.validate(item, selections)
	if violations == nil {
		violations = []customize.Violation{}
	}
	respondOK(w, http.StatusOK, models.ValidationResult{
		ItemID:     item.ID,
		Valid:      len(violations) == 0,
		Selections: selections,
		Violations: violations,
	}, start)
}

// QuoteItem prices an item with selections. Selections are validated first
// and a quote is only produced for a valid selection.
func (h *Handler) QuoteItem(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	item, err := h.catalog.Item(chi.URLParam(r, "itemID"))
	if err != nil {
		respondServiceError(w, r, "quote", err)
		return
	}

	var req QuoteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	selections, err := catalog.Resolve(item, req.Selections)
	if err != nil {
		respondServiceError(w, r, "quote", err)
		return
	}
	if violations := h.validate(item, selections); len(violations) > 0 {
		respondViolations(w, violations)
		return
	}

	q, err := pricing.ItemQuote(item, selections, defaultQuantity(req.Quantity))
	if err != nil {
		respondServiceError(w, r, "quote", err)
		return
	}
	respondOK(w, http.StatusOK, models.ItemQuote{ItemID: item.ID, Selections: selections, Quote: q}, start)
}

// validate runs the validator and records violation codes.
func (h *Handler) validate(item *catalog.Item, selections []catalog.Selection) []customize.Violation {
	violations := h.validator.Validate(item, selections)
	codes := make([]string, len(violations))
	for i, v := range violations {
		codes[i] = string(v.Code)
	}
	metrics.RecordValidation(codes)
	return violations
}
