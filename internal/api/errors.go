// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package api

import (
	"errors"
	"net/http"

	"github.com/sony/gobreaker/v2"

	"github.com/tomtom215/platewise/internal/cart"
	"github.com/tomtom215/platewise/internal/catalog"
	"github.com/tomtom215/platewise/internal/customize"
	"github.com/tomtom215/platewise/internal/logging"
	"github.com/tomtom215/platewise/internal/metrics"
	"github.com/tomtom215/platewise/internal/pricing"
)

// Error codes returned in APIError.Code.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeInvalidJSON      = "INVALID_JSON"
	CodeInvalidSelection = "INVALID_SELECTION"
	CodeConfiguration    = "CONFIGURATION_ERROR"
	CodeComputation      = "COMPUTATION_ERROR"
	CodeNotFound         = "NOT_FOUND"
	CodeQuantityLimit    = "QUANTITY_LIMIT"
	CodeCartFull         = "CART_FULL"
	CodeRateLimited      = "RATE_LIMIT_EXCEEDED"
	CodeStoreUnavailable = "STORE_UNAVAILABLE"
	CodeInternal         = "INTERNAL_ERROR"
)

const invalidSelectionMessage = "Selection violates the item's customization rules"

// respondServiceError maps errors from the domain packages to a status and
// error code. op names the failed operation in logs and metrics.
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var (
		cfgErr  *catalog.ConfigurationError
		compErr *pricing.ComputationError
	)

	switch {
	case errors.Is(err, catalog.ErrItemNotFound),
		errors.Is(err, catalog.ErrPackageNotFound),
		errors.Is(err, cart.ErrLineNotFound):
		respondError(w, http.StatusNotFound, CodeNotFound, err.Error(), nil)

	case errors.As(err, &cfgErr):
		logging.Ctx(r.Context()).Warn().Err(err).Str("operation", op).Msg("Unresolvable catalog reference")
		respondError(w, http.StatusUnprocessableEntity, CodeConfiguration, cfgErr.Error(), nil)

	case errors.As(err, &compErr):
		metrics.RecordComputationError(compErr.Op)
		logging.Ctx(r.Context()).Warn().Err(err).Str("operation", op).Msg("Price computation failed")
		respondErrorDetails(w, http.StatusUnprocessableEntity, CodeComputation, compErr.Error(),
			map[string]interface{}{"field": compErr.Field}, nil)

	case errors.Is(err, cart.ErrQuantityLimit):
		respondError(w, http.StatusUnprocessableEntity, CodeQuantityLimit, err.Error(), nil)

	case errors.Is(err, cart.ErrCartFull):
		respondError(w, http.StatusConflict, CodeCartFull, err.Error(), nil)

	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		respondError(w, http.StatusServiceUnavailable, CodeStoreUnavailable, "Store temporarily unavailable", err)

	default:
		logging.Ctx(r.Context()).Error().Err(err).Str("operation", op).Msg("Request failed")
		respondError(w, http.StatusInternalServerError, CodeInternal, "Internal server error", nil)
	}
}

// respondViolations rejects a selection with every violation found.
func respondViolations(w http.ResponseWriter, violations []customize.Violation) {
	respondErrorDetails(w, http.StatusUnprocessableEntity, CodeInvalidSelection, invalidSelectionMessage,
		map[string]interface{}{"violations": violations}, nil)
}
