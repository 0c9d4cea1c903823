// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

// Package validation provides struct validation using go-playground/validator v10.
//
// It is used at two boundaries: catalog records when a catalog file is ingested,
// and HTTP request bodies. Customization rules (required options, selection
// limits) are not struct validation and live in the customize package.
//
// # Overview
//
//   - Thread-safe singleton validator (initialized once, cached struct info)
//   - Field names reported by their json tag, with full namespaces for nested records
//   - Custom "nonblank" tag (non-empty after trimming)
//   - RegisterEnum for closed vocabularies owned by domain packages
//   - APIError conversion matching the VALIDATION_ERROR response format
//
// # Quick Start
//
//	type quoteRequest struct {
//	    Quantity int `json:"quantity" validate:"min=1,max=99"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// # Enumerations
//
//	validation.RegisterEnum("package_type", "daily", "weekly", "monthly")
//
//	type packageRecord struct {
//	    Type string `json:"type" validate:"required,package_type"`
//	}
//
// Register enums during package initialization; the underlying validator does
// not support registration concurrently with validation.
package validation
