// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package api

import "github.com/tomtom215/platewise/internal/catalog"

// SelectionsRequest is the body of POST /items/{itemID}/validate.
type SelectionsRequest struct {
	Selections []catalog.SelectionInput `json:"selections" validate:"max=64"`
}

// QuoteRequest is the body of POST /items/{itemID}/quote. A missing
// quantity means one; non-positive quantities fail pricing.
type QuoteRequest struct {
	Selections []catalog.SelectionInput `json:"selections" validate:"max=64"`
	Quantity   int                      `json:"quantity" validate:"max=10000"`
}

// PackageQuoteRequest is the body of POST /packages/{packageID}/quote.
// Choices maps a member item id to the customer's selections for it.
type PackageQuoteRequest struct {
	Choices map[string][]catalog.SelectionInput `json:"choices" validate:"max=64,dive,max=64"`
}

// AddLineRequest is the body of POST /carts/{sessionID}/lines.
type AddLineRequest struct {
	ItemID     string                   `json:"item_id" validate:"required,max=128"`
	Quantity   int                      `json:"quantity" validate:"max=10000"`
	Selections []catalog.SelectionInput `json:"selections" validate:"max=64"`
	Note       string                   `json:"note" validate:"max=500"`
}

// SessionRequest validates the session path parameter.
type SessionRequest struct {
	SessionID string `json:"session_id" validate:"required,max=128,printascii,excludesall=/"`
}

// RecommendationsRequest validates recommendation query parameters. Zero
// selects the configured default.
type RecommendationsRequest struct {
	Limit int `json:"limit" validate:"min=0,max=100"`
}

func defaultQuantity(q int) int {
	if q == 0 {
		return 1
	}
	return q
}
