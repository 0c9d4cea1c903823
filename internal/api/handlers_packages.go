// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package api

import (
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/platewise/internal/catalog"
	"github.com/tomtom215/platewise/internal/customize"
	"github.com/tomtom215/platewise/internal/pricing"
)

// QuotePackage returns the package price, its base-price savings and the
// total with the customer's choices applied. Members without a choice use
// the package's included selections.
func (h *Handler) QuotePackage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	pkgID := chi.URLParam(r, "packageID")
	pkg, err := h.catalog.Package(pkgID)
	if err != nil {
		respondServiceError(w, r, "package_quote", err)
		return
	}
	expanded, err := catalog.Expand(pkg, h.catalog)
	if err != nil {
		respondServiceError(w, r, "package_quote", err)
		return
	}

	var req PackageQuoteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	memberIDs := make([]string, 0, len(req.Choices))
	for id := range req.Choices {
		memberIDs = append(memberIDs, id)
	}
	sort.Strings(memberIDs)

	choices := make(map[string][]catalog.Selection, len(req.Choices))
	var violations []customize.Violation
	for _, itemID := range memberIDs {
		member, ok := findMember(expanded, itemID)
		if !ok {
			respondServiceError(w, r, "package_quote", &catalog.ConfigurationError{
				PackageID: pkg.ID,
				ItemID:    itemID,
				Reason:    "not a package member",
			})
			return
		}
		selections, err := catalog.Resolve(member.Item, req.Choices[itemID])
		if err != nil {
			respondServiceError(w, r, "package_quote", err)
			return
		}
		violations = append(violations, h.validate(member.Item, selections)...)
		choices[itemID] = selections
	}
	if len(violations) > 0 {
		respondViolations(w, violations)
		return
	}

	quote, err := pricing.QuotePackage(expanded, choices)
	if err != nil {
		respondServiceError(w, r, "package_quote", err)
		return
	}
	respondOK(w, http.StatusOK, quote, start)
}

func findMember(p catalog.ExpandedPackage, itemID string) (catalog.Member, bool) {
	for _, m := range p.Members {
		if m.Item.ID == itemID {
			return m, true
		}
	}
	return catalog.Member{}, false
}
