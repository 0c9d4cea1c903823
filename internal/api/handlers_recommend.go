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
	"github.com/tomtom215/platewise/internal/models"
	"github.com/tomtom215/platewise/internal/recommend"
)

// ItemRecommendations handles GET /items/{itemID}/recommendations.
func (h *Handler) ItemRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	itemID := chi.URLParam(r, "itemID")
	req, ok := recommendationsRequest(w, r)
	if !ok {
		return
	}

	recs, err := h.engine.RelatedItems(r.Context(), itemID, req.Limit)
	if err != nil {
		respondServiceError(w, r, "recommend_items", err)
		return
	}
	respondOK(w, http.StatusOK, models.RecommendationList{
		SourceID:        itemID,
		Kind:            recommend.KindItem,
		Limit:           req.Limit,
		Recommendations: itemViews(recs),
	}, start)
}

// PackageItemRecommendations handles GET /packages/{packageID}/recommendations/items.
func (h *Handler) PackageItemRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	packageID := chi.URLParam(r, "packageID")
	req, ok := recommendationsRequest(w, r)
	if !ok {
		return
	}

	recs, err := h.engine.PackageComplements(r.Context(), packageID, req.Limit)
	if err != nil {
		respondServiceError(w, r, "recommend_package_items", err)
		return
	}
	respondOK(w, http.StatusOK, models.RecommendationList{
		SourceID:        packageID,
		Kind:            recommend.KindPackageItem,
		Limit:           req.Limit,
		Recommendations: itemViews(recs),
	}, start)
}

// PackageRecommendations handles GET /packages/{packageID}/recommendations/packages.
func (h *Handler) PackageRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	packageID := chi.URLParam(r, "packageID")
	req, ok := recommendationsRequest(w, r)
	if !ok {
		return
	}

	recs, err := h.engine.RelatedPackages(r.Context(), packageID, req.Limit)
	if err != nil {
		respondServiceError(w, r, "recommend_packages", err)
		return
	}

	views := make([]models.Recommendation, len(recs))
	for i, rec := range recs {
		views[i] = models.Recommendation{
			ID:      rec.ID,
			Name:    rec.Candidate.Name,
			Price:   rec.Candidate.Price,
			Score:   rec.Score,
			Stage:   string(rec.Stage),
			Reasons: rec.Reasons,
		}
	}
	respondOK(w, http.StatusOK, models.RecommendationList{
		SourceID:        packageID,
		Kind:            recommend.KindPackage,
		Limit:           req.Limit,
		Recommendations: views,
	}, start)
}

func recommendationsRequest(w http.ResponseWriter, r *http.Request) (RecommendationsRequest, bool) {
	req := RecommendationsRequest{Limit: getIntParam(r, "limit", 0)}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return req, false
	}
	return req, true
}

func itemViews(recs []recommend.Recommendation[*catalog.Item]) []models.Recommendation {
	views := make([]models.Recommendation, len(recs))
	for i, rec := range recs {
		views[i] = models.Recommendation{
			ID:      rec.ID,
			Name:    rec.Candidate.Name,
			Price:   rec.Candidate.BasePrice,
			Score:   rec.Score,
			Stage:   string(rec.Stage),
			Reasons: rec.Reasons,
		}
	}
	return views
}
