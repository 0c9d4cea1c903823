// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/platewise/internal/cart"
	"github.com/tomtom215/platewise/internal/catalog"
	"github.com/tomtom215/platewise/internal/logging"
	"github.com/tomtom215/platewise/internal/models"
)

// GetCart returns the session's cart. Unknown sessions have an empty cart.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sessionID, ok := sessionParam(w, r)
	if !ok {
		return
	}

	c, err := h.carts.Get(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, r, "get_cart", err)
		return
	}
	respondOK(w, http.StatusOK, cartView(c), start)
}

// AddCartLine resolves, validates and prices an item and appends it to the
// session's cart.
func (h *Handler) AddCartLine(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sessionID, ok := sessionParam(w, r)
	if !ok {
		return
	}

	var req AddLineRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item, err := h.catalog.Item(req.ItemID)
	if err != nil {
		respondServiceError(w, r, "cart_add", err)
		return
	}
	selections, err := catalog.Resolve(item, req.Selections)
	if err != nil {
		respondServiceError(w, r, "cart_add", err)
		return
	}

	ctx := logging.ContextWithSessionID(r.Context(), sessionID)
	res, err := h.carts.Add(ctx, sessionID, cart.AddRequest{
		ItemID:     item.ID,
		Quantity:   defaultQuantity(req.Quantity),
		Selections: selections,
		Note:       req.Note,
	})
	if err != nil {
		respondServiceError(w, r, "cart_add", err)
		return
	}
	if len(res.Violations) > 0 {
		respondViolations(w, res.Violations)
		return
	}

	added := make([]models.LineView, len(res.Lines))
	for i, l := range res.Lines {
		added[i] = lineView(l)
	}
	respondOK(w, http.StatusCreated, models.AddLinesResult{Added: added, Cart: cartView(res.Cart)}, start)
}

// RemoveCartLine deletes one line from the session's cart.
func (h *Handler) RemoveCartLine(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sessionID, ok := sessionParam(w, r)
	if !ok {
		return
	}

	ctx := logging.ContextWithSessionID(r.Context(), sessionID)
	c, err := h.carts.RemoveLine(ctx, sessionID, chi.URLParam(r, "lineID"))
	if err != nil {
		respondServiceError(w, r, "cart_remove", err)
		return
	}
	respondOK(w, http.StatusOK, cartView(c), start)
}

// ClearCart empties the session's cart.
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionParam(w, r)
	if !ok {
		return
	}

	ctx := logging.ContextWithSessionID(r.Context(), sessionID)
	if err := h.carts.Clear(ctx, sessionID); err != nil {
		respondServiceError(w, r, "cart_clear", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func sessionParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	req := SessionRequest{SessionID: chi.URLParam(r, "sessionID")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return "", false
	}
	return req.SessionID, true
}

func lineView(l cart.LineItem) models.LineView {
	return models.LineView{
		ID:         l.ID,
		ItemID:     l.ItemID,
		Name:       l.Name,
		Quantity:   l.Quantity,
		UnitPrice:  l.UnitPrice,
		Total:      l.Total(),
		Selections: l.Selections,
		Note:       l.Note,
		AddedAt:    l.AddedAt,
	}
}

func cartView(c *cart.Cart) models.CartView {
	lines := make([]models.LineView, len(c.Lines))
	for i, l := range c.Lines {
		lines[i] = lineView(l)
	}
	return models.CartView{
		SessionID: c.SessionID,
		Lines:     lines,
		ItemCount: c.ItemCount(),
		Total:     c.Total(),
		UpdatedAt: c.UpdatedAt,
	}
}
