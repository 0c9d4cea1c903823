// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/platewise/internal/models"
)

// Health reports liveness, the loaded catalog and the store breaker state.
// The status is "degraded" while the catalog is empty or the breaker is open.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	health := models.HealthStatus{
		Status:         "healthy",
		Version:        Version,
		CatalogVersion: h.catalog.Version(),
		Items:          len(h.catalog.Items()),
		Packages:       len(h.catalog.Packages()),
		Uptime:         time.Since(h.startTime).Seconds(),
	}
	if h.storeState != nil {
		health.Store = h.storeState()
	}
	if health.Items == 0 || health.Store == "open" {
		health.Status = "degraded"
	}

	respondOK(w, http.StatusOK, health, start)
}
