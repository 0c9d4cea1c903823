// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/items/{itemID}", "200"))

	RecordAPIRequest("GET", "/api/v1/items/{itemID}", "200", 3*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/items/{itemID}", "200"))
	if after-before != 1 {
		t.Errorf("api_requests_total increased by %v, want 1", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	start := testutil.ToFloat64(APIActiveRequests)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			TrackActiveRequest(true)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(APIActiveRequests); got != start {
		t.Errorf("api_active_requests = %v, want %v", got, start)
	}
}

func TestRecordValidation(t *testing.T) {
	valid := testutil.ToFloat64(CustomizationValidations.WithLabelValues("valid"))
	invalid := testutil.ToFloat64(CustomizationValidations.WithLabelValues("invalid"))
	missing := testutil.ToFloat64(CustomizationViolations.WithLabelValues("required_missing"))

	RecordValidation(nil)
	RecordValidation([]string{"required_missing", "required_missing", "option_unavailable"})

	if got := testutil.ToFloat64(CustomizationValidations.WithLabelValues("valid")) - valid; got != 1 {
		t.Errorf("valid validations +%v, want +1", got)
	}
	if got := testutil.ToFloat64(CustomizationValidations.WithLabelValues("invalid")) - invalid; got != 1 {
		t.Errorf("invalid validations +%v, want +1", got)
	}
	if got := testutil.ToFloat64(CustomizationViolations.WithLabelValues("required_missing")) - missing; got != 2 {
		t.Errorf("required_missing +%v, want +2", got)
	}
}

func TestRecordCartOperation(t *testing.T) {
	lines := testutil.ToFloat64(CartLinesAdded)

	RecordCartOperation("add", time.Millisecond, 1, nil)
	RecordCartOperation("add", time.Millisecond, 0, errors.New("cart full"))

	if got := testutil.ToFloat64(CartLinesAdded) - lines; got != 1 {
		t.Errorf("cart_lines_added_total +%v, want +1", got)
	}
}

func TestRecordRecommendations(t *testing.T) {
	explicit := testutil.ToFloat64(RecommendationsServed.WithLabelValues("item", "explicit"))
	popular := testutil.ToFloat64(RecommendationsServed.WithLabelValues("item", "popular"))

	RecordRecommendations("item", map[string]int{"explicit": 2, "scored": 0, "popular": 1}, time.Microsecond)

	if got := testutil.ToFloat64(RecommendationsServed.WithLabelValues("item", "explicit")) - explicit; got != 2 {
		t.Errorf("explicit +%v, want +2", got)
	}
	if got := testutil.ToFloat64(RecommendationsServed.WithLabelValues("item", "popular")) - popular; got != 1 {
		t.Errorf("popular +%v, want +1", got)
	}
}

func TestRecordRecommendationCacheSize(t *testing.T) {
	RecordRecommendationCacheSize(12, 3, 1)

	if got := testutil.ToFloat64(RecommendationCacheEntries); got != 12 {
		t.Errorf("recommendation_cache_entries = %v, want 12", got)
	}
	if got := testutil.ToFloat64(RecommendationCacheHitRatio); got != 0.75 {
		t.Errorf("recommendation_cache_hit_ratio = %v, want 0.75", got)
	}

	RecordRecommendationCacheSize(0, 0, 0)
	if got := testutil.ToFloat64(RecommendationCacheHitRatio); got != 0.75 {
		t.Errorf("hit ratio = %v, want it kept at 0.75 with no lookups", got)
	}
}

func TestRecordCatalogReload(t *testing.T) {
	failures := testutil.ToFloat64(CatalogReloads.WithLabelValues("failure"))

	RecordCatalogReload(7, 12, 3, nil)
	RecordCatalogReload(0, 0, 0, errors.New("bad file"))

	if got := testutil.ToFloat64(CatalogVersion); got != 7 {
		t.Errorf("catalog_version = %v, want 7 (failed reload must not reset it)", got)
	}
	if got := testutil.ToFloat64(CatalogEntries.WithLabelValues("package")); got != 3 {
		t.Errorf("catalog_entries{type=package} = %v, want 3", got)
	}
	if got := testutil.ToFloat64(CatalogReloads.WithLabelValues("failure")) - failures; got != 1 {
		t.Errorf("failures +%v, want +1", got)
	}
}

func TestRecordStoreOperation(t *testing.T) {
	errs := testutil.ToFloat64(StoreErrors.WithLabelValues("badger", "set"))

	RecordStoreOperation("badger", "set", time.Millisecond, nil)
	RecordStoreOperation("badger", "set", time.Millisecond, errors.New("disk full"))

	if got := testutil.ToFloat64(StoreErrors.WithLabelValues("badger", "set")) - errs; got != 1 {
		t.Errorf("kvstore_errors_total +%v, want +1", got)
	}
}
