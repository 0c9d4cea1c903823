// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"endpoint"},
	)

	// Customization Metrics
	CustomizationValidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "customization_validations_total",
			Help: "Total number of selection validations",
		},
		[]string{"result"}, // "valid", "invalid"
	)

	CustomizationViolations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "customization_violations_total",
			Help: "Total number of customization violations by code",
		},
		[]string{"code"},
	)

	// Pricing Metrics
	PricingComputationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_computation_errors_total",
			Help: "Total number of rejected price computations",
		},
		[]string{"operation"},
	)

	// Cart Metrics
	CartLinesAdded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cart_lines_added_total",
			Help: "Total number of cart line items created",
		},
	)

	CartOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cart_operation_duration_seconds",
			Help:    "Duration of cart operations including the session lock wait",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "result"},
	)

	// Recommendation Metrics
	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_served_total",
			Help: "Total number of recommendations returned, by source kind and fallback stage",
		},
		[]string{"kind", "stage"}, // stage: "explicit", "scored", "popular"
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Time to build a recommendation list",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
		},
		[]string{"kind"},
	)

	RecommendationCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_cache_hits_total",
			Help: "Total number of recommendation cache hits",
		},
	)

	RecommendationCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_cache_misses_total",
			Help: "Total number of recommendation cache misses",
		},
	)

	RecommendationCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommendation_cache_entries",
			Help: "Number of cached recommendation lists",
		},
	)

	RecommendationCacheHitRatio = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommendation_cache_hit_ratio",
			Help: "Lifetime hit ratio of the recommendation result caches",
		},
	)

	// Catalog Metrics
	CatalogVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_version",
			Help: "Version counter of the loaded catalog snapshot",
		},
	)

	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_reloads_total",
			Help: "Total number of catalog reload attempts",
		},
		[]string{"result"}, // "success", "failure"
	)

	CatalogEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_entries",
			Help: "Number of entries in the loaded catalog",
		},
		[]string{"type"}, // "item", "package"
	)

	// Store Metrics
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kvstore_operation_duration_seconds",
			Help:    "Duration of key-value store operations",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
		},
		[]string{"backend", "operation"},
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kvstore_errors_total",
			Help: "Total number of failed key-value store operations",
		},
		[]string{"backend", "operation"},
	)

	StoreGCRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kvstore_gc_runs_total",
			Help: "Total number of key-value store maintenance passes",
		},
		[]string{"result"}, // "rewritten", "swept", "noop", "error"
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Application Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordValidation records one validation and each violation code it produced.
func RecordValidation(codes []string) {
	if len(codes) == 0 {
		CustomizationValidations.WithLabelValues("valid").Inc()
		return
	}
	CustomizationValidations.WithLabelValues("invalid").Inc()
	for _, code := range codes {
		CustomizationViolations.WithLabelValues(code).Inc()
	}
}

// RecordComputationError counts a rejected price computation.
func RecordComputationError(operation string) {
	PricingComputationErrors.WithLabelValues(operation).Inc()
}

// RecordCartOperation records a cart operation and how many lines it added.
func RecordCartOperation(operation string, duration time.Duration, linesAdded int, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	CartOperationDuration.WithLabelValues(operation, result).Observe(duration.Seconds())
	if linesAdded > 0 {
		CartLinesAdded.Add(float64(linesAdded))
	}
}

// RecordRecommendations records how many results each fallback stage contributed.
func RecordRecommendations(kind string, byStage map[string]int, duration time.Duration) {
	RecommendationDuration.WithLabelValues(kind).Observe(duration.Seconds())
	for stage, n := range byStage {
		if n > 0 {
			RecommendationsServed.WithLabelValues(kind, stage).Add(float64(n))
		}
	}
}

// RecordRecommendationCacheSize publishes the cache size and lifetime hit ratio.
func RecordRecommendationCacheSize(entries int, hits, misses int64) {
	RecommendationCacheEntries.Set(float64(entries))
	if total := hits + misses; total > 0 {
		RecommendationCacheHitRatio.Set(float64(hits) / float64(total))
	}
}

// RecordRecommendationCache records a cache lookup outcome.
func RecordRecommendationCache(hit bool) {
	if hit {
		RecommendationCacheHits.Inc()
	} else {
		RecommendationCacheMisses.Inc()
	}
}

// RecordCatalogReload records a catalog (re)load. On success the version and
// entry gauges are updated.
func RecordCatalogReload(version uint64, items, packages int, err error) {
	if err != nil {
		CatalogReloads.WithLabelValues("failure").Inc()
		return
	}
	CatalogReloads.WithLabelValues("success").Inc()
	CatalogVersion.Set(float64(version))
	CatalogEntries.WithLabelValues("item").Set(float64(items))
	CatalogEntries.WithLabelValues("package").Set(float64(packages))
}

// RecordStoreOperation records a key-value store operation. Misses are not errors.
func RecordStoreOperation(backend, operation string, duration time.Duration, err error) {
	StoreOperationDuration.WithLabelValues(backend, operation).Observe(duration.Seconds())
	if err != nil {
		StoreErrors.WithLabelValues(backend, operation).Inc()
	}
}

// RecordStoreGC records one store maintenance pass.
func RecordStoreGC(result string) {
	StoreGCRuns.WithLabelValues(result).Inc()
}
