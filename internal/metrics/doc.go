// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto at
package init. Callers use the Record* helpers rather than touching the
collectors directly.

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

HTTP Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limiter rejections (counter)
    Labels: endpoint

Customization and Pricing Metrics:
  - customization_validations_total: Validations (counter)
    Labels: result (valid, invalid)
  - customization_violations_total: Violations (counter)
    Labels: code
  - pricing_computation_errors_total: Rejected computations (counter)
    Labels: operation

Cart Metrics:
  - cart_lines_added_total: Line items created (counter)
  - cart_operation_duration_seconds: Cart operation latency (histogram)
    Labels: operation, result

Recommendation Metrics:
  - recommendations_served_total: Results by fallback stage (counter)
    Labels: kind (item, package_item, package), stage (explicit, scored, popular)
  - recommendation_duration_seconds: List build time (histogram)
    Labels: kind
  - recommendation_cache_hits_total, recommendation_cache_misses_total (counters)

Catalog Metrics:
  - catalog_version: Snapshot version (gauge)
  - catalog_reloads_total: Reload attempts (counter)
    Labels: result
  - catalog_entries: Loaded entries (gauge)
    Labels: type (item, package)

Store Metrics:
  - kvstore_operation_duration_seconds: Store latency (histogram)
    Labels: backend, operation
  - kvstore_errors_total: Failed store operations (counter)
    Labels: backend, operation
  - kvstore_gc_runs_total: Badger value log GC passes (counter)
    Labels: result
  - circuit_breaker_state, circuit_breaker_requests_total,
    circuit_breaker_state_transitions_total

# Example Queries

Violation rate by code:

	sum by (code) (rate(customization_violations_total[5m]))

Share of recommendations served by the popularity fallback:

	sum(rate(recommendations_served_total{stage="popular"}[1h]))
	  / sum(rate(recommendations_served_total[1h]))
*/
package metrics
