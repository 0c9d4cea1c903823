// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

/*
Package middleware provides HTTP middleware components for the API.

Key Components:

  - Request ID: UUID-based request tracking, propagated into the logging context
  - Prometheus Metrics: request count, latency and in-flight gauge per route pattern
  - Compression: gzip for responses of at least MinCompressSize bytes

Every middleware has the http.HandlerFunc shape; the api package adapts them
to chi's func(http.Handler) http.Handler.

Middleware Stack:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors)
	r.Route("/api/v1", func(r chi.Router) {
	    r.Use(rateLimit)
	    r.Use(chiMiddleware(middleware.PrometheusMetrics))
	    r.Use(chiMiddleware(middleware.Compression))
	    ...
	})

Usage Example - Request ID:

	func handler(w http.ResponseWriter, r *http.Request) {
	    logging.Ctx(r.Context()).Info().Msg("handling request") // carries request_id
	    id := middleware.GetRequestID(r.Context())
	}

Compression Details:

The compression middleware buffers the first MinCompressSize bytes. Bodies
that stay below the threshold are written uncompressed with their original
headers; larger bodies are streamed through a pooled gzip.Writer. Clients
that send "gzip;q=0" or no gzip coding at all are never compressed.

Thread Safety:

All middleware components are safe for concurrent use. Per-request state
lives in the wrapped response writer.
*/
package middleware
