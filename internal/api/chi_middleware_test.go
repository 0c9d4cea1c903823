// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/platewise/internal/kvstore"
	"github.com/tomtom215/platewise/internal/ratelimit"
)

func TestNewChiMiddleware_DefaultConfig(t *testing.T) {
	m := NewChiMiddleware(nil)

	require.NotNil(t, m.config)
	assert.Empty(t, m.config.CORSAllowedOrigins, "origins require explicit configuration")
	assert.Equal(t, 86400, m.config.CORSMaxAge)
	assert.Equal(t, 100, m.config.RateLimitRequests)
	assert.Equal(t, time.Minute, m.config.RateLimitWindow)
}

func TestRateLimit_SharedCounter(t *testing.T) {
	kv := kvstore.NewMemory()
	env := newTestEnv(t, func(o *testOptions) {
		o.middleware.RateLimitDisabled = false
		o.middleware.RateLimitRequests = 2
		o.middleware.RateLimitWindow = time.Minute
		o.middleware.RateLimitCounter = ratelimit.NewCounter(kv, ratelimit.DefaultPrefix)
	})

	for i := 0; i < 2; i++ {
		rec := env.do(t, http.MethodGet, "/api/v1/items/jasmine-rice", "")
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
	}

	rec := env.do(t, http.MethodGet, "/api/v1/items/jasmine-rice", "")
	requireErrorCode(t, rec, http.StatusTooManyRequests, CodeRateLimited)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.NotZero(t, kv.Len(), "counts live in the store")

	assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/health", "").Code, "health is not rate limited")
}

func TestRateLimit_Disabled(t *testing.T) {
	m := NewChiMiddleware(&ChiMiddlewareConfig{RateLimitDisabled: true, RateLimitRequests: 1, RateLimitWindow: time.Minute})
	h := m.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}

func TestCORS_Preflight(t *testing.T) {
	env := newTestEnv(t, func(o *testOptions) {
		o.middleware.CORSAllowedOrigins = []string{"https://shop.example"}
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/carts/s1/lines", nil)
	req.Header.Set("Origin", "https://shop.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	assert.Equal(t, "https://shop.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAPISecurityHeaders(t *testing.T) {
	h := APISecurityHeaders()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	h.ServeHTTP(rec, req)

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Contains(t, rec.Header().Get("Strict-Transport-Security"), "max-age=")
}
