// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/platewise/internal/cart"
	"github.com/tomtom215/platewise/internal/catalog"
	"github.com/tomtom215/platewise/internal/catalog/catalogtest"
	"github.com/tomtom215/platewise/internal/customize"
	"github.com/tomtom215/platewise/internal/kvstore"
	"github.com/tomtom215/platewise/internal/models"
	"github.com/tomtom215/platewise/internal/recommend"
)

type testEnv struct {
	repo    *catalog.Memory
	kv      *kvstore.Memory
	handler http.Handler
}

type testOptions struct {
	cart       cart.Config
	middleware *ChiMiddlewareConfig
}

func newTestEnv(t *testing.T, opts ...func(*testOptions)) *testEnv {
	t.Helper()

	o := testOptions{cart: cart.DefaultConfig()}
	o.middleware = DefaultChiMiddlewareConfig()
	o.middleware.RateLimitDisabled = true
	for _, fn := range opts {
		fn(&o)
	}

	repo := catalogtest.Repository()
	kv := kvstore.NewMemory()
	validator := customize.New(customize.Options{})
	engine, err := recommend.NewEngine(repo, recommend.DefaultConfig())
	require.NoError(t, err)

	h := NewHandler(Dependencies{
		Catalog:   repo,
		Validator: validator,
		Carts:     cart.NewService(repo, cart.NewKVStore(kv, o.cart.TTL), cart.NewComposer(validator), o.cart),
		Engine:    engine,
	})
	return &testEnv{
		repo:    repo,
		kv:      kv,
		handler: NewRouter(h, NewChiMiddleware(o.middleware)).SetupChi(),
	}
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Status string           `json:"status"`
	Data   json.RawMessage  `json:"data"`
	Error  *models.APIError `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	env := decodeEnvelope(t, rec)
	require.Equal(t, models.StatusSuccess, env.Status, rec.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, v))
}

func requireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) *models.APIError {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	env := decodeEnvelope(t, rec)
	require.Equal(t, models.StatusError, env.Status)
	require.NotNil(t, env.Error)
	require.Equal(t, code, env.Error.Code, env.Error.Message)
	return env.Error
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var health models.HealthStatus
	decodeData(t, rec, &health)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, 6, health.Items)
	assert.Equal(t, 4, health.Packages)
	assert.NotZero(t, health.CatalogVersion)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestHealth_DegradedWhenCatalogEmpty(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.repo.Replace(catalog.Snapshot{}))

	var health models.HealthStatus
	decodeData(t, env.do(t, http.MethodGet, "/health", ""), &health)
	assert.Equal(t, "degraded", health.Status)
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodGet, "/api/v1/items/pad-thai", "")

	rec := env.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "api_requests_total")
}

func TestUnknownRoute(t *testing.T) {
	env := newTestEnv(t)
	requireErrorCode(t, env.do(t, http.MethodGet, "/api/v1/nope", ""), http.StatusNotFound, CodeNotFound)
}
