// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/httprate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/platewise/internal/kvstore"
)

func TestCounter_Windows(t *testing.T) {
	kv := kvstore.NewMemory()
	c := NewCounter(kv, "")
	c.Config(10, time.Minute)

	prev := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	curr := prev.Add(time.Minute)

	require.NoError(t, c.IncrementBy("10.0.0.1", prev, 4))
	require.NoError(t, c.Increment("10.0.0.1", curr))
	require.NoError(t, c.Increment("10.0.0.1", curr))
	require.NoError(t, c.Increment("10.0.0.2", curr))

	cur, old, err := c.Get("10.0.0.1", curr, prev)
	require.NoError(t, err)
	assert.Equal(t, 2, cur)
	assert.Equal(t, 4, old)

	cur, old, err = c.Get("10.0.0.3", curr, prev)
	require.NoError(t, err)
	assert.Zero(t, cur)
	assert.Zero(t, old)

	n, err := kvstore.Counter(context.Background(), kv, "ratelimit:10.0.0.2:"+"1772366460")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCounter_CountersExpireAfterTwoWindows(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	kv := kvstore.NewMemoryWithClock(func() time.Time { return now })
	c := NewCounter(kv, "rl:")
	c.Config(10, time.Minute)

	require.NoError(t, c.Increment("k", now))

	now = now.Add(119 * time.Second)
	cur, _, err := c.Get("k", now.Add(-119*time.Second), time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 1, cur)

	now = now.Add(2 * time.Second)
	cur, _, err = c.Get("k", now.Add(-121*time.Second), time.Time{})
	require.NoError(t, err)
	assert.Zero(t, cur)
}

func TestCounter_WithHTTPRate(t *testing.T) {
	limiter := httprate.Limit(2, time.Hour,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitCounter(NewCounter(kvstore.NewMemory(), "")),
	)
	handler := limiter(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}
