// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/platewise/internal/catalog/catalogtest"
	"github.com/tomtom215/platewise/internal/recommend"
)

type countingSweeper struct{ n atomic.Int32 }

func (s *countingSweeper) SweepCache() int {
	s.n.Add(1)
	return 1
}

func TestCacheSweepService_Interface(t *testing.T) {
	var _ suture.Service = (*CacheSweepService)(nil)
	var _ CacheSweeper = (*recommend.Engine)(nil)
}

func TestCacheSweepService_DefaultInterval(t *testing.T) {
	svc := NewCacheSweepService(&countingSweeper{}, 0)
	if svc.interval != DefaultCacheSweepInterval {
		t.Errorf("interval = %v, want %v", svc.interval, DefaultCacheSweepInterval)
	}
	if svc.String() != "cache-sweep" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestCacheSweepService_Serve(t *testing.T) {
	sweeper := &countingSweeper{}
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- NewCacheSweepService(sweeper, 5*time.Millisecond).Serve(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for sweeper.n.Load() < 2 {
		if time.Now().After(deadline) {
			t.Fatal("cache was never swept")
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
}

func TestCacheSweepService_Engine(t *testing.T) {
	engine, err := recommend.NewEngine(catalogtest.Repository(), recommend.DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	if _, err := engine.RelatedItems(context.Background(), "pad-thai", 3); err != nil {
		t.Fatalf("RelatedItems() error = %v", err)
	}
	if removed := engine.SweepCache(); removed != 0 {
		t.Errorf("SweepCache() = %d, want 0 before the TTL passes", removed)
	}
}
