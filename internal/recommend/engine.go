// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package recommend

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/platewise/internal/cache"
	"github.com/tomtom215/platewise/internal/catalog"
	"github.com/tomtom215/platewise/internal/logging"
	"github.com/tomtom215/platewise/internal/metrics"
)

// Recommendation kinds, used in cache keys and metrics.
const (
	KindItem        = "item"
	KindPackageItem = "package_item"
	KindPackage     = "package"
)

// Engine serves recommendations over a catalog repository.
// It is safe for concurrent use.
type Engine struct {
	repo   catalog.Repository
	config Config
	logger zerolog.Logger

	items       Orchestrator[*catalog.Item, *catalog.Item]
	complements Orchestrator[catalog.ExpandedPackage, *catalog.Item]
	packages    Orchestrator[catalog.ExpandedPackage, catalog.ExpandedPackage]

	// nil when caching is disabled
	itemCache    *cache.LRU[[]Recommendation[*catalog.Item]]
	packageCache *cache.LRU[[]Recommendation[catalog.ExpandedPackage]]
}

// NewEngine creates an engine. Results are cached per catalog version, so a
// catalog reload never serves stale lists.
func NewEngine(repo catalog.Repository, cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	ts, err := cfg.tables()
	if err != nil {
		return nil, err
	}

	e := &Engine{
		repo:   repo,
		config: cfg,
		logger: logging.WithComponent("recommend"),
		items: Orchestrator[*catalog.Item, *catalog.Item]{
			Scorer: ts.item, Popularity: ts.popularity, ID: idOfItem, MinScore: cfg.MinScore,
		},
		complements: Orchestrator[catalog.ExpandedPackage, *catalog.Item]{
			Scorer: ts.packageItem, Popularity: ts.popularity, ID: idOfItem, MinScore: cfg.MinScore,
		},
		packages: Orchestrator[catalog.ExpandedPackage, catalog.ExpandedPackage]{
			Scorer: ts.pkg, Popularity: ts.packagePopularity, ID: idOfPackage, MinScore: cfg.MinScore,
		},
	}
	if cfg.CacheSize >= 0 {
		e.itemCache = cache.NewLRU[[]Recommendation[*catalog.Item]](cfg.CacheSize, cfg.CacheTTL)
		e.packageCache = cache.NewLRU[[]Recommendation[catalog.ExpandedPackage]](cfg.CacheSize, cfg.CacheTTL)
	}

	e.logger.Info().
		Int("default_limit", cfg.DefaultLimit).
		Int("max_limit", cfg.MaxLimit).
		Float64("min_score", cfg.MinScore).
		Bool("cache", e.itemCache != nil).
		Msg("Recommendation engine ready")
	return e, nil
}

// RelatedItems recommends items for an item page. The only error is an
// unknown source item.
func (e *Engine) RelatedItems(ctx context.Context, itemID string, limit int) ([]Recommendation[*catalog.Item], error) {
	start := time.Now()
	version := e.repo.Version()
	limit = e.config.limit(limit)

	src, err := e.repo.Item(itemID)
	if err != nil {
		return nil, err
	}

	key := cacheKey(version, KindItem, itemID, limit)
	if recs, ok := lookup(e.itemCache, key); ok {
		return recs, nil
	}

	recs := e.items.Recommend(src, src.ID, src.RelatedIDs, e.repo.Items(), limit)
	store(e.itemCache, key, recs)
	e.record(ctx, KindItem, itemID, stageCounts(recs), start)
	return slices.Clone(recs), nil
}

// PackageComplements recommends items to add to a package. Members of the
// package are not candidates.
func (e *Engine) PackageComplements(ctx context.Context, packageID string, limit int) ([]Recommendation[*catalog.Item], error) {
	start := time.Now()
	version := e.repo.Version()
	limit = e.config.limit(limit)

	src, err := e.expand(packageID)
	if err != nil {
		return nil, err
	}

	key := cacheKey(version, KindPackageItem, packageID, limit)
	if recs, ok := lookup(e.itemCache, key); ok {
		return recs, nil
	}

	pool := slices.DeleteFunc(e.repo.Items(), func(it *catalog.Item) bool {
		return slices.ContainsFunc(src.Members, func(m catalog.Member) bool { return m.Item.ID == it.ID })
	})
	recs := e.complements.Recommend(src, src.ID, nil, pool, limit)
	store(e.itemCache, key, recs)
	e.record(ctx, KindPackageItem, packageID, stageCounts(recs), start)
	return slices.Clone(recs), nil
}

// RelatedPackages recommends other packages for a package page. Packages
// whose members cannot be resolved are left out of the pool.
func (e *Engine) RelatedPackages(ctx context.Context, packageID string, limit int) ([]Recommendation[catalog.ExpandedPackage], error) {
	start := time.Now()
	version := e.repo.Version()
	limit = e.config.limit(limit)

	src, err := e.expand(packageID)
	if err != nil {
		return nil, err
	}

	key := cacheKey(version, KindPackage, packageID, limit)
	if recs, ok := lookup(e.packageCache, key); ok {
		return recs, nil
	}

	all := e.repo.Packages()
	pool := make([]catalog.ExpandedPackage, 0, len(all))
	for _, p := range all {
		exp, err := catalog.Expand(p, e.repo)
		if err != nil {
			logging.Ctx(ctx).Warn().Err(err).Str("package_id", p.ID).Msg("Skipping unresolvable package")
			continue
		}
		pool = append(pool, exp)
	}

	recs := e.packages.Recommend(src, src.ID, src.RelatedIDs, pool, limit)
	store(e.packageCache, key, recs)
	e.record(ctx, KindPackage, packageID, stageCounts(recs), start)
	return slices.Clone(recs), nil
}

// Purge drops every cached result.
func (e *Engine) Purge() {
	if e.itemCache != nil {
		e.itemCache.Clear()
		e.packageCache.Clear()
	}
}

// SweepCache drops expired cached results, publishes the cache size and
// returns how many entries were removed.
func (e *Engine) SweepCache() int {
	if e.itemCache == nil {
		return 0
	}
	removed := e.itemCache.CleanupExpired() + e.packageCache.CleanupExpired()

	itemHits, itemMisses, itemSize := e.itemCache.Stats()
	pkgHits, pkgMisses, pkgSize := e.packageCache.Stats()
	metrics.RecordRecommendationCacheSize(itemSize+pkgSize, itemHits+pkgHits, itemMisses+pkgMisses)
	return removed
}

func (e *Engine) expand(packageID string) (catalog.ExpandedPackage, error) {
	p, err := e.repo.Package(packageID)
	if err != nil {
		return catalog.ExpandedPackage{}, err
	}
	return catalog.Expand(p, e.repo)
}

func (e *Engine) record(ctx context.Context, kind, sourceID string, byStage map[string]int, start time.Time) {
	elapsed := time.Since(start)
	metrics.RecordRecommendations(kind, byStage, elapsed)

	logging.Ctx(ctx).Debug().
		Str("kind", kind).
		Str("source_id", sourceID).
		Int("explicit", byStage[string(StageExplicit)]).
		Int("scored", byStage[string(StageScored)]).
		Int("popular", byStage[string(StagePopular)]).
		Dur("elapsed", elapsed).
		Msg("Recommendations computed")
}

func cacheKey(version uint64, kind, id string, limit int) string {
	return fmt.Sprintf("v%d:%s:%s:%d", version, kind, id, limit)
}

func lookup[C any](c *cache.LRU[[]Recommendation[C]], key string) ([]Recommendation[C], bool) {
	if c == nil {
		return nil, false
	}
	recs, ok := c.Get(key)
	metrics.RecordRecommendationCache(ok)
	if !ok {
		return nil, false
	}
	return slices.Clone(recs), true
}

func store[C any](c *cache.LRU[[]Recommendation[C]], key string, recs []Recommendation[C]) {
	if c != nil {
		c.Add(key, recs)
	}
}

func stageCounts[C any](recs []Recommendation[C]) map[string]int {
	counts := make(map[string]int, len(Stages))
	for _, r := range recs {
		counts[string(r.Stage)]++
	}
	return counts
}

func idOfItem(it *catalog.Item) string { return it.ID }

func idOfPackage(p catalog.ExpandedPackage) string { return p.ID }
