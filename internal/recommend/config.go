// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package recommend

import (
	"fmt"
	"time"

	"github.com/tomtom215/platewise/internal/catalog"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// DefaultLimit is used when a request asks for zero or fewer results.
	DefaultLimit int `koanf:"default_limit"`

	// MaxLimit caps the number of results per request.
	MaxLimit int `koanf:"max_limit"`

	// MinScore is the score a candidate must exceed to be ranked by the
	// scorer rather than by popularity.
	MinScore float64 `koanf:"min_score"`

	// CacheSize is the number of cached result lists per kind.
	// Negative disables the cache.
	CacheSize int           `koanf:"cache_size"`
	CacheTTL  time.Duration `koanf:"cache_ttl"`

	// Complements overrides the complementary category pairs.
	Complements Complements `koanf:"complements"`

	// Weights overrides individual rule weights by table and rule name.
	Weights WeightOverrides `koanf:"weights"`
}

// WeightOverrides maps rule names to replacement weights, per table.
type WeightOverrides struct {
	Item              map[string]float64 `koanf:"item"`
	PackageItem       map[string]float64 `koanf:"package_item"`
	Package           map[string]float64 `koanf:"package"`
	Popularity        map[string]float64 `koanf:"popularity"`
	PackagePopularity map[string]float64 `koanf:"package_popularity"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		DefaultLimit: 4,
		MaxLimit:     20,
		MinScore:     0,
		CacheSize:    1024,
		CacheTTL:     5 * time.Minute,
		Complements:  DefaultComplements(),
	}
}

// Validate checks limits and that every weight override names a known rule.
func (c *Config) Validate() error {
	if c.DefaultLimit < 1 {
		return fmt.Errorf("recommend.default_limit must be positive, got %d", c.DefaultLimit)
	}
	if c.MaxLimit < c.DefaultLimit {
		return fmt.Errorf("recommend.max_limit must be >= recommend.default_limit, got %d < %d", c.MaxLimit, c.DefaultLimit)
	}
	if c.MinScore < 0 {
		return fmt.Errorf("recommend.min_score must be non-negative, got %f", c.MinScore)
	}
	if c.CacheSize >= 0 && c.CacheTTL < 0 {
		return fmt.Errorf("recommend.cache_ttl must be non-negative, got %v", c.CacheTTL)
	}
	for _, p := range c.Complements {
		if p.A == "" || p.B == "" {
			return fmt.Errorf("recommend.complements: empty category in pair %q/%q", p.A, p.B)
		}
	}
	_, err := c.tables()
	return err
}

// tableSet holds the scoring tables built from a Config.
type tableSet struct {
	item              Table[*catalog.Item, *catalog.Item]
	packageItem       Table[catalog.ExpandedPackage, *catalog.Item]
	pkg               Table[catalog.ExpandedPackage, catalog.ExpandedPackage]
	popularity        Table[NoSource, *catalog.Item]
	packagePopularity Table[NoSource, catalog.ExpandedPackage]
}

func (c *Config) tables() (tableSet, error) {
	complements := c.Complements
	if complements == nil {
		complements = DefaultComplements()
	}

	var (
		ts  tableSet
		err error
	)
	if ts.item, err = ItemTable(complements).WithWeights(c.Weights.Item); err != nil {
		return tableSet{}, fmt.Errorf("recommend.weights.item: %w", err)
	}
	if ts.packageItem, err = PackageItemTable().WithWeights(c.Weights.PackageItem); err != nil {
		return tableSet{}, fmt.Errorf("recommend.weights.package_item: %w", err)
	}
	if ts.pkg, err = PackageTable().WithWeights(c.Weights.Package); err != nil {
		return tableSet{}, fmt.Errorf("recommend.weights.package: %w", err)
	}
	if ts.popularity, err = PopularityTable().WithWeights(c.Weights.Popularity); err != nil {
		return tableSet{}, fmt.Errorf("recommend.weights.popularity: %w", err)
	}
	if ts.packagePopularity, err = PackagePopularityTable().WithWeights(c.Weights.PackagePopularity); err != nil {
		return tableSet{}, fmt.Errorf("recommend.weights.package_popularity: %w", err)
	}
	return ts, nil
}

// limit clamps a requested result count.
func (c *Config) limit(requested int) int {
	if requested <= 0 {
		return c.DefaultLimit
	}
	return min(requested, c.MaxLimit)
}
