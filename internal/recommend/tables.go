// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package recommend

import (
	"math"

	"github.com/tomtom215/platewise/internal/catalog"
	"github.com/tomtom215/platewise/internal/money"
)

// Category names the package rules single out.
const (
	CategoryStarters = "Starters"
	CategorySides    = "Sides"
)

// Tags the package and popularity rules look for.
const (
	TagPopular     = "popular"
	TagTraditional = "traditional"
	TagSpicy       = "spicy"
)

// ComplementPair declares two categories that go well together. "*" on
// either side matches any category.
type ComplementPair struct {
	A string `koanf:"a" json:"a"`
	B string `koanf:"b" json:"b"`
}

// Complements is a symmetric set of complementary category pairs.
type Complements []ComplementPair

// DefaultComplements pairs mains and soups with sides, and starters with
// everything.
func DefaultComplements() Complements {
	return Complements{
		{A: "Main Dishes", B: CategorySides},
		{A: "Soups", B: CategorySides},
		{A: CategoryStarters, B: "*"},
	}
}

// Match reports whether categories a and b complement each other. A category
// never complements itself.
func (cs Complements) Match(a, b string) bool {
	if catalog.SameCategory(a, b) {
		return false
	}
	for _, p := range cs {
		if (categoryMatches(p.A, a) && categoryMatches(p.B, b)) ||
			(categoryMatches(p.A, b) && categoryMatches(p.B, a)) {
			return true
		}
	}
	return false
}

func categoryMatches(pattern, category string) bool {
	return pattern == "*" || catalog.SameCategory(pattern, category)
}

// ItemTable scores a candidate item against a source item.
func ItemTable(complements Complements) Table[*catalog.Item, *catalog.Item] {
	return MustTable(
		Rule[*catalog.Item, *catalog.Item]{
			Name: "same_category", Weight: 50,
			Match: When(func(s, c *catalog.Item) bool { return c.InCategory(s.Category) }),
		},
		Rule[*catalog.Item, *catalog.Item]{
			Name: "price_within_25", Weight: 20, Tier: "price",
			Match: When(func(s, c *catalog.Item) bool { return withinPercent(s.BasePrice, c.BasePrice, 25) }),
		},
		Rule[*catalog.Item, *catalog.Item]{
			Name: "price_within_50", Weight: 10, Tier: "price",
			Match: When(func(s, c *catalog.Item) bool { return withinPercent(s.BasePrice, c.BasePrice, 50) }),
		},
		Rule[*catalog.Item, *catalog.Item]{
			Name: "shared_tag", Weight: 5,
			Match: sharedTags,
		},
		Rule[*catalog.Item, *catalog.Item]{
			Name: "prep_within_10m", Weight: 10, Tier: "prep",
			Match: When(func(s, c *catalog.Item) bool { return prepWithin(s, c, 10) }),
		},
		Rule[*catalog.Item, *catalog.Item]{
			Name: "prep_within_20m", Weight: 5, Tier: "prep",
			Match: When(func(s, c *catalog.Item) bool { return prepWithin(s, c, 20) }),
		},
		Rule[*catalog.Item, *catalog.Item]{
			Name: "complementary_category", Weight: 15,
			Match: When(func(s, c *catalog.Item) bool { return complements.Match(s.Category, c.Category) }),
		},
	)
}

// PackageItemTable scores an item as an add-on to a package.
func PackageItemTable() Table[catalog.ExpandedPackage, *catalog.Item] {
	type rule = Rule[catalog.ExpandedPackage, *catalog.Item]
	return MustTable(
		rule{
			Name: "new_category", Weight: 30,
			Match: When(func(p catalog.ExpandedPackage, c *catalog.Item) bool { return !p.HasCategory(c.Category) }),
		},
		rule{
			Name: "daily_starter", Weight: 20,
			Match: When(func(p catalog.ExpandedPackage, c *catalog.Item) bool {
				return p.Type == catalog.PackageDaily && c.InCategory(CategoryStarters)
			}),
		},
		rule{
			Name: "weekly_side", Weight: 15,
			Match: When(func(p catalog.ExpandedPackage, c *catalog.Item) bool {
				return p.Type == catalog.PackageWeekly && c.InCategory(CategorySides)
			}),
		},
		rule{
			Name: "monthly_any", Weight: 10,
			Match: When(func(p catalog.ExpandedPackage, _ *catalog.Item) bool { return p.Type == catalog.PackageMonthly }),
		},
		rule{
			Name: "price_up_to_15", Weight: 15, Tier: "price",
			Match: When(func(_ catalog.ExpandedPackage, c *catalog.Item) bool { return c.BasePrice <= 1500 }),
		},
		rule{
			Name: "price_up_to_25", Weight: 10, Tier: "price",
			Match: When(func(_ catalog.ExpandedPackage, c *catalog.Item) bool { return c.BasePrice <= 2500 }),
		},
		rule{
			Name: "popular", Weight: 10,
			Match: When(func(_ catalog.ExpandedPackage, c *catalog.Item) bool { return c.HasTag(TagPopular) }),
		},
	)
}

// PackageTable scores a candidate package against a source package.
func PackageTable() Table[catalog.ExpandedPackage, catalog.ExpandedPackage] {
	type rule = Rule[catalog.ExpandedPackage, catalog.ExpandedPackage]
	return MustTable(
		rule{
			Name: "same_type", Weight: 20,
			Match: When(func(s, c catalog.ExpandedPackage) bool { return s.Type == c.Type }),
		},
		rule{
			Name: "price_within_30", Weight: 15, Tier: "price",
			Match: When(func(s, c catalog.ExpandedPackage) bool { return withinPercent(s.Price, c.Price, 30) }),
		},
		rule{
			Name: "price_within_50", Weight: 10, Tier: "price",
			Match: When(func(s, c catalog.ExpandedPackage) bool { return withinPercent(s.Price, c.Price, 50) }),
		},
		rule{
			Name: "item_count_within_2", Weight: 10, Tier: "size",
			Match: When(func(s, c catalog.ExpandedPackage) bool { return absInt(s.ItemCount()-c.ItemCount()) <= 2 }),
		},
		rule{
			Name: "item_count_within_5", Weight: 5, Tier: "size",
			Match: When(func(s, c catalog.ExpandedPackage) bool { return absInt(s.ItemCount()-c.ItemCount()) <= 5 }),
		},
		rule{
			Name: "adjacent_type", Weight: 25,
			Match: When(func(s, c catalog.ExpandedPackage) bool { return s.Type.Adjacent(c.Type) }),
		},
	)
}

// PopularityTable scores an item on its own.
func PopularityTable() Table[NoSource, *catalog.Item] {
	type rule = Rule[NoSource, *catalog.Item]
	return MustTable(
		rule{Name: "popular", Weight: 50, Match: When(hasTag(TagPopular))},
		rule{Name: "traditional", Weight: 20, Match: When(hasTag(TagTraditional))},
		rule{Name: "spicy", Weight: 15, Match: When(hasTag(TagSpicy))},
		rule{
			Name: "price_up_to_20", Weight: 10,
			Match: When(func(_ NoSource, c *catalog.Item) bool { return c.BasePrice <= 2000 }),
		},
		rule{
			Name: "balanced_nutrition", Weight: 8,
			Match: When(func(_ NoSource, c *catalog.Item) bool {
				return c.Nutrition != nil && c.Nutrition.ProteinGrams >= 25 && c.Nutrition.Calories <= 700
			}),
		},
	)
}

// PackagePopularityTable scores a package on its own by its members.
func PackagePopularityTable() Table[NoSource, catalog.ExpandedPackage] {
	type rule = Rule[NoSource, catalog.ExpandedPackage]
	return MustTable(
		rule{Name: "popular_members", Weight: 10, Match: membersTagged(TagPopular)},
		rule{Name: "traditional_members", Weight: 5, Match: membersTagged(TagTraditional)},
	)
}

func hasTag(tag string) func(NoSource, *catalog.Item) bool {
	return func(_ NoSource, c *catalog.Item) bool { return c.HasTag(tag) }
}

func membersTagged(tag string) func(NoSource, catalog.ExpandedPackage) int {
	return func(_ NoSource, p catalog.ExpandedPackage) int {
		n := 0
		for _, m := range p.Members {
			if m.Item.HasTag(tag) {
				n++
			}
		}
		return n
	}
}

func sharedTags(s, c *catalog.Item) int {
	n := 0
	for _, t := range c.Tags {
		if s.HasTag(t) {
			n++
		}
	}
	return n
}

func prepWithin(s, c *catalog.Item, minutes int64) bool {
	if !s.HasPrepTime() || !c.HasPrepTime() {
		return false
	}
	d := s.PrepTime - c.PrepTime
	if d < 0 {
		d = -d
	}
	return d.Minutes() <= float64(minutes)
}

// withinPercent reports whether candidate differs from source by at most pct
// percent of source, in exact integer arithmetic.
func withinPercent(source, candidate money.Cents, pct int64) bool {
	diff := int64(candidate - source)
	if diff < 0 {
		diff = -diff
	}
	if diff < 0 || diff > math.MaxInt64/100 {
		return false
	}
	limit := int64(source)
	if limit < 0 || (pct != 0 && limit > math.MaxInt64/pct) {
		return false
	}
	return diff*100 <= limit*pct
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
