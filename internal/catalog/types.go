// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package catalog

import (
	"strings"
	"time"

	"github.com/tomtom215/platewise/internal/money"
)

// Kind is the selection mode of a customization.
type Kind string

const (
	KindSingleSelect Kind = "single_select"
	KindMultiSelect  Kind = "multi_select"
	KindFreeText     Kind = "free_text"
)

// PackageType is the subscription cadence of a package.
type PackageType string

const (
	PackageDaily   PackageType = "daily"
	PackageWeekly  PackageType = "weekly"
	PackageMonthly PackageType = "monthly"
)

// packageTypeOrder is the ordering used for adjacency.
var packageTypeOrder = map[PackageType]int{
	PackageDaily:   0,
	PackageWeekly:  1,
	PackageMonthly: 2,
}

// Adjacent reports whether t and other are neighbours in daily, weekly, monthly.
func (t PackageType) Adjacent(other PackageType) bool {
	a, ok1 := packageTypeOrder[t]
	b, ok2 := packageTypeOrder[other]
	if !ok1 || !ok2 {
		return false
	}
	return a-b == 1 || b-a == 1
}

// Option is one selectable choice of a customization.
type Option struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	PriceModifier money.Cents `json:"price_modifier"`
	Available     bool        `json:"available"`
}

// Customization describes one configurable aspect of an item.
type Customization struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Kind     Kind   `json:"kind"`
	Required bool   `json:"required"`
	// MaxSelections bounds multi-select choices; 0 means unbounded.
	MaxSelections int      `json:"max_selections,omitempty"`
	Options       []Option `json:"options,omitempty"`
}

// Option returns the option with the given id.
func (c *Customization) Option(id string) (*Option, bool) {
	for i := range c.Options {
		if c.Options[i].ID == id {
			return &c.Options[i], true
		}
	}
	return nil, false
}

// Nutrition is optional per-portion nutrition data.
type Nutrition struct {
	ProteinGrams int `json:"protein_grams"`
	Calories     int `json:"calories"`
}

// Item is a single orderable dish.
type Item struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	BasePrice money.Cents `json:"base_price"`
	Category  string      `json:"category"`
	// Tags are lower-case and de-duplicated at ingestion.
	Tags           []string        `json:"tags,omitempty"`
	Customizations []Customization `json:"customizations,omitempty"`
	// PrepTime is zero when unknown.
	PrepTime   time.Duration `json:"-"`
	Nutrition  *Nutrition    `json:"nutrition,omitempty"`
	RelatedIDs []string      `json:"related_ids,omitempty"`
}

// Customization returns the customization definition with the given id.
func (i *Item) Customization(id string) (*Customization, bool) {
	for k := range i.Customizations {
		if i.Customizations[k].ID == id {
			return &i.Customizations[k], true
		}
	}
	return nil, false
}

// HasTag reports whether the item carries tag (case-insensitive).
func (i *Item) HasTag(tag string) bool {
	tag = strings.ToLower(tag)
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasPrepTime reports whether a preparation time is known.
func (i *Item) HasPrepTime() bool {
	return i.PrepTime > 0
}

// InCategory compares categories case-insensitively.
func (i *Item) InCategory(category string) bool {
	return SameCategory(i.Category, category)
}

// SameCategory compares two category names ignoring case and surrounding space.
func SameCategory(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// Selection is the canonical, id-based selection for one customization.
type Selection struct {
	CustomizationID string   `json:"customization_id"`
	OptionIDs       []string `json:"option_ids,omitempty"`
	Text            string   `json:"text,omitempty"`
}

// HasText reports whether the selection carries a non-blank free-text value.
func (s Selection) HasText() bool {
	return strings.TrimSpace(s.Text) != ""
}

// PackageItem is one member of a package.
type PackageItem struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	// Included holds the customizations that come with the member by default.
	Included []Selection `json:"included,omitempty"`
}

// Package is a fixed-price bundle of items.
type Package struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Price      money.Cents   `json:"price"`
	Type       PackageType   `json:"type"`
	Items      []PackageItem `json:"items"`
	RelatedIDs []string      `json:"related_ids,omitempty"`
}

// ItemCount is the total number of portions in the package.
func (p *Package) ItemCount() int {
	n := 0
	for _, it := range p.Items {
		n += it.Quantity
	}
	return n
}
