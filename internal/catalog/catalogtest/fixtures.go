// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

// Package catalogtest provides a small Thai restaurant catalog for tests.
package catalogtest

import (
	"time"

	"github.com/tomtom215/platewise/internal/catalog"
)

// Customization and option ids used by PadThai.
const (
	SpiceID    = "spice"
	ToppingsID = "toppings"
	NoteID     = "kitchen-note"

	SpiceMild    = "mild"
	SpiceHot     = "hot"
	SpiceVolcano = "volcano"

	ToppingEgg    = "egg"
	ToppingTofu   = "tofu"
	ToppingShrimp = "shrimp"
)

// PadThai returns a main dish with a required single-select, a multi-select
// limited to two choices and an optional free-text field.
func PadThai() *catalog.Item {
	return &catalog.Item{
		ID:         "pad-thai",
		Name:       "Pad Thai",
		BasePrice:  1250,
		Category:   "Main Dishes",
		Tags:       []string{"thai", "noodles", "popular"},
		PrepTime:   15 * time.Minute,
		Nutrition:  &catalog.Nutrition{ProteinGrams: 28, Calories: 650},
		RelatedIDs: []string{"spring-rolls"},
		Customizations: []catalog.Customization{
			{
				ID:       SpiceID,
				Name:     "Spice Level",
				Kind:     catalog.KindSingleSelect,
				Required: true,
				Options: []catalog.Option{
					{ID: SpiceMild, Name: "Mild", PriceModifier: 0, Available: true},
					{ID: SpiceHot, Name: "Hot", PriceModifier: 50, Available: true},
					{ID: SpiceVolcano, Name: "Volcano", PriceModifier: 100, Available: false},
				},
			},
			{
				ID:            ToppingsID,
				Name:          "Toppings",
				Kind:          catalog.KindMultiSelect,
				MaxSelections: 2,
				Options: []catalog.Option{
					{ID: ToppingEgg, Name: "Fried Egg", PriceModifier: 100, Available: true},
					{ID: ToppingTofu, Name: "Tofu", PriceModifier: 150, Available: true},
					{ID: ToppingShrimp, Name: "Shrimp", PriceModifier: 300, Available: true},
				},
			},
			{
				ID:   NoteID,
				Name: "Kitchen Note",
				Kind: catalog.KindFreeText,
			},
		},
	}
}

// Items returns the sample items in catalog order.
func Items() []*catalog.Item {
	return []*catalog.Item{
		PadThai(),
		{
			ID:        "green-curry",
			Name:      "Green Curry",
			BasePrice: 1300,
			Category:  "Main Dishes",
			Tags:      []string{"thai", "spicy", "popular"},
			PrepTime:  20 * time.Minute,
			Nutrition: &catalog.Nutrition{ProteinGrams: 30, Calories: 720},
		},
		{
			ID:        "spring-rolls",
			Name:      "Spring Rolls",
			BasePrice: 600,
			Category:  "Starters",
			Tags:      []string{"thai", "vegetarian"},
			PrepTime:  10 * time.Minute,
		},
		{
			ID:        "tom-yum",
			Name:      "Tom Yum",
			BasePrice: 850,
			Category:  "Soups",
			Tags:      []string{"thai", "spicy", "traditional"},
			PrepTime:  12 * time.Minute,
		},
		{
			ID:        "jasmine-rice",
			Name:      "Jasmine Rice",
			BasePrice: 300,
			Category:  "Sides",
			Tags:      []string{"thai", "vegetarian"},
			PrepTime:  5 * time.Minute,
		},
		{
			ID:        "mango-sticky-rice",
			Name:      "Mango Sticky Rice",
			BasePrice: 700,
			Category:  "Desserts",
			Tags:      []string{"thai", "traditional", "popular"},
			PrepTime:  8 * time.Minute,
		},
	}
}

// Packages returns the sample packages in catalog order.
func Packages() []*catalog.Package {
	return []*catalog.Package{
		{
			ID:    "weekday-lunch",
			Name:  "Weekday Lunch",
			Price: 1650,
			Type:  catalog.PackageDaily,
			Items: []catalog.PackageItem{
				{
					MenuItemID: "pad-thai",
					Quantity:   1,
					Included:   []catalog.Selection{{CustomizationID: SpiceID, OptionIDs: []string{SpiceMild}}},
				},
				{MenuItemID: "spring-rolls", Quantity: 1},
			},
			RelatedIDs: []string{"weekly-light"},
		},
		{
			ID:    "family-week",
			Name:  "Family Week",
			Price: 5500,
			Type:  catalog.PackageWeekly,
			Items: []catalog.PackageItem{
				{
					MenuItemID: "pad-thai",
					Quantity:   2,
					Included:   []catalog.Selection{{CustomizationID: SpiceID, OptionIDs: []string{SpiceMild}}},
				},
				{MenuItemID: "green-curry", Quantity: 2},
				{MenuItemID: "jasmine-rice", Quantity: 4},
			},
		},
		{
			ID:    "weekly-light",
			Name:  "Weekly Light",
			Price: 4000,
			Type:  catalog.PackageWeekly,
			Items: []catalog.PackageItem{
				{MenuItemID: "tom-yum", Quantity: 3},
				{MenuItemID: "spring-rolls", Quantity: 3},
			},
		},
		{
			ID:    "monthly-feast",
			Name:  "Monthly Feast",
			Price: 19000,
			Type:  catalog.PackageMonthly,
			Items: []catalog.PackageItem{
				{
					MenuItemID: "pad-thai",
					Quantity:   8,
					Included:   []catalog.Selection{{CustomizationID: SpiceID, OptionIDs: []string{SpiceHot}}},
				},
				{MenuItemID: "green-curry", Quantity: 8},
			},
		},
	}
}

// Snapshot returns the full sample catalog.
func Snapshot() catalog.Snapshot {
	return catalog.Snapshot{Items: Items(), Packages: Packages()}
}

// Repository returns a Memory repository holding Snapshot.
func Repository() *catalog.Memory {
	repo, err := catalog.NewMemory(Snapshot())
	if err != nil {
		panic(err)
	}
	return repo
}
