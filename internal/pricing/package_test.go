// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package pricing

import (
	"testing"

	"github.com/tomtom215/platewise/internal/catalog"
	"github.com/tomtom215/platewise/internal/catalog/catalogtest"
)

func expandedPackage(t *testing.T, id string) catalog.ExpandedPackage {
	t.Helper()
	repo := catalogtest.Repository()
	pkg, err := repo.Package(id)
	if err != nil {
		t.Fatalf("Package(%s) error: %v", id, err)
	}
	exp, err := catalog.Expand(pkg, repo)
	if err != nil {
		t.Fatalf("Expand(%s) error: %v", id, err)
	}
	return exp
}

func TestQuotePackage_IncludedSelections(t *testing.T) {
	pq, err := QuotePackage(expandedPackage(t, "family-week"), nil)
	if err != nil {
		t.Fatalf("QuotePackage() error: %v", err)
	}

	// 2×12.50 + 2×13.00 + 4×3.00
	if pq.IndividualTotal != 6300 {
		t.Errorf("IndividualTotal = %s, want 63.00", pq.IndividualTotal)
	}
	if pq.Savings != 800 {
		t.Errorf("Savings = %s, want 8.00", pq.Savings)
	}
	if pq.CustomizedTotal != 6300 {
		t.Errorf("CustomizedTotal = %s, want 63.00 with mild spice", pq.CustomizedTotal)
	}
	if len(pq.Members) != 3 || pq.Members[0].Selections[0].OptionIDs[0] != catalogtest.SpiceMild {
		t.Errorf("Members = %+v", pq.Members)
	}
}

func TestQuotePackage_SavingsIgnoreOptionChoices(t *testing.T) {
	exp := expandedPackage(t, "family-week")

	plain, err := QuotePackage(exp, nil)
	if err != nil {
		t.Fatalf("QuotePackage() error: %v", err)
	}

	custom, err := QuotePackage(exp, map[string][]catalog.Selection{
		"pad-thai": {
			{CustomizationID: catalogtest.SpiceID, OptionIDs: []string{catalogtest.SpiceHot}},
			{CustomizationID: catalogtest.ToppingsID, OptionIDs: []string{catalogtest.ToppingShrimp}},
		},
	})
	if err != nil {
		t.Fatalf("QuotePackage() error: %v", err)
	}

	if custom.Savings != plain.Savings {
		t.Errorf("Savings changed with options: %s vs %s", custom.Savings, plain.Savings)
	}
	// pad-thai becomes 16.00 each: 32.00 + 26.00 + 12.00
	if custom.CustomizedTotal != 7000 {
		t.Errorf("CustomizedTotal = %s, want 70.00", custom.CustomizedTotal)
	}
}

func TestQuotePackage_NegativeSavings(t *testing.T) {
	exp := expandedPackage(t, "weekly-light")

	pq, err := QuotePackage(exp, nil)
	if err != nil {
		t.Fatalf("QuotePackage() error: %v", err)
	}
	// 3×8.50 + 3×6.00 = 43.50, package 40.00
	if pq.Savings != 350 {
		t.Errorf("Savings = %s, want 3.50", pq.Savings)
	}

	exp.Price = 5000
	pq, err = QuotePackage(exp, nil)
	if err != nil {
		t.Fatalf("QuotePackage() error: %v", err)
	}
	if pq.Savings != -650 {
		t.Errorf("Savings = %s, want -6.50", pq.Savings)
	}
}

func TestQuotePackage_Errors(t *testing.T) {
	exp := expandedPackage(t, "weekday-lunch")
	exp.Price = -1
	if _, err := QuotePackage(exp, nil); !IsComputationError(err) {
		t.Errorf("negative package price error = %v", err)
	}

	exp = expandedPackage(t, "weekday-lunch")
	_, err := QuotePackage(exp, map[string][]catalog.Selection{
		"pad-thai": {{CustomizationID: "sauce", OptionIDs: []string{"peanut"}}},
	})
	if !catalog.IsConfigurationError(err) {
		t.Errorf("unknown customization error = %v, want ConfigurationError", err)
	}
}
