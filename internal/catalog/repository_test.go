// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package catalog

import (
	"errors"
	"testing"
)

func testSnapshot() Snapshot {
	rice := &Item{ID: "rice", Name: "Rice", BasePrice: 300, Category: "Sides"}
	curry := &Item{ID: "curry", Name: "Curry", BasePrice: 1300, Category: "Main Dishes",
		Customizations: []Customization{{ID: "spice", Name: "Spice", Kind: KindSingleSelect,
			Options: []Option{{ID: "mild", Name: "Mild", Available: true}}}}}
	return Snapshot{
		Items: []*Item{curry, rice},
		Packages: []*Package{{
			ID: "combo", Name: "Combo", Price: 1500, Type: PackageDaily,
			Items: []PackageItem{
				{MenuItemID: "curry", Quantity: 1, Included: []Selection{{CustomizationID: "spice", OptionIDs: []string{"mild"}}}},
				{MenuItemID: "rice", Quantity: 2},
			},
		}},
	}
}

func TestMemory_Lookups(t *testing.T) {
	repo, err := NewMemory(testSnapshot())
	if err != nil {
		t.Fatalf("NewMemory() error: %v", err)
	}

	if repo.Version() != 1 {
		t.Errorf("Version() = %d, want 1", repo.Version())
	}

	items := repo.Items()
	if len(items) != 2 || items[0].ID != "curry" || items[1].ID != "rice" {
		t.Errorf("Items() lost catalog order: %v", items)
	}

	if _, err := repo.Item("noodles"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("Item(noodles) error = %v, want ErrItemNotFound", err)
	}
	if _, err := repo.Package("feast"); !errors.Is(err, ErrPackageNotFound) {
		t.Errorf("Package(feast) error = %v, want ErrPackageNotFound", err)
	}
}

func TestMemory_ReplaceKeepsOldSnapshotOnError(t *testing.T) {
	repo, err := NewMemory(testSnapshot())
	if err != nil {
		t.Fatalf("NewMemory() error: %v", err)
	}

	bad := testSnapshot()
	bad.Packages[0].Items[1].MenuItemID = "naan"

	err = repo.Replace(bad)
	if !IsConfigurationError(err) {
		t.Fatalf("Replace() error = %v, want ConfigurationError", err)
	}
	if repo.Version() != 1 {
		t.Errorf("Version() = %d, want 1 after failed replace", repo.Version())
	}
	if _, err := repo.Package("combo"); err != nil {
		t.Errorf("old snapshot lost: %v", err)
	}
}

func TestMemory_RejectsUndefinedIncludedCustomization(t *testing.T) {
	snap := testSnapshot()
	snap.Packages[0].Items[0].Included[0].CustomizationID = "size"

	if _, err := NewMemory(snap); !IsConfigurationError(err) {
		t.Errorf("NewMemory() error = %v, want ConfigurationError", err)
	}
}

func TestMemory_SnapshotChecks(t *testing.T) {
	rejectRice := func(s Snapshot) error {
		for _, it := range s.Items {
			if it.ID == "rice" && it.BasePrice > 500 {
				return &ConfigurationError{ItemID: it.ID, Reason: "rice too expensive"}
			}
		}
		return nil
	}

	repo, err := NewMemory(testSnapshot(), rejectRice)
	if err != nil {
		t.Fatalf("NewMemory() error: %v", err)
	}

	bad := testSnapshot()
	bad.Items[1].BasePrice = 900
	if err := repo.Replace(bad); !IsConfigurationError(err) {
		t.Fatalf("Replace() error = %v, want ConfigurationError", err)
	}
	if repo.Version() != 1 {
		t.Errorf("Version() = %d, want 1 after rejected snapshot", repo.Version())
	}
	if it, _ := repo.Item("rice"); it.BasePrice != 300 {
		t.Errorf("rice price = %d, want 300 from the kept snapshot", it.BasePrice)
	}

	calls := 0
	structural := testSnapshot()
	structural.Packages[0].Items[1].MenuItemID = "naan"
	_, err = NewMemory(structural, func(Snapshot) error { calls++; return nil })
	if !IsConfigurationError(err) || calls != 0 {
		t.Errorf("error = %v, check calls = %d; structural errors come first", err, calls)
	}
}

func TestExpand(t *testing.T) {
	repo, err := NewMemory(testSnapshot())
	if err != nil {
		t.Fatalf("NewMemory() error: %v", err)
	}
	pkg, _ := repo.Package("combo")

	exp, err := Expand(pkg, repo)
	if err != nil {
		t.Fatalf("Expand() error: %v", err)
	}

	if len(exp.Members) != 2 || exp.Members[1].Item.ID != "rice" || exp.Members[1].Quantity != 2 {
		t.Errorf("Members = %+v", exp.Members)
	}
	if !exp.HasCategory("sides") {
		t.Error("HasCategory should be case-insensitive")
	}
	if exp.HasCategory("Desserts") {
		t.Error("combo has no desserts")
	}
	if exp.ItemCount() != 3 {
		t.Errorf("ItemCount() = %d, want 3", exp.ItemCount())
	}
}

func TestPackageType_Adjacent(t *testing.T) {
	tests := []struct {
		a, b PackageType
		want bool
	}{
		{PackageDaily, PackageWeekly, true},
		{PackageWeekly, PackageMonthly, true},
		{PackageMonthly, PackageWeekly, true},
		{PackageDaily, PackageMonthly, false},
		{PackageWeekly, PackageWeekly, false},
		{PackageType("yearly"), PackageMonthly, false},
	}
	for _, tt := range tests {
		if got := tt.a.Adjacent(tt.b); got != tt.want {
			t.Errorf("%s.Adjacent(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestConfigurationError_Message(t *testing.T) {
	err := &ConfigurationError{ItemID: "satay", CustomizationID: "sauce", Reference: `legacy:"Mayo"`, Reason: "unknown option name"}
	want := `configuration error: item "satay" customization "sauce": unknown option name (reference legacy:"Mayo")`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
