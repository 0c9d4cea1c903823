// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package catalog

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestLoadFile(t *testing.T) {
	snap, err := LoadFile("testdata/catalog.json")
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}

	if len(snap.Items) != 2 || len(snap.Packages) != 1 {
		t.Fatalf("got %d items / %d packages, want 2 / 1", len(snap.Items), len(snap.Packages))
	}

	padThai := snap.Items[0]
	if padThai.BasePrice != 1250 {
		t.Errorf("BasePrice = %d, want 1250", padThai.BasePrice)
	}
	if want := []string{"thai", "noodles", "popular"}; !reflect.DeepEqual(padThai.Tags, want) {
		t.Errorf("Tags = %v, want %v", padThai.Tags, want)
	}
	if padThai.PrepTime != 15*time.Minute {
		t.Errorf("PrepTime = %v", padThai.PrepTime)
	}

	spice, ok := padThai.Customization("spice")
	if !ok {
		t.Fatal("spice customization missing")
	}
	mild, _ := spice.Option("mild")
	if !mild.Available {
		t.Error("options default to available")
	}
	volcano, _ := spice.Option("volcano")
	if volcano.Available {
		t.Error("volcano should be unavailable")
	}
	if volcano.PriceModifier != 101 {
		t.Errorf("volcano modifier = %d, want 101 (half-up)", volcano.PriceModifier)
	}

	toppings, _ := padThai.Customization("toppings")
	tofu, _ := toppings.Option("tofu")
	if tofu.PriceModifier != 150 {
		t.Errorf("tofu modifier = %d, want 150", tofu.PriceModifier)
	}

	lunch := snap.Packages[0]
	if lunch.Price != 1650 || lunch.Type != PackageDaily {
		t.Errorf("package = %+v", lunch)
	}
	included := lunch.Items[0].Included
	if len(included) != 1 || included[0].CustomizationID != "spice" || included[0].OptionIDs[0] != "mild" {
		t.Errorf("legacy included selection not resolved: %+v", included)
	}
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "negative base price",
			doc:     `{"items":[{"id":"a","name":"A","category":"Sides","base_price":-1}]}`,
			wantErr: "items[0].base_price must be at least 0",
		},
		{
			name:    "unknown kind",
			doc:     `{"items":[{"id":"a","name":"A","category":"Sides","base_price":1,"customizations":[{"id":"c","name":"C","kind":"radio"}]}]}`,
			wantErr: "kind must be one of",
		},
		{
			name:    "select without options",
			doc:     `{"items":[{"id":"a","name":"A","category":"Sides","base_price":1,"customizations":[{"id":"c","name":"C","kind":"single_select"}]}]}`,
			wantErr: "select customization needs at least one option",
		},
		{
			name:    "max selections on single select",
			doc:     `{"items":[{"id":"a","name":"A","category":"Sides","base_price":1,"customizations":[{"id":"c","name":"C","kind":"single_select","max_selections":2,"options":[{"id":"o","name":"O"}]}]}]}`,
			wantErr: "max_selections only applies to multi-select",
		},
		{
			name:    "duplicate item",
			doc:     `{"items":[{"id":"a","name":"A","category":"Sides","base_price":1},{"id":"a","name":"B","category":"Sides","base_price":1}]}`,
			wantErr: "duplicate item id",
		},
		{
			name:    "unknown package member",
			doc:     `{"packages":[{"id":"p","name":"P","price":1,"type":"daily","items":[{"menu_item_id":"ghost","quantity":1}]}]}`,
			wantErr: "package member is not in the catalog",
		},
		{
			name:    "unknown package type",
			doc:     `{"items":[{"id":"a","name":"A","category":"Sides","base_price":1}],"packages":[{"id":"p","name":"P","price":1,"type":"yearly","items":[{"menu_item_id":"a","quantity":1}]}]}`,
			wantErr: "type must be one of",
		},
		{
			name:    "base price out of range",
			doc:     `{"items":[{"id":"x","name":"X","category":"Sides","base_price":184467440737095516.17}]}`,
			wantErr: "amount out of range",
		},
		{
			name:    "option modifier out of range",
			doc:     `{"items":[{"id":"x","name":"X","category":"Sides","base_price":1,"customizations":[{"id":"c","name":"C","kind":"single_select","options":[{"id":"o","name":"O","price_modifier":-92233720368547758.09}]}]}]}`,
			wantErr: "amount out of range",
		},
		{
			name:    "unknown field",
			doc:     `{"items":[],"currency":"EUR"}`,
			wantErr: "decode catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("Decode() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestDecode_UnresolvableIncludedSelection(t *testing.T) {
	doc := `{
		"items":[{"id":"a","name":"A","category":"Sides","base_price":1,
			"customizations":[{"id":"c","name":"Sauce","kind":"single_select","options":[{"id":"o","name":"Peanut"}]}]}],
		"packages":[{"id":"p","name":"P","price":1,"type":"daily",
			"items":[{"menu_item_id":"a","quantity":1,"included":[{"customization":"Sauce","options":["Satay"]}]}]}]
	}`

	_, err := Decode(strings.NewReader(doc))

	var ce *ConfigurationError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %v, want *ConfigurationError", err)
	}
	if ce.PackageID != "p" || ce.CustomizationID != "c" {
		t.Errorf("ConfigurationError = %+v", ce)
	}
}

func TestDecode_TrimsIDs(t *testing.T) {
	doc := `{
		"items":[
			{"id":" soup ","name":"Soup","category":"Soups","base_price":5,"related_ids":[" rice "],
				"customizations":[{"id":" size ","name":"Size","kind":"single_select","options":[{"id":" bowl ","name":"Bowl"}]}]},
			{"id":"rice","name":"Rice","category":"Sides","base_price":2}
		],
		"packages":[{"id":"p","name":"P","price":6,"type":"daily","related_ids":[" p "],
			"items":[{"menu_item_id":" soup ","quantity":1,"included":[{"customization":{"id":" size "},"options":[{"id":"bowl"}]}]}]}]
	}`

	snap, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	soup := snap.Items[0]
	if soup.ID != "soup" || !reflect.DeepEqual(soup.RelatedIDs, []string{"rice"}) {
		t.Errorf("item = %q related %v", soup.ID, soup.RelatedIDs)
	}
	if _, ok := soup.Customization("size"); !ok {
		t.Error("customization id not trimmed")
	}
	member := snap.Packages[0].Items[0]
	if member.MenuItemID != "soup" {
		t.Errorf("MenuItemID = %q, want soup", member.MenuItemID)
	}
	if len(member.Included) != 1 || member.Included[0].CustomizationID != "size" || member.Included[0].OptionIDs[0] != "bowl" {
		t.Errorf("included = %+v", member.Included)
	}
	if !reflect.DeepEqual(snap.Packages[0].RelatedIDs, []string{"p"}) {
		t.Errorf("package related = %v", snap.Packages[0].RelatedIDs)
	}
}

func TestNormalizeTags(t *testing.T) {
	got := normalizeTags([]string{" Spicy", "spicy", "", "Popular "})
	if want := []string{"spicy", "popular"}; !reflect.DeepEqual(got, want) {
		t.Errorf("normalizeTags = %v, want %v", got, want)
	}
	if normalizeTags(nil) != nil {
		t.Error("normalizeTags(nil) should be nil")
	}
}
