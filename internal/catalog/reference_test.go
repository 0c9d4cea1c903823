// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package catalog

import (
	"errors"
	"reflect"
	"testing"

	"github.com/goccy/go-json"
)

func sauceItem() *Item {
	return &Item{
		ID:   "satay",
		Name: "Chicken Satay",
		Customizations: []Customization{
			{
				ID:   "sauce",
				Name: "Dipping  Sauce",
				Kind: KindSingleSelect,
				Options: []Option{
					{ID: "peanut", Name: "Peanut", Available: true},
					{ID: "sweet-chili", Name: "Sweet Chili", Available: true},
				},
			},
			{ID: "extras", Name: "Extras", Kind: KindMultiSelect, Options: []Option{
				{ID: "cucumber", Name: "Cucumber", Available: true},
				{ID: "cucumber-2", Name: "cucumber", Available: true},
			}},
			{ID: "note", Name: "Note", Kind: KindFreeText},
		},
	}
}

func TestReference_JSON(t *testing.T) {
	tests := []struct {
		in   string
		want Reference
	}{
		{`{"id":"sauce"}`, ByID("sauce")},
		{`{"legacy_name":"Dipping Sauce"}`, ByLegacyName("Dipping Sauce")},
		{`"Dipping Sauce"`, ByLegacyName("Dipping Sauce")},
	}

	for _, tt := range tests {
		var got Reference
		if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
			t.Fatalf("Unmarshal(%s) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Unmarshal(%s) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{`{}`, `{"id":"a","legacy_name":"b"}`} {
		var r Reference
		if err := json.Unmarshal([]byte(bad), &r); err == nil {
			t.Errorf("Unmarshal(%s) should fail", bad)
		}
	}

	out, err := json.Marshal(ByLegacyName("Peanut"))
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(out) != `{"legacy_name":"Peanut"}` {
		t.Errorf("Marshal = %s", out)
	}
}

func TestResolve(t *testing.T) {
	item := sauceItem()

	got, err := Resolve(item, []SelectionInput{
		{Customization: ByLegacyName("dipping sauce"), Options: []Reference{ByLegacyName(" SWEET chili ")}},
		{Customization: ByID("note"), Text: "no coriander"},
	})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	want := []Selection{
		{CustomizationID: "sauce", OptionIDs: []string{"sweet-chili"}},
		{CustomizationID: "note", Text: "no coriander"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %+v, want %+v", got, want)
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name       string
		input      SelectionInput
		wantReason string
	}{
		{"unknown customization id", SelectionInput{Customization: ByID("gravy")}, "unknown customization"},
		{"unknown customization name", SelectionInput{Customization: ByLegacyName("Gravy")}, "unknown customization name"},
		{"no fuzzy match", SelectionInput{Customization: ByLegacyName("Dipping Sauces")}, "unknown customization name"},
		{"unknown option id", SelectionInput{Customization: ByID("sauce"), Options: []Reference{ByID("mayo")}}, "unknown option"},
		{"ambiguous option name", SelectionInput{Customization: ByID("extras"), Options: []Reference{ByLegacyName("Cucumber")}}, "ambiguous option name"},
		{"empty reference", SelectionInput{}, "empty customization reference"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(sauceItem(), []SelectionInput{tt.input})

			var ce *ConfigurationError
			if !errors.As(err, &ce) {
				t.Fatalf("error = %v, want *ConfigurationError", err)
			}
			if ce.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", ce.Reason, tt.wantReason)
			}
			if ce.ItemID != "satay" {
				t.Errorf("ItemID = %q", ce.ItemID)
			}
		})
	}
}
