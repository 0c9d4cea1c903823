// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package catalog

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// RefKind discriminates a Reference.
type RefKind uint8

const (
	refInvalid RefKind = iota
	// RefByID references a customization or option by canonical id.
	RefByID
	// RefByLegacyName references it by display name, as older clients do.
	RefByLegacyName
)

// Reference is either ByID(id) or ByLegacyName(name). The zero value is invalid.
//
// JSON forms:
//
//	{"id": "spice"}            -> ByID("spice")
//	{"legacy_name": "Spice"}   -> ByLegacyName("Spice")
//	"Spice"                    -> ByLegacyName("Spice")
type Reference struct {
	kind  RefKind
	value string
}

// ByID builds an id reference.
func ByID(id string) Reference {
	return Reference{kind: RefByID, value: id}
}

// ByLegacyName builds a legacy display-name reference.
func ByLegacyName(name string) Reference {
	return Reference{kind: RefByLegacyName, value: name}
}

// Kind returns the variant.
func (r Reference) Kind() RefKind { return r.kind }

// Value returns the id or the legacy name.
func (r Reference) Value() string { return r.value }

// IsZero reports whether r was never set.
func (r Reference) IsZero() bool { return r.kind == refInvalid }

func (r Reference) String() string {
	switch r.kind {
	case RefByID:
		return fmt.Sprintf("id:%q", r.value)
	case RefByLegacyName:
		return fmt.Sprintf("legacy:%q", r.value)
	default:
		return "invalid"
	}
}

type referenceWire struct {
	ID         string `json:"id,omitempty"`
	LegacyName string `json:"legacy_name,omitempty"`
}

// MarshalJSON encodes the object form.
func (r Reference) MarshalJSON() ([]byte, error) {
	switch r.kind {
	case RefByID:
		return json.Marshal(referenceWire{ID: r.value})
	case RefByLegacyName:
		return json.Marshal(referenceWire{LegacyName: r.value})
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts the object form or a bare legacy name string.
func (r *Reference) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*r = ByLegacyName(name)
		return nil
	}

	var w referenceWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	w.ID = strings.TrimSpace(w.ID)
	switch {
	case w.ID != "" && w.LegacyName != "":
		return fmt.Errorf("reference sets both id and legacy_name")
	case w.ID != "":
		*r = ByID(w.ID)
	case w.LegacyName != "":
		*r = ByLegacyName(w.LegacyName)
	default:
		return fmt.Errorf("reference needs id or legacy_name")
	}
	return nil
}

// SelectionInput is a selection as received from a client or a catalog file,
// before references are resolved.
type SelectionInput struct {
	Customization Reference   `json:"customization"`
	Options       []Reference `json:"options,omitempty"`
	Text          string      `json:"text,omitempty"`
}

// Resolve turns inputs into canonical selections against item. Every
// reference must resolve to exactly one definition or option; otherwise a
// *ConfigurationError is returned and nothing is resolved.
//
// Resolution does not apply customization rules: limits, availability and
// required checks belong to the validator, which runs on the result.
func Resolve(item *Item, inputs []SelectionInput) ([]Selection, error) {
	out := make([]Selection, 0, len(inputs))
	for _, in := range inputs {
		def, err := resolveCustomization(item, in.Customization)
		if err != nil {
			return nil, err
		}

		sel := Selection{CustomizationID: def.ID, Text: in.Text}
		for _, ref := range in.Options {
			opt, err := resolveOption(item, def, ref)
			if err != nil {
				return nil, err
			}
			sel.OptionIDs = append(sel.OptionIDs, opt.ID)
		}
		out = append(out, sel)
	}
	return out, nil
}

func resolveCustomization(item *Item, ref Reference) (*Customization, error) {
	switch ref.kind {
	case RefByID:
		if def, ok := item.Customization(ref.value); ok {
			return def, nil
		}
		return nil, &ConfigurationError{ItemID: item.ID, Reference: ref.String(), Reason: "unknown customization"}
	case RefByLegacyName:
		var match *Customization
		want := foldName(ref.value)
		for i := range item.Customizations {
			if foldName(item.Customizations[i].Name) != want {
				continue
			}
			if match != nil {
				return nil, &ConfigurationError{ItemID: item.ID, Reference: ref.String(), Reason: "ambiguous customization name"}
			}
			match = &item.Customizations[i]
		}
		if match == nil {
			return nil, &ConfigurationError{ItemID: item.ID, Reference: ref.String(), Reason: "unknown customization name"}
		}
		return match, nil
	default:
		return nil, &ConfigurationError{ItemID: item.ID, Reason: "empty customization reference"}
	}
}

func resolveOption(item *Item, def *Customization, ref Reference) (*Option, error) {
	switch ref.kind {
	case RefByID:
		if opt, ok := def.Option(ref.value); ok {
			return opt, nil
		}
		return nil, &ConfigurationError{ItemID: item.ID, CustomizationID: def.ID, Reference: ref.String(), Reason: "unknown option"}
	case RefByLegacyName:
		var match *Option
		want := foldName(ref.value)
		for i := range def.Options {
			if foldName(def.Options[i].Name) != want {
				continue
			}
			if match != nil {
				return nil, &ConfigurationError{ItemID: item.ID, CustomizationID: def.ID, Reference: ref.String(), Reason: "ambiguous option name"}
			}
			match = &def.Options[i]
		}
		if match == nil {
			return nil, &ConfigurationError{ItemID: item.ID, CustomizationID: def.ID, Reference: ref.String(), Reason: "unknown option name"}
		}
		return match, nil
	default:
		return nil, &ConfigurationError{ItemID: item.ID, CustomizationID: def.ID, Reason: "empty option reference"}
	}
}

// foldName normalizes a display name: trimmed, inner whitespace collapsed, lower case.
func foldName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
