// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package customize

import (
	"slices"

	"github.com/tomtom215/platewise/internal/catalog"
)

// Draft is the selection state of one item while a customer configures it.
// Events that name ids the item does not define fail with a
// *catalog.ConfigurationError and leave the draft unchanged. Limits are not
// enforced here; Validate reports them.
//
// A Draft belongs to a single session and is not safe for concurrent use.
type Draft struct {
	item    *catalog.Item
	options map[string][]string
	text    map[string]string
}

// NewDraft starts an empty draft for item.
func NewDraft(item *catalog.Item) *Draft {
	return &Draft{
		item:    item,
		options: make(map[string][]string),
		text:    make(map[string]string),
	}
}

// NewDraftFrom starts a draft pre-filled with selections, typically a
// package member's included customizations. More than one option for a
// single-select is a *catalog.ConfigurationError.
func NewDraftFrom(item *catalog.Item, selections []catalog.Selection) (*Draft, error) {
	d := NewDraft(item)
	for _, sel := range selections {
		def, err := d.definition(sel.CustomizationID)
		if err != nil {
			return nil, err
		}
		if def.Kind == catalog.KindFreeText {
			d.text[def.ID] = sel.Text
			continue
		}
		if def.Kind == catalog.KindSingleSelect && len(sel.OptionIDs) > 1 {
			return nil, &catalog.ConfigurationError{ItemID: item.ID, CustomizationID: def.ID, Reason: "single-select customization has more than one option"}
		}
		for _, id := range sel.OptionIDs {
			if err := d.Choose(def.ID, id); err != nil {
				return nil, err
			}
		}
	}
	return d, nil
}

// Item returns the item being configured.
func (d *Draft) Item() *catalog.Item { return d.item }

// Choose selects an option. On a single-select it replaces the current
// choice; on a multi-select it adds to the choices.
func (d *Draft) Choose(customizationID, optionID string) error {
	def, err := d.option(customizationID, optionID)
	if err != nil {
		return err
	}
	if def.Kind == catalog.KindSingleSelect {
		d.options[def.ID] = []string{optionID}
		return nil
	}
	if !slices.Contains(d.options[def.ID], optionID) {
		d.options[def.ID] = append(d.options[def.ID], optionID)
	}
	return nil
}

// Toggle selects optionID if it is not selected and deselects it otherwise.
func (d *Draft) Toggle(customizationID, optionID string) error {
	def, err := d.option(customizationID, optionID)
	if err != nil {
		return err
	}
	current := d.options[def.ID]
	if i := slices.Index(current, optionID); i >= 0 {
		d.options[def.ID] = slices.Delete(slices.Clone(current), i, i+1)
		return nil
	}
	return d.Choose(customizationID, optionID)
}

// SetText sets the value of a free-text customization.
func (d *Draft) SetText(customizationID, text string) error {
	def, err := d.definition(customizationID)
	if err != nil {
		return err
	}
	if def.Kind != catalog.KindFreeText {
		return &catalog.ConfigurationError{ItemID: d.item.ID, CustomizationID: def.ID, Reason: "customization does not take text"}
	}
	d.text[def.ID] = text
	return nil
}

// Clear removes any selection for customizationID.
func (d *Draft) Clear(customizationID string) error {
	def, err := d.definition(customizationID)
	if err != nil {
		return err
	}
	delete(d.options, def.ID)
	delete(d.text, def.ID)
	return nil
}

// Selections returns the current state in the item's definition order,
// omitting customizations with nothing selected.
func (d *Draft) Selections() []catalog.Selection {
	var out []catalog.Selection
	for _, def := range d.item.Customizations {
		if def.Kind == catalog.KindFreeText {
			if text, ok := d.text[def.ID]; ok && text != "" {
				out = append(out, catalog.Selection{CustomizationID: def.ID, Text: text})
			}
			continue
		}
		if ids := d.options[def.ID]; len(ids) > 0 {
			out = append(out, catalog.Selection{CustomizationID: def.ID, OptionIDs: slices.Clone(ids)})
		}
	}
	return out
}

// Validate runs v over the current selections.
func (d *Draft) Validate(v *Validator) []Violation {
	return v.Validate(d.item, d.Selections())
}

func (d *Draft) definition(customizationID string) (*catalog.Customization, error) {
	def, ok := d.item.Customization(customizationID)
	if !ok {
		return nil, &catalog.ConfigurationError{ItemID: d.item.ID, CustomizationID: customizationID, Reason: "unknown customization"}
	}
	return def, nil
}

func (d *Draft) option(customizationID, optionID string) (*catalog.Customization, error) {
	def, err := d.definition(customizationID)
	if err != nil {
		return nil, err
	}
	if def.Kind == catalog.KindFreeText {
		return nil, &catalog.ConfigurationError{ItemID: d.item.ID, CustomizationID: def.ID, Reason: "customization takes text, not options"}
	}
	if _, ok := def.Option(optionID); !ok {
		return nil, &catalog.ConfigurationError{
			ItemID:          d.item.ID,
			CustomizationID: def.ID,
			Reference:       catalog.ByID(optionID).String(),
			Reason:          "unknown option",
		}
	}
	return def, nil
}
