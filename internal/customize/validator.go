// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package customize

import (
	"fmt"
	"unicode/utf8"

	"github.com/tomtom215/platewise/internal/catalog"
)

// DefaultMaxTextLength bounds free-text values, counted in runes.
const DefaultMaxTextLength = 500

// Options tunes a Validator.
type Options struct {
	// MaxTextLength is the longest accepted free-text value in runes.
	// Zero means DefaultMaxTextLength; negative disables the check.
	MaxTextLength int `koanf:"max_text_length"`
}

// Validator checks selections. It holds only configuration and is safe for
// concurrent use.
type Validator struct {
	maxText int
}

// New creates a Validator.
func New(opts Options) *Validator {
	maxText := opts.MaxTextLength
	if maxText == 0 {
		maxText = DefaultMaxTextLength
	}
	return &Validator{maxText: maxText}
}

var defaultValidator = New(Options{})

// Validate checks selections against item with default options.
func Validate(item *catalog.Item, selections []catalog.Selection) []Violation {
	return defaultValidator.Validate(item, selections)
}

// Validate returns every violation of item's customization rules by
// selections. An empty result means the selection is valid.
func (v *Validator) Validate(item *catalog.Item, selections []catalog.Selection) []Violation {
	if item == nil {
		return []Violation{{Code: CodeUnknownItem, Message: "item does not exist"}}
	}

	var out []Violation
	report := func(customizationID string, code Code, format string, args ...any) {
		out = append(out, Violation{
			ItemID:          item.ID,
			CustomizationID: customizationID,
			Code:            code,
			Message:         fmt.Sprintf(format, args...),
		})
	}

	bySelection := make(map[string]catalog.Selection, len(selections))
	for _, sel := range selections {
		if _, dup := bySelection[sel.CustomizationID]; dup {
			report(sel.CustomizationID, CodeDuplicateCustomization, "%q is selected more than once", sel.CustomizationID)
			continue
		}
		bySelection[sel.CustomizationID] = sel
	}

	for i := range item.Customizations {
		def := &item.Customizations[i]
		sel, present := bySelection[def.ID]

		switch def.Kind {
		case catalog.KindFreeText:
			if len(sel.OptionIDs) > 0 {
				report(def.ID, CodeOptionsNotAllowed, "%s takes text, not options", def.Name)
			}
			if !sel.HasText() {
				if def.Required {
					report(def.ID, CodeRequiredMissing, "%s is required", def.Name)
				}
				continue
			}
			if v.maxText > 0 && utf8.RuneCountInString(sel.Text) > v.maxText {
				report(def.ID, CodeTextTooLong, "%s must be at most %d characters", def.Name, v.maxText)
			}

		case catalog.KindSingleSelect, catalog.KindMultiSelect:
			if !present || len(sel.OptionIDs) == 0 {
				if def.Required {
					report(def.ID, CodeRequiredMissing, "%s is required", def.Name)
				}
				continue
			}
			v.checkOptions(def, sel.OptionIDs, report)
		}
	}

	unknown := make(map[string]struct{})
	for _, sel := range selections {
		if _, ok := item.Customization(sel.CustomizationID); ok {
			continue
		}
		if _, dup := unknown[sel.CustomizationID]; dup {
			continue
		}
		unknown[sel.CustomizationID] = struct{}{}
		report(sel.CustomizationID, CodeUnknownCustomization, "%s has no customization %q", item.Name, sel.CustomizationID)
	}

	return out
}

// CheckIncluded validates the included selections of every package member
// in s. It is a catalog.SnapshotCheck: the first violation is returned as a
// *catalog.ConfigurationError.
func (v *Validator) CheckIncluded(s catalog.Snapshot) error {
	items := make(map[string]*catalog.Item, len(s.Items))
	for _, it := range s.Items {
		items[it.ID] = it
	}

	for _, p := range s.Packages {
		for _, member := range p.Items {
			item, ok := items[member.MenuItemID]
			if !ok {
				continue
			}
			if vs := v.Validate(item, member.Included); len(vs) > 0 {
				return &catalog.ConfigurationError{
					PackageID:       p.ID,
					ItemID:          item.ID,
					CustomizationID: vs[0].CustomizationID,
					Reason:          fmt.Sprintf("invalid included selection (%s): %s", vs[0].Code, vs[0].Message),
				}
			}
		}
	}
	return nil
}

func (v *Validator) checkOptions(def *catalog.Customization, ids []string, report func(string, Code, string, ...any)) {
	switch {
	case def.Kind == catalog.KindSingleSelect && len(ids) > 1:
		report(def.ID, CodeMultipleSelections, "choose only one %s", def.Name)
	case def.Kind == catalog.KindMultiSelect && def.MaxSelections > 0 && len(ids) > def.MaxSelections:
		report(def.ID, CodeTooManySelections, "choose at most %d %s, got %d", def.MaxSelections, def.Name, len(ids))
	}

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			report(def.ID, CodeDuplicateOption, "%s option %q is selected twice", def.Name, id)
			continue
		}
		seen[id] = struct{}{}

		opt, ok := def.Option(id)
		switch {
		case !ok:
			report(def.ID, CodeUnknownOption, "%s has no option %q", def.Name, id)
		case !opt.Available:
			report(def.ID, CodeOptionUnavailable, "%s is currently unavailable", opt.Name)
		}
	}
}
