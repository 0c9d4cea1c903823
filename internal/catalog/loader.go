// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package catalog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/knadh/koanf/providers/file"

	"github.com/tomtom215/platewise/internal/money"
	"github.com/tomtom215/platewise/internal/validation"
)

//nolint:gochecknoinits // enum tags must exist before the first ValidateStruct call
func init() {
	if err := validation.RegisterEnum("customization_kind",
		string(KindSingleSelect), string(KindMultiSelect), string(KindFreeText)); err != nil {
		panic(err)
	}
	if err := validation.RegisterEnum("package_type",
		string(PackageDaily), string(PackageWeekly), string(PackageMonthly)); err != nil {
		panic(err)
	}
}

type fileRecord struct {
	Items    []itemRecord    `json:"items" validate:"dive"`
	Packages []packageRecord `json:"packages" validate:"dive"`
}

type itemRecord struct {
	ID             string                `json:"id" validate:"required,nonblank"`
	Name           string                `json:"name" validate:"required,nonblank"`
	BasePrice      money.Cents           `json:"base_price" validate:"min=0"`
	Category       string                `json:"category" validate:"required,nonblank"`
	Tags           []string              `json:"tags" validate:"dive,nonblank"`
	PrepMinutes    int                   `json:"prep_minutes" validate:"min=0"`
	Nutrition      *nutritionRecord      `json:"nutrition"`
	RelatedIDs     []string              `json:"related_ids" validate:"dive,nonblank"`
	Customizations []customizationRecord `json:"customizations" validate:"dive"`
}

type nutritionRecord struct {
	ProteinGrams int `json:"protein_grams" validate:"min=0"`
	Calories     int `json:"calories" validate:"min=0"`
}

type customizationRecord struct {
	ID            string         `json:"id" validate:"required,nonblank"`
	Name          string         `json:"name" validate:"required,nonblank"`
	Kind          string         `json:"kind" validate:"required,customization_kind"`
	Required      bool           `json:"required"`
	MaxSelections int            `json:"max_selections" validate:"min=0"`
	Options       []optionRecord `json:"options" validate:"dive"`
}

type optionRecord struct {
	ID            string      `json:"id" validate:"required,nonblank"`
	Name          string      `json:"name" validate:"required,nonblank"`
	PriceModifier money.Cents `json:"price_modifier"`
	// Available defaults to true when omitted.
	Available *bool `json:"available"`
}

type packageRecord struct {
	ID         string              `json:"id" validate:"required,nonblank"`
	Name       string              `json:"name" validate:"required,nonblank"`
	Price      money.Cents         `json:"price" validate:"min=0"`
	Type       string              `json:"type" validate:"required,package_type"`
	Items      []packageItemRecord `json:"items" validate:"min=1,dive"`
	RelatedIDs []string            `json:"related_ids" validate:"dive,nonblank"`
}

type packageItemRecord struct {
	MenuItemID string           `json:"menu_item_id" validate:"required,nonblank"`
	Quantity   int              `json:"quantity" validate:"min=1"`
	Included   []SelectionInput `json:"included"`
}

// LoadFile reads and ingests a JSON catalog file.
func LoadFile(path string) (Snapshot, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from trusted configuration
	if err != nil {
		return Snapshot{}, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()

	snap, err := Decode(f)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return snap, nil
}

// Decode ingests a JSON catalog document: it validates records, normalizes
// tags, defaults option availability and resolves every included selection.
func Decode(r io.Reader) (Snapshot, error) {
	var rec fileRecord
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rec); err != nil {
		return Snapshot{}, fmt.Errorf("decode catalog: %w", err)
	}

	if verr := validation.ValidateStruct(&rec); verr != nil {
		return Snapshot{}, fmt.Errorf("invalid catalog: %w", verr)
	}

	snap := Snapshot{
		Items:    make([]*Item, 0, len(rec.Items)),
		Packages: make([]*Package, 0, len(rec.Packages)),
	}
	byID := make(map[string]*Item, len(rec.Items))

	for i := range rec.Items {
		item, err := buildItem(&rec.Items[i])
		if err != nil {
			return Snapshot{}, err
		}
		if _, dup := byID[item.ID]; dup {
			return Snapshot{}, &ConfigurationError{ItemID: item.ID, Reason: "duplicate item id"}
		}
		byID[item.ID] = item
		snap.Items = append(snap.Items, item)
	}

	for i := range rec.Packages {
		pkg, err := buildPackage(&rec.Packages[i], byID)
		if err != nil {
			return Snapshot{}, err
		}
		snap.Packages = append(snap.Packages, pkg)
	}

	return snap, nil
}

func buildItem(r *itemRecord) (*Item, error) {
	item := &Item{
		ID:         strings.TrimSpace(r.ID),
		Name:       strings.TrimSpace(r.Name),
		BasePrice:  r.BasePrice,
		Category:   strings.TrimSpace(r.Category),
		Tags:       normalizeTags(r.Tags),
		PrepTime:   time.Duration(r.PrepMinutes) * time.Minute,
		RelatedIDs: trimIDs(r.RelatedIDs),
	}
	if r.Nutrition != nil {
		item.Nutrition = &Nutrition{ProteinGrams: r.Nutrition.ProteinGrams, Calories: r.Nutrition.Calories}
	}

	seen := make(map[string]struct{}, len(r.Customizations))
	for i := range r.Customizations {
		cr := &r.Customizations[i]
		cr.ID = strings.TrimSpace(cr.ID)
		if _, dup := seen[cr.ID]; dup {
			return nil, &ConfigurationError{ItemID: item.ID, CustomizationID: cr.ID, Reason: "duplicate customization id"}
		}
		seen[cr.ID] = struct{}{}

		def, err := buildCustomization(item.ID, cr)
		if err != nil {
			return nil, err
		}
		item.Customizations = append(item.Customizations, def)
	}

	return item, nil
}

func buildCustomization(itemID string, r *customizationRecord) (Customization, error) {
	def := Customization{
		ID:            r.ID,
		Name:          strings.TrimSpace(r.Name),
		Kind:          Kind(r.Kind),
		Required:      r.Required,
		MaxSelections: r.MaxSelections,
	}

	switch def.Kind {
	case KindFreeText:
		if len(r.Options) > 0 {
			return def, &ConfigurationError{ItemID: itemID, CustomizationID: def.ID, Reason: "free-text customization cannot define options"}
		}
	case KindSingleSelect, KindMultiSelect:
		if len(r.Options) == 0 {
			return def, &ConfigurationError{ItemID: itemID, CustomizationID: def.ID, Reason: "select customization needs at least one option"}
		}
	}
	if def.MaxSelections > 0 && def.Kind != KindMultiSelect {
		return def, &ConfigurationError{ItemID: itemID, CustomizationID: def.ID, Reason: "max_selections only applies to multi-select"}
	}

	seen := make(map[string]struct{}, len(r.Options))
	for _, or := range r.Options {
		or.ID = strings.TrimSpace(or.ID)
		if _, dup := seen[or.ID]; dup {
			return def, &ConfigurationError{ItemID: itemID, CustomizationID: def.ID, Reference: ByID(or.ID).String(), Reason: "duplicate option id"}
		}
		seen[or.ID] = struct{}{}

		available := true
		if or.Available != nil {
			available = *or.Available
		}
		def.Options = append(def.Options, Option{
			ID:            or.ID,
			Name:          strings.TrimSpace(or.Name),
			PriceModifier: or.PriceModifier,
			Available:     available,
		})
	}

	return def, nil
}

func buildPackage(r *packageRecord, items map[string]*Item) (*Package, error) {
	pkg := &Package{
		ID:         strings.TrimSpace(r.ID),
		Name:       strings.TrimSpace(r.Name),
		Price:      r.Price,
		Type:       PackageType(r.Type),
		RelatedIDs: trimIDs(r.RelatedIDs),
	}

	for _, pr := range r.Items {
		memberID := strings.TrimSpace(pr.MenuItemID)
		item, ok := items[memberID]
		if !ok {
			return nil, &ConfigurationError{PackageID: pkg.ID, ItemID: memberID, Reason: "package member is not in the catalog"}
		}

		included, err := Resolve(item, pr.Included)
		if err != nil {
			if ce, ok := err.(*ConfigurationError); ok { //nolint:errorlint // Resolve returns the concrete type unwrapped
				ce.PackageID = pkg.ID
			}
			return nil, err
		}

		pkg.Items = append(pkg.Items, PackageItem{
			MenuItemID: item.ID,
			Quantity:   pr.Quantity,
			Included:   included,
		})
	}

	return pkg, nil
}

// trimIDs trims every id; nil stays nil.
func trimIDs(ids []string) []string {
	if ids == nil {
		return nil
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strings.TrimSpace(id)
	}
	return out
}

// normalizeTags lower-cases, trims and de-duplicates tags, keeping first-seen order.
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if _, dup := seen[t]; dup || t == "" {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// WatchFile invokes onChange whenever the catalog file at path changes.
// The returned stop function releases the underlying watcher.
func WatchFile(path string, onChange func()) (stop func() error, err error) {
	provider := file.Provider(path)
	err = provider.Watch(func(_ interface{}, werr error) {
		if werr != nil {
			return
		}
		onChange()
	})
	if err != nil {
		return nil, fmt.Errorf("watch catalog %s: %w", path, err)
	}
	return provider.Unwatch, nil
}
