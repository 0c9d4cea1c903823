// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

// Package customize checks customer selections against an item's
// customization rules and tracks selection state while a customer is
// configuring an item.
//
// Validate never fails: every problem is reported as a Violation that the
// caller renders. Violations come in a fixed order: customizations selected
// twice, then the item's definitions in catalog order, then selections naming
// customizations the item does not have. Identical input always yields an
// identical list.
//
// Selections must already carry canonical ids; legacy name references are
// resolved by catalog.Resolve before they reach this package.
package customize
