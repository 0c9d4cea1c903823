// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

// Package catalog defines the read-only catalog snapshot: items, their
// customizations and options, and fixed-price packages.
//
// Values in this package are treated as immutable once loaded. A snapshot is
// produced at an ingestion boundary (LoadFile / Decode), where wire records are
// validated and every legacy customization reference is resolved into
// canonical ids exactly once. Downstream packages (customize, pricing, cart,
// recommend) only ever see canonical Selection values.
//
// # References
//
// Older clients identify customizations and options by display name instead
// of id. Such references are carried as a Reference built with ByLegacyName
// and resolved by Resolve. Resolution is exact after trimming, whitespace
// folding and case folding; a name matching nothing, or more than one
// definition, is a *ConfigurationError. No fuzzy matching is attempted.
//
// # Repository
//
// Memory holds the current snapshot behind a RWMutex and bumps a version
// counter on every Replace so callers can key caches by catalog version.
package catalog
