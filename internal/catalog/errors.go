// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrItemNotFound is returned when an item id is not in the snapshot.
	ErrItemNotFound = errors.New("catalog: item not found")

	// ErrPackageNotFound is returned when a package id is not in the snapshot.
	ErrPackageNotFound = errors.New("catalog: package not found")
)

// ConfigurationError reports catalog data that is internally inconsistent or
// a reference that cannot be resolved against it. It is never recovered by
// substituting a default.
type ConfigurationError struct {
	ItemID          string
	PackageID       string
	CustomizationID string
	// Reference is the offending reference as received, if any.
	Reference string
	Reason    string
}

func (e *ConfigurationError) Error() string {
	subject := "catalog"
	switch {
	case e.PackageID != "" && e.ItemID != "":
		subject = fmt.Sprintf("package %q item %q", e.PackageID, e.ItemID)
	case e.PackageID != "":
		subject = fmt.Sprintf("package %q", e.PackageID)
	case e.ItemID != "":
		subject = fmt.Sprintf("item %q", e.ItemID)
	}
	if e.CustomizationID != "" {
		subject += fmt.Sprintf(" customization %q", e.CustomizationID)
	}
	if e.Reference != "" {
		return fmt.Sprintf("configuration error: %s: %s (reference %s)", subject, e.Reason, e.Reference)
	}
	return fmt.Sprintf("configuration error: %s: %s", subject, e.Reason)
}

// IsConfigurationError reports whether err wraps a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
