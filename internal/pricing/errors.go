// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package pricing

import (
	"errors"
	"fmt"
)

// ComputationError is a fatal pricing input problem. The call that returns
// it produced no price.
type ComputationError struct {
	// Op is the calculation that failed, e.g. "unit_price".
	Op string
	// Field names the offending input, e.g. "base_price" or "modifiers[2]".
	Field string
	// Value is the offending value as text.
	Value  string
	Reason string
}

func (e *ComputationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("pricing: %s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("pricing: %s: %s=%s: %s", e.Op, e.Field, e.Value, e.Reason)
}

// IsComputationError reports whether err wraps a *ComputationError.
func IsComputationError(err error) bool {
	var ce *ComputationError
	return errors.As(err, &ce)
}
