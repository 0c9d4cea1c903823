// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package customize

// Code classifies a Violation.
type Code string

const (
	CodeRequiredMissing        Code = "required_missing"
	CodeMultipleSelections     Code = "multiple_selections"
	CodeTooManySelections      Code = "too_many_selections"
	CodeDuplicateOption        Code = "duplicate_option"
	CodeDuplicateCustomization Code = "duplicate_customization"
	CodeOptionUnavailable      Code = "option_unavailable"
	CodeUnknownCustomization   Code = "unknown_customization"
	CodeUnknownOption          Code = "unknown_option"
	CodeOptionsNotAllowed      Code = "options_not_allowed"
	CodeTextTooLong            Code = "text_too_long"
	CodeUnknownItem            Code = "unknown_item"
)

// Violation is one user-correctable problem with a selection.
type Violation struct {
	ItemID          string `json:"item_id"`
	CustomizationID string `json:"customization_id,omitempty"`
	Code            Code   `json:"code"`
	Message         string `json:"message"`
}

// Codes returns the codes of vs in order.
func Codes(vs []Violation) []Code {
	out := make([]Code, len(vs))
	for i, v := range vs {
		out[i] = v.Code
	}
	return out
}
