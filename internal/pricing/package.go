// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package pricing

import (
	"fmt"

	"github.com/tomtom215/platewise/internal/catalog"
	"github.com/tomtom215/platewise/internal/money"
)

// MemberQuote is one priced package member.
type MemberQuote struct {
	ItemID     string              `json:"item_id"`
	Quantity   int                 `json:"quantity"`
	BasePrice  money.Cents         `json:"base_price"`
	Selections []catalog.Selection `json:"selections,omitempty"`
	Quote      Quote               `json:"quote"`
}

// PackageQuote holds the package figures. Savings and CustomizedTotal are
// independent: the first uses base prices only, the second applies options.
type PackageQuote struct {
	PackageID       string        `json:"package_id"`
	Price           money.Cents   `json:"price"`
	IndividualTotal money.Cents   `json:"individual_total"`
	Savings         money.Cents   `json:"savings"`
	CustomizedTotal money.Cents   `json:"customized_total"`
	Members         []MemberQuote `json:"members"`
}

// QuotePackage prices a package. choices maps a member item id to the
// selections the customer made for it; members without an entry use the
// package's included selections.
func QuotePackage(pkg catalog.ExpandedPackage, choices map[string][]catalog.Selection) (PackageQuote, error) {
	if pkg.Price < 0 {
		return PackageQuote{}, &ComputationError{Op: "package_quote", Field: "price", Value: pkg.Price.String(), Reason: "negative package price"}
	}

	pq := PackageQuote{
		PackageID: pkg.ID,
		Price:     pkg.Price,
		Members:   make([]MemberQuote, 0, len(pkg.Members)),
	}

	for _, m := range pkg.Members {
		if m.Item.BasePrice < 0 {
			return PackageQuote{}, &ComputationError{Op: "package_quote", Field: "base_price", Value: m.Item.BasePrice.String(), Reason: "negative base price"}
		}
		base, err := LineTotal(m.Item.BasePrice, m.Quantity)
		if err != nil {
			return PackageQuote{}, fmt.Errorf("package %s member %s: %w", pkg.ID, m.Item.ID, err)
		}

		selections, ok := choices[m.Item.ID]
		if !ok {
			selections = m.Included
		}
		q, err := ItemQuote(m.Item, selections, m.Quantity)
		if err != nil {
			return PackageQuote{}, fmt.Errorf("package %s: %w", pkg.ID, err)
		}

		var overflow bool
		if pq.IndividualTotal, overflow = sumOrFail(pq.IndividualTotal, base); overflow {
			return PackageQuote{}, &ComputationError{Op: "package_quote", Field: "individual_total", Reason: "overflow"}
		}
		if pq.CustomizedTotal, overflow = sumOrFail(pq.CustomizedTotal, q.Total); overflow {
			return PackageQuote{}, &ComputationError{Op: "package_quote", Field: "customized_total", Reason: "overflow"}
		}

		pq.Members = append(pq.Members, MemberQuote{
			ItemID:     m.Item.ID,
			Quantity:   m.Quantity,
			BasePrice:  m.Item.BasePrice,
			Selections: selections,
			Quote:      q,
		})
	}

	pq.Savings = pq.IndividualTotal - pq.Price
	return pq, nil
}

func sumOrFail(a, b money.Cents) (money.Cents, bool) {
	s, ok := addCents(a, b)
	return s, !ok
}
