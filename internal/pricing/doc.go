// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

/*
Package pricing computes unit prices, line totals and package totals.

Every function here is pure: no I/O, no shared state, safe for any number of
concurrent callers.

# Item Prices

A unit price is the base price plus the modifiers of every selected option:

	unit  = round2(base + Σ modifier)
	total = unit × quantity

Amounts are money.Cents, so round2 only matters for the decimal and float
entry points (PriceDecimal, PriceFloat). Those sum the exact inputs first and
round once, half away from zero, so 0.005 becomes 0.01.

Bad inputs fail with *ComputationError and never degrade to zero:

  - negative base price
  - NaN or infinite float inputs
  - non-positive quantity
  - a negative unit price after modifiers
  - int64 overflow

# Packages

QuotePackage reports two independent figures for a package:

  - Savings: Σ(member base price × qty) − package price. Option choices
    never change it. It is negative when the package costs more than its
    members bought separately.
  - CustomizedTotal: Σ(member unit price with its selections × qty). This
    is informational; it is what the members would cost à la carte with
    the same options.
*/
package pricing
