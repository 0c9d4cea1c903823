// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

/*
Package cart builds cart line items and maintains per-session carts.

# Line Items

Composer turns an item, a quantity and canonical selections into line items.
It validates the selections, prices them and emits exactly one line holding
the full quantity. The same policy applies on every path, so a cart total is
always Σ(unit price × quantity) over its lines.

Every line gets a random UUID that is unique within its cart.

# Sessions

Service loads, modifies and saves a session's cart through Store while
holding that session's lock from SessionLocks. Two concurrent adds to one
session are applied one after the other; different sessions never contend.

KVStore keeps carts in a kvstore.Store as JSON under "cart:<session>" with a
sliding TTL, so any number of service instances can share the carts.
*/
package cart
