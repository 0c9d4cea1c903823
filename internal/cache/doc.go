// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

/*
Package cache provides a thread-safe, generic LRU cache with TTL support.

The recommendation engine uses it to memoize ranked lists. Keys embed the
catalog version, so a catalog reload makes every older entry unreachable and
the LRU ages them out.

# Usage

	c := cache.NewLRU[[]string](1024, 5*time.Minute)
	c.Add("v3:item:pad-thai:4", ids)
	if ids, ok := c.Get("v3:item:pad-thai:4"); ok {
		return ids
	}

# Thread Safety

All methods take a single mutex. Get mutates recency order, so there is no
read-only fast path.
*/
package cache
