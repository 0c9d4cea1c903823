// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

// Package recommend ranks related items and packages.
//
// # Scoring
//
// Every relevance heuristic is a declarative Table of named, weighted rules
// evaluated by one generic scorer:
//
//   - ItemTable: item to item (category, price band, tags, prep time, complements)
//   - PackageItemTable: items that round out a package
//   - PackageTable: package to package (type, price band, size, adjacency)
//   - PopularityTable, PackagePopularityTable: source-independent fallback
//
// Rules in the same tier are mutually exclusive, which expresses
// "within 25% +20, else within 50% +10". Weights can be overridden per rule
// from configuration.
//
// # Fallback Chain
//
// Orchestrator fills a bounded list in three stages: explicit curated links,
// scored candidates, then popularity. Equal scores keep catalog order, so
// results are deterministic. An empty pool yields an empty list, never an
// error.
//
// # Usage
//
//	engine, err := recommend.NewEngine(repo, recommend.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	recs, err := engine.RelatedItems(ctx, "pad-thai", 4)
//
// # Thread Safety
//
// Tables and orchestrators are immutable. The engine's result cache is keyed
// by catalog version and guarded internally.
package recommend
