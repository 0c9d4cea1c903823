// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

// Package logging provides centralized zerolog-based structured logging for Platewise.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("item_id", "pad-thai").Msg("Quote computed")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Legacy reference rejected")
//
// # Configuration
//
// Environment Variables:
//
//	LOG_LEVEL   - Minimum log level: trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - Output format: json, console (default: json)
//	LOG_CALLER  - Include caller file:line: true, false (default: false)
//
// # Context Propagation
//
// HTTP middleware stores request_id and correlation_id in the request context,
// and cart handlers add session_id. Ctx(ctx) returns a logger carrying all
// fields present:
//
//	{"level":"info","request_id":"...","correlation_id":"1a2b3c4d","session_id":"s-42","message":"Line added"}
//
// # Component Loggers
//
// Long-lived components keep a child logger:
//
//	logger := logging.WithComponent("recommend")
//
// # slog Bridge
//
// SlogHandler lets slog-only libraries, such as the sutureslog event hook,
// write through zerolog.
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
package logging
