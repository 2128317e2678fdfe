// Slithertag - Decorative Tag Catalog API for Slither Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/slithertag

// Package logging provides the process-wide zerolog logger for Slithertag.
//
// JSON output is the default; console output is available for local
// development. Request-scoped fields (request_id, correlation_id) travel in
// the request context and are attached by Ctx.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:     cfg.Logging.Level,
//	    Format:    cfg.Logging.Format,
//	    Caller:    cfg.Logging.Caller,
//	    Timestamp: true,
//	})
//
//	logging.Info().Str("addr", addr).Msg("HTTP server listening")
//	logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to encode response")
//
// # Configuration
//
// Environment Variables (read by internal/config):
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// # Output Formats
//
// JSON:
//
//	{"level":"info","time":"2026-01-03T10:30:00Z","message":"HTTP server listening","addr":"0.0.0.0:3000"}
//
// Console:
//
//	10:30:00 INF HTTP server listening addr=0.0.0.0:3000
//
// # slog Adapter
//
// NewSlogLogger returns an *slog.Logger that writes through zerolog. The
// supervisor tree hands it to sutureslog so service restarts and
// failures appear in the same stream.
//
// # Thread Safety
//
// All exported functions are safe for concurrent use.
package logging
