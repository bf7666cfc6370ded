// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

// Package logging provides centralized zerolog-based structured logging for movierec.
//
// # Overview
//
// The package provides:
//   - a global zerolog logger configured once from config (JSON or console)
//   - context helpers carrying request ids (HTTP) and correlation ids (CLI sessions)
//   - an slog.Handler adapter so sutureslog writes through zerolog
//   - a SecurityLogger for authentication events with masked usernames
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("source", "csv").Msg("dataset loaded")
//	logging.Ctx(ctx).Debug().Msg("query complete")
//
// Components that need their own fields derive a child logger:
//
//	logger := logging.With().Str("component", "dataset").Logger()
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send(), and prefer structured
// fields over formatted messages. Never log passwords or credential hashes.
package logging
