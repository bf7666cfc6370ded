// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

// Package services adapts blocking components to suture's
// Serve(ctx) error contract.
//
// HTTPServerService turns http.Server's ListenAndServe/Shutdown pair into a
// context-driven service: a listener error is returned so the supervisor can
// restart it, and context cancellation performs a graceful shutdown.
package services
