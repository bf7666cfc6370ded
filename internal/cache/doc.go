// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

// Package cache provides a bounded, thread-safe LRU used to memoise
// per-user query results in the HTTP layer. Results over a frozen snapshot
// are deterministic, so entries never go stale and there is no TTL.
package cache
