// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

// Package algorithms implements the scoring engines behind movierec queries.
//
// # Algorithm Categories
//
//   - Similarity: Jaccard overlap of watch-history sets
//   - Collaborative: neighbour-based scoring of unseen movies
//   - Genre affinity: favourite genre by watch-event count, top movies per genre
//   - Discovery: uniform random sample of unwatched movies
//
// # Determinism
//
// Every ordering that could depend on map iteration is pinned:
// neighbours tie on ascending user id, candidate movies tie on ascending
// movie id, genre tallies tie on first-seen order and genre listings tie on
// catalog order. Discovery is the only intentionally non-deterministic engine.
//
// # Thread Safety
//
// All engines are stateless apart from immutable configuration and are safe
// for concurrent use over a shared, read-only models.Snapshot.
package algorithms
