// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

/*
Package models defines the data structures shared by the movierec packages.

Records are loaded once at startup into a Snapshot and are read-only afterwards.
Every engine in the recommend tree receives the Snapshot (or one of its views)
explicitly; nothing is cached in package-level state.

Key Components:

  - Movie: catalog entry with a baseline rating
  - User: account record keyed externally by username
  - WatchEvent: a single watch of a movie by a user
  - RatingSample: raw, unvalidated rating text for a movie
  - Catalog: movies in load order with an id index
  - WatchSet / WatchHistoryIndex: set view of watch history (duplicates collapse)
  - Snapshot: the frozen bundle of all views above

Derived values (AggregatedRating, SimilarityScore, GenreAffinity) are produced
per request by the recommend packages and are never stored.

Thread Safety:

A Snapshot is safe for concurrent readers once NewSnapshot returns. None of
the types here provide locking; callers must not mutate a shared Snapshot.
*/
package models
