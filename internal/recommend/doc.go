// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

// Package recommend is the query facade of the movie recommendation engine.
//
// # Architecture
//
// An Engine wraps one immutable models.Snapshot and answers four kinds of
// query, each backed by a dedicated subpackage:
//
//   - TopRated: partitioned rating aggregation (aggregate)
//   - Recommend: Jaccard-based collaborative filtering (algorithms)
//   - GenreRecommendations: favourite genre plus its best rated movies (algorithms)
//   - Discover: random sample of unwatched movies (algorithms)
//
// The snapshot is passed in explicitly; the engine never reloads or mutates
// it, so concurrent queries need no locking.
//
// # Observability
//
// Every query records movierec_queries_total and latency histograms through
// the metrics package and emits a debug log line carrying the request and
// correlation ids found in the context.
//
// # Usage
//
//	snap, err := source.Load(ctx)
//	engine, err := recommend.NewEngine(snap, recommend.DefaultConfig(), logger)
//	recs, err := engine.Recommend(ctx, userID)
//	if errors.Is(err, recommend.ErrUserNotIndexed) {
//	    // user has no watch history
//	}
package recommend
