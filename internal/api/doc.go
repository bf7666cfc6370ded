// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

/*
Package api exposes the recommendation engine over a read-only JSON API.

Routes (chi v5):

	GET /api/v1/health                            no auth
	GET /api/v1/movies/top-rated                  Basic auth
	GET /api/v1/users/{userID}/recommendations    Basic auth, caller must own userID
	GET /api/v1/users/{userID}/genre              Basic auth, caller must own userID
	GET /api/v1/users/{userID}/discover?count=N   Basic auth, caller must own userID
	GET /metrics                                  Prometheus exposition

Every JSON body uses the models.APIResponse envelope and is encoded with
goccy/go-json.

Recommendation and genre answers are memoised per user in a bounded LRU
(internal/cache) when NewHandler gets a positive cache size.

Middleware Stack:

  - RequestID and AccessLog (internal/middleware)
  - chi RealIP and Recoverer
  - go-chi/cors
  - go-chi/httprate per client IP on /api/v1
  - PrometheusMetrics labelled by route pattern
  - auth.Middleware.RequireBasic on data routes

Error codes:

  - UNAUTHORIZED, TOO_MANY_ATTEMPTS: credential failures
  - FORBIDDEN: caller asked for another user's data
  - INVALID_USER_ID: userID is not a non-negative integer
  - USER_NOT_INDEXED: no watch history for collaborative recommendations
  - VALIDATION_ERROR: bad query parameters
  - RATE_LIMIT_EXCEEDED: httprate rejected the request
  - NOT_FOUND, METHOD_NOT_ALLOWED: unknown route or verb
*/
package api
