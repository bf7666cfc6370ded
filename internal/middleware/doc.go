// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

/*
Package middleware provides HTTP middleware for the query API.

Key Components:

  - RequestID: UUID request tracking, wired into the logging context
  - PrometheusMetrics: request count, latency and in-flight instrumentation
    labelled by chi route pattern
  - AccessLog: one structured zerolog line per request

All middleware uses the func(http.Handler) http.Handler shape so it plugs
straight into chi's r.Use:

	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(logger))
	r.Route("/api/v1", func(r chi.Router) {
	    r.Use(middleware.PrometheusMetrics)
	})
*/
package middleware
