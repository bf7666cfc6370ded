// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

/*
Package metrics provides Prometheus metrics for movierec.

All collectors are registered with the default registry through promauto and
are exposed by the HTTP server at /metrics:

	curl http://localhost:8080/metrics

# Available Metrics

Query Metrics:
  - movierec_queries_total: queries by type and outcome (counter)
    Labels: query (top_rated, collaborative, genre, discover), outcome
  - movierec_query_duration_seconds: query latency (histogram)
  - movierec_query_result_size: movies returned per query (histogram)

Aggregation Metrics:
  - movierec_aggregation_partitions: partitions used by the last run (gauge)
  - movierec_aggregation_samples_total: samples by result, valid or dropped (counter)

Dataset Metrics:
  - movierec_dataset_rows_loaded_total / movierec_dataset_rows_skipped_total
    Labels: dataset (movies, users, watch_history, ratings)
  - movierec_dataset_load_duration_seconds, movierec_dataset_load_errors_total
    Labels: source (csv, duckdb, mongo)

HTTP Metrics:
  - api_requests_total, api_request_duration_seconds, api_active_requests

Authentication Metrics:
  - movierec_auth_attempts_total: Labels: result (success, invalid, throttled)

# Usage

Components call the Record* helpers rather than touching collectors directly:

	start := time.Now()
	recs, err := engine.Recommend(ctx, userID)
	metrics.RecordQuery("collaborative", metrics.Outcome(len(recs)), time.Since(start), len(recs))
*/
package metrics
