// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query outcome labels.
const (
	OutcomeOK      = "ok"
	OutcomeEmpty   = "empty"
	OutcomeUnknown = "unknown_user"
	OutcomeError   = "error"
)

var (
	// Recommendation Query Metrics
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movierec_queries_total",
			Help: "Total number of recommendation queries by query type and outcome",
		},
		[]string{"query", "outcome"}, // query: top_rated, collaborative, genre, discover
	)

	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "movierec_query_duration_seconds",
			Help:    "Duration of recommendation queries in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"query"},
	)

	QueryResultSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "movierec_query_result_size",
			Help:    "Number of movies returned per recommendation query",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
		[]string{"query"},
	)

	// Aggregation Pipeline Metrics
	AggregationPartitions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "movierec_aggregation_partitions",
			Help: "Number of partitions used by the most recent aggregation run",
		},
	)

	AggregationSamples = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movierec_aggregation_samples_total",
			Help: "Rating samples seen by the aggregation pipeline",
		},
		[]string{"result"}, // "valid", "dropped"
	)

	// Dataset Metrics
	DatasetRowsLoaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movierec_dataset_rows_loaded_total",
			Help: "Dataset rows accepted by the loader",
		},
		[]string{"dataset"},
	)

	DatasetRowsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movierec_dataset_rows_skipped_total",
			Help: "Malformed dataset rows skipped by the loader",
		},
		[]string{"dataset"},
	)

	DatasetLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "movierec_dataset_load_duration_seconds",
			Help:    "Time taken to load the dataset snapshot",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	DatasetLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movierec_dataset_load_errors_total",
			Help: "Dataset load failures by source",
		},
		[]string{"source"},
	)

	// Authentication Metrics
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movierec_auth_attempts_total",
			Help: "Credential checks by result",
		},
		[]string{"result"}, // "success", "invalid", "throttled"
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)
)

// RecordQuery records one recommendation query. Result size is only
// observed for successful queries.
func RecordQuery(query, outcome string, duration time.Duration, resultSize int) {
	QueriesTotal.WithLabelValues(query, outcome).Inc()
	QueryDuration.WithLabelValues(query).Observe(duration.Seconds())
	if outcome == OutcomeOK || outcome == OutcomeEmpty {
		QueryResultSize.WithLabelValues(query).Observe(float64(resultSize))
	}
}

// Outcome derives the outcome label for a query without a typed error.
func Outcome(resultSize int) string {
	if resultSize == 0 {
		return OutcomeEmpty
	}
	return OutcomeOK
}

// RecordAggregation records the shape of one pipeline run.
func RecordAggregation(partitions, valid, dropped int) {
	AggregationPartitions.Set(float64(partitions))
	AggregationSamples.WithLabelValues("valid").Add(float64(valid))
	AggregationSamples.WithLabelValues("dropped").Add(float64(dropped))
}

// RecordDatasetRows records accepted and skipped rows for one dataset file.
func RecordDatasetRows(dataset string, loaded, skipped int) {
	DatasetRowsLoaded.WithLabelValues(dataset).Add(float64(loaded))
	DatasetRowsSkipped.WithLabelValues(dataset).Add(float64(skipped))
}

// RecordDatasetLoad records a full snapshot load.
func RecordDatasetLoad(source string, duration time.Duration, err error) {
	DatasetLoadDuration.WithLabelValues(source).Observe(duration.Seconds())
	if err != nil {
		DatasetLoadErrors.WithLabelValues(source).Inc()
	}
}

// RecordAuthAttempt records a credential check result.
func RecordAuthAttempt(result string) {
	AuthAttempts.WithLabelValues(result).Inc()
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
