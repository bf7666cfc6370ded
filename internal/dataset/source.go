// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package dataset

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/movierec/internal/config"
	"github.com/tomtom215/movierec/internal/metrics"
	"github.com/tomtom215/movierec/internal/models"
)

// Table names, used as metric labels and log fields.
const (
	TableMovies       = "movies"
	TableUsers        = "users"
	TableWatchHistory = "watch_history"
	TableRatings      = "ratings"
)

// Source loads a snapshot of the dataset.
type Source interface {
	Name() string
	Load(ctx context.Context) (*models.Snapshot, error)
}

// Tables holds the raw string rows of each table, header excluded.
type Tables struct {
	Movies       [][]string
	Users        [][]string
	WatchHistory [][]string
	Ratings      [][]string
}

// NewSource returns the source selected by cfg.Dataset.Source.
func NewSource(cfg *config.Config, logger zerolog.Logger) (Source, error) {
	switch cfg.Dataset.Source {
	case config.SourceCSV, "":
		return NewCSVSource(cfg.Dataset, logger), nil
	case config.SourceDuckDB:
		return NewDuckDBSource(cfg.Dataset, cfg.DuckDB, logger), nil
	case config.SourceMongo:
		return NewMongoSource(cfg.Mongo, cfg.Dataset.RatingColumn, logger), nil
	default:
		return nil, fmt.Errorf("unknown dataset source %q", cfg.Dataset.Source)
	}
}

// Load runs src and records load metrics and a summary log line.
func Load(ctx context.Context, src Source, logger zerolog.Logger) (*models.Snapshot, error) {
	start := time.Now()
	snap, err := src.Load(ctx)
	elapsed := time.Since(start)
	metrics.RecordDatasetLoad(src.Name(), elapsed, err)
	if err != nil {
		return nil, fmt.Errorf("load dataset from %s: %w", src.Name(), err)
	}

	logger.Info().
		Str("source", src.Name()).
		Int("movies", snap.Catalog.Len()).
		Int("users", snap.UserCount()).
		Int("watch_events", len(snap.Events)).
		Int("ratings", len(snap.Ratings)).
		Dur("duration", elapsed).
		Msg("Dataset loaded")
	return snap, nil
}
