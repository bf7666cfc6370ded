// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/movierec/internal/logging"
	"github.com/tomtom215/movierec/internal/metrics"
	"github.com/tomtom215/movierec/internal/models"
	"github.com/tomtom215/movierec/internal/recommend/aggregate"
	"github.com/tomtom215/movierec/internal/recommend/algorithms"
)

// Query names used for logging and metric labels.
const (
	QueryTopRated      = "top_rated"
	QueryCollaborative = algorithms.NameCollaborative
	QueryGenre         = algorithms.NameGenre
	QueryDiscover      = algorithms.NameDiscovery
)

// Engine answers recommendation queries over a frozen dataset snapshot.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	config   *Config
	logger   zerolog.Logger
	snapshot *models.Snapshot

	pipeline      *aggregate.Pipeline
	collaborative *algorithms.Collaborative
	genre         *algorithms.GenreAffinity
	discovery     *algorithms.Discovery
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(snapshot *models.Snapshot, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if snapshot == nil {
		return nil, errors.New("snapshot is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config:   cfg,
		logger:   logger.With().Str("component", "recommend").Logger(),
		snapshot: snapshot,
		pipeline: aggregate.NewPipeline(cfg.PartitionCount),
		collaborative: algorithms.NewCollaborative(algorithms.CollaborativeConfig{
			NeighborCap: cfg.NeighborCap,
			TopN:        cfg.TopN,
		}),
		genre:     algorithms.NewGenreAffinity(cfg.TopN),
		discovery: algorithms.NewDiscovery(cfg.DiscoveryCount),
	}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Snapshot returns the dataset the engine queries.
func (e *Engine) Snapshot() *models.Snapshot {
	return e.snapshot
}

// Stats returns dataset counts.
func (e *Engine) Stats() Stats {
	return Stats{
		Movies:       e.snapshot.Catalog.Len(),
		Users:        e.snapshot.UserCount(),
		IndexedUsers: len(e.snapshot.History),
		WatchEvents:  len(e.snapshot.Events),
		Ratings:      len(e.snapshot.Ratings),
	}
}

// AggregateRatings runs the aggregation pipeline over every rating sample.
func (e *Engine) AggregateRatings(ctx context.Context) aggregate.Result {
	res := e.pipeline.Run(e.snapshot.Ratings)
	metrics.RecordAggregation(res.Partitions, res.Valid, res.Dropped)

	e.requestLogger(ctx, QueryTopRated).Debug().
		Int("partitions", res.Partitions).
		Int("valid", res.Valid).
		Int("dropped", res.Dropped).
		Int("movies", len(res.Ratings)).
		Msg("aggregation complete")
	return res
}

// TopRated returns the TopN movies by mean rating.
func (e *Engine) TopRated(ctx context.Context) []RankedMovie {
	start := time.Now()

	res := e.AggregateRatings(ctx)
	top := aggregate.TopRated(res.Ratings, e.config.TopN)

	out := make([]RankedMovie, 0, len(top))
	for _, r := range top {
		out = append(out, RankedMovie{
			ID:    r.MovieID,
			Name:  e.snapshot.Catalog.Name(r.MovieID),
			Score: r.Mean,
		})
	}

	e.finish(ctx, QueryTopRated, metrics.Outcome(len(out)), start, len(out))
	return out
}

// Recommend returns collaborative recommendations for the user. It returns
// ErrUserNotIndexed (wrapped) when the user has no watch history entry.
func (e *Engine) Recommend(ctx context.Context, userID int) ([]RankedMovie, error) {
	start := time.Now()

	scored, err := e.collaborative.Recommend(userID, e.snapshot.History)
	if err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(err, ErrUserNotIndexed) {
			outcome = metrics.OutcomeUnknown
		}
		e.finish(ctx, QueryCollaborative, outcome, start, 0)
		return nil, fmt.Errorf("recommend for user %d: %w", userID, err)
	}

	out := make([]RankedMovie, 0, len(scored))
	for _, s := range scored {
		out = append(out, RankedMovie{
			ID:    s.MovieID,
			Name:  e.snapshot.Catalog.Name(s.MovieID),
			Score: s.Score,
		})
	}

	e.finish(ctx, QueryCollaborative, metrics.Outcome(len(out)), start, len(out))
	return out, nil
}

// FavoriteGenre returns the user's most watched genre. The boolean is false
// when the user has no countable watch events.
func (e *Engine) FavoriteGenre(_ context.Context, userID int) (models.GenreAffinity, bool) {
	aff, ok := e.genre.FavoriteGenre(e.snapshot.EventsFor(userID), e.snapshot.Catalog)
	if ok {
		aff.UserID = userID
	}
	return aff, ok
}

// TopByGenre returns the TopN best rated movies of the genre.
func (e *Engine) TopByGenre(_ context.Context, genre string) []models.Movie {
	return e.genre.TopByGenre(genre, e.snapshot.Catalog, e.config.TopN)
}

// GenreRecommendations combines FavoriteGenre and TopByGenre. The genre
// listing is only computed when the user has an affinity.
func (e *Engine) GenreRecommendations(ctx context.Context, userID int) GenreResult {
	start := time.Now()

	aff, ok := e.FavoriteGenre(ctx, userID)
	if !ok {
		e.finish(ctx, QueryGenre, metrics.OutcomeEmpty, start, 0)
		return GenreResult{Movies: []models.Movie{}}
	}

	movies := e.TopByGenre(ctx, aff.Genre)
	e.finish(ctx, QueryGenre, metrics.Outcome(len(movies)), start, len(movies))
	return GenreResult{
		HasAffinity: true,
		Genre:       aff.Genre,
		Count:       aff.Count,
		Movies:      movies,
	}
}

// Discover returns a random sample of movies the user has not watched.
// Non-positive count uses DiscoveryCount. Users without history sample from
// the whole catalog.
func (e *Engine) Discover(ctx context.Context, userID, count int) []models.Movie {
	start := time.Now()
	if count <= 0 {
		count = e.config.DiscoveryCount
	}

	out := e.discovery.Sample(e.snapshot.History.Watched(userID), e.snapshot.Catalog, count)

	e.finish(ctx, QueryDiscover, metrics.Outcome(len(out)), start, len(out))
	return out
}

// finish records metrics and a debug line for a completed query.
func (e *Engine) finish(ctx context.Context, query, outcome string, start time.Time, size int) {
	elapsed := time.Since(start)
	metrics.RecordQuery(query, outcome, elapsed, size)

	e.requestLogger(ctx, query).Debug().
		Str("outcome", outcome).
		Int("returned", size).
		Dur("latency", elapsed).
		Msg("query complete")
}

// requestLogger adds correlation fields carried by ctx.
func (e *Engine) requestLogger(ctx context.Context, query string) *zerolog.Logger {
	logCtx := e.logger.With().Str("query", query)
	if id := logging.RequestIDFromContext(ctx); id != "" {
		logCtx = logCtx.Str("request_id", id)
	}
	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		logCtx = logCtx.Str("correlation_id", id)
	}
	l := logCtx.Logger()
	return &l
}
