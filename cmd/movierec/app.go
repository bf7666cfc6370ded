// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/movierec/internal/auth"
	"github.com/tomtom215/movierec/internal/config"
	"github.com/tomtom215/movierec/internal/dataset"
	"github.com/tomtom215/movierec/internal/recommend"
)

// app holds the components shared by both query modes.
type app struct {
	source        string
	engine        *recommend.Engine
	authenticator *auth.Authenticator
}

// bootstrap loads the dataset and builds the engine and authenticator.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func bootstrap(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*app, error) {
	src, err := dataset.NewSource(cfg, logger)
	if err != nil {
		return nil, err
	}

	snapshot, err := dataset.Load(ctx, src, logger)
	if err != nil {
		return nil, err
	}

	engine, err := recommend.NewEngine(snapshot, cfg.Recommend.EngineConfig(), logger.With().Str("component", "recommend").Logger())
	if err != nil {
		return nil, fmt.Errorf("failed to create recommendation engine: %w", err)
	}

	authenticator := auth.NewAuthenticator(snapshot, auth.Config{
		FailureBurst:    cfg.Security.LoginFailureBurst,
		FailureInterval: cfg.Security.LoginFailureInterval,
	}, logger.With().Str("component", "auth").Logger())

	stats := engine.Stats()
	logger.Info().
		Str("source", src.Name()).
		Int("movies", stats.Movies).
		Int("users", stats.Users).
		Int("watch_events", stats.WatchEvents).
		Int("rating_samples", stats.Ratings).
		Msg("Recommendation engine ready")

	return &app{
		source:        src.Name(),
		engine:        engine,
		authenticator: authenticator,
	}, nil
}
