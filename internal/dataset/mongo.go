// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package dataset

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tomtom215/movierec/internal/config"
	"github.com/tomtom215/movierec/internal/models"
)

// Collection names read by MongoSource.
const (
	CollectionMovies       = "movies"
	CollectionUsers        = "users"
	CollectionWatchHistory = "watch_history"
	CollectionRatings      = "ratings"
)

type movieDoc struct {
	ID     int    `bson:"id"`
	Name   string `bson:"name"`
	Genre  string `bson:"genre"`
	Rating any    `bson:"rating"`
}

type userDoc struct {
	ID       int    `bson:"id"`
	Username string `bson:"username"`
	Password string `bson:"password"`
}

type watchDoc struct {
	UserID  int    `bson:"user_id"`
	MovieID int    `bson:"movie_id"`
	Name    string `bson:"name"`
}

type ratingDoc struct {
	MovieID int    `bson:"movie_id"`
	Name    string `bson:"name"`
	Genre   string `bson:"genre"`
	Rating  any    `bson:"rating"`
}

// MongoSource reads the dataset from MongoDB collections. Documents are
// flattened into the same row layout as the files so the shared row rules
// apply unchanged.
type MongoSource struct {
	cfg          config.MongoConfig
	ratingColumn int
	logger       zerolog.Logger
}

// NewMongoSource creates a MongoDB-backed source.
func NewMongoSource(cfg config.MongoConfig, ratingColumn int, logger zerolog.Logger) *MongoSource {
	if ratingColumn <= 0 {
		ratingColumn = DefaultRatingColumn
	}
	return &MongoSource{
		cfg:          cfg,
		ratingColumn: ratingColumn,
		logger:       logger.With().Str("component", "dataset").Str("source", config.SourceMongo).Logger(),
	}
}

// Name implements Source.
func (s *MongoSource) Name() string { return config.SourceMongo }

// Load implements Source.
func (s *MongoSource) Load(ctx context.Context) (*models.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	defer func() {
		if derr := client.Disconnect(context.Background()); derr != nil {
			s.logger.Warn().Err(derr).Msg("Failed to disconnect from mongo")
		}
	}()

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	db := client.Database(s.cfg.Database)
	var t Tables

	var movies []movieDoc
	if err := findAll(ctx, db.Collection(CollectionMovies), &movies); err != nil {
		return nil, err
	}
	for _, d := range movies {
		t.Movies = append(t.Movies, s.ratedRow(d.ID, d.Name, d.Genre, d.Rating))
	}

	var users []userDoc
	if err := findAll(ctx, db.Collection(CollectionUsers), &users); err != nil {
		return nil, err
	}
	for _, d := range users {
		t.Users = append(t.Users, []string{strconv.Itoa(d.ID), d.Username, d.Password})
	}

	var watches []watchDoc
	if err := findAll(ctx, db.Collection(CollectionWatchHistory), &watches); err != nil {
		return nil, err
	}
	for _, d := range watches {
		t.WatchHistory = append(t.WatchHistory, []string{strconv.Itoa(d.UserID), strconv.Itoa(d.MovieID), d.Name})
	}

	var ratings []ratingDoc
	if err := findAll(ctx, db.Collection(CollectionRatings), &ratings); err != nil {
		return nil, err
	}
	for _, d := range ratings {
		t.Ratings = append(t.Ratings, s.ratedRow(d.MovieID, d.Name, d.Genre, d.Rating))
	}

	return BuildSnapshot(t, s.ratingColumn), nil
}

// ratedRow lays out id,name,genre and places the rating text at the rating
// column. A missing rating leaves the row short so it is skipped as a sample.
func (s *MongoSource) ratedRow(id int, name, genre string, rating any) []string {
	row := []string{strconv.Itoa(id), name, genre}
	text, ok := RatingText(rating)
	if !ok {
		return row
	}
	for len(row) < s.ratingColumn {
		row = append(row, "")
	}
	return append(row[:s.ratingColumn], text)
}

// RatingText renders a decoded BSON rating as text. Numbers are formatted
// without loss, strings pass through verbatim, null reports false.
func RatingText(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case int32:
		return strconv.FormatInt(int64(val), 10), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case int:
		return strconv.Itoa(val), true
	default:
		return fmt.Sprint(val), true
	}
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, out *[]T) error {
	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return nil
}
