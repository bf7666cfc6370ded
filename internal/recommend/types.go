// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package recommend

import (
	"github.com/tomtom215/movierec/internal/models"
	"github.com/tomtom215/movierec/internal/recommend/algorithms"
)

// ErrUserNotIndexed is returned by Recommend when the target user has no
// entry in the watch-history index.
var ErrUserNotIndexed = algorithms.ErrUnknownUser

// RankedMovie is a movie in a ranked listing. Score is the mean rating for
// top-rated listings and the accumulated similarity for collaborative ones.
// Name is empty when the id is missing from the catalog.
type RankedMovie struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// GenreResult is the outcome of a genre recommendation.
type GenreResult struct {
	// HasAffinity is false when the user has no countable watch events;
	// Genre and Movies are then empty.
	HasAffinity bool           `json:"has_affinity"`
	Genre       string         `json:"genre,omitempty"`
	Count       int            `json:"count,omitempty"`
	Movies      []models.Movie `json:"movies"`
}

// Stats summarises the loaded dataset.
type Stats struct {
	Movies       int `json:"movies"`
	Users        int `json:"users"`
	IndexedUsers int `json:"indexed_users"`
	WatchEvents  int `json:"watch_events"`
	Ratings      int `json:"rating_samples"`
}
