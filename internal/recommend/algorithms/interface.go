// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package algorithms

import "errors"

// ErrUnknownUser is returned when a similarity query targets a user who is
// absent from the watch-history index. It is distinct from an empty result.
var ErrUnknownUser = errors.New("user not present in watch history index")

// Algorithm names used in logs and metric labels.
const (
	NameCollaborative = "collaborative"
	NameGenre         = "genre"
	NameDiscovery     = "discover"
)

// ScoredMovie is a candidate movie with its accumulated score.
type ScoredMovie struct {
	MovieID int     `json:"movie_id"`
	Score   float64 `json:"score"`
}
