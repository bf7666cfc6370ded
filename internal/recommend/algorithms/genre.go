// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package algorithms

import (
	"sort"

	"github.com/tomtom215/movierec/internal/models"
)

// DefaultGenreTopN is the length of a genre listing when none is configured.
const DefaultGenreTopN = 10

// GenreAffinity derives a user's favourite genre from watch events and lists
// the best rated movies of a genre.
type GenreAffinity struct {
	topN int
}

// NewGenreAffinity creates the engine. Non-positive topN uses DefaultGenreTopN.
func NewGenreAffinity(topN int) *GenreAffinity {
	if topN <= 0 {
		topN = DefaultGenreTopN
	}
	return &GenreAffinity{topN: topN}
}

// Name returns the algorithm identifier.
func (g *GenreAffinity) Name() string {
	return NameGenre
}

// FavoriteGenre tallies one count per watch event, so repeat watches count
// again. Events for movies missing from the catalog are skipped. The highest
// tally wins and ties go to the genre seen first. The boolean is false when
// no event could be counted.
func (g *GenreAffinity) FavoriteGenre(events []models.WatchEvent, catalog *models.Catalog) (models.GenreAffinity, bool) {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, ev := range events {
		genre, ok := catalog.Genre(ev.MovieID)
		if !ok {
			continue
		}
		if _, seen := counts[genre]; !seen {
			order = append(order, genre)
		}
		counts[genre]++
	}

	if len(order) == 0 {
		return models.GenreAffinity{}, false
	}

	best := order[0]
	for _, genre := range order[1:] {
		if counts[genre] > counts[best] {
			best = genre
		}
	}

	var userID int
	if len(events) > 0 {
		userID = events[0].UserID
	}
	return models.GenreAffinity{UserID: userID, Genre: best, Count: counts[best]}, true
}

// TopByGenre returns up to n movies of the genre, sorted by baseline rating
// descending; equal ratings keep catalog order. Non-positive n uses the
// engine's default.
func (g *GenreAffinity) TopByGenre(genre string, catalog *models.Catalog, n int) []models.Movie {
	if n <= 0 {
		n = g.topN
	}

	out := make([]models.Movie, 0)
	for _, m := range catalog.Movies() {
		if m.Genre == genre {
			out = append(out, m)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rating > out[j].Rating
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}
