// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package dataset

import (
	"strconv"
	"strings"

	"github.com/tomtom215/movierec/internal/metrics"
	"github.com/tomtom215/movierec/internal/models"
)

// DefaultRatingColumn is the zero-based column holding the rating text.
const DefaultRatingColumn = 3

// IsNumeric reports whether s is a non-empty run of ASCII digits.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// atoi parses a field already accepted by IsNumeric. Values that overflow
// int are rejected.
func atoi(s string) (int, bool) {
	if !IsNumeric(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseUsers applies the user row rule: id,username,credential.
func ParseUsers(rows [][]string) (users []models.User, skipped int) {
	users = make([]models.User, 0, len(rows))
	for _, r := range rows {
		if len(r) < 3 {
			skipped++
			continue
		}
		id, ok := atoi(r[0])
		if !ok {
			skipped++
			continue
		}
		users = append(users, models.User{ID: id, Username: r[1], Credential: r[2]})
	}
	return users, skipped
}

// ParseMovies applies the movie row rule: id,name,genre with an optional
// baseline rating at ratingColumn. An unparseable rating loads as 0.
func ParseMovies(rows [][]string, ratingColumn int) (movies []models.Movie, skipped int) {
	movies = make([]models.Movie, 0, len(rows))
	for _, r := range rows {
		if len(r) < 3 {
			skipped++
			continue
		}
		id, ok := atoi(r[0])
		if !ok {
			skipped++
			continue
		}
		m := models.Movie{ID: id, Name: r[1], Genre: r[2]}
		if ratingColumn < len(r) {
			m.Rating = parseBaseline(r[ratingColumn])
		}
		movies = append(movies, m)
	}
	return movies, skipped
}

func parseBaseline(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseWatchHistory applies the watch row rule: user_id,movie_id[,name].
func ParseWatchHistory(rows [][]string) (events []models.WatchEvent, skipped int) {
	events = make([]models.WatchEvent, 0, len(rows))
	for _, r := range rows {
		if len(r) < 2 {
			skipped++
			continue
		}
		uid, ok := atoi(r[0])
		if !ok {
			skipped++
			continue
		}
		mid, ok := atoi(r[1])
		if !ok {
			skipped++
			continue
		}
		ev := models.WatchEvent{UserID: uid, MovieID: mid}
		if len(r) > 2 {
			ev.Name = r[2]
		}
		events = append(events, ev)
	}
	return events, skipped
}

// ParseRatings extracts raw rating samples: numeric id at column 0, text at
// ratingColumn. The text is kept verbatim for the aggregation pipeline.
func ParseRatings(rows [][]string, ratingColumn int) (samples []models.RatingSample, skipped int) {
	samples = make([]models.RatingSample, 0, len(rows))
	for _, r := range rows {
		if len(r) <= ratingColumn {
			skipped++
			continue
		}
		id, ok := atoi(r[0])
		if !ok {
			skipped++
			continue
		}
		samples = append(samples, models.RatingSample{MovieID: id, Value: r[ratingColumn]})
	}
	return samples, skipped
}

// BuildSnapshot applies the row rules to every table and freezes the result.
func BuildSnapshot(t Tables, ratingColumn int) *models.Snapshot {
	if ratingColumn <= 0 {
		ratingColumn = DefaultRatingColumn
	}

	users, skipped := ParseUsers(t.Users)
	metrics.RecordDatasetRows(TableUsers, len(users), skipped)

	movies, skipped := ParseMovies(t.Movies, ratingColumn)
	metrics.RecordDatasetRows(TableMovies, len(movies), skipped)

	events, skipped := ParseWatchHistory(t.WatchHistory)
	metrics.RecordDatasetRows(TableWatchHistory, len(events), skipped)

	samples, skipped := ParseRatings(t.Ratings, ratingColumn)
	metrics.RecordDatasetRows(TableRatings, len(samples), skipped)

	// Rating rows that describe a movie extend the catalog.
	rated, _ := ParseMovies(t.Ratings, ratingColumn)
	catalog := make([]models.Movie, 0, len(movies)+len(rated))
	catalog = append(catalog, movies...)
	catalog = append(catalog, rated...)

	return models.NewSnapshot(catalog, users, events, samples)
}
