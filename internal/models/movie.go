// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package models

// Movie is a catalog entry.
type Movie struct {
	ID    int    `json:"id" bson:"id"`
	Name  string `json:"name" bson:"name"`
	Genre string `json:"genre" bson:"genre"`

	// Rating is the baseline rating from the catalog file. Absent or
	// unparseable values load as 0.
	Rating float64 `json:"rating" bson:"rating"`
}

// User is an account record. Username is the external key used at login.
type User struct {
	ID       int    `json:"id" bson:"id"`
	Username string `json:"username" bson:"username"`

	// Credential is either a bcrypt hash or a plain secret.
	Credential string `json:"-" bson:"password"`
}

// WatchEvent records that a user watched a movie. Name is the display name
// captured at watch time and may differ from the catalog name.
type WatchEvent struct {
	UserID  int    `json:"user_id" bson:"user_id"`
	MovieID int    `json:"movie_id" bson:"movie_id"`
	Name    string `json:"name" bson:"name"`
}

// RatingSample is one raw rating value for a movie. Value is kept verbatim;
// the aggregation pipeline decides whether it is a valid number.
type RatingSample struct {
	MovieID int    `json:"movie_id"`
	Value   string `json:"value"`
}

// AggregatedRating is the mean of all valid samples for one movie.
type AggregatedRating struct {
	MovieID int     `json:"movie_id"`
	Mean    float64 `json:"mean"`
	Count   int     `json:"count"`
}

// SimilarityScore is the Jaccard similarity between a target user and UserID.
type SimilarityScore struct {
	UserID int     `json:"user_id"`
	Score  float64 `json:"score"`
}

// GenreAffinity is the watch tally of a user's most watched genre.
type GenreAffinity struct {
	UserID int    `json:"user_id"`
	Genre  string `json:"genre"`
	Count  int    `json:"count"`
}
