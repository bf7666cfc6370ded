// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package models

// WatchSet is the set of movie ids a user has watched.
type WatchSet map[int]struct{}

// NewWatchSet returns a set containing ids.
func NewWatchSet(ids ...int) WatchSet {
	s := make(WatchSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether id is in the set. A nil set contains nothing.
func (s WatchSet) Contains(id int) bool {
	_, ok := s[id]
	return ok
}

// WatchHistoryIndex maps a user id to the set of movies that user watched.
type WatchHistoryIndex map[int]WatchSet

// BuildWatchHistoryIndex collapses watch events into per-user sets.
// Repeat watches of the same movie count once.
func BuildWatchHistoryIndex(events []WatchEvent) WatchHistoryIndex {
	idx := make(WatchHistoryIndex)
	for _, ev := range events {
		set, ok := idx[ev.UserID]
		if !ok {
			set = make(WatchSet)
			idx[ev.UserID] = set
		}
		set[ev.MovieID] = struct{}{}
	}
	return idx
}

// Watched returns the user's set, or nil when the user has no history.
func (idx WatchHistoryIndex) Watched(userID int) WatchSet {
	return idx[userID]
}
