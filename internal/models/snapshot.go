// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package models

// Snapshot is the immutable dataset every query runs against.
type Snapshot struct {
	Catalog *Catalog
	History WatchHistoryIndex
	Events  []WatchEvent
	Ratings []RatingSample

	users        []User
	byUsername   map[string]int
	byID         map[int]int
	eventsByUser map[int][]WatchEvent
}

// NewSnapshot freezes the loaded records. A repeated username keeps the
// later record, matching how the user file is keyed.
func NewSnapshot(movies []Movie, users []User, events []WatchEvent, ratings []RatingSample) *Snapshot {
	s := &Snapshot{
		Catalog:      NewCatalog(movies),
		History:      BuildWatchHistoryIndex(events),
		Events:       events,
		Ratings:      ratings,
		users:        make([]User, 0, len(users)),
		byUsername:   make(map[string]int, len(users)),
		byID:         make(map[int]int, len(users)),
		eventsByUser: make(map[int][]WatchEvent),
	}

	for _, u := range users {
		if idx, ok := s.byUsername[u.Username]; ok {
			s.users[idx] = u
			s.byID[u.ID] = idx
			continue
		}
		s.byUsername[u.Username] = len(s.users)
		s.byID[u.ID] = len(s.users)
		s.users = append(s.users, u)
	}

	for _, ev := range events {
		s.eventsByUser[ev.UserID] = append(s.eventsByUser[ev.UserID], ev)
	}

	return s
}

// UserByUsername looks up a user by login name.
func (s *Snapshot) UserByUsername(username string) (User, bool) {
	idx, ok := s.byUsername[username]
	if !ok {
		return User{}, false
	}
	return s.users[idx], true
}

// UserByID looks up a user by id.
func (s *Snapshot) UserByID(id int) (User, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return User{}, false
	}
	return s.users[idx], true
}

// UserCount returns the number of distinct usernames.
func (s *Snapshot) UserCount() int {
	return len(s.users)
}

// EventsFor returns the user's watch events in load order.
func (s *Snapshot) EventsFor(userID int) []WatchEvent {
	return s.eventsByUser[userID]
}
