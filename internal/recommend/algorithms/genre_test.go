// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package algorithms

import (
	"testing"

	"github.com/tomtom215/movierec/internal/models"
)

func scenarioCatalog() *models.Catalog {
	return models.NewCatalog([]models.Movie{
		{ID: 1, Name: "A", Genre: "Drama", Rating: 8.0},
		{ID: 2, Name: "B", Genre: "Drama", Rating: 6.0},
		{ID: 3, Name: "C", Genre: "Comedy", Rating: 9.0},
	})
}

func watch(user int, movies ...int) []models.WatchEvent {
	events := make([]models.WatchEvent, 0, len(movies))
	for _, m := range movies {
		events = append(events, models.WatchEvent{UserID: user, MovieID: m})
	}
	return events
}

func TestGenreScenario(t *testing.T) {
	g := NewGenreAffinity(0)
	catalog := scenarioCatalog()

	aff, ok := g.FavoriteGenre(watch(1, 1), catalog)
	if !ok {
		t.Fatal("FavoriteGenre() reported no affinity")
	}
	if aff.Genre != "Drama" {
		t.Errorf("FavoriteGenre() = %q, want %q", aff.Genre, "Drama")
	}

	got := g.TopByGenre(aff.Genre, catalog, 0)
	want := []string{"A", "B"}
	if len(got) != len(want) {
		t.Fatalf("TopByGenre() = %+v, want %v", got, want)
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("TopByGenre()[%d] = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestFavoriteGenre(t *testing.T) {
	catalog := models.NewCatalog([]models.Movie{
		{ID: 1, Genre: "Drama"},
		{ID: 2, Genre: "Comedy"},
		{ID: 3, Genre: "Comedy"},
		{ID: 4, Genre: "Horror"},
	})

	tests := []struct {
		name      string
		events    []models.WatchEvent
		wantGenre string
		wantCount int
		wantOK    bool
	}{
		{name: "no events", events: nil, wantOK: false},
		{name: "only unknown movies", events: watch(1, 90, 91), wantOK: false},
		{name: "clear winner", events: watch(1, 1, 2, 3), wantGenre: "Comedy", wantCount: 2, wantOK: true},
		{name: "tie goes to first seen", events: watch(1, 4, 1), wantGenre: "Horror", wantCount: 1, wantOK: true},
		{name: "tie goes to first seen reversed", events: watch(1, 1, 4), wantGenre: "Drama", wantCount: 1, wantOK: true},
		{name: "repeat watches count again", events: watch(1, 2, 1, 1), wantGenre: "Drama", wantCount: 2, wantOK: true},
		{name: "unknown movies skipped", events: watch(1, 99, 99, 4), wantGenre: "Horror", wantCount: 1, wantOK: true},
	}

	g := NewGenreAffinity(0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.FavoriteGenre(tt.events, catalog)
			if ok != tt.wantOK {
				t.Fatalf("FavoriteGenre() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Genre != tt.wantGenre || got.Count != tt.wantCount {
				t.Errorf("FavoriteGenre() = %+v, want genre %q count %d", got, tt.wantGenre, tt.wantCount)
			}
		})
	}
}

func TestTopByGenre(t *testing.T) {
	movies := []models.Movie{
		{ID: 1, Name: "low", Genre: "Drama", Rating: 1},
		{ID: 2, Name: "tie-first", Genre: "Drama", Rating: 7},
		{ID: 3, Name: "other", Genre: "Comedy", Rating: 10},
		{ID: 4, Name: "tie-second", Genre: "Drama", Rating: 7},
		{ID: 5, Name: "high", Genre: "Drama", Rating: 9},
	}
	for i := 0; i < 12; i++ {
		movies = append(movies, models.Movie{ID: 100 + i, Name: "bulk", Genre: "Action", Rating: float64(i)})
	}
	catalog := models.NewCatalog(movies)
	g := NewGenreAffinity(0)

	got := g.TopByGenre("Drama", catalog, 0)
	wantNames := []string{"high", "tie-first", "tie-second", "low"}
	if len(got) != len(wantNames) {
		t.Fatalf("TopByGenre(Drama) len = %d, want %d", len(got), len(wantNames))
	}
	for i, n := range wantNames {
		if got[i].Name != n {
			t.Errorf("TopByGenre(Drama)[%d] = %q, want %q", i, got[i].Name, n)
		}
	}

	if got := g.TopByGenre("Action", catalog, 0); len(got) != DefaultGenreTopN {
		t.Errorf("TopByGenre(Action) len = %d, want %d", len(got), DefaultGenreTopN)
	}
	if got := g.TopByGenre("Action", catalog, 3); len(got) != 3 || got[0].Rating != 11 {
		t.Errorf("TopByGenre(Action, 3) = %+v, want 3 movies starting at rating 11", got)
	}
	if got := g.TopByGenre("Western", catalog, 0); len(got) != 0 {
		t.Errorf("TopByGenre(Western) = %+v, want empty", got)
	}
	if got := g.TopByGenre("Drama", models.NewCatalog(nil), 0); len(got) != 0 {
		t.Errorf("TopByGenre on empty catalog = %+v, want empty", got)
	}
}
