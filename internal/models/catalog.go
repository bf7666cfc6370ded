// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package models

// Catalog holds movies in natural catalog order (load order) with an index
// by id. A movie id appearing twice keeps its first position and takes the
// fields of the later record.
type Catalog struct {
	movies []Movie
	byID   map[int]int
}

// NewCatalog builds a catalog from movies in load order.
func NewCatalog(movies []Movie) *Catalog {
	c := &Catalog{
		movies: make([]Movie, 0, len(movies)),
		byID:   make(map[int]int, len(movies)),
	}
	for _, m := range movies {
		if idx, ok := c.byID[m.ID]; ok {
			c.movies[idx] = m
			continue
		}
		c.byID[m.ID] = len(c.movies)
		c.movies = append(c.movies, m)
	}
	return c
}

// Len returns the number of distinct movies.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.movies)
}

// Movies returns the movies in catalog order. The slice must not be modified.
func (c *Catalog) Movies() []Movie {
	if c == nil {
		return nil
	}
	return c.movies
}

// Get returns the movie with the given id.
func (c *Catalog) Get(id int) (Movie, bool) {
	if c == nil {
		return Movie{}, false
	}
	idx, ok := c.byID[id]
	if !ok {
		return Movie{}, false
	}
	return c.movies[idx], true
}

// Name returns the movie name, or "" for ids not in the catalog.
func (c *Catalog) Name(id int) string {
	m, _ := c.Get(id)
	return m.Name
}

// Genre returns the movie genre, or "" for ids not in the catalog.
func (c *Catalog) Genre(id int) (string, bool) {
	m, ok := c.Get(id)
	return m.Genre, ok
}
