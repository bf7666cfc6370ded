// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package algorithms

import (
	"math/rand/v2"

	"github.com/tomtom215/movierec/internal/models"
)

// DefaultDiscoveryCount is the sample size when none is configured.
const DefaultDiscoveryCount = 10

// SourceFunc returns a fresh random source for one sampling call.
type SourceFunc func() rand.Source

// Discovery samples unwatched movies uniformly at random.
//
// Results are intentionally non-deterministic: two calls with the same
// inputs may return different movies.
type Discovery struct {
	count     int
	newSource SourceFunc
}

// NewDiscovery creates a sampler. Non-positive count uses DefaultDiscoveryCount.
func NewDiscovery(count int) *Discovery {
	if count <= 0 {
		count = DefaultDiscoveryCount
	}
	return &Discovery{
		count: count,
		newSource: func() rand.Source {
			return rand.NewPCG(rand.Uint64(), rand.Uint64()) //nolint:gosec // discovery sampling is not security sensitive
		},
	}
}

// WithSource replaces the source factory. Tests use this for repeatable
// permutations.
func (d *Discovery) WithSource(fn SourceFunc) *Discovery {
	d.newSource = fn
	return d
}

// Name returns the algorithm identifier.
func (d *Discovery) Name() string {
	return NameDiscovery
}

// Sample returns up to count catalog movies not in watched, in random order.
// Non-positive count uses the sampler's default. When fewer unwatched movies
// exist, all of them are returned.
func (d *Discovery) Sample(watched models.WatchSet, catalog *models.Catalog, count int) []models.Movie {
	if count <= 0 {
		count = d.count
	}

	pool := make([]models.Movie, 0, catalog.Len())
	for _, m := range catalog.Movies() {
		if !watched.Contains(m.ID) {
			pool = append(pool, m)
		}
	}

	rng := rand.New(d.newSource()) //nolint:gosec // discovery sampling is not security sensitive
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if len(pool) > count {
		pool = pool[:count]
	}
	return pool
}
