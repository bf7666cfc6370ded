// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package algorithms

import (
	"sort"

	"github.com/tomtom215/movierec/internal/models"
)

// CollaborativeConfig contains parameters for the collaborative recommender.
type CollaborativeConfig struct {
	// NeighborCap is the maximum number of similar users consulted.
	// Default: 2
	NeighborCap int

	// TopN is the maximum number of movies returned.
	// Default: 10
	TopN int
}

// DefaultCollaborativeConfig returns the default parameters.
func DefaultCollaborativeConfig() CollaborativeConfig {
	return CollaborativeConfig{
		NeighborCap: 2,
		TopN:        10,
	}
}

// Collaborative scores unseen movies from the watch histories of the most
// similar users.
//
// The score of a candidate movie is the sum of the similarities of the
// retained neighbours who watched it:
//
//	score(m) = Σ jaccard(target, n) for n in neighbours where m ∈ history(n)
type Collaborative struct {
	config CollaborativeConfig
}

// NewCollaborative creates a collaborative recommender. Zero fields fall back
// to the defaults.
func NewCollaborative(cfg CollaborativeConfig) *Collaborative {
	defaults := DefaultCollaborativeConfig()
	if cfg.NeighborCap <= 0 {
		cfg.NeighborCap = defaults.NeighborCap
	}
	if cfg.TopN <= 0 {
		cfg.TopN = defaults.TopN
	}
	return &Collaborative{config: cfg}
}

// Name returns the algorithm identifier.
func (c *Collaborative) Name() string {
	return NameCollaborative
}

// Config returns the effective configuration.
func (c *Collaborative) Config() CollaborativeConfig {
	return c.config
}

// Neighbors returns every other user with positive similarity to target,
// sorted by score descending and then ascending user id, truncated to the
// neighbour cap.
func (c *Collaborative) Neighbors(target int, index models.WatchHistoryIndex) ([]models.SimilarityScore, error) {
	targetSet, ok := index[target]
	if !ok {
		return nil, ErrUnknownUser
	}

	scores := make([]models.SimilarityScore, 0, len(index))
	for uid, set := range index {
		if uid == target {
			continue
		}
		if s := Jaccard(targetSet, set); s > 0 {
			scores = append(scores, models.SimilarityScore{UserID: uid, Score: s})
		}
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].UserID < scores[j].UserID
	})

	if len(scores) > c.config.NeighborCap {
		scores = scores[:c.config.NeighborCap]
	}
	return scores, nil
}

// Recommend returns at most TopN movies the target has not watched, sorted
// by accumulated score descending and then ascending movie id. A user with
// no similar neighbours gets an empty, non-nil slice.
func (c *Collaborative) Recommend(target int, index models.WatchHistoryIndex) ([]ScoredMovie, error) {
	neighbors, err := c.Neighbors(target, index)
	if err != nil {
		return nil, err
	}

	targetSet := index[target]
	acc := make(map[int]float64)
	for _, n := range neighbors {
		for movieID := range index[n.UserID] {
			if targetSet.Contains(movieID) {
				continue
			}
			acc[movieID] += n.Score
		}
	}

	out := make([]ScoredMovie, 0, len(acc))
	for movieID, score := range acc {
		out = append(out, ScoredMovie{MovieID: movieID, Score: score})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].MovieID < out[j].MovieID
	})

	if len(out) > c.config.TopN {
		out = out[:c.config.TopN]
	}
	return out, nil
}
