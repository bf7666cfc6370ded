// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

// Package aggregate computes per-movie mean ratings with a partitioned
// map/merge/reduce pipeline.
//
// Samples are split into contiguous partitions, each partition is mapped by
// its own goroutine into a private partial result, and the partials are
// merged only after every worker has finished. Workers share no mutable
// state, so the pipeline needs no locks.
package aggregate

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/tomtom215/movierec/internal/models"
)

// DefaultPartitions is the partition count used when none is configured.
const DefaultPartitions = 4

// Partial maps a movie id to the valid rating values seen by one worker.
type Partial map[int][]float64

// Result is the output of one pipeline run.
type Result struct {
	// Ratings holds one entry per movie with at least one valid sample,
	// ordered by ascending movie id.
	Ratings []models.AggregatedRating

	// Partitions is the number of partitions actually mapped.
	Partitions int

	// Valid and Dropped count accepted and rejected samples.
	Valid   int
	Dropped int
}

// Pipeline runs the partition/map/merge/reduce aggregation.
type Pipeline struct {
	partitions int
}

// NewPipeline creates a pipeline with the given partition count.
// Non-positive counts fall back to DefaultPartitions.
func NewPipeline(partitions int) *Pipeline {
	if partitions <= 0 {
		partitions = DefaultPartitions
	}
	return &Pipeline{partitions: partitions}
}

// Partitions returns the configured partition count.
func (p *Pipeline) Partitions() int {
	return p.partitions
}

// Run aggregates samples. An empty input yields an empty result.
func (p *Pipeline) Run(samples []models.RatingSample) Result {
	parts := Split(samples, p.partitions)
	if len(parts) == 0 {
		return Result{Ratings: []models.AggregatedRating{}}
	}

	partials := make([]Partial, len(parts))
	dropped := make([]int, len(parts))

	var wg sync.WaitGroup
	for i, part := range parts {
		wg.Add(1)
		go func(i int, part []models.RatingSample) {
			defer wg.Done()
			partials[i], dropped[i] = MapPartition(part)
		}(i, part)
	}
	wg.Wait()

	merged := make(Partial)
	res := Result{Partitions: len(parts)}
	for i, partial := range partials {
		merged = Merge(merged, partial)
		res.Dropped += dropped[i]
	}
	res.Ratings = Reduce(merged)
	for _, r := range res.Ratings {
		res.Valid += r.Count
	}
	return res
}

// Split divides samples into at most n contiguous partitions of
// ceil(len/n) samples each. Fewer partitions are returned when there are
// fewer samples than n. The returned slices alias samples.
func Split(samples []models.RatingSample, n int) [][]models.RatingSample {
	if len(samples) == 0 || n <= 0 {
		return nil
	}

	size := (len(samples) + n - 1) / n
	parts := make([][]models.RatingSample, 0, n)
	for start := 0; start < len(samples); start += size {
		end := start + size
		if end > len(samples) {
			end = len(samples)
		}
		parts = append(parts, samples[start:end])
	}
	return parts
}

// MapPartition collects the valid values in one partition and returns how
// many samples were dropped.
func MapPartition(part []models.RatingSample) (Partial, int) {
	out := make(Partial)
	dropped := 0
	for _, s := range part {
		v, ok := ParseRating(s.Value)
		if !ok {
			dropped++
			continue
		}
		out[s.MovieID] = append(out[s.MovieID], v)
	}
	return out, dropped
}

// ParseRating reports whether raw is a finite number in its entirety.
// Empty text, "NULL" and other non-numeric text are rejected, never coerced
// to zero.
func ParseRating(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Merge appends b's value lists onto a and returns a. The mean of the merged
// lists does not depend on merge order.
func Merge(a, b Partial) Partial {
	if a == nil {
		a = make(Partial, len(b))
	}
	for id, vals := range b {
		a[id] = append(a[id], vals...)
	}
	return a
}

// Reduce computes the mean per movie, ordered by ascending movie id. Movies
// with no values are omitted.
func Reduce(merged Partial) []models.AggregatedRating {
	ids := make([]int, 0, len(merged))
	for id, vals := range merged {
		if len(vals) > 0 {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	out := make([]models.AggregatedRating, 0, len(ids))
	for _, id := range ids {
		vals := merged[id]
		sum := 0.0
		for _, v := range vals {
			sum += v
		}
		out = append(out, models.AggregatedRating{
			MovieID: id,
			Mean:    sum / float64(len(vals)),
			Count:   len(vals),
		})
	}
	return out
}

// TopRated returns the n highest means. Equal means keep ascending movie id
// order. A non-positive n returns every rating.
func TopRated(ratings []models.AggregatedRating, n int) []models.AggregatedRating {
	sorted := make([]models.AggregatedRating, len(ratings))
	copy(sorted, ratings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Mean > sorted[j].Mean
	})
	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
