// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package auth

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// maxTrackedSubjects bounds the limiter map before idle entries are pruned.
const maxTrackedSubjects = 4096

// FailureLimiter throttles failed logins per username. Each failure spends
// one token; a subject with no token left is blocked until the bucket
// refills.
type FailureLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	now      func() time.Time
}

// NewFailureLimiter allows burst failures, restoring one per interval.
func NewFailureLimiter(burst int, interval time.Duration) *FailureLimiter {
	return &FailureLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Every(interval),
		burst:    burst,
		now:      time.Now,
	}
}

// Blocked reports whether subject has exhausted its failure allowance.
func (fl *FailureLimiter) Blocked(subject string) bool {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	lim, ok := fl.limiters[subject]
	if !ok {
		return false
	}
	return lim.TokensAt(fl.now()) < 1
}

// RecordFailure spends one allowance for subject.
func (fl *FailureLimiter) RecordFailure(subject string) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	now := fl.now()
	lim, ok := fl.limiters[subject]
	if !ok {
		if len(fl.limiters) >= maxTrackedSubjects {
			fl.pruneLocked(now)
		}
		lim = rate.NewLimiter(fl.rate, fl.burst)
		fl.limiters[subject] = lim
	}
	lim.AllowN(now, 1)
}

// Reset forgets subject's failures.
func (fl *FailureLimiter) Reset(subject string) {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	delete(fl.limiters, subject)
}

// pruneLocked drops entries whose bucket has refilled completely.
func (fl *FailureLimiter) pruneLocked(now time.Time) {
	for subject, lim := range fl.limiters {
		if lim.TokensAt(now) >= float64(fl.burst) {
			delete(fl.limiters, subject)
		}
	}
}

// Len returns the number of tracked subjects.
func (fl *FailureLimiter) Len() int {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	return len(fl.limiters)
}
