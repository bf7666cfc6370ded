// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package auth

import (
	"fmt"
	"testing"
	"time"
)

func TestFailureLimiter(t *testing.T) {
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	fl := NewFailureLimiter(3, time.Minute)
	fl.now = func() time.Time { return clock }

	if fl.Blocked("alice") {
		t.Fatal("unknown subject should not be blocked")
	}

	for i := 0; i < 3; i++ {
		fl.RecordFailure("alice")
	}
	if !fl.Blocked("alice") {
		t.Fatal("alice should be blocked after burst failures")
	}
	if fl.Blocked("bob") {
		t.Error("bob should not be affected by alice's failures")
	}

	clock = clock.Add(time.Minute)
	if fl.Blocked("alice") {
		t.Error("one allowance should be restored after the interval")
	}

	fl.Reset("alice")
	if fl.Len() != 0 {
		t.Errorf("Len() = %d after reset, want 0", fl.Len())
	}
}

func TestFailureLimiter_PrunesIdleSubjects(t *testing.T) {
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	fl := NewFailureLimiter(1, time.Second)
	fl.now = func() time.Time { return clock }

	for i := 0; i < maxTrackedSubjects; i++ {
		fl.RecordFailure(fmt.Sprintf("user-%d", i))
	}
	clock = clock.Add(time.Minute)
	fl.RecordFailure("late")

	if fl.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after refilled entries are pruned", fl.Len())
	}
}
