// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package cache

import (
	"sync"
	"testing"
)

func TestLRU_Eviction(t *testing.T) {
	c := NewLRU[int, string](3)
	c.Add(1, "a")
	c.Add(2, "b")
	c.Add(3, "c")

	// 1 becomes most recent, so 2 is evicted next.
	if v, ok := c.Get(1); !ok || v != "a" {
		t.Fatalf("Get(1) = %q, %v", v, ok)
	}
	c.Add(4, "d")

	if _, ok := c.Get(2); ok {
		t.Error("expected 2 to be evicted")
	}
	for _, k := range []int{1, 3, 4} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("expected %d to be present", k)
		}
	}
	if c.Len() != 3 {
		t.Errorf("Len = %d, want 3", c.Len())
	}
}

func TestLRU_Update(t *testing.T) {
	c := NewLRU[string, int](2)
	c.Add("x", 1)
	c.Add("x", 2)

	if v, _ := c.Get("x"); v != 2 {
		t.Errorf("Get(x) = %d, want 2", v)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestLRU_Remove(t *testing.T) {
	c := NewLRU[int, int](2)
	c.Add(1, 10)

	if !c.Remove(1) {
		t.Error("Remove(1) = false, want true")
	}
	if c.Remove(1) {
		t.Error("second Remove(1) = true, want false")
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d, want 0", c.Len())
	}
}

func TestLRU_GetOrCompute(t *testing.T) {
	c := NewLRU[int, int](4)
	calls := 0
	compute := func() int {
		calls++
		return 42
	}

	for i := 0; i < 3; i++ {
		if v := c.GetOrCompute(7, compute); v != 42 {
			t.Fatalf("GetOrCompute = %d, want 42", v)
		}
	}
	if calls != 1 {
		t.Errorf("compute called %d times, want 1", calls)
	}

	hits, misses, size := c.Stats()
	if hits != 2 || misses != 1 || size != 1 {
		t.Errorf("Stats = %d hits, %d misses, size %d", hits, misses, size)
	}
}

func TestLRU_DefaultCapacity(t *testing.T) {
	c := NewLRU[int, int](0)
	if c.capacity != 1024 {
		t.Errorf("capacity = %d, want 1024", c.capacity)
	}
}

func TestLRU_Concurrent(t *testing.T) {
	c := NewLRU[int, int](16)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				c.Add((g*200+i)%32, i)
				c.Get(i % 32)
			}
		}(g)
	}
	wg.Wait()

	if c.Len() > 16 {
		t.Errorf("Len = %d, exceeds capacity 16", c.Len())
	}
}
