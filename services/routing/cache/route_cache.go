// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package cache provides memoization for computed routes.
//
// Routes are keyed by the ordered (origin, destination) pair; A->B and
// B->A are distinct keys with no automatic symmetry. The cache is
// unbounded: the key space is capped by country-count squared (a few tens
// of thousands of entries at most), so eviction buys nothing here.
//
// # Thread Safety
//
// RouteCache is safe for concurrent use. Reads take an RWMutex read lock;
// concurrent computations for the same uncached key are collapsed into a
// single computation via singleflight.
//
// # Failure Handling
//
// Failed computations are never cached. A pair that previously failed is
// recomputed on the next request; the computation is deterministic for a
// fixed graph, so this only costs a repeated BFS.
package cache

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/AleutianAI/country-routing/services/routing/observability"
)

// ComputeFunc computes the route for an (origin, destination) pair. It is
// expected to be pure and deterministic for a fixed graph.
type ComputeFunc func(ctx context.Context, origin, destination string) ([]string, error)

// Stats is a point-in-time snapshot of cache activity counters.
type Stats struct {
	Hits         int64 `json:"hits"`
	Misses       int64 `json:"misses"`
	Computations int64 `json:"computations"`
	Size         int   `json:"size"`
}

// RouteCache memoizes successful route computations per ordered pair.
type RouteCache struct {
	mu      sync.RWMutex
	routes  map[string][]string
	flight  singleflight.Group
	compute ComputeFunc

	hits         int64
	misses       int64
	computations int64
}

// New creates a RouteCache wrapping the given compute function.
func New(compute ComputeFunc) *RouteCache {
	return &RouteCache{
		routes:  make(map[string][]string),
		compute: compute,
	}
}

// GetRoute returns the route for (origin, destination), computing and
// storing it on first access.
//
// Description:
//
//	Fast path: a read-locked map lookup. On a miss, the computation runs
//	under singleflight so concurrent requests for the same uncached pair
//	are charged a single computation; all callers share the result.
//	Errors propagate unchanged to every waiting caller and leave the
//	cache untouched.
//
//	The returned slice is shared between the cache and all callers for
//	the same pair. Callers must not mutate it.
func (c *RouteCache) GetRoute(ctx context.Context, origin, destination string) ([]string, error) {
	key := origin + "->" + destination

	c.mu.RLock()
	route, ok := c.routes[key]
	c.mu.RUnlock()
	if ok {
		atomic.AddInt64(&c.hits, 1)
		observability.RecordCacheHit()
		return route, nil
	}

	atomic.AddInt64(&c.misses, 1)
	observability.RecordCacheMiss()

	result, err, _ := c.flight.Do(key, func() (interface{}, error) {
		// Another flight may have stored the route between the read above
		// and this closure running.
		c.mu.RLock()
		cached, ok := c.routes[key]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}

		atomic.AddInt64(&c.computations, 1)
		computed, err := c.compute(ctx, origin, destination)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.routes[key] = computed
		c.mu.Unlock()
		return computed, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]string), nil
}

// Len returns the number of cached routes.
func (c *RouteCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.routes)
}

// Stats returns a snapshot of the cache counters.
func (c *RouteCache) Stats() Stats {
	return Stats{
		Hits:         atomic.LoadInt64(&c.hits),
		Misses:       atomic.LoadInt64(&c.misses),
		Computations: atomic.LoadInt64(&c.computations),
		Size:         c.Len(),
	}
}
