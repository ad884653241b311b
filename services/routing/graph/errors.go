// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package graph provides the country border graph and shortest-route search.
//
// The graph package contains types for representing countries as an
// undirected-by-convention adjacency structure where nodes are cca3 country
// codes and edges represent shared land borders, plus a breadth-first search
// that finds the route with the fewest border crossings.
//
// # Ownership Model
//
// The graph owns its internal adjacency sets:
//   - Records passed to Build are read, never retained
//   - Neighbors() returns a snapshot slice the caller may keep
//
// # Thread Safety
//
// Graph is immutable after Build returns. It can be safely read from
// multiple goroutines with no locking; there is no mutation API.
//
// # Lifecycle
//
// A typical graph lifecycle:
//  1. Fetch country records from the upstream dataset
//  2. Build once at process startup with Build(records)
//  3. Query with Contains(), Neighbors(), FindRoute() for the process lifetime
//
// # Edge Symmetry
//
// The adjacency relation is exactly what the source data declares. If
// country X lists Y as a border but Y's record omits X, the X→Y edge is
// effectively directed. Real border datasets are mutually declared, but
// the graph does not verify or repair that.
package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction.
var (
	// ErrNoCountryData is returned by Build when the upstream dataset is
	// empty or nil. An empty dataset cannot answer any routing query, so
	// this is fatal to process startup.
	ErrNoCountryData = errors.New("no country data")
)

// UnknownCountryError is returned by FindRoute when a requested code does
// not exist as a node in the graph. Codes appearing only inside another
// country's border list are not nodes.
type UnknownCountryError struct {
	// Code is the cca3 code that was not found.
	Code string
}

func (e *UnknownCountryError) Error() string {
	return fmt.Sprintf("unknown country code: %s", e.Code)
}

// NoRouteError is returned by FindRoute when both codes are valid nodes
// but no sequence of land borders connects them (disjoint landmasses).
type NoRouteError struct {
	Origin      string
	Destination string
}

func (e *NoRouteError) Error() string {
	return fmt.Sprintf("no land route found between %s and %s", e.Origin, e.Destination)
}
