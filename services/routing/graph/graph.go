// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package graph

// CountryRecord is a single country as delivered by the upstream dataset.
//
// Only the fields the routing core needs are decoded; everything else in
// the upstream JSON is ignored. Borders may be absent or null for island
// nations.
type CountryRecord struct {
	// Code is the three-letter cca3 country code. Case-sensitive, treated
	// as an opaque token.
	Code string `json:"cca3"`

	// Borders lists the cca3 codes of countries sharing a land border.
	Borders []string `json:"borders"`
}

// Graph is the adjacency structure over country codes.
//
// Immutable after Build returns; see the package documentation for the
// ownership and thread-safety contract.
type Graph struct {
	adjacency map[string]map[string]struct{}
}

// Build constructs a Graph from raw country records.
//
// Description:
//
//	Every record code becomes a node, including countries with no land
//	borders. Border codes are added to the node's neighbor set exactly as
//	declared; they are not required to exist as nodes themselves and the
//	relation is not symmetrized. Build is a pure function: deterministic
//	for a given input and independent of record order.
//
// Inputs:
//
//	records - The upstream country dataset. Must be non-empty.
//
// Outputs:
//
//	*Graph - The immutable adjacency graph.
//	error - ErrNoCountryData if records is nil or empty.
func Build(records []CountryRecord) (*Graph, error) {
	if len(records) == 0 {
		return nil, ErrNoCountryData
	}

	adjacency := make(map[string]map[string]struct{}, len(records))
	for _, record := range records {
		neighbors, ok := adjacency[record.Code]
		if !ok {
			neighbors = make(map[string]struct{}, len(record.Borders))
			adjacency[record.Code] = neighbors
		}
		for _, border := range record.Borders {
			neighbors[border] = struct{}{}
		}
	}

	return &Graph{adjacency: adjacency}, nil
}

// Contains reports whether code exists as a node in the graph.
//
// A code that appears only inside another country's border list is not a
// node and Contains returns false for it.
func (g *Graph) Contains(code string) bool {
	_, ok := g.adjacency[code]
	return ok
}

// Neighbors returns the codes directly reachable from code by one border
// crossing. The returned slice is a snapshot owned by the caller; iteration
// order is unspecified. Returns nil for codes that are not nodes.
func (g *Graph) Neighbors(code string) []string {
	set, ok := g.adjacency[code]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for neighbor := range set {
		out = append(out, neighbor)
	}
	return out
}

// Len returns the number of country nodes in the graph.
func (g *Graph) Len() int {
	return len(g.adjacency)
}

// neighborSet returns the internal neighbor set for code. Read-only use
// inside the package; avoids the Neighbors() copy on the BFS hot path.
func (g *Graph) neighborSet(code string) map[string]struct{} {
	return g.adjacency[code]
}
