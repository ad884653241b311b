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

// FindRoute computes the route with the fewest border crossings between two
// countries using breadth-first search.
//
// Description:
//
//	Validates both codes before any traversal: the origin is checked first,
//	so a request with two unknown codes deterministically reports the
//	origin. If origin equals destination the single-element route is
//	returned without touching the graph. Otherwise a standard BFS runs over
//	the adjacency structure; on an unweighted graph BFS guarantees the
//	returned route has the minimum possible number of edges. Tie-breaking
//	among equal-length routes depends on map iteration order and is
//	unspecified.
//
// Inputs:
//
//	g - The immutable country graph. Read-only during the search.
//	origin - cca3 code of the starting country.
//	destination - cca3 code of the target country.
//
// Outputs:
//
//	[]string - The route, origin first, destination last. Owned by the caller.
//	error - *UnknownCountryError if either code is not a node,
//	        *NoRouteError if the frontier empties before reaching destination.
func FindRoute(g *Graph, origin, destination string) ([]string, error) {
	if !g.Contains(origin) {
		return nil, &UnknownCountryError{Code: origin}
	}
	if !g.Contains(destination) {
		return nil, &UnknownCountryError{Code: destination}
	}

	if origin == destination {
		return []string{origin}, nil
	}

	frontier := make([]string, 0, 16)
	frontier = append(frontier, origin)
	visited := map[string]struct{}{origin: {}}
	predecessor := make(map[string]string)

	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]

		if current == destination {
			return reconstruct(predecessor, origin, destination), nil
		}

		for neighbor := range g.neighborSet(current) {
			if _, seen := visited[neighbor]; seen {
				continue
			}
			// Mark at enqueue time. Marking at dequeue time would allow
			// duplicate enqueues and break the shortest-path guarantee.
			visited[neighbor] = struct{}{}
			predecessor[neighbor] = current
			frontier = append(frontier, neighbor)
		}
	}

	return nil, &NoRouteError{Origin: origin, Destination: destination}
}

// reconstruct walks predecessor links from destination back to origin and
// reverses the result into origin-to-destination order.
func reconstruct(predecessor map[string]string, origin, destination string) []string {
	route := []string{destination}
	for current := destination; current != origin; {
		current = predecessor[current]
		route = append(route, current)
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route
}
