// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package routing provides the country routing HTTP service.
//
// The service exposes endpoints for:
//   - Calculating the shortest land route between two countries
//   - Health and readiness probes
//   - Cache and graph statistics
//
// Routes are shortest paths by hop count over the shared-land-border
// graph, computed with breadth-first search. Successful routes are
// memoized per ordered (origin, destination) pair unless caching is
// disabled.
package routing

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/AleutianAI/country-routing/services/routing/cache"
	"github.com/AleutianAI/country-routing/services/routing/graph"
	"github.com/AleutianAI/country-routing/services/routing/observability"
)

// Package-level tracer for routing operations.
var tracer = otel.Tracer("aleutian.routing")

// Service is the country routing service.
//
// Thread Safety:
//
//	Service is safe for concurrent use. The graph is immutable after
//	construction and the cache synchronizes internally.
type Service struct {
	graph     *graph.Graph
	cache     *cache.RouteCache // nil when caching is disabled
	startedAt time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithoutCache disables route memoization. Every request runs a fresh
// breadth-first search.
func WithoutCache() Option {
	return func(s *Service) {
		s.cache = nil
	}
}

// NewService creates a routing service over the given border graph.
//
// Description:
//
//	The graph must already be built; the service never mutates it.
//	Caching is enabled by default and can be turned off with
//	WithoutCache.
//
// Inputs:
//
//	g - The immutable country border graph
//	opts - Optional configuration
//
// Outputs:
//
//	*Service - The configured service
func NewService(g *graph.Graph, opts ...Option) *Service {
	s := &Service{
		graph:     g,
		startedAt: time.Now(),
	}
	s.cache = cache.New(func(ctx context.Context, origin, destination string) ([]string, error) {
		return graph.FindRoute(s.graph, origin, destination)
	})

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CalculateRoute returns the shortest land route from origin to
// destination, both inclusive.
//
// Description:
//
//	Serves from the route cache when enabled, falling back to a direct
//	breadth-first search otherwise. Both codes must already be
//	normalized to uppercase alpha-3 form.
//
// Inputs:
//
//	ctx - Request context
//	origin - Uppercase alpha-3 code of the starting country
//	destination - Uppercase alpha-3 code of the target country
//
// Outputs:
//
//	[]string - Ordered country codes from origin to destination
//	error - *graph.UnknownCountryError, *graph.NoRouteError, or a
//	        wrapped internal error
func (s *Service) CalculateRoute(ctx context.Context, origin, destination string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "routing.CalculateRoute",
		trace.WithAttributes(
			attribute.String("origin", origin),
			attribute.String("destination", destination),
		),
	)
	defer span.End()

	start := time.Now()

	var route []string
	var err error
	if s.cache != nil {
		route, err = s.cache.GetRoute(ctx, origin, destination)
	} else {
		route, err = graph.FindRoute(s.graph, origin, destination)
	}

	observability.RecordDuration(time.Since(start).Seconds())

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		observability.RecordError(errorReason(err))
		return nil, err
	}

	observability.RecordCalculation()
	span.SetAttributes(attribute.Int("route_length", len(route)))
	return route, nil
}

// errorReason maps a calculation error to a metrics reason label.
func errorReason(err error) string {
	var unknown *graph.UnknownCountryError
	if errors.As(err, &unknown) {
		return observability.ReasonUnknownCountry
	}
	var noRoute *graph.NoRouteError
	if errors.As(err, &noRoute) {
		return observability.ReasonNoRoute
	}
	return observability.ReasonInternal
}

// CountryCount returns the number of countries in the loaded graph.
func (s *Service) CountryCount() int {
	return s.graph.Len()
}

// Uptime returns the time elapsed since the service was created.
func (s *Service) Uptime() time.Duration {
	return time.Since(s.startedAt)
}

// DataLoadedAt returns when the service was created over its dataset.
// The graph is built once at startup, so this is the dataset load time.
func (s *Service) DataLoadedAt() time.Time {
	return s.startedAt
}

// CacheEnabled reports whether route memoization is active.
func (s *Service) CacheEnabled() bool {
	return s.cache != nil
}

// CacheStats returns a snapshot of the cache counters. Returns a zero
// value when caching is disabled.
func (s *Service) CacheStats() cache.Stats {
	if s.cache == nil {
		return cache.Stats{}
	}
	return s.cache.Stats()
}
