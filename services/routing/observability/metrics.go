// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package observability provides Prometheus metrics for the routing service.
//
// Metrics are exposed via the /metrics endpoint. All metric operations are
// thread-safe via Prometheus's internal locking. The routing core calls the
// Record* helpers as side-channel signals; metric values never feed back
// into routing decisions.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "aleutian"
	routingSubsystem = "routing"
)

var (
	// routeCalculations counts successful route computations.
	routeCalculations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: routingSubsystem,
		Name:      "calculations_total",
		Help:      "Total number of route calculations performed",
	})

	// routeErrors counts failed route computations.
	// Labels: reason (unknown_country, no_route, internal)
	routeErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: routingSubsystem,
		Name:      "errors_total",
		Help:      "Total number of routing errors",
	}, []string{"reason"})

	// calculationDuration measures the wall-clock time of each computation,
	// cache hits included. A BFS over a few hundred nodes completes in
	// microseconds, hence the sub-millisecond buckets.
	calculationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Subsystem: routingSubsystem,
		Name:      "calculation_duration_seconds",
		Help:      "Time taken to calculate routes",
		Buckets:   []float64{0.000005, 0.00001, 0.000025, 0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01},
	})

	// cacheRequests counts route cache lookups by outcome.
	// Labels: outcome (hit, miss)
	cacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: routingSubsystem,
		Name:      "cache_requests_total",
		Help:      "Route cache lookups by outcome",
	}, []string{"outcome"})
)

// Error reasons for RecordError.
const (
	ReasonUnknownCountry = "unknown_country"
	ReasonNoRoute        = "no_route"
	ReasonInternal       = "internal"
)

// RecordCalculation records a successful route calculation.
func RecordCalculation() {
	routeCalculations.Inc()
}

// RecordError records a failed route calculation.
func RecordError(reason string) {
	routeErrors.WithLabelValues(reason).Inc()
}

// RecordDuration records the wall-clock duration of a calculation.
func RecordDuration(seconds float64) {
	calculationDuration.Observe(seconds)
}

// RecordCacheHit records a route served from the memo.
func RecordCacheHit() {
	cacheRequests.WithLabelValues("hit").Inc()
}

// RecordCacheMiss records a route that required computation.
func RecordCacheMiss() {
	cacheRequests.WithLabelValues("miss").Inc()
}
