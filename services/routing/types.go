// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package routing

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/AleutianAI/country-routing/pkg/validation"
	"github.com/AleutianAI/country-routing/services/routing/cache"
)

// routeValidate is the validator instance for routing request types.
// Initialized in init() with the custom cca3 validator.
var routeValidate *validator.Validate

func init() {
	routeValidate = validator.New()

	_ = routeValidate.RegisterValidation("cca3", validateCCA3)
}

// validateCCA3 validates that a string field is a well-formed ISO 3166-1
// alpha-3 country code (three uppercase ASCII letters).
func validateCCA3(fl validator.FieldLevel) bool {
	return validation.ValidateCountryCode(fl.Field().String()) == nil
}

// RouteRequest is the path parameters for
// GET /v1/routing/route/:origin/:destination.
type RouteRequest struct {
	// Origin is the ISO 3166-1 alpha-3 code of the starting country.
	// Required.
	Origin string `uri:"origin" validate:"required,cca3"`

	// Destination is the ISO 3166-1 alpha-3 code of the target country.
	// Required.
	Destination string `uri:"destination" validate:"required,cca3"`
}

// Normalize trims surrounding whitespace and upper-cases both codes so
// lowercase path parameters resolve to the same countries.
func (r *RouteRequest) Normalize() {
	r.Origin = strings.ToUpper(strings.TrimSpace(r.Origin))
	r.Destination = strings.ToUpper(strings.TrimSpace(r.Destination))
}

// Validate checks both codes against the cca3 format. Call Normalize first.
func (r *RouteRequest) Validate() error {
	return routeValidate.Struct(r)
}

// RouteResponse is the response for GET /v1/routing/route/:origin/:destination.
type RouteResponse struct {
	// Route is the ordered list of country codes from origin to
	// destination, inclusive of both endpoints.
	Route []string `json:"route"`
}

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	// Error is a human-readable description of the failure.
	Error string `json:"error"`

	// Code is a machine-readable error code.
	Code string `json:"code"`
}

// HealthResponse is the response for GET /v1/routing/health.
type HealthResponse struct {
	// Status is "healthy" whenever the process is serving requests.
	Status string `json:"status"`

	// Version is the service version.
	Version string `json:"version"`
}

// ReadyResponse is the response for GET /v1/routing/ready.
type ReadyResponse struct {
	// Ready reports whether the country graph is loaded and routable.
	Ready bool `json:"ready"`

	// CountryCount is the number of countries in the loaded graph.
	CountryCount int `json:"country_count"`

	// UptimeSeconds is the time since the service started.
	UptimeSeconds int64 `json:"uptime_seconds"`

	// DataLoadedAt is when the country dataset was loaded, RFC 3339.
	DataLoadedAt string `json:"data_loaded_at"`
}

// StatsResponse is the response for GET /v1/routing/stats.
type StatsResponse struct {
	// CountryCount is the number of countries in the loaded graph.
	CountryCount int `json:"country_count"`

	// CacheEnabled reports whether route memoization is active.
	CacheEnabled bool `json:"cache_enabled"`

	// Cache holds the cache counters. Zero-valued when caching is disabled.
	Cache cache.Stats `json:"cache"`
}
