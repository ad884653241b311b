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
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AleutianAI/country-routing/services/routing/graph"
)

// ServiceVersion is the routing service version.
const ServiceVersion = "1.0.0"

// Handlers contains the HTTP handlers for the routing service.
type Handlers struct {
	svc *Service
}

// NewHandlers creates handlers for the given service.
func NewHandlers(svc *Service) *Handlers {
	return &Handlers{svc: svc}
}

// HandleRoute handles GET /v1/routing/route/:origin/:destination.
//
// Description:
//
//	Calculates the shortest land route between two countries. Path
//	parameters are case-insensitive and normalized to uppercase before
//	lookup.
//
// Response:
//
//	200 OK: RouteResponse
//	400 Bad Request: Malformed code, unknown country, or no land route
//	500 Internal Server Error: Calculation error
func (h *Handlers) HandleRoute(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleRoute")

	var req RouteRequest
	if err := c.ShouldBindUri(&req); err != nil {
		logger.Warn("Invalid path parameters", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid path parameters",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		logger.Warn("Malformed country code",
			"origin", req.Origin, "destination", req.Destination)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Country codes must be ISO 3166-1 alpha-3",
			Code:  "INVALID_COUNTRY_CODE",
		})
		return
	}

	route, err := h.svc.CalculateRoute(c.Request.Context(), req.Origin, req.Destination)
	if err != nil {
		statusCode := http.StatusInternalServerError
		errCode := "ROUTING_FAILED"

		var unknown *graph.UnknownCountryError
		var noRoute *graph.NoRouteError
		if errors.As(err, &unknown) {
			statusCode = http.StatusBadRequest
			errCode = "UNKNOWN_COUNTRY"
		} else if errors.As(err, &noRoute) {
			statusCode = http.StatusBadRequest
			errCode = "NO_ROUTE_FOUND"
		}

		logger.Warn("Route calculation failed",
			"origin", req.Origin, "destination", req.Destination, "error", err)
		c.JSON(statusCode, ErrorResponse{
			Error: err.Error(),
			Code:  errCode,
		})
		return
	}

	logger.Info("Route calculated",
		"origin", req.Origin, "destination", req.Destination, "hops", len(route)-1)
	c.JSON(http.StatusOK, RouteResponse{Route: route})
}

// HandleHealth handles GET /v1/routing/health.
//
// Description:
//
//	Returns the health status of the service. Always returns 200 if running.
//
// Response:
//
//	200 OK: HealthResponse
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Version: ServiceVersion,
	})
}

// HandleReady handles GET /v1/routing/ready.
//
// Description:
//
//	Returns the readiness status of the service. Returns 503 Service
//	Unavailable if the country graph is empty.
//
// Response:
//
//	200 OK: ReadyResponse (Ready=true) - Graph is loaded
//	503 Service Unavailable: ReadyResponse (Ready=false) - No countries loaded
func (h *Handlers) HandleReady(c *gin.Context) {
	count := h.svc.CountryCount()

	resp := ReadyResponse{
		Ready:         count > 0,
		CountryCount:  count,
		UptimeSeconds: int64(h.svc.Uptime().Seconds()),
		DataLoadedAt:  h.svc.DataLoadedAt().Format(time.RFC3339),
	}

	if !resp.Ready {
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleStats handles GET /v1/routing/stats.
//
// Response:
//
//	200 OK: StatsResponse
func (h *Handlers) HandleStats(c *gin.Context) {
	c.JSON(http.StatusOK, StatsResponse{
		CountryCount: h.svc.CountryCount(),
		CacheEnabled: h.svc.CacheEnabled(),
		Cache:        h.svc.CacheStats(),
	})
}

// getOrCreateRequestID returns the request ID from the X-Request-ID
// header, generating one when absent, and echoes it on the response.
func getOrCreateRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header("X-Request-ID", requestID)
	return requestID
}
