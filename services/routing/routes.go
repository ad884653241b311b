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
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routing service routes with the router.
//
// Description:
//
//	Registers all /v1/routing/* endpoints with the given Gin router group.
//	The router group should already have any required middleware applied.
//
// Inputs:
//
//	rg - Gin router group (typically /v1)
//	handlers - The handlers instance
//
// Endpoints:
//
//	GET /v1/routing/route/:origin/:destination - Calculate shortest land route
//	GET /v1/routing/stats - Graph and cache statistics
//	GET /v1/routing/health - Health check
//	GET /v1/routing/ready - Readiness check
//
// Example:
//
//	service := routing.NewService(borderGraph)
//	handlers := routing.NewHandlers(service)
//
//	v1 := router.Group("/v1")
//	routing.RegisterRoutes(v1, handlers)
func RegisterRoutes(rg *gin.RouterGroup, handlers *Handlers) {
	route := rg.Group("/routing")
	{
		// Route calculation
		route.GET("/route/:origin/:destination", handlers.HandleRoute)

		// Statistics
		route.GET("/stats", handlers.HandleStats)

		// Health checks
		route.GET("/health", handlers.HandleHealth)
		route.GET("/ready", handlers.HandleReady)
	}
}
