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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/country-routing/services/routing/graph"
)

func init() {
	// Set Gin to test mode to reduce noise
	gin.SetMode(gin.TestMode)
}

func testGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.Build([]graph.CountryRecord{
		{Code: "CZE", Borders: []string{"AUT", "DEU", "POL", "SVK"}},
		{Code: "AUT", Borders: []string{"CZE", "DEU", "HUN", "ITA", "LIE", "SVK", "SVN", "CHE"}},
		{Code: "ITA", Borders: []string{"AUT", "FRA", "SMR", "SVN", "CHE", "VAT"}},
		{Code: "DEU", Borders: []string{"AUT", "BEL", "CZE", "DNK", "FRA", "LUX", "NLD", "POL", "CHE"}},
		{Code: "USA", Borders: []string{"CAN", "MEX"}},
		{Code: "CAN", Borders: []string{"USA"}},
		{Code: "MEX", Borders: []string{"GTM", "BLZ", "USA"}},
		{Code: "AUS", Borders: []string{}},
	})
	if err != nil {
		t.Fatalf("failed to build graph: %v", err)
	}
	return g
}

func setupTestRouter(t *testing.T, opts ...Option) *gin.Engine {
	t.Helper()
	svc := NewService(testGraph(t), opts...)
	router := gin.New()
	handlers := NewHandlers(svc)
	v1 := router.Group("/v1")
	RegisterRoutes(v1, handlers)
	return router
}

func getRoute(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandlers_HandleRoute(t *testing.T) {
	router := setupTestRouter(t)

	w := getRoute(t, router, "/v1/routing/route/CZE/ITA")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var resp RouteResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	want := []string{"CZE", "AUT", "ITA"}
	if len(resp.Route) != len(want) {
		t.Fatalf("expected route %v, got %v", want, resp.Route)
	}
	for i := range want {
		if resp.Route[i] != want[i] {
			t.Errorf("expected route %v, got %v", want, resp.Route)
			break
		}
	}
}

func TestHandlers_HandleRoute_LowercaseParams(t *testing.T) {
	router := setupTestRouter(t)

	w := getRoute(t, router, "/v1/routing/route/cze/ita")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var resp RouteResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if len(resp.Route) == 0 || resp.Route[0] != "CZE" {
		t.Errorf("expected uppercase route starting at CZE, got %v", resp.Route)
	}
}

func TestHandlers_HandleRoute_Degenerate(t *testing.T) {
	router := setupTestRouter(t)

	w := getRoute(t, router, "/v1/routing/route/CZE/CZE")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var resp RouteResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if len(resp.Route) != 1 || resp.Route[0] != "CZE" {
		t.Errorf("expected route [CZE], got %v", resp.Route)
	}
}

func TestHandlers_HandleRoute_UnknownCountry(t *testing.T) {
	router := setupTestRouter(t)

	w := getRoute(t, router, "/v1/routing/route/XXX/ITA")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if resp.Code != "UNKNOWN_COUNTRY" {
		t.Errorf("expected code UNKNOWN_COUNTRY, got %q", resp.Code)
	}
}

func TestHandlers_HandleRoute_NoRoute(t *testing.T) {
	router := setupTestRouter(t)

	w := getRoute(t, router, "/v1/routing/route/USA/AUS")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if resp.Code != "NO_ROUTE_FOUND" {
		t.Errorf("expected code NO_ROUTE_FOUND, got %q", resp.Code)
	}
}

func TestHandlers_HandleRoute_MalformedCode(t *testing.T) {
	for _, path := range []string{
		"/v1/routing/route/CZ/ITA",
		"/v1/routing/route/CZECH/ITA",
		"/v1/routing/route/C2E/ITA",
	} {
		router := setupTestRouter(t)
		w := getRoute(t, router, path)

		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected status %d, got %d", path, http.StatusBadRequest, w.Code)
			continue
		}

		var resp ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: failed to unmarshal response: %v", path, err)
		}

		if resp.Code != "INVALID_COUNTRY_CODE" {
			t.Errorf("%s: expected code INVALID_COUNTRY_CODE, got %q", path, resp.Code)
		}
	}
}

func TestHandlers_HandleRoute_RequestIDEchoed(t *testing.T) {
	router := setupTestRouter(t)

	req, _ := http.NewRequest("GET", "/v1/routing/route/CZE/ITA", nil)
	req.Header.Set("X-Request-ID", "test-request-42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "test-request-42" {
		t.Errorf("expected request ID echoed, got %q", got)
	}
}

func TestHandlers_HandleHealth(t *testing.T) {
	router := setupTestRouter(t)

	w := getRoute(t, router, "/v1/routing/health")

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if resp.Status != "healthy" {
		t.Errorf("expected status 'healthy', got %q", resp.Status)
	}

	if resp.Version != ServiceVersion {
		t.Errorf("expected version %q, got %q", ServiceVersion, resp.Version)
	}
}

func TestHandlers_HandleReady(t *testing.T) {
	router := setupTestRouter(t)

	w := getRoute(t, router, "/v1/routing/ready")

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var resp ReadyResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if !resp.Ready {
		t.Error("expected Ready=true")
	}

	if resp.CountryCount != 8 {
		t.Errorf("expected 8 countries, got %d", resp.CountryCount)
	}
}

func TestHandlers_HandleReady_EmptyGraph(t *testing.T) {
	svc := NewService(&graph.Graph{})
	router := gin.New()
	v1 := router.Group("/v1")
	RegisterRoutes(v1, NewHandlers(svc))

	w := getRoute(t, router, "/v1/routing/ready")

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, w.Code)
	}

	var resp ReadyResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if resp.Ready {
		t.Error("expected Ready=false")
	}
}

func TestHandlers_HandleStats(t *testing.T) {
	router := setupTestRouter(t)

	// Two identical requests so the second is a cache hit.
	getRoute(t, router, "/v1/routing/route/CZE/ITA")
	getRoute(t, router, "/v1/routing/route/CZE/ITA")

	w := getRoute(t, router, "/v1/routing/stats")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var resp StatsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if !resp.CacheEnabled {
		t.Error("expected CacheEnabled=true")
	}
	if resp.Cache.Hits != 1 {
		t.Errorf("expected 1 cache hit, got %d", resp.Cache.Hits)
	}
	if resp.Cache.Misses != 1 {
		t.Errorf("expected 1 cache miss, got %d", resp.Cache.Misses)
	}
	if resp.Cache.Size != 1 {
		t.Errorf("expected 1 cached route, got %d", resp.Cache.Size)
	}
}

func TestHandlers_HandleStats_CacheDisabled(t *testing.T) {
	router := setupTestRouter(t, WithoutCache())

	getRoute(t, router, "/v1/routing/route/CZE/ITA")

	w := getRoute(t, router, "/v1/routing/stats")

	var resp StatsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if resp.CacheEnabled {
		t.Error("expected CacheEnabled=false")
	}
	if resp.Cache.Size != 0 {
		t.Errorf("expected empty cache stats, got size %d", resp.Cache.Size)
	}
}
