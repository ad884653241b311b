// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command routingd starts the Aleutian country routing API server.
//
// The server loads the world country dataset at startup, builds the
// shared-land-border graph, and serves shortest-route queries over HTTP.
//
// Usage:
//
//	go run ./cmd/routingd
//	go run ./cmd/routingd -port 9090
//	go run ./cmd/routingd -config config.yaml
//
// With a local dataset file (no network access):
//
//	go run ./cmd/routingd -countries-file testdata/countries.json
//
// Example requests:
//
//	# Health check
//	curl http://localhost:8080/v1/routing/health
//
//	# Shortest land route from Czechia to Italy
//	curl http://localhost:8080/v1/routing/route/CZE/ITA
//
//	# Graph and cache statistics
//	curl http://localhost:8080/v1/routing/stats | jq
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AleutianAI/country-routing/pkg/logging"
	"github.com/AleutianAI/country-routing/services/routing"
	"github.com/AleutianAI/country-routing/services/routing/client"
	"github.com/AleutianAI/country-routing/services/routing/config"
	"github.com/AleutianAI/country-routing/services/routing/graph"
	"github.com/AleutianAI/country-routing/services/routing/middleware"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	port := flag.Int("port", 0, "Port to listen on (overrides config)")
	debug := flag.Bool("debug", false, "Enable debug mode")
	countriesFile := flag.String("countries-file", "", "Load the country dataset from a local file instead of the upstream API")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *debug {
		cfg.LogLevel = "debug"
	}

	logger := logging.New(logging.Config{
		Level:   logging.ParseLevel(cfg.LogLevel),
		Service: "routingd",
	})
	defer logger.Close()
	logger.SetAsDefault()

	// Set Gin mode
	if *debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	records, err := loadCountries(cfg, *countriesFile)
	if err != nil {
		slog.Error("Failed to load country dataset", slog.String("error", err.Error()))
		os.Exit(1)
	}

	borderGraph, err := graph.Build(records)
	if err != nil {
		slog.Error("Failed to build border graph", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.Info("Border graph built", slog.Int("countries", borderGraph.Len()))

	// Create service
	var opts []routing.Option
	if !cfg.CacheEnabled {
		slog.Info("Route caching disabled")
		opts = append(opts, routing.WithoutCache())
	}
	svc := routing.NewService(borderGraph, opts...)

	// Create handlers
	handlers := routing.NewHandlers(svc)

	// Setup router
	router := gin.New()
	router.Use(gin.Recovery())
	if *debug {
		router.Use(gin.Logger())
	}
	router.Use(middleware.Auth(&middleware.NopAuthProvider{}))
	if cfg.RateLimit > 0 {
		router.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateBurst))
	}

	// Register routes under /v1/routing
	v1 := router.Group("/v1")
	routing.RegisterRoutes(v1, handlers)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Print startup banner
	printBanner(cfg.Port, borderGraph.Len())

	// Handle graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		slog.Info("Shutting down routing server")
		logger.Close()
		os.Exit(0)
	}()

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Port)
	slog.Info("Starting routing server", slog.String("address", addr))
	if err := router.Run(addr); err != nil {
		slog.Error("Failed to start server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// loadCountries fetches the dataset from the configured upstream, or reads
// it from a local file when -countries-file is set.
func loadCountries(cfg config.Config, path string) ([]graph.CountryRecord, error) {
	if path != "" {
		slog.Info("Loading country dataset from file", slog.String("path", path))
		return client.LoadCountriesFile(path)
	}

	slog.Info("Fetching country dataset", slog.String("url", cfg.CountriesURL))
	ctx, cancel := context.WithTimeout(context.Background(), cfg.FetchTimeout)
	defer cancel()

	c := client.New(
		client.WithURL(cfg.CountriesURL),
		client.WithTimeout(cfg.FetchTimeout),
	)
	return c.FetchCountries(ctx)
}

func printBanner(port, countries int) {
	banner := `
╔═══════════════════════════════════════════════════════════════════╗
║                   ALEUTIAN COUNTRY ROUTING SERVER                 ║
╠═══════════════════════════════════════════════════════════════════╣
║                                                                   ║
║  Shortest land routes between countries over shared borders.      ║
║  Countries loaded: %-6d                                         ║
║                                                                   ║
║  Quick Start:                                                     ║
║  ┌─────────────────────────────────────────────────────────────┐  ║
║  │ # Health check                                              │  ║
║  │ curl http://localhost:%d/v1/routing/health                │  ║
║  │                                                             │  ║
║  │ # Czechia to Italy                                          │  ║
║  │ curl http://localhost:%d/v1/routing/route/CZE/ITA         │  ║
║  │                                                             │  ║
║  │ # Cache and graph statistics                                │  ║
║  │ curl http://localhost:%d/v1/routing/stats | jq            │  ║
║  └─────────────────────────────────────────────────────────────┘  ║
║                                                                   ║
║  Endpoints:                                                       ║
║  ├── GET /v1/routing/route/:origin/:destination                  ║
║  ├── GET /v1/routing/stats                                       ║
║  ├── GET /v1/routing/health, /v1/routing/ready                   ║
║  └── GET /metrics (Prometheus)                                   ║
║                                                                   ║
║  Press Ctrl+C to stop                                             ║
╚═══════════════════════════════════════════════════════════════════╝
`
	fmt.Printf(banner, countries, port, port, port)
}
