// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/country-routing/services/routing"
)

// healthCmd checks the routing server's health and readiness.
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Display health and readiness of the routing server",
	Run:   runHealthCommand,
}

// statsCmd fetches graph and cache statistics.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display graph and cache statistics",
	Run:   runStatsCommand,
}

func runHealthCommand(cmd *cobra.Command, args []string) {
	var health routing.HealthResponse
	if err := apiGet(cmd.Context(), "/v1/routing/health", &health); err != nil {
		fmt.Fprintf(os.Stderr, "Health check failed: %v\n", err)
		os.Exit(1)
	}

	var ready routing.ReadyResponse
	readyErr := apiGet(cmd.Context(), "/v1/routing/ready", &ready)

	if jsonOutput {
		out := map[string]any{
			"health": health,
			"ready":  ready,
		}
		if err := printJSON(out); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode output: %v\n", err)
			os.Exit(1)
		}
		if readyErr != nil {
			os.Exit(1)
		}
		return
	}

	fmt.Printf("Status:    %s (version %s)\n", health.Status, health.Version)
	fmt.Printf("Countries: %d\n", ready.CountryCount)
	fmt.Printf("Uptime:    %ds\n", ready.UptimeSeconds)
	if readyErr != nil {
		fmt.Println("Ready:     NO")
		os.Exit(1)
	}
	fmt.Println("Ready:     yes")
}

func runStatsCommand(cmd *cobra.Command, args []string) {
	var stats routing.StatsResponse
	if err := apiGet(cmd.Context(), "/v1/routing/stats", &stats); err != nil {
		fmt.Fprintf(os.Stderr, "Stats request failed: %v\n", err)
		os.Exit(1)
	}

	if jsonOutput {
		if err := printJSON(stats); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode output: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("Countries:     %d\n", stats.CountryCount)
	if !stats.CacheEnabled {
		fmt.Println("Cache:         disabled")
		return
	}
	fmt.Println("Cache:         enabled")
	fmt.Printf("  Hits:         %d\n", stats.Cache.Hits)
	fmt.Printf("  Misses:       %d\n", stats.Cache.Misses)
	fmt.Printf("  Computations: %d\n", stats.Cache.Computations)
	fmt.Printf("  Size:         %d\n", stats.Cache.Size)
}
