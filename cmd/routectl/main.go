// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command routectl is a CLI client for the country routing server.
//
// Usage:
//
//	routectl route CZE ITA
//	routectl health
//	routectl stats --json
//	routectl --server http://routing.internal:8080 route usa mex
package main

import (
	"log"

	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	serverURL  string // Base URL of the routing server
	jsonOutput bool   // Output as JSON for scripting

	rootCmd = &cobra.Command{
		Use:   "routectl",
		Short: "A cli to query the Aleutian country routing server",
		Long: `Routectl queries a running country routing server for shortest
land routes between countries, health status, and statistics.`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080",
		"Base URL of the routing server")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false,
		"Output as JSON for scripting")

	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}
