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
	"strings"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/country-routing/pkg/validation"
	"github.com/AleutianAI/country-routing/services/routing"
)

// routeCmd queries the shortest land route between two countries.
//
// # Examples
//
//	routectl route CZE ITA       # CZE -> AUT -> ITA
//	routectl route usa mex       # Codes are case-insensitive
//	routectl route CZE ITA --json
var routeCmd = &cobra.Command{
	Use:   "route [origin] [destination]",
	Short: "Calculate the shortest land route between two countries",
	Long: `Calculates the shortest land route between two countries identified
by their ISO 3166-1 alpha-3 codes. The route crosses only shared land
borders; island nations are unreachable.

Examples:
  routectl route CZE ITA       # Czechia to Italy
  routectl route usa mex       # Codes are case-insensitive
  routectl route CZE ITA --json`,
	Args: cobra.ExactArgs(2),
	Run:  runRouteCommand,
}

func runRouteCommand(cmd *cobra.Command, args []string) {
	origin, err := validation.SanitizeCountryCode(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid origin %q: %v\n", args[0], err)
		os.Exit(1)
	}
	destination, err := validation.SanitizeCountryCode(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid destination %q: %v\n", args[1], err)
		os.Exit(1)
	}

	var resp routing.RouteResponse
	path := fmt.Sprintf("/v1/routing/route/%s/%s", origin, destination)
	if err := apiGet(cmd.Context(), path, &resp); err != nil {
		fmt.Fprintf(os.Stderr, "Route calculation failed: %v\n", err)
		os.Exit(1)
	}

	if jsonOutput {
		if err := printJSON(resp); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode output: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("%s (%d hops)\n", strings.Join(resp.Route, " -> "), len(resp.Route)-1)
}
