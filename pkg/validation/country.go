// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package validation provides input validation utilities for user-facing
// request parameters.
//
// This package contains validators for user-provided inputs before they
// reach the routing core. Rejecting malformed codes at the boundary keeps
// garbage out of logs, metrics labels, and cache keys.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// countryCodePattern matches valid cca3 country codes: exactly three
// uppercase ASCII letters (ISO 3166-1 alpha-3 shape).
var countryCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// ValidateCountryCode validates a cca3 country code.
//
// Valid codes are exactly three uppercase letters A-Z. The code is treated
// as an opaque token; no check is made that it denotes a real country.
// That is the graph's job.
//
// Example:
//
//	if err := validation.ValidateCountryCode(code); err != nil {
//	    return nil, fmt.Errorf("invalid country code: %w", err)
//	}
func ValidateCountryCode(code string) error {
	if code == "" {
		return fmt.Errorf("country code cannot be empty")
	}

	if !countryCodePattern.MatchString(code) {
		return fmt.Errorf("invalid country code format: %q (must be exactly 3 uppercase letters)", code)
	}

	return nil
}

// ValidateCountryCodes validates multiple cca3 codes.
// Returns an error listing all invalid codes if any fail validation.
func ValidateCountryCodes(codes []string) error {
	var invalid []string
	for _, c := range codes {
		if err := ValidateCountryCode(c); err != nil {
			invalid = append(invalid, c)
		}
	}

	if len(invalid) > 0 {
		return fmt.Errorf("invalid country codes: %v", invalid)
	}
	return nil
}

// SanitizeCountryCode normalizes and validates a cca3 code.
// Returns the uppercase code if valid, or an error if invalid.
//
// Use this at the request boundary where clients may send lowercase codes:
//
//	code, err := validation.SanitizeCountryCode(param)
//	if err != nil {
//	    return err
//	}
//	// code is uppercase and validated
func SanitizeCountryCode(code string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if err := ValidateCountryCode(normalized); err != nil {
		return "", err
	}
	return normalized, nil
}
