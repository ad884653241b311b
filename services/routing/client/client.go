// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package client fetches the country border dataset from the upstream API.
//
// The dataset is fetched exactly once per process lifetime, at startup,
// before any request is served. A failed or empty fetch is fatal: the
// routing service cannot answer anything without it. There is no live
// reload; picking up a changed dataset is a process restart.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/AleutianAI/country-routing/services/routing/graph"
)

// DefaultCountriesURL is the upstream dataset queried when no URL is
// configured. The mledoze/countries project publishes the full country
// list with cca3 codes and land borders.
const DefaultCountriesURL = "https://raw.githubusercontent.com/mledoze/countries/master/countries.json"

// defaultTimeout bounds the startup fetch. The payload is a few hundred KB.
const defaultTimeout = 30 * time.Second

// HTTPClient interface allows injecting mock HTTP clients for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// CountryDataClient retrieves the raw country records the graph is built from.
type CountryDataClient struct {
	httpClient HTTPClient
	url        string
	timeout    time.Duration
}

// Option configures a CountryDataClient.
type Option func(*CountryDataClient)

// WithHTTPClient replaces the underlying HTTP client. Used by tests to
// inject stubs and by callers that need custom transports.
func WithHTTPClient(hc HTTPClient) Option {
	return func(c *CountryDataClient) { c.httpClient = hc }
}

// WithURL overrides the upstream dataset URL.
func WithURL(url string) Option {
	return func(c *CountryDataClient) { c.url = url }
}

// WithTimeout overrides the per-fetch timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *CountryDataClient) { c.timeout = d }
}

// New creates a CountryDataClient with the given options.
func New(opts ...Option) *CountryDataClient {
	c := &CountryDataClient{
		httpClient: &http.Client{Timeout: defaultTimeout},
		url:        DefaultCountriesURL,
		timeout:    defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchCountries downloads and decodes the full country list.
//
// Description:
//
//	Performs a single GET against the configured URL with the client's
//	timeout applied on top of ctx. The body is decoded into the minimal
//	CountryRecord shape; unknown JSON fields are ignored. An empty body,
//	an empty decoded list, or a non-2xx status is an error; the caller
//	treats any failure here as fatal to startup.
//
// Outputs:
//
//	[]graph.CountryRecord - The decoded dataset, at least one record.
//	error - Wraps graph.ErrNoCountryData when the upstream returns nothing.
func (c *CountryDataClient) FetchCountries(ctx context.Context) ([]graph.CountryRecord, error) {
	slog.Info("Fetching country data", "url", c.url)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building country data request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching country data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("country data fetch returned HTTP %d: %s", resp.StatusCode, string(body))
	}

	records, err := decodeRecords(resp.Body)
	if err != nil {
		return nil, err
	}

	slog.Info("Fetched country data", "countries", len(records))
	return records, nil
}

// LoadCountriesFile reads a country dataset from a local JSON file.
//
// Used by the server's -countries-file flag and by tests to run without
// network access. Applies the same decoding and non-empty checks as FetchCountries.
func LoadCountriesFile(path string) ([]graph.CountryRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening country data file: %w", err)
	}
	defer f.Close()

	records, err := decodeRecords(f)
	if err != nil {
		return nil, err
	}

	slog.Info("Loaded country data from file", "path", path, "countries", len(records))
	return records, nil
}

func decodeRecords(r io.Reader) ([]graph.CountryRecord, error) {
	var records []graph.CountryRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding country data: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("upstream returned an empty country list: %w", graph.ErrNoCountryData)
	}
	return records, nil
}
