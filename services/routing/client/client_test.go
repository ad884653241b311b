// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/country-routing/services/routing/graph"
)

const fixtureJSON = `[
	{"name": {"common": "Czechia"}, "cca3": "CZE", "borders": ["AUT", "DEU", "POL", "SVK"]},
	{"name": {"common": "Austria"}, "cca3": "AUT", "borders": ["CZE", "DEU", "HUN", "ITA", "SVN", "SVK", "CHE", "LIE"]},
	{"name": {"common": "Australia"}, "cca3": "AUS", "borders": []},
	{"name": {"common": "Iceland"}, "cca3": "ISL"}
]`

// stubCountriesServer serves a fixed body with a fixed status, in the
// shape of the upstream countries endpoint.
func stubCountriesServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchCountries_Success(t *testing.T) {
	srv := stubCountriesServer(t, http.StatusOK, fixtureJSON)
	c := New(WithURL(srv.URL))

	records, err := c.FetchCountries(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, "CZE", records[0].Code)
	assert.Equal(t, []string{"AUT", "DEU", "POL", "SVK"}, records[0].Borders)

	// Island nations decode with empty or absent borders.
	assert.Empty(t, records[2].Borders)
	assert.Nil(t, records[3].Borders)
}

func TestFetchCountries_EmptyList(t *testing.T) {
	srv := stubCountriesServer(t, http.StatusOK, `[]`)
	c := New(WithURL(srv.URL))

	_, err := c.FetchCountries(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, graph.ErrNoCountryData),
		"empty upstream list must map to ErrNoCountryData")
}

func TestFetchCountries_MalformedBody(t *testing.T) {
	srv := stubCountriesServer(t, http.StatusOK, `{"not": "a list"`)
	c := New(WithURL(srv.URL))

	_, err := c.FetchCountries(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding country data")
}

func TestFetchCountries_HTTPError(t *testing.T) {
	srv := stubCountriesServer(t, http.StatusBadGateway, "upstream broken")
	c := New(WithURL(srv.URL))

	_, err := c.FetchCountries(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 502")
}

func TestFetchCountries_ContextCancelled(t *testing.T) {
	srv := stubCountriesServer(t, http.StatusOK, fixtureJSON)
	c := New(WithURL(srv.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.FetchCountries(ctx)
	require.Error(t, err)
}

func TestLoadCountriesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "countries.json")
	require.NoError(t, os.WriteFile(path, []byte(fixtureJSON), 0o644))

	records, err := LoadCountriesFile(path)
	require.NoError(t, err)
	assert.Len(t, records, 4)

	_, err = LoadCountriesFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}
