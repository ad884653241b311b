// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package middleware provides HTTP middleware for the routing service.
//
// # Authentication Flow
//
// The auth middleware extracts a bearer token from the Authorization header,
// validates it with the configured AuthProvider, and stores the resulting
// AuthInfo in the Gin context for downstream handlers. Health, readiness,
// and metrics endpoints are mounted outside the authenticated group and are
// always public.
//
// # Open Source Behavior
//
// The default NopAuthProvider authenticates every request (any token,
// including none) as "local-user". Real token validation is an integration
// point for deployments with an identity provider; nothing in this
// repository implements one.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ErrUnauthorized is returned by AuthProvider implementations when a token
// is invalid or missing.
var ErrUnauthorized = errors.New("unauthorized")

// authInfoKey is the context key for storing AuthInfo.
const authInfoKey = "routing_auth_info"

// AuthInfo describes an authenticated caller.
type AuthInfo struct {
	UserID string
	Roles  []string
}

// AuthProvider validates authentication tokens and returns caller identity.
// Implementations must be safe for concurrent use.
type AuthProvider interface {
	// Validate checks the token and returns the caller's identity, or an
	// error wrapping ErrUnauthorized if the token is not acceptable.
	Validate(ctx context.Context, token string) (*AuthInfo, error)
}

// NopAuthProvider is the default provider. It accepts every request,
// token or no token, as a local admin user. Stateless and thread-safe.
type NopAuthProvider struct{}

// Validate always succeeds with a local user identity.
func (p *NopAuthProvider) Validate(_ context.Context, _ string) (*AuthInfo, error) {
	return &AuthInfo{UserID: "local-user", Roles: []string{"admin"}}, nil
}

var _ AuthProvider = (*NopAuthProvider)(nil)

// GetAuthInfo retrieves the authenticated caller from the Gin context.
// Returns nil when the auth middleware has not run for this request.
func GetAuthInfo(c *gin.Context) *AuthInfo {
	if v, exists := c.Get(authInfoKey); exists {
		if info, ok := v.(*AuthInfo); ok {
			return info
		}
	}
	return nil
}

// Auth creates a Gin middleware that authenticates requests with provider.
//
// The token is read from "Authorization: Bearer <token>"; a missing or
// malformed header yields an empty token, which NopAuthProvider accepts.
// Validation failures abort the request with 401.
func Auth(provider AuthProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)

		info, err := provider.Validate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, ErrUnauthorized) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication failed"})
			return
		}

		c.Set(authInfoKey, info)
		c.Next()
	}
}

// extractBearerToken parses the Authorization header. The "Bearer" prefix
// is case-insensitive per RFC 7235. Returns "" if absent or malformed.
func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
