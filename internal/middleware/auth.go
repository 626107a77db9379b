// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package middleware provides request middleware for the HTTP layer.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fashionshop/api/internal/ctxkeys"
	"github.com/fashionshop/api/internal/services/token"
)

// RequireAuth verifies the Bearer access token and puts the authenticated
// user id into the request context.
func RequireAuth(issuer *token.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
			}

			claims, err := issuer.ParseAccess(strings.TrimPrefix(header, prefix))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid access token")
			}

			ctx := context.WithValue(c.Request().Context(), ctxkeys.UserID{}, claims.UserID)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// UserID returns the authenticated user's id from the context, or "" when
// the request is unauthenticated.
func UserID(ctx context.Context) string {
	if id, ok := ctx.Value(ctxkeys.UserID{}).(string); ok {
		return id
	}
	return ""
}
