// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fashionshop/api/internal/middleware"
	"github.com/fashionshop/api/internal/services/token"
)

func newAuthEcho(t *testing.T) (*echo.Echo, *token.Issuer) {
	t.Helper()
	issuer, err := token.NewIssuer("access-secret", "refresh-secret")
	require.NoError(t, err)

	e := echo.New()
	e.GET("/me", func(c echo.Context) error {
		return c.String(http.StatusOK, middleware.UserID(c.Request().Context()))
	}, middleware.RequireAuth(issuer))
	return e, issuer
}

func TestRequireAuth_ValidToken(t *testing.T) {
	e, issuer := newAuthEcho(t)
	access, _, err := issuer.IssueSessionTokens("user-1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+access)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", rec.Body.String())
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	e, _ := newAuthEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_RefreshTokenRejected(t *testing.T) {
	e, issuer := newAuthEcho(t)
	_, refresh, err := issuer.IssueSessionTokens("user-1")
	require.NoError(t, err)

	// A refresh token must not authorize API calls.
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+refresh)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserID_Unauthenticated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, middleware.UserID(req.Context()))
}
