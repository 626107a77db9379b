// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fashionshop/api/internal/apperr"
)

func newErrorContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHTTPErrorHandlerDomainError(t *testing.T) {
	c, rec := newErrorContext(t)

	httpErrorHandler(apperr.NotFound("User not found!"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User not found!", body["error"])
}

func TestHTTPErrorHandlerAuthError(t *testing.T) {
	c, rec := newErrorContext(t)

	httpErrorHandler(apperr.IncorrectPassword(), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "That password is incorrect", body["password"])
	assert.Equal(t, "", body["email"])
}

func TestHTTPErrorHandlerRules(t *testing.T) {
	c, rec := newErrorContext(t)

	httpErrorHandler(apperr.BadRequestRules("password does not meet the requirements",
		[]string{"uppercase", "min"}), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error string   `json:"error"`
		Rules []string `json:"rules"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"uppercase", "min"}, body.Rules)
}

func TestHTTPErrorHandlerEchoError(t *testing.T) {
	c, rec := newErrorContext(t)

	httpErrorHandler(echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token"), c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid or expired token", body["error"])
}

func TestHTTPErrorHandlerUnknownError(t *testing.T) {
	c, rec := newErrorContext(t)

	httpErrorHandler(assert.AnError, c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body["error"])
}
