// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fashionshop/api/internal/apperr"
)

// httpErrorHandler renders domain errors as JSON. Login failures are rendered
// as field-level messages so the client can show them next to the inputs;
// password-policy failures carry the list of violated rules.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		var body any
		switch {
		case appErr.Kind == apperr.KindAuth:
			body = appErr.Fields
		case len(appErr.Rules) > 0:
			body = map[string]any{"error": appErr.Message, "rules": appErr.Rules}
		default:
			body = map[string]string{"error": appErr.Message}
		}
		if writeErr := c.JSON(appErr.Status(), body); writeErr != nil {
			slog.Error("failed to write error response", "error", writeErr)
		}
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		msg, ok := httpErr.Message.(string)
		if !ok {
			msg = http.StatusText(httpErr.Code)
		}
		if writeErr := c.JSON(httpErr.Code, map[string]string{"error": msg}); writeErr != nil {
			slog.Error("failed to write error response", "error", writeErr)
		}
		return
	}

	slog.Error("unhandled error", "error", err)
	if writeErr := c.JSON(http.StatusInternalServerError,
		map[string]string{"error": "Internal server error"}); writeErr != nil {
		slog.Error("failed to write error response", "error", writeErr)
	}
}
