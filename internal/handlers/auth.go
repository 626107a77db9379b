// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fashionshop/api/internal/apperr"
	"github.com/fashionshop/api/internal/middleware"
	"github.com/fashionshop/api/internal/services/auth"
	"github.com/fashionshop/api/internal/services/token"
)

// SessionCookieName is the cookie carrying the refresh token.
const SessionCookieName = "jwt"

// AuthHandlers contains handlers for the auth flows.
type AuthHandlers struct {
	auth         *auth.Service
	cookieSecure bool
}

// NewAuth creates a new AuthHandlers instance.
func NewAuth(svc *auth.Service, cookieSecure bool) *AuthHandlers {
	return &AuthHandlers{auth: svc, cookieSecure: cookieSecure}
}

// sessionCookie builds the HTTP-only refresh-token cookie. maxAge <= 0
// produces the clearing variant.
func (h *AuthHandlers) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	}
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates and sets the session cookie.
func (h *AuthHandlers) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	result, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.SetCookie(h.sessionCookie(result.RefreshToken, int(token.RefreshTTL.Seconds())))

	// The user model excludes password hash and refresh token from JSON.
	return c.JSON(http.StatusOK, map[string]any{
		"accessToken": result.AccessToken,
		"user":        result.User,
	})
}

// Logout revokes the cookie session. Always responds 204: a missing or
// unknown cookie is the logged-out state, not an error.
func (h *AuthHandlers) Logout(c echo.Context) error {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return c.NoContent(http.StatusNoContent)
	}

	if _, err := h.auth.Logout(c.Request().Context(), cookie.Value); err != nil {
		return err
	}

	c.SetCookie(h.sessionCookie("", -1))
	return c.NoContent(http.StatusNoContent)
}

// ForgotPasswordRequest is the request body for forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPassword issues the reset token and emails the reset link.
func (h *AuthHandlers) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	if err := h.auth.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"Status":  "Success",
		"message": "Password reset link is sent to your email",
	})
}

// ResetPasswordRequest is the request body for reset-password.
type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// ResetPassword sets a new password for the authenticated identity.
func (h *AuthHandlers) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	userID := middleware.UserID(c.Request().Context())
	if err := h.auth.ResetPassword(c.Request().Context(), userID, req.Password); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"Status":  "Success",
		"message": "Password Reset Successfully",
	})
}

// SignupRequest is the request body for signup.
type SignupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

// Signup creates a new unverified account and emails the OTP.
func (h *AuthHandlers) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	user, err := h.auth.Signup(c.Request().Context(), auth.SignupParams{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"message": "New user " + user.Email + " created!",
	})
}

// VerifyEmailRequest is the request body for verify-email.
type VerifyEmailRequest struct {
	UserID string `json:"userId"`
	OTP    string `json:"otp"`
}

// VerifyEmail checks the OTP and marks the account verified.
func (h *AuthHandlers) VerifyEmail(c echo.Context) error {
	var req VerifyEmailRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	if err := h.auth.VerifyEmail(c.Request().Context(), req.UserID, req.OTP); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"Status": "Success"})
}
