// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package apperr defines the domain error kinds the HTTP boundary maps to
// status codes. Errors carry user-safe messages only; storage and transport
// failures are not wrapped here and propagate as-is.
package apperr

import "net/http"

// Kind classifies a domain error.
type Kind int

const (
	KindBadRequest Kind = iota
	KindNotFound
	KindForbidden
	KindInternal
	KindAuth
)

// Error is a domain error with a user-safe message. Auth errors additionally
// carry field-level messages, validation errors a list of violated rules.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	Rules   []string
}

func (e *Error) Error() string {
	return e.Message
}

// Status returns the HTTP status code for the error kind.
func (e *Error) Status() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// BadRequest creates a validation/business-rule error.
func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

// BadRequestRules creates a validation error carrying the violated rules.
func BadRequestRules(message string, rules []string) *Error {
	return &Error{Kind: KindBadRequest, Message: message, Rules: rules}
}

// NotFound creates an absent-entity error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Forbidden creates a cooldown/rate violation error.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// Internal creates a dependent-operation failure.
func Internal(message string) *Error {
	return &Error{Kind: KindInternal, Message: message}
}

// IncorrectEmail is the login failure for an unknown email address.
// The message is field-scoped so the client can render it next to the input.
func IncorrectEmail() *Error {
	return &Error{
		Kind:    KindAuth,
		Message: "incorrect email",
		Fields:  map[string]string{"email": "That email is not registered", "password": ""},
	}
}

// IncorrectPassword is the login failure for a wrong password on a known email.
func IncorrectPassword() *Error {
	return &Error{
		Kind:    KindAuth,
		Message: "incorrect password",
		Fields:  map[string]string{"email": "", "password": "That password is incorrect"},
	}
}
