// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package auth

import "unicode"

// ValidationError represents a single violated password rule.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// ValidatePassword checks a candidate password against the account policy:
// length 8-100, at least one uppercase and one lowercase letter, no
// whitespace. It is a pure function; the returned slice lists every violated
// rule, empty when the password is acceptable.
func ValidatePassword(password string) []ValidationError {
	var violations []ValidationError

	if len(password) < 8 {
		violations = append(violations, ValidationError{
			Code:    "min",
			Message: "Password must be at least 8 characters long.",
		})
	}
	if len(password) > 100 {
		violations = append(violations, ValidationError{
			Code:    "max",
			Message: "Password must be at most 100 characters long.",
		})
	}

	var hasUpper, hasLower, hasSpace bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsSpace(r):
			hasSpace = true
		}
	}

	if !hasUpper {
		violations = append(violations, ValidationError{
			Code:    "uppercase",
			Message: "Password must contain at least one uppercase letter.",
		})
	}
	if !hasLower {
		violations = append(violations, ValidationError{
			Code:    "lowercase",
			Message: "Password must contain at least one lowercase letter.",
		})
	}
	if hasSpace {
		violations = append(violations, ValidationError{
			Code:    "spaces",
			Message: "Password must not contain spaces.",
		})
	}

	return violations
}

func violationMessages(violations []ValidationError) []string {
	messages := make([]string, len(violations))
	for i, v := range violations {
		messages[i] = v.Message
	}
	return messages
}
