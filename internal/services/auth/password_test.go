// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fashionshop/api/internal/services/auth"
)

func codes(violations []auth.ValidationError) []string {
	out := make([]string, len(violations))
	for i, v := range violations {
		out[i] = v.Code
	}
	return out
}

func TestValidatePassword_Accepts(t *testing.T) {
	for _, password := range []string{
		"Abcdef12",
		"MixedCaseNoSpaces",
		"Aa" + strings.Repeat("x", 98), // exactly 100
	} {
		assert.Empty(t, auth.ValidatePassword(password), "password %q", password)
	}
}

func TestValidatePassword_TooShort(t *testing.T) {
	violations := auth.ValidatePassword("Ab1")
	assert.Contains(t, codes(violations), "min")
}

func TestValidatePassword_TooLong(t *testing.T) {
	violations := auth.ValidatePassword("Aa" + strings.Repeat("x", 99)) // 101
	assert.Contains(t, codes(violations), "max")
}

func TestValidatePassword_AllLowercase(t *testing.T) {
	violations := auth.ValidatePassword("abcdefgh")
	assert.Contains(t, codes(violations), "uppercase")
}

func TestValidatePassword_AllUppercase(t *testing.T) {
	violations := auth.ValidatePassword("ABCDEFGH")
	assert.Contains(t, codes(violations), "lowercase")
}

func TestValidatePassword_Spaces(t *testing.T) {
	violations := auth.ValidatePassword("Abc def12")
	assert.Contains(t, codes(violations), "spaces")
}

func TestValidatePassword_ReportsAllViolations(t *testing.T) {
	violations := auth.ValidatePassword("a b")
	got := codes(violations)
	assert.Contains(t, got, "min")
	assert.Contains(t, got, "uppercase")
	assert.Contains(t, got, "spaces")
}
