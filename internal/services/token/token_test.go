// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fashionshop/api/internal/services/token"
)

func newIssuer(t *testing.T) *token.Issuer {
	t.Helper()
	issuer, err := token.NewIssuer("access-secret", "refresh-secret")
	require.NoError(t, err)
	return issuer
}

func TestNewIssuer_RequiresSecrets(t *testing.T) {
	_, err := token.NewIssuer("", "refresh")
	require.Error(t, err)

	_, err = token.NewIssuer("access", "")
	require.Error(t, err)
}

func TestNewIssuer_RejectsSharedSecret(t *testing.T) {
	_, err := token.NewIssuer("same", "same")
	require.Error(t, err)
}

func TestIssueSessionTokens(t *testing.T) {
	issuer := newIssuer(t)

	access, refresh, err := issuer.IssueSessionTokens("user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	accessClaims, err := issuer.ParseAccess(access)
	require.NoError(t, err)
	assert.Equal(t, "user-1", accessClaims.UserID)

	refreshClaims, err := issuer.ParseRefresh(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", refreshClaims.UserID)
}

func TestTokenExpiries(t *testing.T) {
	issuer := newIssuer(t)

	access, refresh, err := issuer.IssueSessionTokens("user-1")
	require.NoError(t, err)

	accessClaims, err := issuer.ParseAccess(access)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(token.AccessTTL), accessClaims.ExpiresAt.Time, 5*time.Second)

	refreshClaims, err := issuer.ParseRefresh(refresh)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(token.RefreshTTL), refreshClaims.ExpiresAt.Time, 5*time.Second)
}

func TestKeysAreIndependent(t *testing.T) {
	issuer := newIssuer(t)

	access, refresh, err := issuer.IssueSessionTokens("user-1")
	require.NoError(t, err)

	// An access token must not verify as a refresh token, and vice versa.
	_, err = issuer.ParseRefresh(access)
	require.Error(t, err)

	_, err = issuer.ParseAccess(refresh)
	require.Error(t, err)
}

func TestParseAccess_RejectsGarbage(t *testing.T) {
	issuer := newIssuer(t)

	for _, input := range []string{"", "not.a.jwt", "eyJhbGciOiJub25lIn0.eyJ1c2VySWQiOiJ4In0."} {
		_, err := issuer.ParseAccess(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseAccess_RejectsTamperedToken(t *testing.T) {
	issuer := newIssuer(t)
	other, err := token.NewIssuer("different-secret", "refresh-secret")
	require.NoError(t, err)

	access, _, err := other.IssueSessionTokens("user-1")
	require.NoError(t, err)

	_, err = issuer.ParseAccess(access)
	require.Error(t, err)
}
