// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package token mints and verifies the session JWT pair. Access and refresh
// tokens are signed with independent secrets so compromise of one key does
// not forge the other kind.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// AccessTTL is the access-token lifetime.
	AccessTTL = time.Hour
	// RefreshTTL is the refresh-token lifetime (~6 months).
	RefreshTTL = 180 * 24 * time.Hour
)

// Claims embeds the user identifier into a signed token.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Issuer mints session token pairs. It is a pure function of
// (userID, current time, secrets) and holds no other state.
type Issuer struct {
	accessSecret  []byte
	refreshSecret []byte
}

// NewIssuer creates an Issuer from the two signing secrets.
func NewIssuer(accessSecret, refreshSecret string) (*Issuer, error) {
	if accessSecret == "" || refreshSecret == "" {
		return nil, errors.New("both signing secrets are required")
	}
	if accessSecret == refreshSecret {
		return nil, errors.New("access and refresh secrets must be independent")
	}
	return &Issuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
	}, nil
}

// IssueSessionTokens produces the signed access/refresh pair for a user.
func (i *Issuer) IssueSessionTokens(userID string) (accessToken, refreshToken string, err error) {
	accessToken, err = sign(userID, i.accessSecret, AccessTTL)
	if err != nil {
		return "", "", err
	}
	refreshToken, err = sign(userID, i.refreshSecret, RefreshTTL)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// ParseAccess verifies an access token and returns its claims.
func (i *Issuer) ParseAccess(tokenStr string) (*Claims, error) {
	return parse(tokenStr, i.accessSecret)
}

// ParseRefresh verifies a refresh token and returns its claims.
func (i *Issuer) ParseRefresh(tokenStr string) (*Claims, error) {
	return parse(tokenStr, i.refreshSecret)
}

func sign(userID string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func parse(tokenStr string, secret []byte) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
