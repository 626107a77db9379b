// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package models

import "time"

// TokenKind distinguishes the two structurally identical one-time tokens.
type TokenKind string

const (
	TokenKindVerification TokenKind = "verification"
	TokenKindReset        TokenKind = "reset"
)

// OneTimeToken stores a hashed single-use token scoped to one owning user.
// At most one live token per (user, kind); destroyed on successful use.
type OneTimeToken struct { //nolint:govet // fieldalignment: readability over optimization
	ID        int64     `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Kind      TokenKind `db:"kind" json:"kind"`
	TokenHash string    `db:"token_hash" json:"-"` // SHA256 hash
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
