// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"
	"time"

	"github.com/fashionshop/api/internal/models"
)

// CreateOneTimeToken stores a hashed one-time token for a user.
func (r *Repository) CreateOneTimeToken(ctx context.Context, userID string, kind models.TokenKind, tokenHash string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO one_time_tokens (user_id, kind, token_hash, created_at) VALUES (?, ?, ?, ?)`,
		userID, kind, tokenHash, time.Now().UTC())
	return wrapError(err)
}

// GetOneTimeToken retrieves the live token of the given kind for a user.
func (r *Repository) GetOneTimeToken(ctx context.Context, userID string, kind models.TokenKind) (*models.OneTimeToken, error) {
	var token models.OneTimeToken
	err := r.db.GetContext(ctx, &token,
		`SELECT * FROM one_time_tokens WHERE user_id = ? AND kind = ? ORDER BY id LIMIT 1`,
		userID, kind)
	if err != nil {
		return nil, wrapError(err)
	}
	return &token, nil
}

// DeleteOneTimeTokens removes all tokens of the given kind for a user.
func (r *Repository) DeleteOneTimeTokens(ctx context.Context, userID string, kind models.TokenKind) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM one_time_tokens WHERE user_id = ? AND kind = ?`,
		userID, kind)
	return wrapError(err)
}
