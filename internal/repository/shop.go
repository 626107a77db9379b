// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fashionshop/api/internal/models"
)

// CreateCart creates the default shopping cart for a user id. The user row
// may not exist yet: signup creates the cart for the pending id first.
func (r *Repository) CreateCart(ctx context.Context, userID string) (*models.Cart, error) {
	cart := &models.Cart{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO carts (id, user_id, created_at) VALUES (?, ?, ?)`,
		cart.ID, cart.UserID, cart.CreatedAt)
	if err != nil {
		return nil, wrapError(err)
	}
	return cart, nil
}

// GetCartByUserID retrieves a user's cart.
func (r *Repository) GetCartByUserID(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.GetContext(ctx, &cart, `SELECT * FROM carts WHERE user_id = ?`, userID); err != nil {
		return nil, wrapError(err)
	}
	return &cart, nil
}

// InitAddress creates the empty default address record for a user id.
func (r *Repository) InitAddress(ctx context.Context, userID string) (*models.Address, error) {
	addr := &models.Address{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO addresses (id, user_id, city, district, ward, street_and_number, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		addr.ID, addr.UserID, addr.City, addr.District, addr.Ward, addr.StreetAndNumber, addr.CreatedAt)
	if err != nil {
		return nil, wrapError(err)
	}
	return addr, nil
}

// GetAddressesByUserID retrieves all addresses for a user.
func (r *Repository) GetAddressesByUserID(ctx context.Context, userID string) ([]models.Address, error) {
	var addrs []models.Address
	if err := r.db.SelectContext(ctx, &addrs, `SELECT * FROM addresses WHERE user_id = ? ORDER BY created_at`, userID); err != nil {
		return nil, wrapError(err)
	}
	return addrs, nil
}
