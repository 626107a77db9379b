// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fashionshop/api/internal/repository"
	"github.com/fashionshop/api/internal/testutil"
)

func TestCreateCart_BeforeUserExists(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	// Signup writes the cart for a pending user id; no FK blocks this.
	cart, err := repo.CreateCart(ctx, "pending-user")
	require.NoError(t, err)
	assert.NotEmpty(t, cart.ID)

	stored, err := repo.GetCartByUserID(ctx, "pending-user")
	require.NoError(t, err)
	assert.Equal(t, cart.ID, stored.ID)
}

func TestGetCartByUserID_NotFound(t *testing.T) {
	_, repo := testutil.NewTestDB(t)

	_, err := repo.GetCartByUserID(context.Background(), "nobody")

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestInitAddress(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	addr, err := repo.InitAddress(ctx, "pending-user")
	require.NoError(t, err)
	assert.Empty(t, addr.City)

	addrs, err := repo.GetAddressesByUserID(ctx, "pending-user")
	require.NoError(t, err)
	require.Len(t, addrs, 1)
	assert.Equal(t, addr.ID, addrs[0].ID)
}
