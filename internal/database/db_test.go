// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fashionshop/api/internal/database"
)

func TestOpenInMemory(t *testing.T) {
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	// Migrations should have created the core tables.
	for _, table := range []string{"users", "one_time_tokens", "carts", "addresses", "products", "orders"} {
		var name string
		err := db.Get(&name, `SELECT name FROM sqlite_master WHERE type='table' AND name = ?`, table)
		require.NoError(t, err, "table %s missing", table)
		assert.Equal(t, table, name)
	}
}

func TestOpenUniqueEmailConstraint(t *testing.T) {
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`INSERT INTO users (id, email, password_hash) VALUES ('u1', 'a@b.com', 'x')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO users (id, email, password_hash) VALUES ('u2', 'a@b.com', 'x')`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE constraint failed")
}
