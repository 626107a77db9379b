// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package models

import "time"

// Cart is the default shopping cart created for every account at signup.
type Cart struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Address is a delivery address. Signup creates an empty one per account.
type Address struct { //nolint:govet // fieldalignment: readability over optimization
	ID              string    `db:"id" json:"id"`
	UserID          string    `db:"user_id" json:"user_id"`
	City            string    `db:"city" json:"city"`
	District        string    `db:"district" json:"district"`
	Ward            string    `db:"ward" json:"ward"`
	StreetAndNumber string    `db:"street_and_number" json:"streetAndNumber"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// Product is a catalog entry. Deletion is soft: deleted products stay in the
// table with IsDeleted set and are excluded from regular listings.
type Product struct { //nolint:govet // fieldalignment: readability over optimization
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Price       float64   `db:"price" json:"price"`
	Category    string    `db:"category" json:"category"`
	IsDeleted   bool      `db:"is_deleted" json:"isDeleted"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
