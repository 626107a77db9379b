// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package models

import "time"

// User is the identity record. The password hash and the current refresh
// token never leave the process: both are excluded from JSON serialization
// unconditionally.
type User struct { //nolint:govet // fieldalignment: readability over optimization
	ID            string    `db:"id" json:"id"`
	Email         string    `db:"email" json:"email"`
	PasswordHash  string    `db:"password_hash" json:"-"`
	FirstName     string    `db:"first_name" json:"firstName"`
	LastName      string    `db:"last_name" json:"lastName"`
	PhoneNumber   string    `db:"phone_number" json:"phoneNumber"`
	EmailVerified bool      `db:"email_verified" json:"emailVerified"`
	RefreshToken  string    `db:"refresh_token" json:"-"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}
