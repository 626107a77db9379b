// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"
)

// resetTokenBytes is the entropy of a password-reset token.
const resetTokenBytes = 32

// generateResetToken returns a random hex token for the reset-link email.
func generateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// generateOTP returns a 6-digit numeric one-time code.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("generating otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// hashToken computes the SHA256 hash stored in place of the raw token.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// compareToken checks a presented token against the stored hash in constant
// time relative to the hash contents.
func compareToken(tokenHash, presented string) bool {
	presentedHash := hashToken(presented)
	return subtle.ConstantTimeCompare([]byte(tokenHash), []byte(presentedHash)) == 1
}
