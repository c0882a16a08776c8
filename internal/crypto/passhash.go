// Package crypto implements server-side password hashing and verification.
package crypto

import "golang.org/x/crypto/bcrypt"

// DefaultCost is the bcrypt work factor used in production.
const DefaultCost = bcrypt.DefaultCost

// MinCost is the cheapest allowed work factor (tests only).
const MinCost = bcrypt.MinCost

// HashPassword returns a bcrypt hash of password at the given cost.
// The per-hash salt is generated internally and embedded in the result.
func HashPassword(password string, cost int) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), cost)
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
func VerifyPassword(password string, hash []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
