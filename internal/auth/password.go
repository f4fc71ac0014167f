package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost keeps a single verification in the tens of milliseconds
// on commodity hardware. Tunable at startup, never per request.
const DefaultBcryptCost = bcrypt.DefaultCost

// HashPassword hashes a plaintext password using bcrypt. The returned string
// embeds the algorithm identifier, cost and salt, so no external salt storage
// is needed. Costs outside the supported range fall back to the default.
func HashPassword(password string, cost int) (string, error) {
	if len(password) == 0 {
		return "", fmt.Errorf("%w: password is empty", ErrInvalidInput)
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password with a stored hash. Any
// failure, including a malformed hash, means "not authenticated"; the caller
// must never treat it as a transient fault worth retrying.
func VerifyPassword(hash, password string) error {
	if hash == "" || password == "" {
		return ErrUnauthenticated
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrUnauthenticated
	}
	return nil
}
