// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"quickbite/config"
	"quickbite/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher hashes SMS verification codes for at-rest storage using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
func NewBcryptHasher(cfg *config.Config) service.CodeHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext code.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(code string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(code), h.cost)

	return string(bytes), err
}

// Compare checks a plaintext code against a bcrypt hash.
func (h *bcryptHasher) Compare(hash, code string) bool {
	// err is nil if the code and hash match.
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}
