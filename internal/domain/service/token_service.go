// Package service defines interfaces to external collaborators and
// supporting infrastructure, abstracting their details from the use cases.
package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by issued tokens.
type Claims struct {
	UserID uuid.UUID
	Role   string
	Phone  string
	Type   string // "access" or "refresh"
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a user.
	GenerateTokens(userID uuid.UUID, role, phone string) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the validity of an access token string.
	ValidateToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks the validity of a refresh token string.
	ValidateRefreshToken(tokenString string) (*Claims, error)
}
