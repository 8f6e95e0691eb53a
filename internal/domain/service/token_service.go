package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Roles  []string  `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for validating bearer tokens.
// This abstracts the details of token verification from the delivery layer.
type TokenService interface {
	// ValidateAccessToken checks the validity of an access token string and
	// returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)
}
