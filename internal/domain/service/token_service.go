package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// StationClaims defines the custom claims of a station key.
type StationClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating station keys.
type TokenService interface {
	// GenerateStationKey signs a key for the given role. A zero ttl never expires.
	GenerateStationKey(subject, role string, ttl time.Duration) (string, error)

	// ValidateStationKey checks the signature and expiry of a station key.
	ValidateStationKey(tokenString string) (*StationClaims, error)
}
