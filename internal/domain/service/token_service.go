package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by agent tokens. The agent name is the registered "sub" claim.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService issues and validates the bearer tokens agents present to the device hub.
type TokenService interface {
	// GenerateAgentToken creates a signed token for subject with the given roles.
	GenerateAgentToken(subject string, roles []string) (string, error)

	// ValidateToken parses and verifies a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenTTL returns the lifetime of issued tokens.
	TokenTTL() time.Duration
}
