package service

import (
	"time"

	"gaspass/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims embedded in issued session tokens.
// TokenVersion is compared against the stored user record on privileged
// routes so that a password reset invalidates tokens minted before it.
type Claims struct {
	UserID       uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Phone        string    `json:"phone"`
	IsAdmin      bool      `json:"is_admin"`
	TokenVersion int       `json:"token_version"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed session token for the given user.
	Issue(user *entity.User) (string, error)

	// Verify checks the validity of a token string and returns its claims.
	Verify(tokenString string) (*Claims, error)

	// TTL returns the configured token lifetime.
	TTL() time.Duration
}
