// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"gaspass/config"
	"gaspass/internal/domain/service"
	"gaspass/internal/errors"
)

const (
	minPasswordLength = 8
	minBcryptCost     = 12
	specialRunes      = "@$!%*?&"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
// The configured pepper is appended to every plaintext before hashing, so a
// leaked table of hashes is useless without the server-side secret.
type bcryptHasher struct {
	pepper string
	cost   int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) (service.PasswordHasher, error) {
	if cfg.Auth == nil || cfg.Auth.Pepper == "" {
		return nil, errors.New("password pepper must be provided")
	}

	cost := cfg.Auth.BcryptCost
	if cost < minBcryptCost {
		cost = minBcryptCost
	}

	return &bcryptHasher{
		pepper: cfg.Auth.Pepper,
		cost:   cost,
	}, nil
}

// Hash generates a salted hash of the peppered plaintext using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password+h.pepper), h.cost)

	return string(bytes), err
}

// Check compares a peppered plaintext password with a bcrypt hash.
// An empty stored hash never matches; federated accounts have no local password.
func (h *bcryptHasher) Check(password, hash string) bool {
	if hash == "" {
		return false
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password+h.pepper))

	// err is nil if the password and hash match.
	return err == nil
}

// ValidateStrength enforces the complexity policy: at least 8 characters with
// one lowercase letter, one uppercase letter, one digit and one special
// character.
func (h *bcryptHasher) ValidateStrength(password string) error {
	if len(password) < minPasswordLength {
		return errors.New("password must be at least 8 characters long")
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(specialRunes, r):
			hasSpecial = true
		}
	}

	switch {
	case !hasLower:
		return errors.New("password must contain a lowercase letter")
	case !hasUpper:
		return errors.New("password must contain an uppercase letter")
	case !hasDigit:
		return errors.New("password must contain a digit")
	case !hasSpecial:
		return errors.New("password must contain a special character (@$!%*?&)")
	}

	return nil
}
