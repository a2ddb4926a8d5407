// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the single account type of the back-office. Regular accounts sign up
// with username+phone and stay unauthenticatable until an admin validates them;
// federated accounts are created on first Google login with an empty local
// password hash (such accounts never pass local password verification, which
// is the documented gap of the federated flow, left as-is on purpose).
type User struct {
	ID           uuid.UUID
	Username     string // unique; empty for federated accounts
	Name         string
	Phone        string // unique; local format, leading 6 plus 8 digits
	Email        string // unique; set for federated accounts
	TelegramID   string // unique; out-of-band channel for password recovery
	PasswordHash string // bcrypt(password+pepper); empty for federated accounts
	IsValidated  bool
	IsAdmin      bool
	ResetToken   string     // outstanding recovery grant; empty when none
	ResetExpires *time.Time // set and cleared together with ResetToken
	TokenVersion int        // bumped on password reset; embedded in issued tokens
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanAuthenticate reports whether the validation gate allows a login.
// Admins bypass the gate entirely.
func (u *User) CanAuthenticate() bool {
	return u.IsAdmin || u.IsValidated
}

// HasActiveResetGrant reports whether an unexpired recovery grant is outstanding.
func (u *User) HasActiveResetGrant(now time.Time) bool {
	return u.ResetExpires != nil && u.ResetExpires.After(now)
}

// PublicUser is the projection of a User that is safe to return to clients.
// It never carries the password hash or the recovery grant fields.
type PublicUser struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Name        string    `json:"name,omitempty"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email,omitempty"`
	IsValidated bool      `json:"is_validated"`
	IsAdmin     bool      `json:"is_admin"`
}

// Public returns the client-safe projection of the user.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:          u.ID,
		Username:    u.Username,
		Name:        u.Name,
		Phone:       u.Phone,
		Email:       u.Email,
		IsValidated: u.IsValidated,
		IsAdmin:     u.IsAdmin,
	}
}
