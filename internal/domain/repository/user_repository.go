// Package repository defines the persistence interfaces the use cases depend
// on, keeping the domain free of any concrete database driver.
package repository

import (
	"context"
	"time"

	"gaspass/internal/domain/entity"
	"gaspass/internal/errors"

	"github.com/google/uuid"
)

// Sentinel errors returned by repositories. Use cases translate these into
// the HTTP-facing error taxonomy.
var (
	ErrUserNotFound = errors.New("user not found")
)

// IdentityUpdate is the fixed set of identity columns an admin may patch.
// Nil fields are left untouched; there is no dynamically assembled column list.
type IdentityUpdate struct {
	Name     *string
	Username *string
	Phone    *string
}

// IsEmpty reports whether the patch changes nothing.
func (u IdentityUpdate) IsEmpty() bool {
	return u.Name == nil && u.Username == nil && u.Phone == nil
}

// UserRepository persists user records, including the embedded password-reset
// grant (reset_token/reset_expires, always written together).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByTelegramID(ctx context.Context, telegramID string) (*entity.User, error)
	FindByResetToken(ctx context.Context, token string) (*entity.User, error)

	// ExistsByUsernameOrPhone runs the single uniqueness pre-check used by
	// signup (username = ? OR phone = ?).
	ExistsByUsernameOrPhone(ctx context.Context, username, phone string) (bool, error)

	List(ctx context.Context) ([]*entity.User, error)
	ListPending(ctx context.Context) ([]*entity.User, error)

	// Validate flips is_validated to true, opening the login gate.
	Validate(ctx context.Context, id uuid.UUID) error

	// UpdateIdentity applies the fixed identity column patch.
	UpdateIdentity(ctx context.Context, id uuid.UUID, update IdentityUpdate) error

	// SetResetGrant stores a new recovery grant: both fields in one write.
	SetResetGrant(ctx context.Context, id uuid.UUID, token string, expires time.Time) error

	// CompletePasswordReset atomically installs the new hash, clears the
	// grant fields and bumps token_version, making the grant single-use and
	// invalidating previously issued session tokens on admin routes.
	CompletePasswordReset(ctx context.Context, id uuid.UUID, passwordHash string) error

	// Delete removes the row permanently (hard delete, no tombstone).
	Delete(ctx context.Context, id uuid.UUID) error
}
