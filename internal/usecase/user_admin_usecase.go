package usecase

import (
	"context"

	"gaspass/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateIdentityInput carries the optional identity fields an admin may
// change. Nil fields are left untouched.
type UpdateIdentityInput struct {
	Name     *string
	Username *string
	Phone    *string
}

// UserAdminUsecase defines the interface for back-office account management.
type UserAdminUsecase interface {
	List(ctx context.Context) ([]*entity.PublicUser, error)
	ListPending(ctx context.Context) ([]*entity.PublicUser, error)

	// Validate marks a pending account as approved for login.
	Validate(ctx context.Context, id uuid.UUID) (*entity.PublicUser, error)

	UpdateIdentity(ctx context.Context, id uuid.UUID, input UpdateIdentityInput) (*entity.PublicUser, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Activity returns the most recent audited actions of one account.
	Activity(ctx context.Context, id uuid.UUID, limit int) ([]*entity.AuditEntry, error)
}
