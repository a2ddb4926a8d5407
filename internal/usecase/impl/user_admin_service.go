package impl

import (
	"context"
	"log/slog"

	deliverycontext "gaspass/internal/delivery/context"
	"gaspass/internal/domain/entity"
	domainerrors "gaspass/internal/domain/errors"
	"gaspass/internal/domain/repository"
	"gaspass/internal/errors"
	"gaspass/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// userAdminService implements the UserAdminUsecase interface.
type userAdminService struct {
	userRepo  repository.UserRepository
	auditRepo repository.AuditRepository
	logger    *slog.Logger
}

// UserAdminServiceParams holds dependencies for userAdminService, injected by Fx.
type UserAdminServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	AuditRepo repository.AuditRepository
	Logger    *slog.Logger
}

// NewUserAdminService is the constructor for userAdminService.
func NewUserAdminService(params UserAdminServiceParams) usecase.UserAdminUsecase {
	return &userAdminService{
		userRepo:  params.UserRepo,
		auditRepo: params.AuditRepo,
		logger:    params.Logger,
	}
}

func (srv *userAdminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userAdminService) List(ctx context.Context) ([]*entity.PublicUser, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return publicProjection(users), nil
}

func (srv *userAdminService) ListPending(ctx context.Context) ([]*entity.PublicUser, error) {
	users, err := srv.userRepo.ListPending(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending users")
	}

	return publicProjection(users), nil
}

// Validate marks a pending account as approved for login.
func (srv *userAdminService) Validate(ctx context.Context, id uuid.UUID) (*entity.PublicUser, error) {
	err := srv.userRepo.Validate(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate user")
	}

	srv.log(ctx).Info("Account validated", slog.String("user_id", id.String()))

	return srv.fetchPublic(ctx, id)
}

func (srv *userAdminService) UpdateIdentity(ctx context.Context, id uuid.UUID, input usecase.UpdateIdentityInput) (*entity.PublicUser, error) {
	update := repository.IdentityUpdate{
		Name:     input.Name,
		Username: input.Username,
		Phone:    input.Phone,
	}
	if update.IsEmpty() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no fields to update")
	}
	if update.Username != nil && !usernamePattern.MatchString(*update.Username) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username must be 3 to 30 alphanumeric characters")
	}
	if update.Phone != nil && !phonePattern.MatchString(*update.Phone) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("phone must start with 6 followed by 8 digits")
	}

	err := srv.userRepo.UpdateIdentity(ctx, id, update)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user identity")
	}

	return srv.fetchPublic(ctx, id)
}

func (srv *userAdminService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.userRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("Account deleted", slog.String("user_id", id.String()))

	return nil
}

// Activity returns the most recent audited actions of one account.
func (srv *userAdminService) Activity(ctx context.Context, id uuid.UUID, limit int) ([]*entity.AuditEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	if _, err := srv.userRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to look up user")
	}

	entries, err := srv.auditRepo.ListByActor(ctx, id, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user activity")
	}

	return entries, nil
}

func (srv *userAdminService) fetchPublic(ctx context.Context, id uuid.UUID) (*entity.PublicUser, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload user")
	}

	return user.Public(), nil
}

func publicProjection(users []*entity.User) []*entity.PublicUser {
	out := make([]*entity.PublicUser, 0, len(users))
	for _, user := range users {
		out = append(out, user.Public())
	}

	return out
}
