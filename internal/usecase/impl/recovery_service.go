package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"gaspass/config"
	deliverycontext "gaspass/internal/delivery/context"
	domainerrors "gaspass/internal/domain/errors"
	"gaspass/internal/domain/repository"
	"gaspass/internal/domain/service"
	"gaspass/internal/errors"
	"gaspass/internal/usecase"

	"go.uber.org/fx"
)

const resetGrantTTL = time.Hour

// recoveryService implements the RecoveryUsecase interface.
type recoveryService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	notifier     service.ResetNotifier
	resetBaseURL string
	logger       *slog.Logger
}

// RecoveryServiceParams holds dependencies for recoveryService, injected by Fx.
type RecoveryServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Notifier service.ResetNotifier
	Config   *config.Config
	Logger   *slog.Logger
}

// NewRecoveryService is the constructor for recoveryService.
func NewRecoveryService(params RecoveryServiceParams) usecase.RecoveryUsecase {
	resetBaseURL := ""
	if params.Config != nil && params.Config.Frontend != nil {
		resetBaseURL = params.Config.Frontend.BaseURL
	}

	return &recoveryService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		notifier:     params.Notifier,
		resetBaseURL: resetBaseURL,
		logger:       params.Logger,
	}
}

func (srv *recoveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestReset mints a single-use reset token and dispatches a reset link
// over the account's notification channel. The grant is persisted before
// dispatch and survives a dispatch failure.
func (srv *recoveryService) RequestReset(ctx context.Context, input usecase.RequestResetInput) error {
	user, err := srv.userRepo.FindByTelegramID(ctx, input.TelegramID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to look up account")
	}

	now := time.Now()
	if user.HasActiveResetGrant(now) {
		return domainerrors.ErrResetCooldown
	}

	token, err := newResetToken()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	expires := now.Add(resetGrantTTL)
	if err := srv.userRepo.SetResetGrant(ctx, user.ID, token, expires); err != nil {
		return errors.Wrap(err, "failed to store reset grant")
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", srv.resetBaseURL, token)
	if err := srv.notifier.SendResetLink(ctx, user.TelegramID, link); err != nil {
		srv.log(ctx).Error("Reset link dispatch failed",
			slog.String("user_id", user.ID.String()),
			slog.Any("error", err))

		return domainerrors.ErrDispatchFailed
	}

	srv.log(ctx).Info("Reset link dispatched", slog.String("user_id", user.ID.String()))

	return nil
}

// ConsumeReset exchanges a valid, unexpired token for a new password. An
// expired token is reported exactly like an unknown one.
func (srv *recoveryService) ConsumeReset(ctx context.Context, input usecase.ConsumeResetInput) error {
	if err := srv.hasher.ValidateStrength(input.NewPassword); err != nil {
		return domainerrors.ErrPasswordStrength.WithDetails(err.Error())
	}

	user, err := srv.userRepo.FindByResetToken(ctx, input.Token)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrInvalidResetToken
	}
	if err != nil {
		return errors.Wrap(err, "failed to look up reset token")
	}

	if !user.HasActiveResetGrant(time.Now()) {
		return domainerrors.ErrInvalidResetToken
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	if err := srv.userRepo.CompletePasswordReset(ctx, user.ID, hash); err != nil {
		return errors.Wrap(err, "failed to complete password reset")
	}

	srv.log(ctx).Info("Password reset completed", slog.String("user_id", user.ID.String()))

	return nil
}

func newResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}
