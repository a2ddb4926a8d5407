package impl

import (
	"context"
	"testing"
	"time"

	"gaspass/config"
	"gaspass/internal/domain/entity"
	domainerrors "gaspass/internal/domain/errors"
	"gaspass/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recoveryServiceFixture struct {
	service  usecase.RecoveryUsecase
	userRepo *fakeUserRepo
	hasher   *fakeHasher
	notifier *fakeNotifier
}

func createTestRecoveryService(t *testing.T, users ...*entity.User) *recoveryServiceFixture {
	t.Helper()

	userRepo := newFakeUserRepo(users...)
	hasher := &fakeHasher{}
	notifier := &fakeNotifier{}

	svc := NewRecoveryService(RecoveryServiceParams{
		UserRepo: userRepo,
		Hasher:   hasher,
		Notifier: notifier,
		Config:   &config.Config{Frontend: &config.FrontendConfig{BaseURL: "https://admin.test"}},
		Logger:   testLogger(),
	})

	return &recoveryServiceFixture{
		service:  svc,
		userRepo: userRepo,
		hasher:   hasher,
		notifier: notifier,
	}
}

func TestRecoveryService_RequestReset_Success(t *testing.T) {
	user := &entity.User{Username: "alice", TelegramID: "4242"}
	fx := createTestRecoveryService(t, user)

	err := fx.service.RequestReset(context.Background(), usecase.RequestResetInput{TelegramID: "4242"})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ResetToken)
	assert.Len(t, user.ResetToken, 64)
	require.NotNil(t, user.ResetExpires)
	assert.WithinDuration(t, time.Now().Add(time.Hour), *user.ResetExpires, time.Minute)

	require.Len(t, fx.notifier.links, 1)
	assert.Equal(t, "https://admin.test/reset-password?token="+user.ResetToken, fx.notifier.links[0])
	assert.Equal(t, []string{"4242"}, fx.notifier.recipients)
}

func TestRecoveryService_RequestReset_UnknownUser(t *testing.T) {
	fx := createTestRecoveryService(t)

	err := fx.service.RequestReset(context.Background(), usecase.RequestResetInput{TelegramID: "9999"})
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrUserNotFound.ErrorCode(), appErr.ErrorCode())
	assert.Empty(t, fx.notifier.links)
}

func TestRecoveryService_RequestReset_CooldownWhileGrantActive(t *testing.T) {
	expires := time.Now().Add(30 * time.Minute)
	fx := createTestRecoveryService(t, &entity.User{
		Username:     "alice",
		TelegramID:   "4242",
		ResetToken:   "outstanding",
		ResetExpires: &expires,
	})

	err := fx.service.RequestReset(context.Background(), usecase.RequestResetInput{TelegramID: "4242"})
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrResetCooldown.ErrorCode(), appErr.ErrorCode())
	assert.Empty(t, fx.notifier.links)
}

func TestRecoveryService_RequestReset_ExpiredGrantAllowsNewRequest(t *testing.T) {
	expires := time.Now().Add(-time.Minute)
	user := &entity.User{
		Username:     "alice",
		TelegramID:   "4242",
		ResetToken:   "stale",
		ResetExpires: &expires,
	}
	fx := createTestRecoveryService(t, user)

	err := fx.service.RequestReset(context.Background(), usecase.RequestResetInput{TelegramID: "4242"})
	require.NoError(t, err)
	assert.NotEqual(t, "stale", user.ResetToken)
}

func TestRecoveryService_RequestReset_LookupKeyedOnTelegramID(t *testing.T) {
	user := &entity.User{Username: "alice", TelegramID: "4242"}
	fx := createTestRecoveryService(t, user)

	// The username is not a valid identifier for this flow.
	err := fx.service.RequestReset(context.Background(), usecase.RequestResetInput{TelegramID: "alice"})
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrUserNotFound.ErrorCode(), appErr.ErrorCode())
	assert.Empty(t, fx.notifier.links)

	require.NoError(t, fx.service.RequestReset(context.Background(), usecase.RequestResetInput{TelegramID: "4242"}))
	assert.Equal(t, []string{"4242"}, fx.notifier.recipients)
}

func TestRecoveryService_RequestReset_DispatchFailureKeepsGrant(t *testing.T) {
	user := &entity.User{Username: "alice", TelegramID: "4242"}
	fx := createTestRecoveryService(t, user)
	fx.notifier.err = assert.AnError

	err := fx.service.RequestReset(context.Background(), usecase.RequestResetInput{TelegramID: "4242"})
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrDispatchFailed.ErrorCode(), appErr.ErrorCode())

	// The stored grant survives the failed dispatch and stays consumable.
	assert.NotEmpty(t, user.ResetToken)
	require.NotNil(t, user.ResetExpires)
}

func TestRecoveryService_ConsumeReset_Success(t *testing.T) {
	expires := time.Now().Add(30 * time.Minute)
	user := &entity.User{
		Username:     "alice",
		PasswordHash: "hashed:OldSecret1!",
		ResetToken:   "goodtoken",
		ResetExpires: &expires,
		TokenVersion: 3,
	}
	fx := createTestRecoveryService(t, user)

	err := fx.service.ConsumeReset(context.Background(), usecase.ConsumeResetInput{
		Token:       "goodtoken",
		NewPassword: "NewSecret1!",
	})
	require.NoError(t, err)

	assert.Equal(t, "hashed:NewSecret1!", user.PasswordHash)
	assert.Empty(t, user.ResetToken)
	assert.Nil(t, user.ResetExpires)
	assert.Equal(t, 4, user.TokenVersion)
}

func TestRecoveryService_ConsumeReset_UnknownToken(t *testing.T) {
	fx := createTestRecoveryService(t)

	err := fx.service.ConsumeReset(context.Background(), usecase.ConsumeResetInput{
		Token:       "nope",
		NewPassword: "NewSecret1!",
	})
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidResetToken.ErrorCode(), appErr.ErrorCode())
}

func TestRecoveryService_ConsumeReset_ExpiredTokenLooksUnknown(t *testing.T) {
	expires := time.Now().Add(-time.Minute)
	fx := createTestRecoveryService(t, &entity.User{
		Username:     "alice",
		ResetToken:   "expired",
		ResetExpires: &expires,
	})

	err := fx.service.ConsumeReset(context.Background(), usecase.ConsumeResetInput{
		Token:       "expired",
		NewPassword: "NewSecret1!",
	})
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidResetToken.ErrorCode(), appErr.ErrorCode())
	assert.Empty(t, fx.userRepo.completedResets)
}

func TestRecoveryService_ConsumeReset_WeakPasswordRejectedFirst(t *testing.T) {
	fx := createTestRecoveryService(t)
	fx.hasher.strengthErr = assert.AnError

	err := fx.service.ConsumeReset(context.Background(), usecase.ConsumeResetInput{
		Token:       "whatever",
		NewPassword: "weak",
	})
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrPasswordStrength.ErrorCode(), appErr.ErrorCode())
}
