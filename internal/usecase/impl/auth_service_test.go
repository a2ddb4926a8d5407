package impl

import (
	"context"
	"testing"

	"gaspass/internal/domain/entity"
	domainerrors "gaspass/internal/domain/errors"
	"gaspass/internal/domain/service"
	"gaspass/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authServiceFixture struct {
	service  usecase.AuthUsecase
	userRepo *fakeUserRepo
	hasher   *fakeHasher
	verifier *fakeOAuthVerifier
	tx       *fakeTxManager
}

func createTestAuthService(t *testing.T, users ...*entity.User) *authServiceFixture {
	t.Helper()

	userRepo := newFakeUserRepo(users...)
	hasher := &fakeHasher{}
	verifier := &fakeOAuthVerifier{}
	tx := &fakeTxManager{factory: &fakeRepoFactory{userRepo: userRepo}}

	svc := NewAuthService(AuthServiceParams{
		TxManager:     tx,
		UserRepo:      userRepo,
		Hasher:        hasher,
		TokenService:  &fakeTokenService{},
		OAuthVerifier: verifier,
		Logger:        testLogger(),
	})

	return &authServiceFixture{
		service:  svc,
		userRepo: userRepo,
		hasher:   hasher,
		verifier: verifier,
		tx:       tx,
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	fx := createTestAuthService(t)

	out, err := fx.service.Signup(context.Background(), usecase.SignupInput{
		Username: "newuser",
		Name:     "New User",
		Phone:    "612345678",
		Password: "Sup3rSecret!",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "newuser", out.User.Username)
	assert.False(t, out.User.IsValidated)
	assert.False(t, out.User.IsAdmin)
	assert.Equal(t, 1, fx.tx.executed)

	require.Len(t, fx.userRepo.created, 1)
	assert.Equal(t, "hashed:Sup3rSecret!", fx.userRepo.created[0].PasswordHash)
}

func TestAuthService_Signup_InvalidUsername(t *testing.T) {
	fx := createTestAuthService(t)

	for _, username := range []string{"ab", "has space", "way-too_long!", ""} {
		_, err := fx.service.Signup(context.Background(), usecase.SignupInput{
			Username: username,
			Phone:    "612345678",
			Password: "Sup3rSecret!",
		})
		require.Error(t, err, username)
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	}
	assert.Zero(t, fx.tx.executed)
}

func TestAuthService_Signup_InvalidPhone(t *testing.T) {
	fx := createTestAuthService(t)

	for _, phone := range []string{"512345678", "6123", "61234567890", "+612345678"} {
		_, err := fx.service.Signup(context.Background(), usecase.SignupInput{
			Username: "newuser",
			Phone:    phone,
			Password: "Sup3rSecret!",
		})
		require.Error(t, err, phone)
	}
}

func TestAuthService_Signup_DuplicateUsernameOrPhone(t *testing.T) {
	fx := createTestAuthService(t, &entity.User{Username: "taken", Phone: "698765432"})

	_, err := fx.service.Signup(context.Background(), usecase.SignupInput{
		Username: "taken",
		Phone:    "612345678",
		Password: "Sup3rSecret!",
	})
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrConflict.ErrorCode(), appErr.ErrorCode())
	assert.Empty(t, fx.userRepo.created)
}

func TestAuthService_Login_ByUsername(t *testing.T) {
	fx := createTestAuthService(t, &entity.User{
		Username:     "alice",
		Phone:        "612345678",
		PasswordHash: "hashed:Sup3rSecret!",
		IsValidated:  true,
	})

	out, err := fx.service.Login(context.Background(), usecase.LoginInput{
		Identifier: "alice",
		Password:   "Sup3rSecret!",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "alice", out.User.Username)
}

func TestAuthService_Login_ByInternationalPhone(t *testing.T) {
	fx := createTestAuthService(t, &entity.User{
		Username:     "bob",
		Phone:        "+33612345678",
		PasswordHash: "hashed:Sup3rSecret!",
		IsValidated:  true,
	})

	out, err := fx.service.Login(context.Background(), usecase.LoginInput{
		Identifier: "+33612345678",
		Password:   "Sup3rSecret!",
	})
	require.NoError(t, err)
	assert.Equal(t, "bob", out.User.Username)

	// Without the leading plus the identifier is treated as a username.
	_, err = fx.service.Login(context.Background(), usecase.LoginInput{
		Identifier: "33612345678",
		Password:   "Sup3rSecret!",
	})
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrLoginUserNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestAuthService_Login_ByLocalPhone(t *testing.T) {
	fx := createTestAuthService(t, &entity.User{
		Username:     "carol",
		Phone:        "612345678",
		PasswordHash: "hashed:Sup3rSecret!",
		IsValidated:  true,
	})

	// The exact local number used at signup routes to the phone column.
	out, err := fx.service.Login(context.Background(), usecase.LoginInput{
		Identifier: "612345678",
		Password:   "Sup3rSecret!",
	})
	require.NoError(t, err)
	assert.Equal(t, "carol", out.User.Username)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Login(context.Background(), usecase.LoginInput{
		Identifier: "ghost",
		Password:   "whatever",
	})
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrLoginUserNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t, &entity.User{
		Username:     "alice",
		PasswordHash: "hashed:Sup3rSecret!",
		IsValidated:  true,
	})

	_, err := fx.service.Login(context.Background(), usecase.LoginInput{
		Identifier: "alice",
		Password:   "wrong",
	})
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), appErr.ErrorCode())
}

func TestAuthService_Login_PendingAccountBlocked(t *testing.T) {
	fx := createTestAuthService(t, &entity.User{
		Username:     "pending",
		PasswordHash: "hashed:Sup3rSecret!",
		IsValidated:  false,
	})

	_, err := fx.service.Login(context.Background(), usecase.LoginInput{
		Identifier: "pending",
		Password:   "Sup3rSecret!",
	})
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrPendingApproval.ErrorCode(), appErr.ErrorCode())
}

func TestAuthService_Login_AdminBypassesValidationGate(t *testing.T) {
	fx := createTestAuthService(t, &entity.User{
		Username:     "root",
		PasswordHash: "hashed:Sup3rSecret!",
		IsValidated:  false,
		IsAdmin:      true,
	})

	out, err := fx.service.Login(context.Background(), usecase.LoginInput{
		Identifier: "root",
		Password:   "Sup3rSecret!",
	})
	require.NoError(t, err)
	assert.True(t, out.User.IsAdmin)
}

func TestAuthService_Login_FederatedAccountHasNoLocalPassword(t *testing.T) {
	// A federated account carries an empty hash; no password may match it.
	fx := createTestAuthService(t, &entity.User{
		Username:     "federated",
		PasswordHash: "",
		IsValidated:  true,
	})

	_, err := fx.service.Login(context.Background(), usecase.LoginInput{
		Identifier: "federated",
		Password:   "",
	})
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), appErr.ErrorCode())
}

func TestAuthService_FederatedLogin_ProvisionsValidatedAccount(t *testing.T) {
	fx := createTestAuthService(t)
	fx.verifier.identity = &service.FederatedIdentity{
		Subject:       "google-sub",
		Email:         "new@example.com",
		Name:          "New Person",
		EmailVerified: true,
	}

	out, err := fx.service.FederatedLogin(context.Background(), usecase.FederatedLoginInput{IDToken: "opaque"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.True(t, out.User.IsValidated)

	require.Len(t, fx.userRepo.created, 1)
	assert.Empty(t, fx.userRepo.created[0].PasswordHash)
	assert.Equal(t, "new@example.com", fx.userRepo.created[0].Email)
}

func TestAuthService_FederatedLogin_ExistingAccount(t *testing.T) {
	fx := createTestAuthService(t, &entity.User{
		Email:       "known@example.com",
		Name:        "Known",
		IsValidated: true,
	})
	fx.verifier.identity = &service.FederatedIdentity{Email: "known@example.com", EmailVerified: true}

	out, err := fx.service.FederatedLogin(context.Background(), usecase.FederatedLoginInput{IDToken: "opaque"})
	require.NoError(t, err)
	assert.Equal(t, "known@example.com", out.User.Email)
	assert.Empty(t, fx.userRepo.created)
}

func TestAuthService_FederatedLogin_RejectedToken(t *testing.T) {
	fx := createTestAuthService(t)
	fx.verifier.err = assert.AnError

	_, err := fx.service.FederatedLogin(context.Background(), usecase.FederatedLoginInput{IDToken: "bad"})
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrFederatedTokenInvalid.ErrorCode(), appErr.ErrorCode())
}
