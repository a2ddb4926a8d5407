// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"regexp"

	deliverycontext "gaspass/internal/delivery/context"
	"gaspass/internal/domain/entity"
	domainerrors "gaspass/internal/domain/errors"
	"gaspass/internal/domain/repository"
	"gaspass/internal/domain/service"
	"gaspass/internal/errors"
	"gaspass/internal/usecase"

	"go.uber.org/fx"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]{3,30}$`)
	phonePattern    = regexp.MustCompile(`^6\d{8}$`)

	// An identifier with a leading plus and 8 to 15 digits is treated as a
	// phone number; everything else is looked up as a username.
	intlPhonePattern = regexp.MustCompile(`^\+\d{8,15}$`)
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	oauthVerifier service.OAuthVerifier
	logger        *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	Hasher        service.PasswordHasher
	TokenService  service.TokenService
	OAuthVerifier service.OAuthVerifier
	Logger        *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		oauthVerifier: params.OAuthVerifier,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new, unvalidated account.
func (srv *authService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.SignupOutput, error) {
	if !usernamePattern.MatchString(input.Username) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username must be 3 to 30 alphanumeric characters")
	}
	if !phonePattern.MatchString(input.Phone) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("phone must start with 6 followed by 8 digits")
	}
	if err := srv.hasher.ValidateStrength(input.Password); err != nil {
		return nil, domainerrors.ErrPasswordStrength.WithDetails(err.Error())
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	var created *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		taken, err := userRepo.ExistsByUsernameOrPhone(ctx, input.Username, input.Phone)
		if err != nil {
			return errors.Wrap(err, "failed to check username and phone uniqueness")
		}
		if taken {
			return domainerrors.ErrConflict
		}

		user := &entity.User{
			Username:     input.Username,
			Name:         input.Name,
			Phone:        input.Phone,
			PasswordHash: hash,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		created = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Account registered, awaiting validation",
		slog.String("user_id", created.ID.String()),
		slog.String("username", created.Username))

	return &usecase.SignupOutput{User: created.Public()}, nil
}

// Login authenticates by username or phone plus password.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	var (
		user *entity.User
		err  error
	)
	if intlPhonePattern.MatchString(input.Identifier) || phonePattern.MatchString(input.Identifier) {
		user, err = srv.userRepo.FindByPhone(ctx, input.Identifier)
	} else {
		user, err = srv.userRepo.FindByUsername(ctx, input.Identifier)
	}
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrLoginUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up account")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.CanAuthenticate() {
		return nil, domainerrors.ErrPendingApproval
	}

	return srv.issueSession(ctx, user)
}

// FederatedLogin authenticates via a verified provider ID token, creating a
// validated account on first sight of the email.
func (srv *authService) FederatedLogin(ctx context.Context, input usecase.FederatedLoginInput) (*usecase.LoginOutput, error) {
	identity, err := srv.oauthVerifier.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Federated token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrFederatedTokenInvalid
	}

	user, err := srv.userRepo.FindByEmail(ctx, identity.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		user, err = srv.provisionFederatedUser(ctx, identity)
	}
	if err != nil {
		return nil, err
	}

	return srv.issueSession(ctx, user)
}

// provisionFederatedUser creates a validated account with an empty local
// password hash. Such accounts can only sign in through the provider.
func (srv *authService) provisionFederatedUser(ctx context.Context, identity *service.FederatedIdentity) (*entity.User, error) {
	var created *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		// A concurrent first login may have won the insert race.
		existing, err := userRepo.FindByEmail(ctx, identity.Email)
		if err == nil {
			created = existing

			return nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up federated account")
		}

		user := &entity.User{
			Name:        identity.Name,
			Email:       identity.Email,
			IsValidated: true,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create federated user")
		}

		created = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Federated account provisioned",
		slog.String("user_id", created.ID.String()),
		slog.String("email", created.Email))

	return created, nil
}

func (srv *authService) issueSession(ctx context.Context, user *entity.User) (*usecase.LoginOutput, error) {
	token, err := srv.tokenService.Issue(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Info("Login succeeded", slog.String("user_id", user.ID.String()))

	return &usecase.LoginOutput{Token: token, User: user.Public()}, nil
}
