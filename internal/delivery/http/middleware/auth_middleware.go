package middleware

import (
	"strings"

	deliverycontext "gaspass/internal/delivery/context"
	domainerrors "gaspass/internal/domain/errors"
	"gaspass/internal/domain/repository"
	"gaspass/internal/domain/service"
	"gaspass/internal/errors"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for session token authentication and
// admin authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer token and stores its claims on the
// request context. It is purely stateless; no database read happens here.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrMissingToken
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrMissingToken.WithDetails("expected a Bearer token")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken
		}

		// Make claims reachable from both echo and the request context.
		c.Set(string(deliverycontext.KeyClaims), claims)
		req := c.Request()
		c.SetRequest(req.WithContext(deliverycontext.WithClaims(req.Context(), claims)))

		return next(c)
	}
}

// RequireAdmin gates a route on a fresh admin check. Beyond the is_admin
// claim it re-reads the account and rejects tokens whose version no longer
// matches the stored one, so a password reset revokes admin access
// immediately. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := deliverycontext.GetClaims(c.Request().Context())
		if claims == nil || !claims.IsAdmin {
			return domainerrors.ErrForbidden
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrForbidden
		}
		if err != nil {
			return errors.Wrap(err, "failed to refresh admin account")
		}

		if !user.IsAdmin || user.TokenVersion != claims.TokenVersion {
			return domainerrors.ErrForbidden
		}

		return next(c)
	}
}
