package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "gaspass/internal/delivery/context"
	"gaspass/internal/domain/entity"
	domainerrors "gaspass/internal/domain/errors"
	"gaspass/internal/domain/repository"
	"gaspass/internal/domain/service"
	"gaspass/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenService struct {
	claims *service.Claims
	err    error
}

func (s *stubTokenService) Issue(*entity.User) (string, error) { return "", errors.New("unused") }

func (s *stubTokenService) Verify(string) (*service.Claims, error) { return s.claims, s.err }

func (s *stubTokenService) TTL() time.Duration { return time.Hour }

type stubUserRepo struct {
	repository.UserRepository

	user *entity.User
}

func (s *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, repository.ErrUserNotFound
	}

	return s.user, nil
}

func newAuthTestContext(t *testing.T, header string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func assertAppError(t *testing.T, err error, want *domainerrors.BaseError) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, want.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, want.HTTPCode(), appErr.HTTPCode())
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{}, &stubUserRepo{})
	c, _ := newAuthTestContext(t, "")

	err := m.Authenticate(okHandler)(c)
	assertAppError(t, err, domainerrors.ErrMissingToken)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{}, &stubUserRepo{})
	c, _ := newAuthTestContext(t, "Basic abc123")

	err := m.Authenticate(okHandler)(c)
	assertAppError(t, err, domainerrors.ErrMissingToken)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{err: errors.New("expired")}, &stubUserRepo{})
	c, _ := newAuthTestContext(t, "Bearer bad")

	err := m.Authenticate(okHandler)(c)
	assertAppError(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthMiddleware_Authenticate_SetsClaimsOnRequestContext(t *testing.T) {
	claims := &service.Claims{UserID: uuid.New(), Username: "alice"}
	m := NewAuthMiddleware(&stubTokenService{claims: claims}, &stubUserRepo{})
	c, _ := newAuthTestContext(t, "Bearer good")

	var seen *service.Claims
	err := m.Authenticate(func(c echo.Context) error {
		seen = deliverycontext.GetClaims(c.Request().Context())

		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, "alice", seen.Username)
}

func TestAuthMiddleware_RequireAdmin_NonAdminClaims(t *testing.T) {
	admin := &entity.User{ID: uuid.New(), IsAdmin: true}
	m := NewAuthMiddleware(&stubTokenService{}, &stubUserRepo{user: admin})
	c, _ := newAuthTestContext(t, "")
	withClaims(c, &service.Claims{UserID: admin.ID, IsAdmin: false})

	err := m.RequireAdmin(okHandler)(c)
	assertAppError(t, err, domainerrors.ErrForbidden)
}

func TestAuthMiddleware_RequireAdmin_MissingClaims(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{}, &stubUserRepo{})
	c, _ := newAuthTestContext(t, "")

	err := m.RequireAdmin(okHandler)(c)
	assertAppError(t, err, domainerrors.ErrForbidden)
}

func TestAuthMiddleware_RequireAdmin_FreshCheckCatchesDemotion(t *testing.T) {
	// The stored record says the account is no longer an admin even though
	// the unexpired token still claims so.
	demoted := &entity.User{ID: uuid.New(), IsAdmin: false}
	m := NewAuthMiddleware(&stubTokenService{}, &stubUserRepo{user: demoted})
	c, _ := newAuthTestContext(t, "")
	withClaims(c, &service.Claims{UserID: demoted.ID, IsAdmin: true})

	err := m.RequireAdmin(okHandler)(c)
	assertAppError(t, err, domainerrors.ErrForbidden)
}

func TestAuthMiddleware_RequireAdmin_StaleTokenVersion(t *testing.T) {
	admin := &entity.User{ID: uuid.New(), IsAdmin: true, TokenVersion: 2}
	m := NewAuthMiddleware(&stubTokenService{}, &stubUserRepo{user: admin})
	c, _ := newAuthTestContext(t, "")
	withClaims(c, &service.Claims{UserID: admin.ID, IsAdmin: true, TokenVersion: 1})

	err := m.RequireAdmin(okHandler)(c)
	assertAppError(t, err, domainerrors.ErrForbidden)
}

func TestAuthMiddleware_RequireAdmin_DeletedAccount(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{}, &stubUserRepo{})
	c, _ := newAuthTestContext(t, "")
	withClaims(c, &service.Claims{UserID: uuid.New(), IsAdmin: true})

	err := m.RequireAdmin(okHandler)(c)
	assertAppError(t, err, domainerrors.ErrForbidden)
}

func TestAuthMiddleware_RequireAdmin_Passes(t *testing.T) {
	admin := &entity.User{ID: uuid.New(), IsAdmin: true, TokenVersion: 3}
	m := NewAuthMiddleware(&stubTokenService{}, &stubUserRepo{user: admin})
	c, rec := newAuthTestContext(t, "")
	withClaims(c, &service.Claims{UserID: admin.ID, IsAdmin: true, TokenVersion: 3})

	err := m.RequireAdmin(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// withClaims injects claims the way Authenticate does, without a token.
func withClaims(c echo.Context, claims *service.Claims) {
	req := c.Request()
	c.SetRequest(req.WithContext(deliverycontext.WithClaims(req.Context(), claims)))
}
