package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"gaspass/internal/delivery/http/response"
	domainerrors "gaspass/internal/domain/errors"
	"gaspass/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for the account administration handlers.
type UserHandler struct {
	uc     usecase.UserAdminUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserAdminUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type updateIdentityRequest struct {
	Name     *string `json:"name"`
	Username *string `json:"username"`
	Phone    *string `json:"phone"`
}

// List returns every account in public projection.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

// ListPending returns the accounts still waiting for validation.
func (h *UserHandler) ListPending(c echo.Context) error {
	users, err := h.uc.ListPending(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

// Validate approves a pending account for login.
func (h *UserHandler) Validate(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.Validate(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Account validated")
}

// UpdateIdentity changes the identity fields present in the request body
// and leaves the rest untouched.
func (h *UserHandler) UpdateIdentity(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateIdentityRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	user, err := h.uc.UpdateIdentity(c.Request().Context(), id, usecase.UpdateIdentityInput{
		Name:     req.Name,
		Username: req.Username,
		Phone:    req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Account updated")
}

// Delete removes one account.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deleted")
}

// Activity returns the most recent audited actions of one account.
func (h *UserHandler) Activity(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("invalid limit")
		}
		limit = parsed
	}

	entries, err := h.uc.Activity(c.Request().Context(), id, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "")
}
