package handler

import (
	"log/slog"
	"net/http"

	"gaspass/internal/delivery/http/response"
	"gaspass/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PasswordHandler holds dependencies for the password recovery handlers.
type PasswordHandler struct {
	uc     usecase.RecoveryUsecase
	logger *slog.Logger
}

// NewPasswordHandler is the constructor for PasswordHandler, injected by Fx.
func NewPasswordHandler(uc usecase.RecoveryUsecase, logger *slog.Logger) *PasswordHandler {
	return &PasswordHandler{
		uc:     uc,
		logger: logger,
	}
}

type forgotPasswordRequest struct {
	TelegramID string `json:"telegramId" validate:"required"`
}

type resetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ForgotTelegram requests a reset link delivered over Telegram.
func (h *PasswordHandler) ForgotTelegram(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset request")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Missing telegramId")
	}

	if err := h.uc.RequestReset(c.Request().Context(), usecase.RequestResetInput{
		TelegramID: req.TelegramID,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Reset link sent")
}

// Reset consumes a reset token and installs the new password.
func (h *PasswordHandler) Reset(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Missing token or password")
	}

	if err := h.uc.ConsumeReset(c.Request().Context(), usecase.ConsumeResetInput{
		Token:       req.Token,
		NewPassword: req.Password,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password updated")
}
