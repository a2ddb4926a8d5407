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

// AuditHandler holds dependencies for the audit trail handlers.
type AuditHandler struct {
	uc     usecase.AuditUsecase
	logger *slog.Logger
}

// NewAuditHandler is the constructor for AuditHandler, injected by Fx.
func NewAuditHandler(uc usecase.AuditUsecase, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{
		uc:     uc,
		logger: logger,
	}
}

// Recent returns the newest audit entries across all actors.
func (h *AuditHandler) Recent(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("invalid limit")
		}
		limit = parsed
	}

	entries, err := h.uc.Recent(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "")
}
