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

// StatsHandler holds dependencies for the visit tracking handlers.
type StatsHandler struct {
	uc     usecase.StatsUsecase
	logger *slog.Logger
}

// NewStatsHandler is the constructor for StatsHandler, injected by Fx.
func NewStatsHandler(uc usecase.StatsUsecase, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		uc:     uc,
		logger: logger,
	}
}

// RecordVisit stores one page visit attributed to the caller's address.
func (h *StatsHandler) RecordVisit(c echo.Context) error {
	if err := h.uc.RecordVisit(c.Request().Context(), c.RealIP()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Visit recorded")
}

// VisitStats returns per-day visit counts for the requested window.
func (h *StatsHandler) VisitStats(c echo.Context) error {
	days := 0
	if raw := c.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("invalid days")
		}
		days = parsed
	}

	buckets, err := h.uc.VisitStats(c.Request().Context(), days)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, buckets, "")
}

// Totals returns headline row counts for the dashboard.
func (h *StatsHandler) Totals(c echo.Context) error {
	totals, err := h.uc.Totals(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, totals, "")
}
