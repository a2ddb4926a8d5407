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

// ReviewHandler holds dependencies for the customer review handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns all reviews.
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "")
}

// Create stores a new review from a multipart form. The avatar image is
// optional and arrives under the avatar field.
func (h *ReviewHandler) Create(c echo.Context) error {
	input, cleanup, err := h.parseWriteInput(c)
	defer cleanup()
	if err != nil {
		return err
	}

	review, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review created")
}

// Update rewrites one review. The stored avatar is kept unless a new file
// is part of the form.
func (h *ReviewHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	input, cleanup, err := h.parseWriteInput(c)
	defer cleanup()
	if err != nil {
		return err
	}

	review, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "Review updated")
}

// Delete removes one review.
func (h *ReviewHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review deleted")
}

func (h *ReviewHandler) parseWriteInput(c echo.Context) (usecase.ReviewWriteInput, func(), error) {
	input := usecase.ReviewWriteInput{
		Author:     c.FormValue("author"),
		Text:       c.FormValue("text"),
		ReviewDate: c.FormValue("date"),
	}

	if raw := c.FormValue("rating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return input, func() {}, domainerrors.ErrValidationFailed.WithDetails("invalid rating")
		}
		input.Rating = rating
	}

	upload, cleanup, err := openSingleUpload(c, "avatar")
	if err != nil {
		return input, cleanup, err
	}
	input.AvatarFile = upload

	return input, cleanup, nil
}
