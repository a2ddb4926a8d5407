package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"gaspass/internal/delivery/http/response"
	domainerrors "gaspass/internal/domain/errors"
	"gaspass/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BlogHandler holds dependencies for the blog post handlers.
type BlogHandler struct {
	uc     usecase.BlogUsecase
	logger *slog.Logger
}

// NewBlogHandler is the constructor for BlogHandler, injected by Fx.
func NewBlogHandler(uc usecase.BlogUsecase, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns all blog posts with their categories and tags.
func (h *BlogHandler) List(c echo.Context) error {
	posts, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, posts, "")
}

// Get returns one blog post.
func (h *BlogHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	post, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post, "")
}

// Create stores a new blog post from a multipart form. The cover image
// arrives under the image field; tags is a JSON array of names.
func (h *BlogHandler) Create(c echo.Context) error {
	input, cleanup, err := h.parseWriteInput(c)
	defer cleanup()
	if err != nil {
		return err
	}

	post, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, post, "Blog post created")
}

// Update rewrites one blog post from a multipart form.
func (h *BlogHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	input, cleanup, err := h.parseWriteInput(c)
	defer cleanup()
	if err != nil {
		return err
	}

	post, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post, "Blog post updated")
}

// Delete removes one blog post along with its tag links.
func (h *BlogHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Blog post deleted")
}

func (h *BlogHandler) parseWriteInput(c echo.Context) (usecase.BlogWriteInput, func(), error) {
	input := usecase.BlogWriteInput{
		Title:        c.FormValue("title"),
		Excerpt:      c.FormValue("excerpt"),
		Content:      c.FormValue("content"),
		Author:       c.FormValue("author"),
		ImageCaption: c.FormValue("image_caption"),
	}

	var parseErr error
	input.ReadingTime, parseErr = parseIntField(c.FormValue("reading_time"))
	if parseErr != nil {
		return input, func() {}, domainerrors.ErrValidationFailed.WithDetails("invalid reading_time")
	}

	if raw := c.FormValue("category_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return input, func() {}, domainerrors.ErrValidationFailed.WithDetails("invalid category_id")
		}
		input.CategoryID = &categoryID
	}

	if raw := c.FormValue("tags"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.Tags); err != nil {
			return input, func() {}, domainerrors.ErrValidationFailed.WithDetails("tags must be a JSON array")
		}
	}

	upload, cleanup, err := openSingleUpload(c, "image")
	if err != nil {
		return input, cleanup, err
	}
	input.ImageFile = upload

	return input, cleanup, nil
}
