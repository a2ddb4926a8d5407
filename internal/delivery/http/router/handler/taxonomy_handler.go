package handler

import (
	"log/slog"
	"net/http"

	"gaspass/internal/delivery/http/response"
	domainerrors "gaspass/internal/domain/errors"
	"gaspass/internal/domain/repository"
	"gaspass/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TaxonomyHandler holds dependencies for the tag and category handlers.
type TaxonomyHandler struct {
	uc     usecase.TaxonomyUsecase
	logger *slog.Logger
}

// NewTaxonomyHandler is the constructor for TaxonomyHandler, injected by Fx.
func NewTaxonomyHandler(uc usecase.TaxonomyUsecase, logger *slog.Logger) *TaxonomyHandler {
	return &TaxonomyHandler{
		uc:     uc,
		logger: logger,
	}
}

type upsertNameRequest struct {
	Name string `json:"name" validate:"required"`
}

// ListTags returns all tags.
func (h *TaxonomyHandler) ListTags(c echo.Context) error {
	tags, err := h.uc.ListTags(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tags, "")
}

// UpsertTag creates a tag or returns the existing one with the same name.
func (h *TaxonomyHandler) UpsertTag(c echo.Context) error {
	var req upsertNameRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	tag, err := h.uc.UpsertTag(c.Request().Context(), usecase.UpsertTagInput{Name: req.Name})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, tag, "Tag stored")
}

// DeleteTag removes one tag and its post links.
func (h *TaxonomyHandler) DeleteTag(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteTag(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Tag deleted")
}

// ListCategories returns all categories of the kind named in the path.
func (h *TaxonomyHandler) ListCategories(c echo.Context) error {
	kind, err := pathKind(c)
	if err != nil {
		return err
	}

	categories, err := h.uc.ListCategories(c.Request().Context(), kind)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// UpsertCategory creates a category within a kind or returns the existing
// one with the same name.
func (h *TaxonomyHandler) UpsertCategory(c echo.Context) error {
	kind, err := pathKind(c)
	if err != nil {
		return err
	}

	var req upsertNameRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	category, err := h.uc.UpsertCategory(c.Request().Context(), usecase.UpsertCategoryInput{
		Kind: kind,
		Name: req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category stored")
}

// DeleteCategory removes one category of the kind named in the path.
func (h *TaxonomyHandler) DeleteCategory(c echo.Context) error {
	kind, err := pathKind(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteCategory(c.Request().Context(), kind, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted")
}

func pathKind(c echo.Context) (repository.CategoryKind, error) {
	kind := repository.CategoryKind(c.Param("kind"))
	if !kind.IsValid() {
		return "", domainerrors.ErrValidationFailed.WithDetails("unknown category kind")
	}

	return kind, nil
}
