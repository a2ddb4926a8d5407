package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"gaspass/internal/delivery/http/response"
	"gaspass/internal/domain/entity"
	domainerrors "gaspass/internal/domain/errors"
	"gaspass/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for the catalog handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the whole catalog.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// Get returns one product.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	product, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// Create stores a new product from a multipart form. New files arrive under
// the mediaFiles field; existingMedia carries the JSON list of kept entries.
func (h *ProductHandler) Create(c echo.Context) error {
	input, cleanup, err := h.parseWriteInput(c)
	defer cleanup()
	if err != nil {
		return err
	}

	product, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created")
}

// Update rewrites one product from a multipart form.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	input, cleanup, err := h.parseWriteInput(c)
	defer cleanup()
	if err != nil {
		return err
	}

	product, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated")
}

// Delete removes one product.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted")
}

func (h *ProductHandler) parseWriteInput(c echo.Context) (usecase.ProductWriteInput, func(), error) {
	input := usecase.ProductWriteInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
	}

	var parseErr error
	input.Price, parseErr = parseFloatField(c.FormValue("price"))
	if parseErr != nil {
		return input, func() {}, domainerrors.ErrValidationFailed.WithDetails("invalid price")
	}
	input.Stock, parseErr = parseIntField(c.FormValue("stock"))
	if parseErr != nil {
		return input, func() {}, domainerrors.ErrValidationFailed.WithDetails("invalid stock")
	}
	input.Rating, parseErr = parseFloatField(c.FormValue("rating"))
	if parseErr != nil {
		return input, func() {}, domainerrors.ErrValidationFailed.WithDetails("invalid rating")
	}
	input.Featured = c.FormValue("featured") == "true"

	if raw := c.FormValue("category_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return input, func() {}, domainerrors.ErrValidationFailed.WithDetails("invalid category_id")
		}
		input.CategoryID = &categoryID
	}

	if raw := c.FormValue("existingMedia"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.ExistingMedia); err != nil {
			return input, func() {}, domainerrors.ErrValidationFailed.WithDetails("existingMedia must be a JSON array")
		}
	}
	if input.ExistingMedia == nil {
		input.ExistingMedia = []entity.Media{}
	}

	uploads, cleanup, err := openUploads(c, "mediaFiles")
	if err != nil {
		return input, cleanup, err
	}
	input.NewFiles = uploads

	return input, cleanup, nil
}

func parseFloatField(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}

	return strconv.ParseFloat(raw, 64)
}

func parseIntField(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}

	return strconv.Atoi(raw)
}
