package handler

import (
	"mime/multipart"

	domainerrors "gaspass/internal/domain/errors"
	"gaspass/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// openUploads opens every file posted under the given form field, in request
// order. The returned cleanup closes them all and is safe to defer before
// checking the error.
func openUploads(c echo.Context, field string) ([]service.MediaUpload, func(), error) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, func() {}, nil
	}

	headers := form.File[field]
	uploads := make([]service.MediaUpload, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))
	cleanup := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			cleanup()

			return nil, func() {}, domainerrors.ErrValidationFailed.WithDetails("unreadable uploaded file")
		}
		opened = append(opened, file)
		uploads = append(uploads, service.MediaUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        file,
		})
	}

	return uploads, cleanup, nil
}

// openSingleUpload opens at most one file posted under the given form field.
func openSingleUpload(c echo.Context, field string) (*service.MediaUpload, func(), error) {
	uploads, cleanup, err := openUploads(c, field)
	if err != nil {
		return nil, cleanup, err
	}
	if len(uploads) == 0 {
		return nil, cleanup, nil
	}

	return &uploads[0], cleanup, nil
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid id")
	}

	return id, nil
}
