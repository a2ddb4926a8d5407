package handler

import (
	"net/http"

	"gaspass/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// Ping is a simple handler to check if the service is up.
func Ping(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
