package handler

import (
	"net/http"

	"checkpoint/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck responds to liveness probes.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}
