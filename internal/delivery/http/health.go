package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupHealth(base *echo.Group) {
	base.GET("/health", h.health)
}

func (h *HttpAPIHandler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"service":    h.cfg.App.Name,
		"confidence": "110%, as always",
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}
