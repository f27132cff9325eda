package http

import (
	"context"

	"crypto-soothsayer/config"
	"crypto-soothsayer/internal/service"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type HttpAPIHandler struct {
	cfg       *config.Config
	echo      *echo.Echo
	validator *goValidator.Validate
	service   *service.Service
}

func NewHttpAPIHandler(ctx context.Context, cfg *config.Config, echo *echo.Echo, validator *goValidator.Validate, service *service.Service) *HttpAPIHandler {
	return &HttpAPIHandler{
		cfg:       cfg,
		echo:      echo,
		validator: validator,
		service:   service,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	base := h.echo.Group("/api")
	h.SetupHealth(base)
	h.SetupPredictions(base)
	h.SetupPortfolio(base)
	h.SetupRetroGen(base)
	h.SetupAstrology(base)
	h.SetupTrustIndex(base)
}

// errorDetail hides upstream error internals from production responses.
func (h *HttpAPIHandler) errorDetail(err error) string {
	if err == nil || h.cfg.App.IsProduction() {
		return ""
	}
	return err.Error()
}
