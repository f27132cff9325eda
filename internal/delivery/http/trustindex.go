package http

import (
	"net/http"

	"crypto-soothsayer/internal/dto"
	"crypto-soothsayer/internal/service"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupTrustIndex(base *echo.Group) {
	trustGroup := base.Group("/trust-index")
	trustGroup.GET("", h.currentTrustIndex)
	trustGroup.GET("/history", h.trustIndexHistory)
}

func (h *HttpAPIHandler) currentTrustIndex(c echo.Context) error {
	ctx := c.Request().Context()

	result, err := h.service.TrustIndexService.Current(ctx)
	if err != nil {
		// The index must never be unavailable, that would imply honesty.
		return c.JSON(http.StatusOK, dto.NewBaseResponse(http.StatusOK, "success", service.BackupTrustIndex()))
	}

	return c.JSON(http.StatusOK, dto.NewBaseResponse(http.StatusOK, "success", result))
}

func (h *HttpAPIHandler) trustIndexHistory(c echo.Context) error {
	ctx := c.Request().Context()

	query := new(dto.TrustIndexHistoryQuery)
	if err := c.Bind(query); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid query parameters"))
	}

	if err := h.validator.Struct(query); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	history, err := h.service.TrustIndexService.GetHistory(ctx, query.Days)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to load trust index history", nil))
	}

	return c.JSON(http.StatusOK, dto.NewBaseResponse(http.StatusOK, "success", history))
}
