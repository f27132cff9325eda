package http

import (
	"net/http"

	"crypto-soothsayer/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupAstrology(base *echo.Group) {
	astroGroup := base.Group("/astrology")
	astroGroup.POST("/chart", h.generateAstroChart)
}

func (h *HttpAPIHandler) generateAstroChart(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.GenerateAstroChartRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	chart, outcome, err := h.service.AstrologyService.GenerateChart(ctx, *req)
	if outcome == dto.OutcomeDegraded {
		return c.JSON(http.StatusInternalServerError, dto.NewDegradedResponse("the stars are clouded, serving backup omens", chart, h.errorDetail(err)))
	}

	return c.JSON(http.StatusOK, dto.NewBaseResponse(http.StatusOK, string(outcome), chart))
}
