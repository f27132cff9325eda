package http

import (
	"net/http"

	"crypto-soothsayer/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupRetroGen(base *echo.Group) {
	retroGroup := base.Group("/retrogen")
	retroGroup.POST("/generate", h.generateRetroPost)
}

func (h *HttpAPIHandler) generateRetroPost(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.GenerateRetroPostRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	post, outcome, err := h.service.RetroService.Generate(ctx, *req)
	if outcome == dto.OutcomeDegraded {
		return c.JSON(http.StatusInternalServerError, dto.NewDegradedResponse("hindsight engine offline, serving a backup flex", post, h.errorDetail(err)))
	}

	return c.JSON(http.StatusOK, dto.NewBaseResponse(http.StatusOK, string(outcome), post))
}
