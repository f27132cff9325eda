package http

import (
	"net/http"

	"crypto-soothsayer/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupPortfolio(base *echo.Group) {
	portfolioGroup := base.Group("/portfolio")
	portfolioGroup.POST("/analyze", h.analyzePortfolio)
	portfolioGroup.GET("/history", h.portfolioHistory)
}

func (h *HttpAPIHandler) analyzePortfolio(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.AnalyzePortfolioRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	roast, outcome, err := h.service.PortfolioService.Analyze(ctx, *req)
	if outcome == dto.OutcomeDegraded {
		return c.JSON(http.StatusInternalServerError, dto.NewDegradedResponse("the roastmaster is out, serving a backup roast", roast, h.errorDetail(err)))
	}
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	return c.JSON(http.StatusOK, dto.NewBaseResponse(http.StatusOK, string(outcome), roast))
}

func (h *HttpAPIHandler) portfolioHistory(c echo.Context) error {
	ctx := c.Request().Context()

	roasts, err := h.service.PortfolioService.GetHistory(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to load roast history", nil))
	}

	return c.JSON(http.StatusOK, dto.NewBaseResponse(http.StatusOK, "success", roasts))
}
