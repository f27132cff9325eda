package http

import (
	"errors"
	"net/http"
	"strconv"

	"crypto-soothsayer/internal/dto"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func (h *HttpAPIHandler) SetupPredictions(base *echo.Group) {
	predictionGroup := base.Group("/predictions")
	predictionGroup.GET("", h.listPredictions)
	predictionGroup.POST("/generate", h.generatePrediction)
	predictionGroup.GET("/crypto-data", h.getCryptoData)
	predictionGroup.GET("/:id", h.getPredictionByID)
}

func (h *HttpAPIHandler) listPredictions(c echo.Context) error {
	ctx := c.Request().Context()

	predictions, err := h.service.PredictionService.GetRecent(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to load predictions", nil))
	}

	return c.JSON(http.StatusOK, dto.NewBaseResponse(http.StatusOK, "success", predictions))
}

func (h *HttpAPIHandler) generatePrediction(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.GeneratePredictionRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}

	if req.Asset != nil {
		if err := h.validator.Struct(req.Asset); err != nil {
			return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
		}
	}

	prediction, outcome, err := h.service.PredictionService.Generate(ctx, *req)
	if outcome == dto.OutcomeDegraded {
		return c.JSON(http.StatusInternalServerError, dto.NewDegradedResponse("the oracle is recalibrating, serving a backup prophecy", prediction, h.errorDetail(err)))
	}

	return c.JSON(http.StatusOK, dto.NewBaseResponse(http.StatusOK, string(outcome), prediction))
}

func (h *HttpAPIHandler) getCryptoData(c echo.Context) error {
	ctx := c.Request().Context()

	query := new(dto.CryptoDataQuery)
	if err := c.Bind(query); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid query parameters"))
	}

	if err := h.validator.Struct(query); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	assets, err := h.service.PredictionService.GetCryptoData(ctx, query.Start, query.Limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to load market data", nil))
	}

	return c.JSON(http.StatusOK, dto.NewBaseResponse(http.StatusOK, "success", assets))
}

func (h *HttpAPIHandler) getPredictionByID(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("prediction id must be a number"))
	}

	prediction, err := h.service.PredictionService.GetByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, dto.NewNotFoundResponse("prediction not found"))
		}
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to load prediction", nil))
	}

	return c.JSON(http.StatusOK, dto.NewBaseResponse(http.StatusOK, "success", prediction))
}
