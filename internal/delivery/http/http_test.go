package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"crypto-soothsayer/config"
	"crypto-soothsayer/internal/dto"
	"crypto-soothsayer/internal/model"
	"crypto-soothsayer/internal/service"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var errGenerationDown = errors.New("generation down")

type fakePredictionService struct {
	degraded      bool
	generateCalls int
}

func (f *fakePredictionService) Generate(_ context.Context, req dto.GeneratePredictionRequest) (*model.Prediction, dto.Outcome, error) {
	f.generateCalls++
	prediction := &model.Prediction{
		AssetID:    "bitcoin",
		AssetName:  "Bitcoin",
		Prediction: "up, probably",
		Analysis:   "trust me",
	}
	if f.degraded {
		return prediction, dto.OutcomeDegraded, errGenerationDown
	}
	return prediction, dto.OutcomeGenerated, nil
}

func (f *fakePredictionService) GetRecent(_ context.Context) ([]model.Prediction, error) {
	return []model.Prediction{{ID: 1, AssetID: "bitcoin"}}, nil
}

func (f *fakePredictionService) GetByID(_ context.Context, id uint) (*model.Prediction, error) {
	if id == 1 {
		return &model.Prediction{ID: 1, AssetID: "bitcoin"}, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePredictionService) GetCryptoData(_ context.Context, _, _ int) ([]dto.AssetQuote, error) {
	return []dto.AssetQuote{{ID: "bitcoin", Name: "Bitcoin", Symbol: "btc", CurrentPrice: 50000}}, nil
}

type fakePortfolioService struct {
	degraded     bool
	analyzeCalls int
}

func (f *fakePortfolioService) Analyze(_ context.Context, req dto.AnalyzePortfolioRequest) (*dto.PortfolioRoastResult, dto.Outcome, error) {
	f.analyzeCalls++
	roast := &dto.PortfolioRoastResult{OverallRoast: "ouch", AlternateUniverse: "bread"}
	if f.degraded {
		return roast, dto.OutcomeDegraded, errGenerationDown
	}
	return roast, dto.OutcomeGenerated, nil
}

func (f *fakePortfolioService) GetHistory(_ context.Context) ([]model.PortfolioRoast, error) {
	return nil, nil
}

type fakeRetroService struct{}

func (f *fakeRetroService) Generate(_ context.Context, _ dto.GenerateRetroPostRequest) (*dto.RetroPostResult, dto.Outcome, error) {
	return &dto.RetroPostResult{Title: "called it"}, dto.OutcomeGenerated, nil
}

type fakeAstrologyService struct {
	calls int
}

func (f *fakeAstrologyService) GenerateChart(_ context.Context, _ dto.GenerateAstroChartRequest) (*dto.AstroChartResult, dto.Outcome, error) {
	f.calls++
	return &dto.AstroChartResult{}, dto.OutcomeGenerated, nil
}

type fakeTrustIndexService struct {
	failing bool
}

func (f *fakeTrustIndexService) Current(_ context.Context) (*dto.TrustIndexResult, error) {
	if f.failing {
		return nil, errGenerationDown
	}
	return &dto.TrustIndexResult{IndexValue: 50, MarketSentiment: "positive", Timestamp: time.Now()}, nil
}

func (f *fakeTrustIndexService) GetHistory(_ context.Context, days int) ([]dto.TrustIndexHistoryEntry, error) {
	if days <= 0 {
		days = 30
	}
	return make([]dto.TrustIndexHistoryEntry, days), nil
}

func (f *fakeTrustIndexService) Snapshot(_ context.Context) error { return nil }

type testHandler struct {
	handler    *HttpAPIHandler
	echo       *echo.Echo
	prediction *fakePredictionService
	portfolio  *fakePortfolioService
	astrology  *fakeAstrologyService
	trustIndex *fakeTrustIndexService
}

func newTestHandler() *testHandler {
	e := echo.New()
	prediction := &fakePredictionService{}
	portfolio := &fakePortfolioService{}
	astrology := &fakeAstrologyService{}
	trustIndex := &fakeTrustIndexService{}

	services := &service.Service{
		PredictionService: prediction,
		PortfolioService:  portfolio,
		RetroService:      &fakeRetroService{},
		AstrologyService:  astrology,
		TrustIndexService: trustIndex,
	}

	h := NewHttpAPIHandler(context.Background(), &config.Config{}, e, goValidator.New(), services)
	h.SetupRoutes()

	return &testHandler{
		handler:    h,
		echo:       e,
		prediction: prediction,
		portfolio:  portfolio,
		astrology:  astrology,
		trustIndex: trustIndex,
	}
}

func (th *testHandler) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	th.echo.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	th := newTestHandler()

	rec := th.request(http.MethodGet, "/api/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestGeneratePrediction(t *testing.T) {
	t.Run("success returns the prediction", func(t *testing.T) {
		th := newTestHandler()

		rec := th.request(http.MethodPost, "/api/predictions/generate", `{}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "bitcoin")
	})

	t.Run("invalid asset is rejected before generation", func(t *testing.T) {
		th := newTestHandler()

		rec := th.request(http.MethodPost, "/api/predictions/generate", `{"asset": {"id": ""}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, th.prediction.generateCalls)
	})

	t.Run("malformed body is rejected before generation", func(t *testing.T) {
		th := newTestHandler()

		rec := th.request(http.MethodPost, "/api/predictions/generate", `{not json`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, th.prediction.generateCalls)
	})

	t.Run("degraded outcome returns 500 with a renderable payload", func(t *testing.T) {
		th := newTestHandler()
		th.prediction.degraded = true

		rec := th.request(http.MethodPost, "/api/predictions/generate", `{}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "up, probably")
		assert.Contains(t, rec.Body.String(), errGenerationDown.Error(), "detail is visible outside production")
	})
}

func TestGetPredictionByID(t *testing.T) {
	th := newTestHandler()

	t.Run("found", func(t *testing.T) {
		rec := th.request(http.MethodGet, "/api/predictions/1", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		rec := th.request(http.MethodGet, "/api/predictions/999", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric id returns 400", func(t *testing.T) {
		rec := th.request(http.MethodGet, "/api/predictions/abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAnalyzePortfolio(t *testing.T) {
	t.Run("valid portfolio is analyzed", func(t *testing.T) {
		th := newTestHandler()

		rec := th.request(http.MethodPost, "/api/portfolio/analyze",
			`{"portfolio": [{"token": "bitcoin", "amount": 1, "buy_price": 60000}]}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "ouch")
	})

	t.Run("empty portfolio is rejected before analysis", func(t *testing.T) {
		th := newTestHandler()

		rec := th.request(http.MethodPost, "/api/portfolio/analyze", `{"portfolio": []}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, th.portfolio.analyzeCalls)
	})

	t.Run("item without a token is rejected", func(t *testing.T) {
		th := newTestHandler()

		rec := th.request(http.MethodPost, "/api/portfolio/analyze",
			`{"portfolio": [{"amount": 1, "buy_price": 60000}]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, th.portfolio.analyzeCalls)
	})

	t.Run("degraded outcome returns 500 with the stub roast", func(t *testing.T) {
		th := newTestHandler()
		th.portfolio.degraded = true

		rec := th.request(http.MethodPost, "/api/portfolio/analyze",
			`{"portfolio": [{"token": "bitcoin", "amount": 1, "buy_price": 60000}]}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "ouch")
	})
}

func TestGenerateAstroChart(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		th := newTestHandler()

		rec := th.request(http.MethodPost, "/api/astrology/chart",
			`{"asset_id": "bitcoin", "timeframe": "week"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown timeframe is rejected", func(t *testing.T) {
		th := newTestHandler()

		rec := th.request(http.MethodPost, "/api/astrology/chart",
			`{"asset_id": "bitcoin", "timeframe": "decade"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, th.astrology.calls)
	})

	t.Run("missing asset id is rejected", func(t *testing.T) {
		th := newTestHandler()

		rec := th.request(http.MethodPost, "/api/astrology/chart", `{"timeframe": "week"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, th.astrology.calls)
	})
}

func TestTrustIndex(t *testing.T) {
	t.Run("healthy index", func(t *testing.T) {
		th := newTestHandler()

		rec := th.request(http.MethodGet, "/api/trust-index", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"index_value":50`)
	})

	t.Run("failing index still answers with the backup payload", func(t *testing.T) {
		th := newTestHandler()
		th.trustIndex.failing = true

		rec := th.request(http.MethodGet, "/api/trust-index", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "backup")
	})

	t.Run("history honors the days parameter", func(t *testing.T) {
		th := newTestHandler()

		rec := th.request(http.MethodGet, "/api/trust-index/history?days=7", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRetroGen(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		th := newTestHandler()

		rec := th.request(http.MethodPost, "/api/retrogen/generate", `{"asset_id": "bitcoin"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "called it")
	})

	t.Run("missing asset id is rejected", func(t *testing.T) {
		th := newTestHandler()

		rec := th.request(http.MethodPost, "/api/retrogen/generate", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
