package service

import (
	"context"
	"crypto-soothsayer/config"
	"crypto-soothsayer/internal/dto"
	"crypto-soothsayer/internal/model"
	"crypto-soothsayer/internal/repository"
	"crypto-soothsayer/pkg/cache"
	"crypto-soothsayer/pkg/common"
	"crypto-soothsayer/pkg/logger"
	"crypto-soothsayer/pkg/utils"
	"fmt"
	"math/rand"
	"time"
)

const (
	defaultHistoryLimit = 10
	marketsCacheTTL     = 5 * time.Minute
	// Date-scoped entries live until the key itself rolls over at midnight.
	dailyEntryTTL = 24 * time.Hour
)

type PredictionService interface {
	Generate(ctx context.Context, req dto.GeneratePredictionRequest) (*model.Prediction, dto.Outcome, error)
	GetRecent(ctx context.Context) ([]model.Prediction, error)
	GetByID(ctx context.Context, id uint) (*model.Prediction, error)
	GetCryptoData(ctx context.Context, start, limit int) ([]dto.AssetQuote, error)
}

type predictionService struct {
	cfg            *config.Config
	log            *logger.Logger
	cache          cache.Cache
	market         MarketDataSource
	aiRepo         repository.AIRepository
	predictionRepo repository.PredictionRepository
}

func NewPredictionService(
	cfg *config.Config,
	log *logger.Logger,
	inmemoryCache cache.Cache,
	market MarketDataSource,
	aiRepo repository.AIRepository,
	predictionRepo repository.PredictionRepository,
) PredictionService {
	return &predictionService{
		cfg:            cfg,
		log:            log,
		cache:          inmemoryCache,
		market:         market,
		aiRepo:         aiRepo,
		predictionRepo: predictionRepo,
	}
}

// Generate runs the full pipeline for one prediction: pick an asset, check
// the date-scoped cache, call the generation API, persist on success, and
// degrade to the stub when the upstream misbehaves.
func (s *predictionService) Generate(ctx context.Context, req dto.GeneratePredictionRequest) (*model.Prediction, dto.Outcome, error) {
	asset := s.resolveAsset(ctx, req)

	cacheKey := fmt.Sprintf(common.KEY_PREDICTION_DAILY, asset.ID, utils.DateKey(time.Now()))
	if cached, found := cache.GetTyped[*model.Prediction](s.cache, cacheKey); found {
		s.log.DebugContext(ctx, "prediction served from cache", logger.StringField("asset_id", asset.ID))
		return cached, dto.OutcomeCached, nil
	}

	result, err := s.aiRepo.PredictAsset(ctx, asset)
	if err != nil {
		s.log.ErrorContext(ctx, "prediction generation failed, serving stub",
			logger.StringField("asset_id", asset.ID), logger.ErrorField(err))
		return s.buildPrediction(asset, fallbackPrediction(asset)), dto.OutcomeDegraded, err
	}

	prediction := s.buildPrediction(asset, result)

	if err := s.predictionRepo.Create(ctx, prediction); err != nil {
		// The result is already computed, a failed history write must not
		// fail the request.
		s.log.ErrorContext(ctx, "failed to persist prediction",
			logger.StringField("asset_id", asset.ID), logger.ErrorField(err))
	}

	s.cache.Set(cacheKey, prediction, dailyEntryTTL)

	return prediction, dto.OutcomeGenerated, nil
}

func (s *predictionService) resolveAsset(ctx context.Context, req dto.GeneratePredictionRequest) dto.AssetQuote {
	if req.Asset != nil {
		return *req.Asset
	}

	quotes := s.listMarkets(ctx)
	limit := len(quotes)
	if limit > 20 {
		limit = 20
	}
	return quotes[rand.Intn(limit)]
}

func (s *predictionService) buildPrediction(asset dto.AssetQuote, result *dto.PredictionResult) *model.Prediction {
	return &model.Prediction{
		AssetID:     asset.ID,
		AssetName:   asset.Name,
		AssetSymbol: asset.Symbol,
		AssetPrice:  asset.CurrentPrice,
		Prediction:  result.Text,
		Confidence:  result.Confidence,
		Analysis:    result.Analysis,
	}
}

func (s *predictionService) GetRecent(ctx context.Context) ([]model.Prediction, error) {
	return s.predictionRepo.GetRecent(ctx, defaultHistoryLimit)
}

func (s *predictionService) GetByID(ctx context.Context, id uint) (*model.Prediction, error) {
	return s.predictionRepo.GetByID(ctx, id)
}

func (s *predictionService) GetCryptoData(ctx context.Context, start, limit int) ([]dto.AssetQuote, error) {
	if limit <= 0 {
		limit = 10
	}

	quotes := s.listMarkets(ctx)
	if start >= len(quotes) {
		return []dto.AssetQuote{}, nil
	}

	end := start + limit
	if end > len(quotes) {
		end = len(quotes)
	}
	return quotes[start:end], nil
}

func (s *predictionService) listMarkets(ctx context.Context) []dto.AssetQuote {
	if cached, found := cache.GetTyped[[]dto.AssetQuote](s.cache, common.KEY_CRYPTO_MARKETS); found {
		return cached
	}

	quotes := s.market.Markets(ctx, s.cfg.CoinGecko.MarketsPerPage)
	s.cache.Set(common.KEY_CRYPTO_MARKETS, quotes, marketsCacheTTL)
	return quotes
}
