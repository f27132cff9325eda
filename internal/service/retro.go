package service

import (
	"context"
	"crypto-soothsayer/config"
	"crypto-soothsayer/internal/dto"
	"crypto-soothsayer/internal/repository"
	"crypto-soothsayer/pkg/cache"
	"crypto-soothsayer/pkg/common"
	"crypto-soothsayer/pkg/logger"
	"fmt"
)

const retroDateLayout = "02-01-2006"

type RetroService interface {
	Generate(ctx context.Context, req dto.GenerateRetroPostRequest) (*dto.RetroPostResult, dto.Outcome, error)
}

type retroService struct {
	cfg    *config.Config
	log    *logger.Logger
	cache  cache.Cache
	market MarketDataSource
	aiRepo repository.AIRepository
}

func NewRetroService(
	cfg *config.Config,
	log *logger.Logger,
	inmemoryCache cache.Cache,
	market MarketDataSource,
	aiRepo repository.AIRepository,
) RetroService {
	return &retroService{
		cfg:    cfg,
		log:    log,
		cache:  inmemoryCache,
		market: market,
		aiRepo: aiRepo,
	}
}

// Generate fabricates a "called it" post dated six months before the asset's
// all-time high. The past does not change, so entries cache per asset.
func (s *retroService) Generate(ctx context.Context, req dto.GenerateRetroPostRequest) (*dto.RetroPostResult, dto.Outcome, error) {
	cacheKey := fmt.Sprintf(common.KEY_RETRO_POST, req.AssetID)
	if cached, found := cache.GetTyped[*dto.RetroPostResult](s.cache, cacheKey); found {
		s.log.DebugContext(ctx, "retro post served from cache", logger.StringField("asset_id", req.AssetID))
		return cached, dto.OutcomeCached, nil
	}

	coin := s.market.Coin(ctx, req.AssetID)
	postDate := coin.ATHDate.AddDate(0, -6, 0).Format(retroDateLayout)

	result, err := s.aiRepo.ComposeRetroPost(ctx, coin, postDate)
	if err != nil {
		s.log.ErrorContext(ctx, "retro post generation failed, serving stub",
			logger.StringField("asset_id", req.AssetID), logger.ErrorField(err))
		stub := fallbackRetroPost(coin.Name, postDate)
		stub.CurrentPrice = coin.CurrentPrice
		stub.PeakPrice = coin.ATHPrice
		return stub, dto.OutcomeDegraded, err
	}

	result.CurrentPrice = coin.CurrentPrice
	result.PeakPrice = coin.ATHPrice

	s.cache.Set(cacheKey, result, 0)

	return result, dto.OutcomeGenerated, nil
}
