package service

import (
	"context"
	"crypto-soothsayer/config"
	"crypto-soothsayer/internal/dto"
	"crypto-soothsayer/internal/repository"
	"crypto-soothsayer/pkg/cache"
	"crypto-soothsayer/pkg/common"
	"crypto-soothsayer/pkg/logger"
	"crypto-soothsayer/pkg/utils"
	"fmt"

	"golang.org/x/sync/errgroup"
)

var astroEvents = []string{
	"Planetary alignment",
	"Solar eclipse",
	"Lunar paradox",
	"Mercury retrograde",
	"Jovian impulse",
	"Venusian harmonization",
	"Saturnian cycle",
	"Martian crossing",
	"Neptunian wave",
	"Plutonic transformation",
}

type AstrologyService interface {
	GenerateChart(ctx context.Context, req dto.GenerateAstroChartRequest) (*dto.AstroChartResult, dto.Outcome, error)
}

type astrologyService struct {
	cfg    *config.Config
	log    *logger.Logger
	cache  cache.Cache
	market MarketDataSource
	aiRepo repository.AIRepository
}

func NewAstrologyService(
	cfg *config.Config,
	log *logger.Logger,
	inmemoryCache cache.Cache,
	market MarketDataSource,
	aiRepo repository.AIRepository,
) AstrologyService {
	return &astrologyService{
		cfg:    cfg,
		log:    log,
		cache:  inmemoryCache,
		market: market,
		aiRepo: aiRepo,
	}
}

// GenerateChart decorates a real or synthetic price series with
// pseudo-astrological noise and LLM-invented "factors". The series and the
// factors are fetched concurrently; only a factor failure degrades the
// result, since the series always has a synthetic substitute.
func (s *astrologyService) GenerateChart(ctx context.Context, req dto.GenerateAstroChartRequest) (*dto.AstroChartResult, dto.Outcome, error) {
	cacheKey := fmt.Sprintf(common.KEY_ASTRO_CHART, req.AssetID, req.Timeframe)
	if cached, found := cache.GetTyped[*dto.AstroChartResult](s.cache, cacheKey); found {
		s.log.DebugContext(ctx, "astro chart served from cache",
			logger.StringField("asset_id", req.AssetID), logger.StringField("timeframe", req.Timeframe))
		return cached, dto.OutcomeCached, nil
	}

	days := common.TimeframeDays(req.Timeframe)

	var (
		series     []dto.PricePoint
		factors    []dto.AstroFactor
		factorsErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		series = s.market.DailySeries(gctx, req.AssetID, days)
		return nil
	})
	g.Go(func() error {
		factors, factorsErr = s.aiRepo.AstrologicalFactors(gctx, req.AssetID)
		return nil
	})
	_ = g.Wait()

	result := &dto.AstroChartResult{
		ChartData: decorateSeries(series),
		Factors:   factors,
	}

	if factorsErr != nil {
		s.log.ErrorContext(ctx, "astrological factor generation failed, serving stub",
			logger.StringField("asset_id", req.AssetID), logger.ErrorField(factorsErr))
		result.Factors = fallbackAstroFactors()
		return result, dto.OutcomeDegraded, factorsErr
	}

	s.cache.Set(cacheKey, result, 0)

	return result, dto.OutcomeGenerated, nil
}

func decorateSeries(series []dto.PricePoint) []dto.AstroPoint {
	points := make([]dto.AstroPoint, 0, len(series))
	for _, p := range series {
		point := dto.AstroPoint{
			Date:          p.Date,
			Price:         p.Price,
			MoonInfluence: utils.RandomBetween(40, 90),
			MarsEnergy:    utils.RandomBetween(30, 90),
		}
		// An "astrological event" strikes roughly one day in ten.
		if utils.RandomBetween(0, 1) > 0.9 {
			point.AstroEvent = utils.RandomChoice(astroEvents)
		}
		points = append(points, point)
	}
	return points
}
