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
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

type PortfolioService interface {
	Analyze(ctx context.Context, req dto.AnalyzePortfolioRequest) (*dto.PortfolioRoastResult, dto.Outcome, error)
	GetHistory(ctx context.Context) ([]model.PortfolioRoast, error)
}

type portfolioService struct {
	cfg           *config.Config
	log           *logger.Logger
	cache         cache.Cache
	aiRepo        repository.AIRepository
	portfolioRepo repository.PortfolioRepository
}

func NewPortfolioService(
	cfg *config.Config,
	log *logger.Logger,
	inmemoryCache cache.Cache,
	aiRepo repository.AIRepository,
	portfolioRepo repository.PortfolioRepository,
) PortfolioService {
	return &portfolioService{
		cfg:           cfg,
		log:           log,
		cache:         inmemoryCache,
		aiRepo:        aiRepo,
		portfolioRepo: portfolioRepo,
	}
}

// Analyze roasts a portfolio. Identical portfolios hit the cache, bad days at
// the generation API degrade to the stub roast.
func (s *portfolioService) Analyze(ctx context.Context, req dto.AnalyzePortfolioRequest) (*dto.PortfolioRoastResult, dto.Outcome, error) {
	if len(req.Portfolio) == 0 {
		return nil, "", fmt.Errorf("portfolio must not be empty")
	}

	cacheKey, encoded, err := s.cacheKey(req.Portfolio)
	if err != nil {
		return nil, "", fmt.Errorf("failed to derive portfolio cache key: %w", err)
	}

	if cached, found := cache.GetTyped[*dto.PortfolioRoastResult](s.cache, cacheKey); found {
		s.log.DebugContext(ctx, "portfolio roast served from cache")
		return cached, dto.OutcomeCached, nil
	}

	result, err := s.aiRepo.RoastPortfolio(ctx, req.Portfolio)
	if err != nil {
		s.log.ErrorContext(ctx, "portfolio roast generation failed, serving stub",
			logger.IntField("tokens", len(req.Portfolio)), logger.ErrorField(err))
		return fallbackPortfolioRoast(req.Portfolio), dto.OutcomeDegraded, err
	}

	s.persist(ctx, encoded, result)
	s.cache.Set(cacheKey, result, 0)

	return result, dto.OutcomeGenerated, nil
}

func (s *portfolioService) cacheKey(items []dto.PortfolioItem) (string, []byte, error) {
	encoded, err := json.Marshal(items)
	if err != nil {
		return "", nil, err
	}
	sum := sha256.Sum256(encoded)
	return fmt.Sprintf(common.KEY_PORTFOLIO_ROAST, hex.EncodeToString(sum[:])), encoded, nil
}

func (s *portfolioService) persist(ctx context.Context, portfolio []byte, result *dto.PortfolioRoastResult) {
	tokenRoasts, err := json.Marshal(result.TokenRoasts)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to marshal token roasts", logger.ErrorField(err))
		return
	}

	roast := &model.PortfolioRoast{
		Portfolio:         portfolio,
		OverallRoast:      result.OverallRoast,
		TokenRoasts:       tokenRoasts,
		AlternateUniverse: result.AlternateUniverse,
	}
	if err := s.portfolioRepo.Create(ctx, roast); err != nil {
		s.log.ErrorContext(ctx, "failed to persist portfolio roast", logger.ErrorField(err))
	}
}

func (s *portfolioService) GetHistory(ctx context.Context) ([]model.PortfolioRoast, error) {
	return s.portfolioRepo.GetRecent(ctx, defaultHistoryLimit)
}
