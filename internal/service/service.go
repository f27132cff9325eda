package service

import (
	"crypto-soothsayer/config"
	"crypto-soothsayer/internal/repository"
	"crypto-soothsayer/pkg/cache"
	"crypto-soothsayer/pkg/logger"
)

type Service struct {
	PredictionService PredictionService
	PortfolioService  PortfolioService
	RetroService      RetroService
	AstrologyService  AstrologyService
	TrustIndexService TrustIndexService
	SnapshotScheduler *SnapshotScheduler
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	inmemoryCache cache.Cache,
) *Service {
	market := NewMarketDataSource(cfg, log, repo.CoinGeckoRepo)

	trustIndexService := NewTrustIndexService(cfg, log, repo.FearGreedRepo, repo.CoinGeckoRepo, repo.TrustIndexRepo)

	return &Service{
		PredictionService: NewPredictionService(cfg, log, inmemoryCache, market, repo.GeminiAIRepo, repo.PredictionRepo),
		PortfolioService:  NewPortfolioService(cfg, log, inmemoryCache, repo.GeminiAIRepo, repo.PortfolioRepo),
		RetroService:      NewRetroService(cfg, log, inmemoryCache, market, repo.GeminiAIRepo),
		AstrologyService:  NewAstrologyService(cfg, log, inmemoryCache, market, repo.GeminiAIRepo),
		TrustIndexService: trustIndexService,
		SnapshotScheduler: NewSnapshotScheduler(cfg, log, trustIndexService),
	}
}
