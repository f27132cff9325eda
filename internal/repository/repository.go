package repository

import (
	"crypto-soothsayer/config"
	"crypto-soothsayer/pkg/logger"

	"gorm.io/gorm"
)

type Repository struct {
	CoinGeckoRepo  CoinGeckoRepository
	FearGreedRepo  FearGreedRepository
	GeminiAIRepo   AIRepository
	PredictionRepo PredictionRepository
	PortfolioRepo  PortfolioRepository
	TrustIndexRepo TrustIndexRepository
}

func NewRepository(cfg *config.Config, db *gorm.DB, log *logger.Logger) (*Repository, error) {
	geminiAIRepo, err := NewGeminiAIRepository(cfg, log)
	if err != nil {
		return nil, err
	}

	return &Repository{
		CoinGeckoRepo:  NewCoinGeckoRepository(cfg, log),
		FearGreedRepo:  NewFearGreedRepository(cfg, log),
		GeminiAIRepo:   geminiAIRepo,
		PredictionRepo: NewPredictionRepository(db),
		PortfolioRepo:  NewPortfolioRepository(db),
		TrustIndexRepo: NewTrustIndexRepository(db),
	}, nil
}
