package repository

import (
	"context"
	"crypto-soothsayer/internal/model"

	"gorm.io/gorm"
)

type PortfolioRepository interface {
	Create(ctx context.Context, roast *model.PortfolioRoast) error
	GetRecent(ctx context.Context, limit int) ([]model.PortfolioRoast, error)
}

type portfolioRepository struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

func (r *portfolioRepository) Create(ctx context.Context, roast *model.PortfolioRoast) error {
	return r.db.WithContext(ctx).Create(roast).Error
}

func (r *portfolioRepository) GetRecent(ctx context.Context, limit int) ([]model.PortfolioRoast, error) {
	var roasts []model.PortfolioRoast
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&roasts).Error
	if err != nil {
		return nil, err
	}
	return roasts, nil
}
