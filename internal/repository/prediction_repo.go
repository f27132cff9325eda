package repository

import (
	"context"
	"crypto-soothsayer/internal/model"

	"gorm.io/gorm"
)

type PredictionRepository interface {
	Create(ctx context.Context, prediction *model.Prediction) error
	GetRecent(ctx context.Context, limit int) ([]model.Prediction, error)
	GetByID(ctx context.Context, id uint) (*model.Prediction, error)
}

type predictionRepository struct {
	db *gorm.DB
}

func NewPredictionRepository(db *gorm.DB) PredictionRepository {
	return &predictionRepository{db: db}
}

func (r *predictionRepository) Create(ctx context.Context, prediction *model.Prediction) error {
	return r.db.WithContext(ctx).Create(prediction).Error
}

func (r *predictionRepository) GetRecent(ctx context.Context, limit int) ([]model.Prediction, error) {
	var predictions []model.Prediction
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&predictions).Error
	if err != nil {
		return nil, err
	}
	return predictions, nil
}

func (r *predictionRepository) GetByID(ctx context.Context, id uint) (*model.Prediction, error) {
	var prediction model.Prediction
	err := r.db.WithContext(ctx).First(&prediction, id).Error
	if err != nil {
		return nil, err
	}
	return &prediction, nil
}
