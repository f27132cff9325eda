package repository

import (
	"context"
	"crypto-soothsayer/internal/model"
	"time"

	"gorm.io/gorm"
)

type TrustIndexRepository interface {
	Create(ctx context.Context, snapshot *model.TrustIndexSnapshot) error
	GetSince(ctx context.Context, since time.Time) ([]model.TrustIndexSnapshot, error)
}

type trustIndexRepository struct {
	db *gorm.DB
}

func NewTrustIndexRepository(db *gorm.DB) TrustIndexRepository {
	return &trustIndexRepository{db: db}
}

func (r *trustIndexRepository) Create(ctx context.Context, snapshot *model.TrustIndexSnapshot) error {
	return r.db.WithContext(ctx).Create(snapshot).Error
}

func (r *trustIndexRepository) GetSince(ctx context.Context, since time.Time) ([]model.TrustIndexSnapshot, error) {
	var snapshots []model.TrustIndexSnapshot
	err := r.db.WithContext(ctx).
		Where("created_at >= ?", since).
		Order("created_at ASC").
		Find(&snapshots).Error
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}
