package model

import "time"

// Prediction is one persisted satirical price prediction. Rows are immutable
// history, written once per successful generation.
type Prediction struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	AssetID     string    `gorm:"not null" json:"asset_id"`
	AssetName   string    `gorm:"not null" json:"asset_name"`
	AssetSymbol string    `gorm:"not null" json:"asset_symbol"`
	AssetPrice  float64   `gorm:"not null;default:0" json:"asset_price"`
	Prediction  string    `gorm:"not null" json:"prediction"`
	Confidence  float64   `gorm:"not null" json:"confidence"`
	Analysis    string    `gorm:"not null" json:"analysis"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Prediction) TableName() string {
	return "predictions"
}
