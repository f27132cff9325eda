package model

import (
	"time"

	"gorm.io/datatypes"
)

// TrustIndexSnapshot records one reading of the contrarian trust index, either
// taken on demand or by the scheduled snapshot job.
type TrustIndexSnapshot struct {
	ID                uint           `gorm:"primarykey" json:"id"`
	IndexValue        int            `gorm:"not null" json:"index_value"`
	MarketSentiment   string         `gorm:"not null" json:"market_sentiment"`
	SentimentSource   string         `gorm:"not null" json:"sentiment_source"`
	Recommendation    string         `gorm:"not null" json:"recommendation"`
	ConfidenceFactors datatypes.JSON `gorm:"type:jsonb" json:"confidence_factors"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (TrustIndexSnapshot) TableName() string {
	return "trust_index_snapshots"
}
