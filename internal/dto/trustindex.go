package dto

import "time"

type ConfidenceFactor struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Trend string `json:"trend"`
}

// TrustIndexResult is the contrarian sentiment reading: high greed means the
// recommendation tells you to run.
type TrustIndexResult struct {
	IndexValue        int                `json:"index_value"`
	MarketSentiment   string             `json:"market_sentiment"`
	Recommendation    string             `json:"recommendation"`
	ConfidenceFactors []ConfidenceFactor `json:"confidence_factors"`
	SentimentSource   string             `json:"sentiment_source"`
	Timestamp         time.Time          `json:"timestamp"`
}

type TrustIndexHistoryQuery struct {
	Days int `query:"days" validate:"gte=0,lte=365"`
}

type TrustIndexHistoryEntry struct {
	Date            string `json:"date"`
	Value           int    `json:"value"`
	MarketSentiment string `json:"market_sentiment"`
}
