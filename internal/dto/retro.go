package dto

type GenerateRetroPostRequest struct {
	AssetID string `json:"asset_id" validate:"required"`
}

// RetroPostResult is a fabricated "called it" post pinned six months before
// the asset's all-time-high date.
type RetroPostResult struct {
	Date         string   `json:"date"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	Indicators   []string `json:"indicators"`
	Signature    string   `json:"signature"`
	FollowUp     string   `json:"follow_up"`
	CurrentPrice float64  `json:"current_price"`
	PeakPrice    float64  `json:"peak_price"`
}
