package dto

// GeneratePredictionRequest optionally names the asset to roast. When Asset
// is nil a random top-market asset is picked.
type GeneratePredictionRequest struct {
	Asset *AssetQuote `json:"asset,omitempty" validate:"omitempty"`
}

// PredictionResult is the generated prediction content, as decoded from the
// generation API or substituted by the stub.
type PredictionResult struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Analysis   string  `json:"analysis"`
}

type CryptoDataQuery struct {
	Start int `query:"start" validate:"gte=0"`
	Limit int `query:"limit" validate:"gte=0,lte=100"`
}
