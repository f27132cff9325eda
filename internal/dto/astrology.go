package dto

type GenerateAstroChartRequest struct {
	AssetID   string `json:"asset_id" validate:"required"`
	Timeframe string `json:"timeframe" validate:"required,oneof=week month quarter year"`
}

// AstroPoint is one charted day: a real or synthetic price decorated with
// pseudo-astrological noise.
type AstroPoint struct {
	Date          string  `json:"date"`
	Price         float64 `json:"price"`
	MoonInfluence float64 `json:"moon_influence"`
	MarsEnergy    float64 `json:"mars_energy"`
	AstroEvent    string  `json:"astro_event,omitempty"`
}

type AstroFactor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	Probability int    `json:"probability"`
}

type AstroChartResult struct {
	ChartData []AstroPoint  `json:"chart_data"`
	Factors   []AstroFactor `json:"astrological_factors"`
}
