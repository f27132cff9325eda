package dto

type PortfolioItem struct {
	Token    string  `json:"token" validate:"required"`
	Amount   float64 `json:"amount" validate:"gte=0"`
	BuyPrice float64 `json:"buy_price" validate:"gte=0"`
}

type AnalyzePortfolioRequest struct {
	Portfolio []PortfolioItem `json:"portfolio" validate:"required,min=1,dive"`
}

type TokenRoast struct {
	Name  string `json:"name"`
	Roast string `json:"roast"`
}

type PortfolioRoastResult struct {
	OverallRoast      string       `json:"overall_roast"`
	TokenRoasts       []TokenRoast `json:"token_roasts"`
	AlternateUniverse string       `json:"alternate_universe"`
}
