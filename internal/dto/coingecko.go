package dto

import "time"

// AssetQuote is one market-data snapshot from the CoinGecko markets listing.
type AssetQuote struct {
	ID           string  `json:"id" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	Symbol       string  `json:"symbol" validate:"required"`
	CurrentPrice float64 `json:"current_price" validate:"gte=0"`
}

// CoinDetail is the subset of the CoinGecko coin endpoint this system uses.
type CoinDetail struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Symbol       string    `json:"symbol"`
	CurrentPrice float64   `json:"current_price"`
	ATHPrice     float64   `json:"ath_price"`
	ATHDate      time.Time `json:"ath_date"`
	Change24h    float64   `json:"change_24h"`
}

// PricePoint is one day of a historical price series.
type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// CoinGeckoCoinResponse mirrors the raw /coins/{id} payload shape.
type CoinGeckoCoinResponse struct {
	ID         string `json:"id"`
	Symbol     string `json:"symbol"`
	Name       string `json:"name"`
	MarketData struct {
		CurrentPrice             map[string]float64 `json:"current_price"`
		ATH                      map[string]float64 `json:"ath"`
		ATHDate                  map[string]string  `json:"ath_date"`
		PriceChangePercentage24h float64            `json:"price_change_percentage_24h"`
	} `json:"market_data"`
}

// CoinGeckoMarketChartResponse mirrors the raw /coins/{id}/market_chart
// payload: prices is a list of [unix_ms, price] pairs.
type CoinGeckoMarketChartResponse struct {
	Prices [][]float64 `json:"prices"`
}
