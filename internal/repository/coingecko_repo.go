package repository

import (
	"context"
	"crypto-soothsayer/config"
	"crypto-soothsayer/internal/dto"
	"crypto-soothsayer/pkg/httpclient"
	"crypto-soothsayer/pkg/logger"
	"crypto-soothsayer/pkg/utils"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

type CoinGeckoRepository interface {
	GetMarkets(ctx context.Context, perPage int) ([]dto.AssetQuote, error)
	GetCoin(ctx context.Context, id string) (*dto.CoinDetail, error)
	GetMarketChart(ctx context.Context, id string, days int) ([]dto.PricePoint, error)
}

type coinGeckoRepository struct {
	httpClient     httpclient.HTTPClient
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

func NewCoinGeckoRepository(cfg *config.Config, log *logger.Logger) CoinGeckoRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.CoinGecko.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	return &coinGeckoRepository{
		httpClient:     httpclient.New(log, cfg.CoinGecko.BaseURL, cfg.CoinGecko.Timeout),
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
	}
}

func (r *coinGeckoRepository) GetMarkets(ctx context.Context, perPage int) ([]dto.AssetQuote, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	if perPage <= 0 {
		perPage = r.cfg.CoinGecko.MarketsPerPage
	}

	endpoint := "/coins/markets"
	queryParams := map[string]string{
		"vs_currency": "usd",
		"order":       "market_cap_desc",
		"per_page":    strconv.Itoa(perPage),
		"page":        "1",
		"sparkline":   "false",
	}

	var quotes []dto.AssetQuote
	resp, err := r.httpClient.Get(ctx, endpoint, queryParams, nil, &quotes)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch markets from coingecko: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.Error("CoinGecko API returned Non-OK status for markets",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("body", string(resp.Body)))
		return nil, fmt.Errorf("coingecko api returned status: %d", resp.StatusCode)
	}

	return quotes, nil
}

func (r *coinGeckoRepository) GetCoin(ctx context.Context, id string) (*dto.CoinDetail, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("/coins/%s", id)
	queryParams := map[string]string{
		"localization":   "false",
		"tickers":        "false",
		"community_data": "false",
		"developer_data": "false",
	}

	var raw dto.CoinGeckoCoinResponse
	resp, err := r.httpClient.Get(ctx, endpoint, queryParams, nil, &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch coin %s from coingecko: %w", id, err)
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.Error("CoinGecko API returned Non-OK status for coin",
			logger.StringField("coin_id", id),
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("body", string(resp.Body)))
		return nil, fmt.Errorf("coingecko api returned status: %d", resp.StatusCode)
	}

	detail := &dto.CoinDetail{
		ID:           raw.ID,
		Name:         raw.Name,
		Symbol:       raw.Symbol,
		CurrentPrice: raw.MarketData.CurrentPrice["usd"],
		ATHPrice:     raw.MarketData.ATH["usd"],
		Change24h:    raw.MarketData.PriceChangePercentage24h,
	}

	if athDate, err := time.Parse(time.RFC3339, raw.MarketData.ATHDate["usd"]); err == nil {
		detail.ATHDate = athDate
	}

	return detail, nil
}

func (r *coinGeckoRepository) GetMarketChart(ctx context.Context, id string, days int) ([]dto.PricePoint, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("/coins/%s/market_chart", id)
	queryParams := map[string]string{
		"vs_currency": "usd",
		"days":        strconv.Itoa(days),
		"interval":    "daily",
	}

	var raw dto.CoinGeckoMarketChartResponse
	resp, err := r.httpClient.Get(ctx, endpoint, queryParams, nil, &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch market chart for %s from coingecko: %w", id, err)
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.Error("CoinGecko API returned Non-OK status for market chart",
			logger.StringField("coin_id", id),
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("body", string(resp.Body)))
		return nil, fmt.Errorf("coingecko api returned status: %d", resp.StatusCode)
	}

	var points []dto.PricePoint
	for _, pair := range raw.Prices {
		if len(pair) < 2 {
			continue
		}
		ts := time.UnixMilli(int64(pair[0]))
		points = append(points, dto.PricePoint{
			Date:  utils.DateKey(ts),
			Price: pair[1],
		})
	}

	return points, nil
}
