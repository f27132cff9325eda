package service

import (
	"context"
	"crypto-soothsayer/config"
	"crypto-soothsayer/internal/dto"
	"crypto-soothsayer/internal/repository"
	"crypto-soothsayer/pkg/logger"
	"crypto-soothsayer/pkg/utils"
	"strings"
	"time"
)

const (
	DataSourceLive      = "live"
	DataSourceSynthetic = "synthetic"
)

// MarketDataSource supplies price enrichment data for the generation
// pipeline. Implementations never fail: the live source substitutes synthetic
// or canned data when the upstream provider is unreachable, so generation can
// always proceed.
type MarketDataSource interface {
	Markets(ctx context.Context, limit int) []dto.AssetQuote
	Coin(ctx context.Context, id string) *dto.CoinDetail
	DailySeries(ctx context.Context, id string, days int) []dto.PricePoint
}

// NewMarketDataSource picks the implementation configured under
// market.data_source.
func NewMarketDataSource(cfg *config.Config, log *logger.Logger, coinGeckoRepo repository.CoinGeckoRepository) MarketDataSource {
	if cfg.Market.DataSource == DataSourceSynthetic {
		return &syntheticMarketData{}
	}
	return &liveMarketData{
		coinGeckoRepo: coinGeckoRepo,
		log:           log,
		synthetic:     &syntheticMarketData{},
	}
}

type liveMarketData struct {
	coinGeckoRepo repository.CoinGeckoRepository
	log           *logger.Logger
	synthetic     *syntheticMarketData
}

func (s *liveMarketData) Markets(ctx context.Context, limit int) []dto.AssetQuote {
	quotes, err := s.coinGeckoRepo.GetMarkets(ctx, limit)
	if err != nil || len(quotes) == 0 {
		s.log.WarnContext(ctx, "market listing unavailable, using canned asset list", logger.ErrorField(err))
		return s.synthetic.Markets(ctx, limit)
	}
	return quotes
}

func (s *liveMarketData) Coin(ctx context.Context, id string) *dto.CoinDetail {
	coin, err := s.coinGeckoRepo.GetCoin(ctx, id)
	if err != nil {
		s.log.WarnContext(ctx, "coin detail unavailable, using placeholder",
			logger.StringField("coin_id", id), logger.ErrorField(err))
		return s.synthetic.Coin(ctx, id)
	}
	return coin
}

func (s *liveMarketData) DailySeries(ctx context.Context, id string, days int) []dto.PricePoint {
	points, err := s.coinGeckoRepo.GetMarketChart(ctx, id, days)
	if err != nil || len(points) == 0 {
		s.log.WarnContext(ctx, "price history unavailable, generating synthetic series",
			logger.StringField("coin_id", id), logger.IntField("days", days), logger.ErrorField(err))
		return s.synthetic.DailySeries(ctx, id, days)
	}
	return points
}

// syntheticMarketData produces placeholder data with no external calls: a
// canned top-asset list and a bounded random walk for price history.
type syntheticMarketData struct{}

func (s *syntheticMarketData) Markets(_ context.Context, limit int) []dto.AssetQuote {
	quotes := []dto.AssetQuote{
		{ID: "bitcoin", Name: "Bitcoin", Symbol: "btc", CurrentPrice: 45000},
		{ID: "ethereum", Name: "Ethereum", Symbol: "eth", CurrentPrice: 3000},
		{ID: "dogecoin", Name: "Dogecoin", Symbol: "doge", CurrentPrice: 0.15},
		{ID: "cardano", Name: "Cardano", Symbol: "ada", CurrentPrice: 0.5},
		{ID: "solana", Name: "Solana", Symbol: "sol", CurrentPrice: 100},
	}
	if limit > 0 && limit < len(quotes) {
		return quotes[:limit]
	}
	return quotes
}

func (s *syntheticMarketData) Coin(_ context.Context, id string) *dto.CoinDetail {
	name := id
	if len(name) > 0 {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	symbol := id
	if len(symbol) > 3 {
		symbol = symbol[:3]
	}
	athDate, _ := time.Parse(time.RFC3339, "2021-11-10T14:24:11Z")
	return &dto.CoinDetail{
		ID:           id,
		Name:         name,
		Symbol:       symbol,
		CurrentPrice: 1000,
		ATHPrice:     5000,
		ATHDate:      athDate,
	}
}

func (s *syntheticMarketData) DailySeries(_ context.Context, _ string, days int) []dto.PricePoint {
	now := time.Now()
	price := utils.RandomBetween(1000, 2000)
	points := make([]dto.PricePoint, 0, days)
	for i := 0; i < days; i++ {
		price = price * (1 + utils.RandomBetween(-0.05, 0.05))
		points = append(points, dto.PricePoint{
			Date:  utils.DaysAgo(now, days-i),
			Price: price,
		})
	}
	return points
}
