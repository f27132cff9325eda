package service

import (
	"context"
	"errors"
	"time"

	"crypto-soothsayer/config"
	"crypto-soothsayer/internal/dto"
	"crypto-soothsayer/internal/model"
	"crypto-soothsayer/pkg/logger"
)

var errUpstreamDown = errors.New("upstream down")

func testLogger() *logger.Logger {
	log, _ := logger.New(&config.Config{})
	return log
}

// fakeAIRepo counts calls and returns canned results, or an error when
// failing is set.
type fakeAIRepo struct {
	failing bool

	predictCalls int
	roastCalls   int
	retroCalls   int
	astroCalls   int
}

func (f *fakeAIRepo) PredictAsset(_ context.Context, asset dto.AssetQuote) (*dto.PredictionResult, error) {
	f.predictCalls++
	if f.failing {
		return nil, errUpstreamDown
	}
	return &dto.PredictionResult{
		Text:       "To the moon, obviously. " + asset.Name + " cannot lose.",
		Confidence: 95,
		Analysis:   "The charts formed a shape that looks vaguely like a rocket.",
	}, nil
}

func (f *fakeAIRepo) RoastPortfolio(_ context.Context, items []dto.PortfolioItem) (*dto.PortfolioRoastResult, error) {
	f.roastCalls++
	if f.failing {
		return nil, errUpstreamDown
	}
	roasts := make([]dto.TokenRoast, 0, len(items))
	for _, item := range items {
		roasts = append(roasts, dto.TokenRoast{Name: item.Token, Roast: "bold choice"})
	}
	return &dto.PortfolioRoastResult{
		OverallRoast:      "A museum of bad timing.",
		TokenRoasts:       roasts,
		AlternateUniverse: "You bought bread instead.",
	}, nil
}

func (f *fakeAIRepo) ComposeRetroPost(_ context.Context, coin *dto.CoinDetail, postDate string) (*dto.RetroPostResult, error) {
	f.retroCalls++
	if f.failing {
		return nil, errUpstreamDown
	}
	return &dto.RetroPostResult{
		Date:       postDate,
		Title:      coin.Name + " is obviously going up",
		Content:    "Called it.",
		Indicators: []string{"vibes"},
		Signature:  "TestGuru",
		FollowUp:   "You are welcome.",
	}, nil
}

func (f *fakeAIRepo) AstrologicalFactors(_ context.Context, _ string) ([]dto.AstroFactor, error) {
	f.astroCalls++
	if f.failing {
		return nil, errUpstreamDown
	}
	return []dto.AstroFactor{
		{Name: "Test alignment", Description: "The planets approve.", Impact: "positive", Probability: 50},
	}, nil
}

// fakeCoinGeckoRepo drives the sentiment fallback chain and the live market
// data source.
type fakeCoinGeckoRepo struct {
	failing    bool
	change24h  float64
	coinCalls  int
	chartCalls int
}

func (f *fakeCoinGeckoRepo) GetMarkets(_ context.Context, perPage int) ([]dto.AssetQuote, error) {
	if f.failing {
		return nil, errUpstreamDown
	}
	quotes := []dto.AssetQuote{
		{ID: "bitcoin", Name: "Bitcoin", Symbol: "btc", CurrentPrice: 50000},
		{ID: "ethereum", Name: "Ethereum", Symbol: "eth", CurrentPrice: 4000},
	}
	if perPage > 0 && perPage < len(quotes) {
		quotes = quotes[:perPage]
	}
	return quotes, nil
}

func (f *fakeCoinGeckoRepo) GetCoin(_ context.Context, id string) (*dto.CoinDetail, error) {
	f.coinCalls++
	if f.failing {
		return nil, errUpstreamDown
	}
	return &dto.CoinDetail{
		ID:           id,
		Name:         "Bitcoin",
		Symbol:       "btc",
		CurrentPrice: 50000,
		ATHPrice:     69000,
		ATHDate:      time.Date(2021, 11, 10, 14, 24, 11, 0, time.UTC),
		Change24h:    f.change24h,
	}, nil
}

func (f *fakeCoinGeckoRepo) GetMarketChart(_ context.Context, _ string, days int) ([]dto.PricePoint, error) {
	f.chartCalls++
	if f.failing {
		return nil, errUpstreamDown
	}
	points := make([]dto.PricePoint, 0, days)
	for i := 0; i < days; i++ {
		points = append(points, dto.PricePoint{Date: "2026-01-01", Price: 100})
	}
	return points, nil
}

type fakeFearGreedRepo struct {
	failing bool
	value   string
}

func (f *fakeFearGreedRepo) GetLatest(_ context.Context) (*dto.FearGreedEntry, error) {
	if f.failing {
		return nil, errUpstreamDown
	}
	return &dto.FearGreedEntry{Value: f.value, ValueClassification: "Greed"}, nil
}

type fakePredictionRepo struct {
	failing bool
	created []*model.Prediction
}

func (f *fakePredictionRepo) Create(_ context.Context, prediction *model.Prediction) error {
	if f.failing {
		return errUpstreamDown
	}
	f.created = append(f.created, prediction)
	return nil
}

func (f *fakePredictionRepo) GetRecent(_ context.Context, limit int) ([]model.Prediction, error) {
	recent := make([]model.Prediction, 0, len(f.created))
	for i := len(f.created) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, *f.created[i])
	}
	return recent, nil
}

func (f *fakePredictionRepo) GetByID(_ context.Context, id uint) (*model.Prediction, error) {
	for _, p := range f.created {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errUpstreamDown
}

type fakePortfolioRepo struct {
	created []*model.PortfolioRoast
}

func (f *fakePortfolioRepo) Create(_ context.Context, roast *model.PortfolioRoast) error {
	f.created = append(f.created, roast)
	return nil
}

func (f *fakePortfolioRepo) GetRecent(_ context.Context, limit int) ([]model.PortfolioRoast, error) {
	recent := make([]model.PortfolioRoast, 0, len(f.created))
	for i := len(f.created) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, *f.created[i])
	}
	return recent, nil
}

type fakeTrustIndexRepo struct {
	created   []*model.TrustIndexSnapshot
	snapshots []model.TrustIndexSnapshot
}

func (f *fakeTrustIndexRepo) Create(_ context.Context, snapshot *model.TrustIndexSnapshot) error {
	f.created = append(f.created, snapshot)
	return nil
}

func (f *fakeTrustIndexRepo) GetSince(_ context.Context, since time.Time) ([]model.TrustIndexSnapshot, error) {
	var out []model.TrustIndexSnapshot
	for _, snap := range f.snapshots {
		if !snap.CreatedAt.Before(since) {
			out = append(out, snap)
		}
	}
	return out, nil
}
