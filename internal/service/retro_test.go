package service

import (
	"context"
	"testing"
	"time"

	"crypto-soothsayer/config"
	"crypto-soothsayer/internal/dto"
	"crypto-soothsayer/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRetroService(aiRepo *fakeAIRepo, market MarketDataSource) RetroService {
	return NewRetroService(
		&config.Config{},
		testLogger(),
		cache.NewCache(time.Minute, time.Minute),
		market,
		aiRepo,
	)
}

func TestRetroService_Generate(t *testing.T) {
	coinGecko := &fakeCoinGeckoRepo{}
	market := &liveMarketData{coinGeckoRepo: coinGecko, log: testLogger(), synthetic: &syntheticMarketData{}}

	t.Run("post is dated six months before the all-time high", func(t *testing.T) {
		svc := newRetroService(&fakeAIRepo{}, market)

		post, outcome, err := svc.Generate(context.Background(), dto.GenerateRetroPostRequest{AssetID: "bitcoin"})

		require.NoError(t, err)
		assert.Equal(t, dto.OutcomeGenerated, outcome)
		// ATH fixture is 2021-11-10.
		assert.Equal(t, "10-05-2021", post.Date)
		assert.Equal(t, 50000.0, post.CurrentPrice)
		assert.Equal(t, 69000.0, post.PeakPrice)
	})

	t.Run("repeat request hits cache", func(t *testing.T) {
		aiRepo := &fakeAIRepo{}
		svc := newRetroService(aiRepo, market)
		req := dto.GenerateRetroPostRequest{AssetID: "bitcoin"}

		first, outcome, err := svc.Generate(context.Background(), req)
		require.NoError(t, err)
		require.Equal(t, dto.OutcomeGenerated, outcome)

		second, outcome, err := svc.Generate(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, dto.OutcomeCached, outcome)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, aiRepo.retroCalls)
	})

	t.Run("generation failure degrades to stub with real prices", func(t *testing.T) {
		svc := newRetroService(&fakeAIRepo{failing: true}, market)

		post, outcome, err := svc.Generate(context.Background(), dto.GenerateRetroPostRequest{AssetID: "bitcoin"})

		assert.ErrorIs(t, err, errUpstreamDown)
		assert.Equal(t, dto.OutcomeDegraded, outcome)
		require.NotNil(t, post)
		assert.NotEmpty(t, post.Title)
		assert.NotEmpty(t, post.Content)
		assert.NotEmpty(t, post.Indicators)
		assert.Equal(t, 50000.0, post.CurrentPrice)
		assert.Equal(t, 69000.0, post.PeakPrice)
	})

	t.Run("market failure falls back to placeholder coin", func(t *testing.T) {
		failing := &liveMarketData{
			coinGeckoRepo: &fakeCoinGeckoRepo{failing: true},
			log:           testLogger(),
			synthetic:     &syntheticMarketData{},
		}
		svc := newRetroService(&fakeAIRepo{}, failing)

		post, outcome, err := svc.Generate(context.Background(), dto.GenerateRetroPostRequest{AssetID: "dogecoin"})

		require.NoError(t, err)
		assert.Equal(t, dto.OutcomeGenerated, outcome)
		assert.Equal(t, 1000.0, post.CurrentPrice)
		assert.Equal(t, 5000.0, post.PeakPrice)
	})
}
