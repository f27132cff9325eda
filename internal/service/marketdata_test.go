package service

import (
	"context"
	"testing"

	"crypto-soothsayer/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMarketDataSource(t *testing.T) {
	t.Run("synthetic config selects the synthetic source", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Market.DataSource = DataSourceSynthetic

		market := NewMarketDataSource(cfg, testLogger(), &fakeCoinGeckoRepo{})

		_, ok := market.(*syntheticMarketData)
		assert.True(t, ok)
	})

	t.Run("live config selects the live source", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Market.DataSource = DataSourceLive

		market := NewMarketDataSource(cfg, testLogger(), &fakeCoinGeckoRepo{})

		_, ok := market.(*liveMarketData)
		assert.True(t, ok)
	})
}

func TestSyntheticMarketData_DailySeries(t *testing.T) {
	market := &syntheticMarketData{}

	for _, days := range []int{7, 30, 90, 365} {
		series := market.DailySeries(context.Background(), "bitcoin", days)

		require.Len(t, series, days)
		for i, point := range series {
			assert.NotEmpty(t, point.Date)
			assert.Greater(t, point.Price, 0.0)
			if i > 0 {
				// Bounded walk: each step moves at most 5%.
				ratio := point.Price / series[i-1].Price
				assert.InDelta(t, 1.0, ratio, 0.0501)
			}
		}
	}
}

func TestSyntheticMarketData_Markets(t *testing.T) {
	market := &syntheticMarketData{}

	t.Run("limit slices the canned list", func(t *testing.T) {
		quotes := market.Markets(context.Background(), 3)
		assert.Len(t, quotes, 3)
	})

	t.Run("zero limit returns everything", func(t *testing.T) {
		quotes := market.Markets(context.Background(), 0)
		assert.Len(t, quotes, 5)
		assert.Equal(t, "bitcoin", quotes[0].ID)
	})
}

func TestLiveMarketData_FallsBackToSynthetic(t *testing.T) {
	market := &liveMarketData{
		coinGeckoRepo: &fakeCoinGeckoRepo{failing: true},
		log:           testLogger(),
		synthetic:     &syntheticMarketData{},
	}

	t.Run("markets", func(t *testing.T) {
		quotes := market.Markets(context.Background(), 5)
		assert.Len(t, quotes, 5)
	})

	t.Run("coin detail", func(t *testing.T) {
		coin := market.Coin(context.Background(), "dogecoin")
		require.NotNil(t, coin)
		assert.Equal(t, "dogecoin", coin.ID)
		assert.Equal(t, "Dogecoin", coin.Name)
	})

	t.Run("daily series", func(t *testing.T) {
		series := market.DailySeries(context.Background(), "bitcoin", 30)
		assert.Len(t, series, 30)
	})
}

func TestLiveMarketData_PassesThroughLiveData(t *testing.T) {
	coinGecko := &fakeCoinGeckoRepo{change24h: 1.5}
	market := &liveMarketData{
		coinGeckoRepo: coinGecko,
		log:           testLogger(),
		synthetic:     &syntheticMarketData{},
	}

	quotes := market.Markets(context.Background(), 10)
	require.Len(t, quotes, 2)
	assert.Equal(t, 50000.0, quotes[0].CurrentPrice)

	coin := market.Coin(context.Background(), "bitcoin")
	require.NotNil(t, coin)
	assert.Equal(t, 69000.0, coin.ATHPrice)
}
