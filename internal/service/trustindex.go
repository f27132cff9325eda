package service

import (
	"context"
	"crypto-soothsayer/config"
	"crypto-soothsayer/internal/dto"
	"crypto-soothsayer/internal/model"
	"crypto-soothsayer/internal/repository"
	"crypto-soothsayer/pkg/common"
	"crypto-soothsayer/pkg/logger"
	"crypto-soothsayer/pkg/utils"
	"encoding/json"
	"strconv"
	"time"
)

type TrustIndexService interface {
	Current(ctx context.Context) (*dto.TrustIndexResult, error)
	GetHistory(ctx context.Context, days int) ([]dto.TrustIndexHistoryEntry, error)
	Snapshot(ctx context.Context) error
}

type trustIndexService struct {
	cfg            *config.Config
	log            *logger.Logger
	fearGreedRepo  repository.FearGreedRepository
	coinGeckoRepo  repository.CoinGeckoRepository
	trustIndexRepo repository.TrustIndexRepository
}

func NewTrustIndexService(
	cfg *config.Config,
	log *logger.Logger,
	fearGreedRepo repository.FearGreedRepository,
	coinGeckoRepo repository.CoinGeckoRepository,
	trustIndexRepo repository.TrustIndexRepository,
) TrustIndexService {
	return &trustIndexService{
		cfg:            cfg,
		log:            log,
		fearGreedRepo:  fearGreedRepo,
		coinGeckoRepo:  coinGeckoRepo,
		trustIndexRepo: trustIndexRepo,
	}
}

// Current computes the contrarian trust index. Sentiment sources are tried in
// order of decreasing dignity: fear-and-greed index, BTC 24h change, and
// finally a coin flip.
func (s *trustIndexService) Current(ctx context.Context) (*dto.TrustIndexResult, error) {
	sentiment, source := s.resolveSentiment(ctx)

	var indexValue int
	if source == common.SENTIMENT_SOURCE_FEAR_GREED {
		indexValue = utils.RandomIntBetween(0, 30)
		if sentiment == common.SENTIMENT_POSITIVE {
			indexValue += 60
		} else {
			indexValue += 10
		}
	} else {
		indexValue = utils.RandomIntBetween(0, 40)
		if sentiment == common.SENTIMENT_POSITIVE {
			indexValue += 50
		} else {
			indexValue += 10
		}
	}

	result := &dto.TrustIndexResult{
		IndexValue:        indexValue,
		MarketSentiment:   sentiment,
		Recommendation:    contrarianRecommendation(sentiment, indexValue),
		ConfidenceFactors: buildConfidenceFactors(sentiment),
		SentimentSource:   source,
		Timestamp:         time.Now().UTC(),
	}

	s.persist(ctx, result)

	return result, nil
}

func (s *trustIndexService) resolveSentiment(ctx context.Context) (string, string) {
	if entry, err := s.fearGreedRepo.GetLatest(ctx); err == nil {
		value, _ := strconv.Atoi(entry.Value)
		s.log.DebugContext(ctx, "fear and greed index fetched",
			logger.IntField("value", value),
			logger.StringField("classification", entry.ValueClassification))
		if value > 50 {
			return common.SENTIMENT_POSITIVE, common.SENTIMENT_SOURCE_FEAR_GREED
		}
		return common.SENTIMENT_NEGATIVE, common.SENTIMENT_SOURCE_FEAR_GREED
	}

	if coin, err := s.coinGeckoRepo.GetCoin(ctx, "bitcoin"); err == nil {
		s.log.DebugContext(ctx, "falling back to BTC 24h change for sentiment",
			logger.Float64Field("change_24h", coin.Change24h))
		if coin.Change24h > 0 {
			return common.SENTIMENT_POSITIVE, common.SENTIMENT_SOURCE_BTC_PRICE
		}
		return common.SENTIMENT_NEGATIVE, common.SENTIMENT_SOURCE_BTC_PRICE
	}

	s.log.WarnContext(ctx, "all sentiment sources failed, flipping a coin")
	if utils.RandomBetween(0, 1) > 0.5 {
		return common.SENTIMENT_POSITIVE, common.SENTIMENT_SOURCE_RANDOM
	}
	return common.SENTIMENT_NEGATIVE, common.SENTIMENT_SOURCE_RANDOM
}

func contrarianRecommendation(sentiment string, indexValue int) string {
	if sentiment == common.SENTIMENT_POSITIVE {
		if indexValue > 80 {
			return "Everyone is euphoric? Perfect time to panic and sell everything! When taxi drivers start giving investment advice, the smart money is already packing its bags."
		}
		return "The market is far too optimistic. Historically that is a wonderful indicator of an incoming crash. Grab some popcorn and watch the inevitable chaos."
	}
	if indexValue < 20 {
		return "Everyone is panic selling? Great time to buy! Assuming you enjoy catching falling knives and are not afraid of losing a little more money. Or a lot."
	}
	return "The market is depressed? By our contrarian logic that might be a buy signal. Or not. Who knows? Certainly not us."
}

func buildConfidenceFactors(sentiment string) []dto.ConfidenceFactor {
	panicTrend := "up"
	if sentiment == common.SENTIMENT_POSITIVE {
		panicTrend = "down"
	}
	randomTrend := func(upBias float64) string {
		if utils.RandomBetween(0, 1) < upBias {
			return "up"
		}
		return "down"
	}
	return []dto.ConfidenceFactor{
		{Name: "FOMO index", Value: utils.RandomIntBetween(0, 100), Trend: randomTrend(0.5)},
		{Name: "Twitter despair index", Value: utils.RandomIntBetween(0, 100), Trend: randomTrend(0.6)},
		// The number of "experts" only ever goes up.
		{Name: "Number of 'experts'", Value: utils.RandomIntBetween(60, 100), Trend: "up"},
		{Name: "Financial panic index", Value: utils.RandomIntBetween(0, 100), Trend: panicTrend},
	}
}

func (s *trustIndexService) persist(ctx context.Context, result *dto.TrustIndexResult) {
	factors, err := json.Marshal(result.ConfidenceFactors)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to marshal confidence factors", logger.ErrorField(err))
		return
	}

	snapshot := &model.TrustIndexSnapshot{
		IndexValue:        result.IndexValue,
		MarketSentiment:   result.MarketSentiment,
		SentimentSource:   result.SentimentSource,
		Recommendation:    result.Recommendation,
		ConfidenceFactors: factors,
	}
	if err := s.trustIndexRepo.Create(ctx, snapshot); err != nil {
		s.log.ErrorContext(ctx, "failed to persist trust index snapshot", logger.ErrorField(err))
	}
}

// GetHistory returns one entry per day for the requested window, most recent
// day last. Days with no persisted snapshot get a synthetic filler so the
// chart is always fully drawn.
func (s *trustIndexService) GetHistory(ctx context.Context, days int) ([]dto.TrustIndexHistoryEntry, error) {
	if days <= 0 {
		days = s.cfg.TrustIndex.HistoryDays
	}

	now := time.Now()
	since := now.AddDate(0, 0, -(days - 1))
	snapshots, err := s.trustIndexRepo.GetSince(ctx, since.Truncate(24*time.Hour))
	if err != nil {
		s.log.ErrorContext(ctx, "failed to load trust index history", logger.ErrorField(err))
		snapshots = nil
	}

	// Latest snapshot wins for each day.
	byDay := make(map[string]model.TrustIndexSnapshot, len(snapshots))
	for _, snap := range snapshots {
		byDay[utils.DateKey(snap.CreatedAt)] = snap
	}

	history := make([]dto.TrustIndexHistoryEntry, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := utils.DaysAgo(now, i)
		if snap, ok := byDay[date]; ok {
			history = append(history, dto.TrustIndexHistoryEntry{
				Date:            date,
				Value:           snap.IndexValue,
				MarketSentiment: snap.MarketSentiment,
			})
			continue
		}

		sentiment := common.SENTIMENT_NEGATIVE
		if utils.RandomBetween(0, 1) > 0.5 {
			sentiment = common.SENTIMENT_POSITIVE
		}
		history = append(history, dto.TrustIndexHistoryEntry{
			Date:            date,
			Value:           utils.RandomIntBetween(0, 100),
			MarketSentiment: sentiment,
		})
	}

	return history, nil
}

// Snapshot records one reading, used by the scheduled job.
func (s *trustIndexService) Snapshot(ctx context.Context) error {
	_, err := s.Current(ctx)
	return err
}
