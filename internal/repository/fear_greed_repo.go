package repository

import (
	"context"
	"crypto-soothsayer/config"
	"crypto-soothsayer/internal/dto"
	"crypto-soothsayer/pkg/httpclient"
	"crypto-soothsayer/pkg/logger"
	"fmt"
	"net/http"
	"strconv"
)

type FearGreedRepository interface {
	GetLatest(ctx context.Context) (*dto.FearGreedEntry, error)
}

type fearGreedRepository struct {
	httpClient httpclient.HTTPClient
	logger     *logger.Logger
}

func NewFearGreedRepository(cfg *config.Config, log *logger.Logger) FearGreedRepository {
	return &fearGreedRepository{
		httpClient: httpclient.New(log, cfg.FearGreed.BaseURL, cfg.FearGreed.Timeout),
		logger:     log,
	}
}

func (r *fearGreedRepository) GetLatest(ctx context.Context) (*dto.FearGreedEntry, error) {
	var raw dto.FearGreedResponse
	resp, err := r.httpClient.Get(ctx, "/fng/", nil, nil, &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fear and greed index: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.Error("Fear and greed API returned Non-OK status",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("body", string(resp.Body)))
		return nil, fmt.Errorf("fear and greed api returned status: %d", resp.StatusCode)
	}

	if len(raw.Data) == 0 {
		return nil, fmt.Errorf("fear and greed api returned no data")
	}

	entry := raw.Data[0]
	if _, err := strconv.Atoi(entry.Value); err != nil {
		return nil, fmt.Errorf("fear and greed api returned non-numeric value %q: %w", entry.Value, err)
	}

	return &entry, nil
}
