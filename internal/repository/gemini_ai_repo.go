package repository

import (
	"context"
	"crypto-soothsayer/config"
	"crypto-soothsayer/internal/dto"
	"crypto-soothsayer/pkg/httpclient"
	"crypto-soothsayer/pkg/logger"
	"crypto-soothsayer/pkg/ratelimit"
	"crypto-soothsayer/pkg/utils"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// ErrMalformedResponse marks a generation reply that did not decode into the
// expected shape. Callers substitute a stub and degrade instead of failing.
var ErrMalformedResponse = errors.New("malformed generation response")

type AIRepository interface {
	PredictAsset(ctx context.Context, asset dto.AssetQuote) (*dto.PredictionResult, error)
	RoastPortfolio(ctx context.Context, items []dto.PortfolioItem) (*dto.PortfolioRoastResult, error)
	ComposeRetroPost(ctx context.Context, coin *dto.CoinDetail, postDate string) (*dto.RetroPostResult, error)
	AstrologicalFactors(ctx context.Context, assetID string) ([]dto.AstroFactor, error)
}

// geminiAIRepository talks to the Google Gemini API for all satirical text
// generation.
type geminiAIRepository struct {
	httpClient     httpclient.HTTPClient
	cfg            *config.Config
	logger         *logger.Logger
	tokenLimiter   *ratelimit.TokenLimiter
	requestLimiter *rate.Limiter
	genAiClient    *genai.Client
}

// NewGeminiAIRepository creates a new instance of geminiAIRepository.
func NewGeminiAIRepository(cfg *config.Config, log *logger.Logger) (AIRepository, error) {
	secondsPerRequest := time.Minute / time.Duration(cfg.Gemini.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	tokenLimiter := ratelimit.NewTokenLimiter(cfg.Gemini.MaxTokenPerMinute)
	genAiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.Gemini.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiAIRepository{
		httpClient:     httpclient.New(log, cfg.Gemini.BaseURL, cfg.Gemini.Timeout),
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
		tokenLimiter:   tokenLimiter,
		genAiClient:    genAiClient,
	}, nil
}

func (r *geminiAIRepository) PredictAsset(ctx context.Context, asset dto.AssetQuote) (*dto.PredictionResult, error) {
	prompt := r.promptPredictAsset(asset)

	geminiAPIResponse, err := r.sendRequest(ctx, prompt)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to send prediction request to gemini", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to send prediction request to gemini: %w", err)
	}

	var result dto.PredictionResult
	if err := r.parseResponse(geminiAPIResponse, &result); err != nil {
		return nil, err
	}

	if result.Text == "" || result.Analysis == "" {
		return nil, fmt.Errorf("%w: prediction is missing required fields", ErrMalformedResponse)
	}
	result.Confidence = utils.Clamp(result.Confidence, 0, 100)

	return &result, nil
}

func (r *geminiAIRepository) RoastPortfolio(ctx context.Context, items []dto.PortfolioItem) (*dto.PortfolioRoastResult, error) {
	prompt, err := r.promptRoastPortfolio(items)
	if err != nil {
		return nil, fmt.Errorf("failed to build portfolio prompt: %w", err)
	}

	geminiAPIResponse, err := r.sendRequest(ctx, prompt)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to send portfolio request to gemini", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to send portfolio request to gemini: %w", err)
	}

	var result dto.PortfolioRoastResult
	if err := r.parseResponse(geminiAPIResponse, &result); err != nil {
		return nil, err
	}

	if result.OverallRoast == "" || result.AlternateUniverse == "" || len(result.TokenRoasts) == 0 {
		return nil, fmt.Errorf("%w: portfolio roast is missing required fields", ErrMalformedResponse)
	}

	return &result, nil
}

func (r *geminiAIRepository) ComposeRetroPost(ctx context.Context, coin *dto.CoinDetail, postDate string) (*dto.RetroPostResult, error) {
	prompt := r.promptRetroPost(coin, postDate)

	geminiAPIResponse, err := r.sendRequest(ctx, prompt)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to send retro post request to gemini", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to send retro post request to gemini: %w", err)
	}

	var result dto.RetroPostResult
	if err := r.parseResponse(geminiAPIResponse, &result); err != nil {
		return nil, err
	}

	if result.Title == "" || result.Content == "" {
		return nil, fmt.Errorf("%w: retro post is missing required fields", ErrMalformedResponse)
	}
	if result.Date == "" {
		result.Date = postDate
	}

	return &result, nil
}

func (r *geminiAIRepository) AstrologicalFactors(ctx context.Context, assetID string) ([]dto.AstroFactor, error) {
	prompt := r.promptAstroFactors(assetID)

	geminiAPIResponse, err := r.sendRequest(ctx, prompt)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to send astrology request to gemini", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to send astrology request to gemini: %w", err)
	}

	factors, err := r.parseAstroFactors(geminiAPIResponse)
	if err != nil {
		return nil, err
	}

	return factors, nil
}

// parseAstroFactors accepts both a bare JSON array and an object wrapping the
// array under a "factors" key, which the model alternates between.
func (r *geminiAIRepository) parseAstroFactors(response *dto.GeminiAPIResponse) ([]dto.AstroFactor, error) {
	raw, err := r.responseText(response)
	if err != nil {
		return nil, err
	}

	var factors []dto.AstroFactor
	if strings.HasPrefix(strings.TrimSpace(raw), "{") {
		var wrapped struct {
			Factors             []dto.AstroFactor `json:"factors"`
			AstrologicalFactors []dto.AstroFactor `json:"astrological_factors"`
		}
		if err := json.Unmarshal([]byte(raw), &wrapped); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		factors = wrapped.Factors
		if len(factors) == 0 {
			factors = wrapped.AstrologicalFactors
		}
	} else if err := json.Unmarshal([]byte(raw), &factors); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if len(factors) == 0 {
		return nil, fmt.Errorf("%w: no astrological factors returned", ErrMalformedResponse)
	}
	for _, f := range factors {
		if f.Name == "" || f.Description == "" {
			return nil, fmt.Errorf("%w: astrological factor is missing required fields", ErrMalformedResponse)
		}
	}

	return factors, nil
}

func (r *geminiAIRepository) sendRequest(ctx context.Context, prompt string) (*dto.GeminiAPIResponse, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, "user"),
	}
	geminiTokenResp, err := r.genAiClient.Models.CountTokens(ctx, r.cfg.Gemini.BaseModel, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count tokens: %w", err)
	}

	r.logger.Debug("Gemini token count",
		logger.IntField("total_tokens", int(geminiTokenResp.TotalTokens)),
		logger.IntField("remaining", r.tokenLimiter.GetRemaining()),
	)
	if err := r.tokenLimiter.Wait(ctx, int(geminiTokenResp.TotalTokens)); err != nil {
		return nil, fmt.Errorf("failed to wait for token gemini limit: %w", err)
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request gemini limit: %w", err)
	}

	payload := dto.GeminiAPIRequest{
		Contents: []dto.Content{{Parts: []dto.Part{{Text: prompt}}}},
	}

	geminiAPIResponse := dto.GeminiAPIResponse{}

	apiURL := fmt.Sprintf("/%s:generateContent?key=%s", r.cfg.Gemini.BaseModel, r.cfg.Gemini.APIKey)

	geminiResp, err := r.httpClient.Post(ctx, apiURL, payload, nil, &geminiAPIResponse)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to gemini: %w", err)
	}

	if geminiResp.StatusCode != http.StatusOK {
		r.logger.ErrorContext(ctx, "failed to get data from gemini", logger.IntField("status_code", geminiResp.StatusCode))
		return nil, fmt.Errorf("gemini api returned status: %d", geminiResp.StatusCode)
	}

	return &geminiAPIResponse, nil
}

func (r *geminiAIRepository) responseText(response *dto.GeminiAPIResponse) (string, error) {
	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no content found", ErrMalformedResponse)
	}

	jsonString := response.Candidates[0].Content.Parts[0].Text
	return strings.Trim(jsonString, "`json\n`"), nil
}

func (r *geminiAIRepository) parseResponse(response *dto.GeminiAPIResponse, dest interface{}) error {
	raw, err := r.responseText(response)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
