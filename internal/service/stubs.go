package service

import (
	"crypto-soothsayer/internal/dto"
	"crypto-soothsayer/pkg/common"
	"crypto-soothsayer/pkg/utils"
	"fmt"
	"time"
)

// Hardcoded stand-ins served when the generation API fails or returns
// garbage. Same shape as the generated content, so clients always have
// something to render.

func fallbackPrediction(asset dto.AssetQuote) *dto.PredictionResult {
	return &dto.PredictionResult{
		Text: fmt.Sprintf("%s will do what every cryptocurrency does: make investors nervous and push them into terrible decisions. Our proprietary Thumb-In-The-Air indicator shows the price may go up, down, or in rare cases stay exactly where it is.", asset.Name),
		Confidence: 85,
		Analysis:   "Based on the immutable laws of FOMO and panic selling, plus the position of Mercury in Taurus.",
	}
}

func fallbackPortfolioRoast(items []dto.PortfolioItem) *dto.PortfolioRoastResult {
	tokenRoasts := make([]dto.TokenRoast, 0, len(items))
	for _, item := range items {
		name := item.Token
		if name == "" {
			name = "Unknown token"
		}
		tokenRoasts = append(tokenRoasts, dto.TokenRoast{
			Name: name,
			Roast: fmt.Sprintf("Ah, %s. The classic pick of someone who enjoys learning from their own mistakes. Buying at $%v was especially inspired: a textbook case of buying the peak and holding to zero.", name, item.BuyPrice),
		})
	}
	return &dto.PortfolioRoastResult{
		OverallRoast:      "Congratulations! Your portfolio is so unique that even our AI refused to analyze it. It looks like you followed tips from random Telegram groups while also buying everything trending on Twitter. That is either genius or a catastrophe, and the smart money is on the latter.",
		TokenRoasts:       tokenRoasts,
		AlternateUniverse: "In an alternate universe you stuffed this money under a mattress and only lost to inflation. Or better, you bought an index fund and are sipping a cocktail on a beach instead of refreshing charts every five minutes hoping your favorite shitcoin does a 10000%.",
	}
}

func fallbackRetroPost(assetName, postDate string) *dto.RetroPostResult {
	return &dto.RetroPostResult{
		Date:       postDate,
		Title:      fmt.Sprintf("%s: an obvious opportunity!", assetName),
		Content:    fmt.Sprintf("Just finished a deep-dive analysis of %s and, as a professional, I can say: this is an obvious opportunity. Every technical indicator points to colossal growth. Don't thank me later, just remember: I said it first!", assetName),
		Indicators: []string{"RSI divergence", "Double Fibonacci convergence", "Hamster volume crossover", "Lunar gravity index"},
		Signature:  "CryptoMasterGuru9000, Certified Predictor of the Future™",
		FollowUp:   "Note: this post was written today. Predicting the past is not a superpower, it is standard practice among crypto analysts.",
	}
}

func fallbackAstroFactors() []dto.AstroFactor {
	return []dto.AstroFactor{
		{
			Name:        "Mercurial inversion",
			Description: "Retrograde Mercury creates electromagnetic ripples in the blockchain.",
			Impact:      "negative",
			Probability: 73,
		},
		{
			Name:        "Saturnian HODL index",
			Description: "Saturn in Taurus strengthens the resolve of long-term holders.",
			Impact:      "positive",
			Probability: 68,
		},
		{
			Name:        "Plutonic restructuring",
			Description: "Pluto is shifting its energy signature, which correlates with on-chain activity.",
			Impact:      "strongly positive",
			Probability: 81,
		},
	}
}

// BackupTrustIndex is the last-resort payload when even the trust index
// computation errors out.
func BackupTrustIndex() *dto.TrustIndexResult {
	sentiment := common.SENTIMENT_NEGATIVE
	if utils.RandomBetween(0, 1) > 0.5 {
		sentiment = common.SENTIMENT_POSITIVE
	}
	return &dto.TrustIndexResult{
		IndexValue:      utils.RandomIntBetween(0, 100),
		MarketSentiment: sentiment,
		Recommendation:  "Our indicators are down, but honestly they never worked anyway. Flipping a coin gives you the same accuracy at a fraction of the cost.",
		ConfidenceFactors: []dto.ConfidenceFactor{
			{Name: "System failure index", Value: 100, Trend: "up"},
			{Name: "Forecast accuracy level", Value: utils.RandomIntBetween(0, 20), Trend: "down"},
		},
		SentimentSource: common.SENTIMENT_SOURCE_BACKUP,
		Timestamp:       time.Now().UTC(),
	}
}
