package repository

import (
	"crypto-soothsayer/internal/dto"
	"encoding/json"
	"fmt"
	"strings"
)

func (r *geminiAIRepository) promptPredictAsset(asset dto.AssetQuote) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(
		"You are a sarcastic, deliberately toxic AI crypto soothsayer. Write a satirical price prediction for %s (%s).\n",
		asset.Name, strings.ToUpper(asset.Symbol),
	))
	sb.WriteString(fmt.Sprintf("Current price: $%v\n\n", asset.CurrentPrice))

	sb.WriteString(`### Requirements:
1. Maximum sarcasm, overconfident "expert" voice.
2. Absurd but pseudo-scientific justifications and made-up financial jargon.
3. The more confident the prediction sounds, the more absurd it must be.
4. Include at least one ridiculous correlation with an unrelated phenomenon.
`)

	sb.WriteString(`
### Respond with JSON only, in this exact shape:
{
  "text": "the satirical prediction, one to two paragraphs",
  "confidence": number between 0 and 100 (higher for more absurd predictions),
  "analysis": "pseudo-scientific justification in one or two sentences"
}
`)

	return sb.String()
}

func (r *geminiAIRepository) promptRoastPortfolio(items []dto.PortfolioItem) (string, error) {
	encoded, err := json.Marshal(items)
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	sb.WriteString("You are a scathing, sarcastic AI financial analyst. Roast the following crypto portfolio:\n")
	sb.Write(encoded)
	sb.WriteString("\n\n")

	sb.WriteString(`### Requirements:
1. A merciless overall takedown of the portfolio.
2. A personalized mockery for every single token.
3. Describe an "alternate universe" where the owner made the opposite choices.
4. Toxic but funny; sprinkle in a few financial-ruin metaphors.
`)

	sb.WriteString(`
### Respond with JSON only, in this exact shape:
{
  "overall_roast": "one to two paragraphs about the portfolio as a whole",
  "token_roasts": [
    {"name": "token name", "roast": "personalized mockery of that pick"}
  ],
  "alternate_universe": "description of the universe where the choices were reversed"
}
`)

	return sb.String(), nil
}

func (r *geminiAIRepository) promptRetroPost(coin *dto.CoinDetail, postDate string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(
		"You are a sarcastic AI fabricating a fake 'genius' prediction post supposedly published on %s, which called the rise of %s from a much lower price all the way to its peak of $%v.\n\n",
		postDate, coin.Name, coin.ATHPrice,
	))

	sb.WriteString(`### Requirements:
1. Boastful, self-congratulatory tone.
2. Mention "secret signals" that supposedly pointed to the rally.
3. Name several technical indicators with pseudo-scientific names.
4. Pretend it was "obvious" to any professional.
`)

	sb.WriteString(fmt.Sprintf(`
### Respond with JSON only, in this exact shape:
{
  "date": "%s",
  "title": "the post title",
  "content": "the post body, one to two paragraphs",
  "indicators": ["three to five fake technical indicators"],
  "signature": "signature of the fictional expert",
  "follow_up": "a short sarcastic aside from our system about hindsight"
}
`, postDate))

	return sb.String()
}

func (r *geminiAIRepository) promptAstroFactors(assetID string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(
		"You are a sarcastic crypto astrologer. Invent three absurd but scientific-sounding 'astrological factors' that supposedly drive the price of %s.\n",
		assetID,
	))
	sb.WriteString("Each factor needs a pseudo-scientific name tied to a planet or star, a 'scientific' explanation, and an impact rating.\n")

	sb.WriteString(`
### Respond with a JSON array only, in this exact shape:
[
  {
    "name": "factor name mentioning a planet or star",
    "description": "pseudo-scientific explanation of the price influence",
    "impact": "strongly positive|positive|neutral|negative|strongly negative",
    "probability": number between 50 and 95
  }
]
`)

	return sb.String()
}
