package common

// Cache key formats. Date-scoped keys roll over naturally at midnight UTC.
const (
	KEY_PREDICTION_DAILY = "prediction:%s:%s" // asset id, date
	KEY_PORTFOLIO_ROAST  = "portfolio_roast:%s"
	KEY_RETRO_POST       = "retro_post:%s"
	KEY_ASTRO_CHART      = "astro_chart:%s:%s" // asset id, timeframe
	KEY_CRYPTO_MARKETS   = "coingecko:markets"
)

const (
	SENTIMENT_POSITIVE = "positive"
	SENTIMENT_NEGATIVE = "negative"
)

const (
	SENTIMENT_SOURCE_FEAR_GREED = "fear_greed"
	SENTIMENT_SOURCE_BTC_PRICE  = "btc_price"
	SENTIMENT_SOURCE_RANDOM     = "random"
	SENTIMENT_SOURCE_BACKUP     = "backup"
)

const (
	TIMEFRAME_WEEK    = "week"
	TIMEFRAME_MONTH   = "month"
	TIMEFRAME_QUARTER = "quarter"
	TIMEFRAME_YEAR    = "year"
)

// TimeframeDays maps a request timeframe to a day count for historical data.
func TimeframeDays(timeframe string) int {
	switch timeframe {
	case TIMEFRAME_WEEK:
		return 7
	case TIMEFRAME_MONTH:
		return 30
	case TIMEFRAME_QUARTER:
		return 90
	default:
		return 365
	}
}
