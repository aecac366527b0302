package domain

import "time"

const (
	// Provider names used by the rate limit proxy and upstream errors
	PROVIDER_COINGECKO     = "coingecko"
	PROVIDER_COINMARKETCAP = "coinmarketcap"
	PROVIDER_NEWSAPI       = "newsapi"

	// Quote currency for every cached price
	VS_CURRENCY = "usd"

	// Pacing defaults for the bulk fetch loops
	DEFAULT_RPM_LIMIT     = 30
	DEFAULT_SAFETY_MARGIN = 100 * time.Millisecond
	DEFAULT_COOL_DOWN     = 60 * time.Second

	// Singleton row ids
	EXCHANGE_RATE_ID  = 1
	GLOBAL_METRICS_ID = 1
)
