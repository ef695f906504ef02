package config

import "time"

const (
	// Pexels API
	ProviderTimeout  = 30 * time.Second
	PexelsMaxPerPage = 80

	// Media items delivered per orientation selection
	FetchCount = 1

	// Session lifecycle
	SessionIdleTimeout   = 30 * time.Minute
	SessionSweepInterval = 5 * time.Minute

	// Rate limits (per window, per user)
	RateLimitPerWindow = 20
	RateLimitWindow    = time.Minute

	// Trending searches
	TrendingCacheTTL    = 1 * time.Hour
	TrendingLimit       = 8
	TrendingSuggestions = 3

	// Admin stats
	TopQueriesLimit = 5
)
