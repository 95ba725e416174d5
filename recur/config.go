package recur

import (
	"log/slog"
	"time"
)

// DefaultMaxDates caps open-ended expansions at two years of daily dates
// plus one.
const DefaultMaxDates = 731

// EngineConfig holds configuration options for the expansion engine.
type EngineConfig struct {
	// MaxDates is the safety cap on accumulated dates per expansion.
	// Zero or negative means DefaultMaxDates.
	MaxDates int

	// Cache configuration
	CacheEnabled bool
	CacheConfig  CacheConfig

	// Logger receives the truncation diagnostic. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultEngineConfig provides sensible defaults for production use.
var DefaultEngineConfig = EngineConfig{
	MaxDates:     DefaultMaxDates,
	CacheEnabled: true,
	CacheConfig:  DefaultCacheConfig,
}

// HighThroughputConfig is tuned for editors that recompute on every
// keystroke: longer-lived cache entries and more of them.
var HighThroughputConfig = EngineConfig{
	MaxDates:     DefaultMaxDates,
	CacheEnabled: true,
	CacheConfig: CacheConfig{
		TTL:             30 * time.Minute,
		MaxEntries:      5000,
		CleanupInterval: 10 * time.Minute,
	},
}

// DisabledCacheConfig turns off memoization entirely; every call recomputes.
var DisabledCacheConfig = EngineConfig{
	MaxDates:     DefaultMaxDates,
	CacheEnabled: false,
}
