package config

import "time"

// CacheConfig controls the Redis response cache applied to public listing
// endpoints.  When Enabled is false or no Redis client is available the
// middleware is a no-op.  MaxBodyBytes bounds how large a response may be
// before it is skipped rather than stored.
type CacheConfig struct {
    Enabled      bool
    TTL          time.Duration
    Prefix       string
    MaxBodyBytes int
}

// LoadCacheConfig reads CACHE_* environment variables, applying defaults when
// unset.  Only GET responses are ever cached so there is no method list.
func LoadCacheConfig() CacheConfig {
    return CacheConfig{
        Enabled:      envBool("CACHE_ENABLED", true),
        TTL:          envDur("CACHE_TTL", 30*time.Second),
        Prefix:       envStr("CACHE_PREFIX", "cache"),
        MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
    }
}
