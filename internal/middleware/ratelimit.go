package middleware

import (
    "math"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/hostel-room-booking/internal/config"
)

// fixedWindowScript increments the per-client counter and arms the window TTL
// in the same Redis round trip, so a counter can never outlive its window.  A
// key found without a TTL is re-armed rather than left counting forever.
// Returns {count, pttl_ms}.
var fixedWindowScript = redis.NewScript(`
    local count = redis.call('INCR', KEYS[1])
    if count == 1 then
        redis.call('PEXPIRE', KEYS[1], ARGV[1])
    end
    local ttl = redis.call('PTTL', KEYS[1])
    if ttl < 0 then
        redis.call('PEXPIRE', KEYS[1], ARGV[1])
        ttl = tonumber(ARGV[1])
    end
    return { count, ttl }
`)

// NewRateLimit returns a fixed-window per-IP rate limiter backed by Redis.
// The first request in a window creates a counter that expires with the
// window; once the counter passes the limit the request is rejected with 429
// and a Retry-After hint.  A Redis error fails open so the API keeps serving.
func NewRateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc {
            return func(c echo.Context) error { return next(c) }
        }
    }

    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            ip := c.RealIP()
            if ip == "" {
                ip = "unknown"
            }
            key := cfg.Prefix + ":ip:" + ip
            ctx := c.Request().Context()

            vals, err := fixedWindowScript.Run(ctx, rdb, []string{key}, cfg.Window.Milliseconds()).Int64Slice()
            if err != nil || len(vals) != 2 {
                return next(c)
            }
            count := vals[0]
            ttl := time.Duration(vals[1]) * time.Millisecond

            remaining, retryAfter, allowed := windowVerdict(count, cfg.Limit, ttl, cfg.Window)
            c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
            c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

            if !allowed {
                c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
                return c.JSON(http.StatusTooManyRequests, echo.Map{"message": "rate limit exceeded"})
            }
            return next(c)
        }
    }
}

// windowVerdict turns the script result into the response contract: requests
// left in the window, the Retry-After seconds when rejected, and whether this
// request passes.
func windowVerdict(count int64, limit int, ttl, window time.Duration) (remaining int64, retryAfter int, allowed bool) {
    remaining = int64(limit) - count
    if remaining < 0 {
        remaining = 0
    }
    allowed = count <= int64(limit)
    if !allowed {
        retryAfter = int(math.Ceil(ttl.Seconds()))
        if retryAfter < 1 {
            retryAfter = int(window / time.Second)
        }
    }
    return remaining, retryAfter, allowed
}
