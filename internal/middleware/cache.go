package middleware

import (
    "bytes"
    "context"
    "crypto/sha1"
    "fmt"
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/hostel-room-booking/internal/config"
)

// bodyRecorder captures the response body while forwarding it to the client.
// Capture stops past the configured limit; oversized responses are served
// normally but never cached.
type bodyRecorder struct {
    http.ResponseWriter
    status int
    buf    bytes.Buffer
    size   int
    limit  int
}

func (w *bodyRecorder) WriteHeader(code int) {
    w.status = code
    w.ResponseWriter.WriteHeader(code)
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
    w.size += len(b)
    if w.limit <= 0 || w.size <= w.limit {
        w.buf.Write(b)
    }
    return w.ResponseWriter.Write(b)
}

// cacheKey hashes route + raw query under the configured prefix so distinct
// filter/sort/page combinations cache independently.
func cacheKey(prefix string, c echo.Context) string {
    sum := sha1.Sum([]byte(c.Path() + "?" + c.Request().URL.RawQuery))
    return fmt.Sprintf("%s:%x", prefix, sum)
}

// NewResponseCache caches successful GET responses in Redis.  The stored
// payload is "content-type\n" + body; anything else about the response is
// reconstructed.  Only 200s are cached, and only bodies within the size
// limit.  Cache hits are marked with an X-Cache header.
func NewResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc {
            return func(c echo.Context) error { return next(c) }
        }
    }

    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if c.Request().Method != http.MethodGet {
                return next(c)
            }

            ctx := c.Request().Context()
            key := cacheKey(cfg.Prefix, c)

            if raw, err := rdb.Get(ctx, key).Result(); err == nil {
                ct, body, found := strings.Cut(raw, "\n")
                if found {
                    c.Response().Header().Set("X-Cache", "HIT")
                    return c.Blob(http.StatusOK, ct, []byte(body))
                }
            }

            rec := &bodyRecorder{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
            c.Response().Writer = rec
            c.Response().Header().Set("X-Cache", "MISS")

            if err := next(c); err != nil {
                return err
            }

            if rec.status == http.StatusOK && (cfg.MaxBodyBytes <= 0 || rec.size <= cfg.MaxBodyBytes) {
                ct := c.Response().Header().Get(echo.HeaderContentType)
                payload := ct + "\n" + rec.buf.String()
                // Detached context: the client response is already on the wire.
                _ = rdb.SetEx(context.Background(), key, payload, cfg.TTL).Err()
            }
            return nil
        }
    }
}
