package config

// Redis backs the response cache and the rate limiter.  Connection failure at
// startup is not fatal: the constructor returns nil and both middlewares
// degrade to pass-through.

import (
    "context"
    "crypto/tls"
    "os"
    "strconv"
    "strings"
    "time"

    "github.com/redis/go-redis/v9"
)

// NewRedisClient builds a client from REDIS_ADDR (or REDIS_HOST/REDIS_PORT),
// REDIS_PASSWORD, REDIS_DB and REDIS_TLS.  It pings the server with a short
// timeout and returns nil when the server is unreachable.
func NewRedisClient() *redis.Client {
    addr := os.Getenv("REDIS_ADDR")
    if h, p := os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT"); h != "" && p != "" {
        addr = h + ":" + p
    }
    if addr == "" {
        addr = "localhost:6379"
    }
    dbNum, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
    opts := &redis.Options{
        Addr:     addr,
        Password: os.Getenv("REDIS_PASSWORD"),
        DB:       dbNum,
    }
    if v := os.Getenv("REDIS_TLS"); strings.EqualFold(v, "true") || v == "1" {
        opts.TLSConfig = &tls.Config{InsecureSkipVerify: true}
    }
    client := redis.NewClient(opts)

    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    if err := client.Ping(ctx).Err(); err != nil {
        return nil
    }
    return client
}
