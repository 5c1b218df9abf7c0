package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"github.com/polkiloo/storefront/internal/config"
)

const pingTimeout = 5 * time.Second

// Client wraps the redis connection used for session carts.
type Client struct {
	rdb    *goredis.Client
	logger *slog.Logger
}

// New opens a client and verifies the server answers PING.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	logger.Info("redis connected", slog.String("addr", cfg.RedisAddr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// HealthCheck pings redis.
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return c.rdb.Ping(ctx).Err()
}

// Close releases the connection pool.
func (c *Client) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
