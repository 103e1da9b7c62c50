// Package redis keeps the short-lived state of the back office in Redis: the
// delivery fee draft sessions and the cached order status boards. Values are JSON
// under prefixed keys with a TTL.
package redis

import (
	"context"
	"fmt"

	goredis "github.com/go-redis/redis/v8"
)

const (
	draftKeyPrefix = "backoffice:deliveryfee:draft:"
	boardKeyPrefix = "backoffice:orders:board:"
)

// Connect parses a redis:// URL and pings the server.
func Connect(ctx context.Context, redisURL string) (*goredis.Client, error) {
	opt, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := goredis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return rdb, nil
}
