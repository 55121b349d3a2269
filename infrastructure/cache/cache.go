package cache

import (
	"context"

	"github.com/redis/go-redis/v9"

	"swishview/infrastructure/logger"
)

// NewCache connects a Redis client. A failed ping is reported but the client
// is still returned; callers tolerate a nil or unreachable cache.
func NewCache(ctx context.Context, addr, username, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not reachable")
		return nil, err
	}
	return client, nil
}
