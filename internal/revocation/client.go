package revocation

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"account-api/pkg/config"
)

// NewRedisClient connects to the revocation store. Connection failure is not
// fatal: blacklist reads fail open, so the service stays available and the
// signature and expiry checks remain the primary guard.
func NewRedisClient(redisConfig config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisConfig.Addr,
		Password: redisConfig.Password,
		DB:       redisConfig.Db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := client.Ping(ctx).Err()
	if err != nil {
		return client, err
	}

	return client, nil
}
