package database

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns a pinged client, or nil when address is empty.
func ConnectRedis(ctx context.Context, address, password string) (*redis.Client, error) {
	if address == "" {
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}
