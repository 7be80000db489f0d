package store

import (
	"context"
	"encoding/json"
	"errors"

	"paulocell_pdv/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each collection as a plain string value.
type RedisStore struct {
	rdb *redis.Client
}

var _ interfaces.ICollectionStore = (*RedisStore)(nil)

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	v, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(v), nil
}

func (s *RedisStore) Put(ctx context.Context, key string, value json.RawMessage) error {
	return s.rdb.Set(ctx, key, []byte(value), 0).Err()
}
