package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const postalCodeTTL = 24 * time.Hour

// RedisPostalCodeCache stores resolved addresses under "{prefix}cep:{digits}".
type RedisPostalCodeCache struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

var _ interfaces.IPostalCodeCache = (*RedisPostalCodeCache)(nil)

func NewRedisPostalCodeCache(rdb *redis.Client, prefix string) *RedisPostalCodeCache {
	return &RedisPostalCodeCache{rdb: rdb, prefix: prefix, ttl: postalCodeTTL}
}

func (c *RedisPostalCodeCache) key(cep string) string {
	return c.prefix + "cep:" + cep
}

func (c *RedisPostalCodeCache) Get(ctx context.Context, cep string) (entities.PostalAddress, bool, error) {
	raw, err := c.rdb.Get(ctx, c.key(cep)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.PostalAddress{}, false, nil
	}
	if err != nil {
		return entities.PostalAddress{}, false, err
	}
	var addr entities.PostalAddress
	if err := json.Unmarshal(raw, &addr); err != nil {
		return entities.PostalAddress{}, false, err
	}
	return addr, true, nil
}

func (c *RedisPostalCodeCache) Set(ctx context.Context, cep string, addr entities.PostalAddress) error {
	b, err := json.Marshal(addr)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.key(cep), b, c.ttl).Err()
}
