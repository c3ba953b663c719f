package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"suprimentos/internal/domain/entities"
	"suprimentos/internal/usecase/interfaces"
)

const (
	balanceKeyPrefix  = "suprimentos:balance:"
	defaultBalanceTTL = 30 * time.Second
)

type RedisBalanceCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

var _ interfaces.IBalanceCache = (*RedisBalanceCache)(nil)

func NewRedisBalanceCache(client redis.Cmdable, ttl time.Duration) *RedisBalanceCache {
	if ttl <= 0 {
		ttl = defaultBalanceTTL
	}
	return &RedisBalanceCache{client: client, ttl: ttl}
}

func balanceKey(budgetID string) string {
	return balanceKeyPrefix + budgetID
}

func (c *RedisBalanceCache) Get(ctx context.Context, budgetID string) (entities.Balance, bool, error) {
	raw, err := c.client.Get(ctx, balanceKey(budgetID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.Balance{}, false, nil
	}
	if err != nil {
		return entities.Balance{}, false, err
	}

	var balance entities.Balance
	if err := json.Unmarshal(raw, &balance); err != nil {
		// A corrupt entry behaves like a miss; the next Set overwrites it.
		return entities.Balance{}, false, nil
	}
	return balance, true, nil
}

func (c *RedisBalanceCache) Set(ctx context.Context, budgetID string, balance entities.Balance) error {
	raw, err := json.Marshal(balance)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, balanceKey(budgetID), raw, c.ttl).Err()
}

func (c *RedisBalanceCache) Delete(ctx context.Context, budgetID string) error {
	return c.client.Del(ctx, balanceKey(budgetID)).Err()
}
