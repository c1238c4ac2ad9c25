package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// PriceCache implements ports.PriceCache using Redis.
type PriceCache struct {
	client *goredis.Client
	prefix string
}

// NewPriceCache creates a new Redis-backed spot price cache.
func NewPriceCache(client *goredis.Client) *PriceCache {
	return &PriceCache{
		client: client,
		prefix: "price:",
	}
}

func (c *PriceCache) key(symbol string) string {
	return c.prefix + strings.ToLower(symbol)
}

// Get returns the cached USD price for symbol. ok is false on a miss.
func (c *PriceCache) Get(ctx context.Context, symbol string) (decimal.Decimal, bool, error) {
	val, err := c.client.Get(ctx, c.key(symbol)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("redis price get: %w", err)
	}

	price, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("redis price decode %q: %w", val, err)
	}
	return price, true, nil
}

// Set stores a USD price for symbol with TTL.
func (c *PriceCache) Set(ctx context.Context, symbol string, price decimal.Decimal, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.key(symbol), price.String(), ttl).Err(); err != nil {
		return fmt.Errorf("redis price set: %w", err)
	}
	return nil
}
