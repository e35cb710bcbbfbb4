package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sadmanCR7/aeropulse/config"
	"github.com/sadmanCR7/aeropulse/internal/domain"
)

// RedisCache holds read-mostly reference data: the airport list and the
// per-origin price map. Booking state is never cached.
type RedisCache struct {
	client      *redis.Client
	airportsTTL time.Duration
	priceMapTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, airportsTTL, priceMapTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:      redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		airportsTTL: airportsTTL,
		priceMapTTL: priceMapTTL,
	}
}

func (c *RedisCache) GetAirports(ctx context.Context) ([]domain.Airport, error) {
	data, err := c.client.Get(ctx, airportsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var airports []domain.Airport
	if err := json.Unmarshal(data, &airports); err != nil {
		return nil, err
	}
	return airports, nil
}

func (c *RedisCache) SetAirports(ctx context.Context, airports []domain.Airport) error {
	payload, err := json.Marshal(airports)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, airportsKey(), payload, c.airportsTTL).Err()
}

func (c *RedisCache) GetPriceMap(ctx context.Context, origin string) (map[string]int64, error) {
	data, err := c.client.Get(ctx, priceMapKey(origin)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var prices map[string]int64
	if err := json.Unmarshal(data, &prices); err != nil {
		return nil, err
	}
	return prices, nil
}

func (c *RedisCache) SetPriceMap(ctx context.Context, origin string, prices map[string]int64) error {
	payload, err := json.Marshal(prices)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, priceMapKey(origin), payload, c.priceMapTTL).Err()
}

func airportsKey() string {
	return "cache:airports"
}

func priceMapKey(origin string) string {
	return fmt.Sprintf("cache:pricemap:%s", origin)
}
