package repositories

import (
	"context"
	"encoding/json"
	"time"

	"hawaiielite-properties/internal/models"
	"hawaiielite-properties/pkg/cache"
	"hawaiielite-properties/pkg/metrics"

	"github.com/go-redis/redis/v8"
)

type searchCache struct {
	client *redis.Client
}

// NewSearchCache returns a Redis-backed SearchCache. A nil client falls back
// to the shared cache.RedisClient.
func NewSearchCache(client *redis.Client) SearchCache {
	if client == nil {
		client = cache.RedisClient
	}
	return &searchCache{client: client}
}

func (c *searchCache) GetSearchResult(ctx context.Context, key string) (*models.SearchResult, error) {
	start := time.Now()
	data, err := c.client.Get(ctx, key).Bytes()
	metrics.RedisOperationDuration.WithLabelValues("get_search").Observe(time.Since(start).Seconds())
	if err == redis.Nil {
		metrics.CacheMissesTotal.Inc()
		return nil, nil
	}
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("get_search").Inc()
		return nil, cache.NewCacheError("get_search", key, err)
	}

	var result models.SearchResult
	if err := json.Unmarshal(data, &result); err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("get_search_unmarshal").Inc()
		return nil, cache.NewCacheError("get_search_unmarshal", key, err)
	}
	metrics.CacheHitsTotal.Inc()
	return &result, nil
}

func (c *searchCache) SetSearchResult(ctx context.Context, key string, result *models.SearchResult, expiration time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		return cache.NewCacheError("set_search_marshal", key, err)
	}
	start := time.Now()
	err = c.client.Set(ctx, key, data, expiration).Err()
	metrics.RedisOperationDuration.WithLabelValues("set_search").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set_search").Inc()
		return cache.NewCacheError("set_search", key, err)
	}
	return nil
}
