package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/salesboard/backend/internal/application/analytics"
)

// RedisReportCache implements analytics.ReportCache backed by Redis. It is
// suitable for deployments where multiple instances should share computed
// reports. Cache errors are logged and treated as misses.
type RedisReportCache struct {
	client    *redis.Client
	keyPrefix string
	logger    *zap.Logger
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisReportCache creates a Redis-backed report cache and verifies the
// connection with a ping.
func NewRedisReportCache(cfg RedisConfig, logger *zap.Logger) (*RedisReportCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisReportCache{
		client:    client,
		keyPrefix: "report:",
		logger:    logger,
	}, nil
}

// NewRedisReportCacheWithClient creates a cache with an existing Redis client.
// Useful for testing or when sharing a client across components.
func NewRedisReportCacheWithClient(client *redis.Client, keyPrefix string, logger *zap.Logger) *RedisReportCache {
	if keyPrefix == "" {
		keyPrefix = "report:"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisReportCache{
		client:    client,
		keyPrefix: keyPrefix,
		logger:    logger,
	}
}

// Get retrieves a cached report. Any Redis or decoding error counts as a miss.
func (c *RedisReportCache) Get(ctx context.Context, key string) ([]analytics.SellerReportEntry, bool) {
	data, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Redis report cache read failed",
				zap.String("key", key),
				zap.Error(err),
			)
		}
		return nil, false
	}

	var entries []analytics.SellerReportEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		c.logger.Warn("Redis report cache entry is corrupt, discarding",
			zap.String("key", key),
			zap.Error(err),
		)
		c.client.Del(ctx, c.keyPrefix+key)
		return nil, false
	}
	return entries, true
}

// Set stores a computed report with a TTL. Failures are logged and ignored:
// the report has already been computed and returned to the caller.
func (c *RedisReportCache) Set(ctx context.Context, key string, entries []analytics.SellerReportEntry, ttl time.Duration) {
	data, err := json.Marshal(entries)
	if err != nil {
		c.logger.Warn("Failed to encode report for caching",
			zap.String("key", key),
			zap.Error(err),
		)
		return
	}

	if err := c.client.Set(ctx, c.keyPrefix+key, data, ttl).Err(); err != nil {
		c.logger.Warn("Redis report cache write failed",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

// Invalidate removes all cached reports under this cache's prefix. Called
// after snapshot data changes.
func (c *RedisReportCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.keyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan report cache keys: %w", err)
	}
	if len(keys) > 0 {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("failed to delete report cache keys: %w", err)
		}
	}
	return nil
}

// Close closes the Redis client
func (c *RedisReportCache) Close() error {
	return c.client.Close()
}

// Ensure RedisReportCache implements ReportCache
var _ analytics.ReportCache = (*RedisReportCache)(nil)
