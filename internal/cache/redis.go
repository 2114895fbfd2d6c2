package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/claus-risk-server/internal/domain"
)

const redisKeyPrefix = "claus:assessment:"

// RedisCache caches assessments in Redis for deployments where several
// instances share results.
type RedisCache struct {
	redis      *redis.Client
	defaultTTL time.Duration
}

// cachedAssessment wraps an assessment with cache metadata.
type cachedAssessment struct {
	Data      *domain.RiskAssessment `json:"data"`
	CachedAt  time.Time              `json:"cached_at"`
	ExpiresAt time.Time              `json:"expires_at"`
}

// NewRedisCache connects to Redis at redisURL and verifies the
// connection before returning.
func NewRedisCache(redisURL string, ttl time.Duration) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &RedisCache{
		redis:      client,
		defaultTTL: ttl,
	}, nil
}

// Get implements domain.ResultCache.
func (c *RedisCache) Get(ctx context.Context, key string) (*domain.RiskAssessment, bool) {
	val, err := c.redis.Get(ctx, redisKeyPrefix+key).Result()
	if err != nil {
		return nil, false
	}

	var cached cachedAssessment
	if err := json.Unmarshal([]byte(val), &cached); err != nil {
		// Remove corrupted cache entry
		c.redis.Del(ctx, redisKeyPrefix+key)
		return nil, false
	}

	if time.Now().After(cached.ExpiresAt) {
		c.redis.Del(ctx, redisKeyPrefix+key)
		return nil, false
	}

	return cached.Data, true
}

// Set implements domain.ResultCache.
func (c *RedisCache) Set(ctx context.Context, key string, assessment *domain.RiskAssessment) error {
	cached := cachedAssessment{
		Data:      assessment,
		CachedAt:  time.Now(),
		ExpiresAt: time.Now().Add(c.defaultTTL),
	}

	payload, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("failed to marshal cached assessment: %w", err)
	}

	return c.redis.Set(ctx, redisKeyPrefix+key, payload, c.defaultTTL).Err()
}

// Close releases the Redis connection.
func (c *RedisCache) Close() error {
	return c.redis.Close()
}
