package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"lokal/internal/dto"
	"lokal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrCacheMiss is returned when no cached response exists for a user.
var ErrCacheMiss = errors.New("cache miss")

// RecommendationCache keeps recently computed recommendation envelopes in
// Redis. Recommendations are a pure function of the like graph, so a short
// TTL only delays how quickly new likes show up in results.
type RecommendationCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRecommendationCache(cfg *config.RedisConfig, logger *zap.Logger) (*RecommendationCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	logger.Info("Recommendation cache connected", zap.String("addr", cfg.Addr))

	return &RecommendationCache{
		client: client,
		ttl:    cfg.CacheTTL,
		logger: logger,
	}, nil
}

func (c *RecommendationCache) Get(ctx context.Context, userID string) (*dto.RecommendationResponse, error) {
	payload, err := c.client.Get(ctx, cacheKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var resp dto.RecommendationResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *RecommendationCache) Set(ctx context.Context, userID string, resp *dto.RecommendationResponse) error {
	payload, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(userID), payload, c.ttl).Err()
}

// Invalidate drops the cached response for a user, e.g. after a new like.
func (c *RecommendationCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, cacheKey(userID)).Err()
}

func (c *RecommendationCache) Close() error {
	return c.client.Close()
}

func cacheKey(userID string) string {
	return "recommendations:" + userID
}
