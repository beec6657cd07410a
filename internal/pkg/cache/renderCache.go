package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"menubot/config"
)

// RenderCache сопоставляет хэш текста меню с идентификатором
// уже готового рендера
type RenderCache interface {
	GetID(ctx context.Context, textHash string) (string, bool)
	SetID(ctx context.Context, textHash, renderID string)
}

type redisRenderCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   cfg.MaxRetries,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
}

func NewRenderCache(client *redis.Client, ttl time.Duration) (RenderCache, error) {
	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &redisRenderCache{client: client, ttl: ttl}, nil
}

func (c *redisRenderCache) GetID(ctx context.Context, textHash string) (string, bool) {
	id, err := c.client.Get(ctx, cacheKey(textHash)).Result()
	if err != nil {
		if err != redis.Nil {
			logrus.Warnf("Render cache read failed: %v", err)
		}
		return "", false
	}
	return id, true
}

func (c *redisRenderCache) SetID(ctx context.Context, textHash, renderID string) {
	if err := c.client.Set(ctx, cacheKey(textHash), renderID, c.ttl).Err(); err != nil {
		logrus.Warnf("Render cache write failed: %v", err)
	}
}

func cacheKey(textHash string) string {
	return "render:text:" + textHash
}

// noopRenderCache используется когда Redis выключен в конфигурации
type noopRenderCache struct{}

func NewNoopRenderCache() RenderCache {
	return &noopRenderCache{}
}

func (noopRenderCache) GetID(ctx context.Context, textHash string) (string, bool) { return "", false }
func (noopRenderCache) SetID(ctx context.Context, textHash, renderID string)      {}
