// Package cache implementa la caché del catálogo de dropshipping sobre Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/courier-api/internal/application/dto"
	"github.com/jhoicas/courier-api/internal/application/usecase"
)

var _ usecase.CatalogCache = (*RedisCatalogCache)(nil)

const versionKey = "catalog:version"

// RedisCatalogCache guarda páginas del catálogo bajo claves versionadas
// (catalog:v{n}:{limit}:{offset}). Invalidar incrementa la versión; las páginas viejas expiran por TTL.
type RedisCatalogCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisCatalogCache construye la caché.
func NewRedisCatalogCache(rdb *redis.Client, ttl time.Duration) *RedisCatalogCache {
	return &RedisCatalogCache{rdb: rdb, ttl: ttl}
}

// NewClient crea y valida un cliente go-redis a partir de una URL redis://.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

func pageKey(version int64, limit, offset int) string {
	return fmt.Sprintf("catalog:v%d:%d:%d", version, limit, offset)
}

func (c *RedisCatalogCache) version(ctx context.Context) (int64, error) {
	v, err := c.rdb.Get(ctx, versionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// Get devuelve la página cacheada en la versión vigente y esa versión, para pasarla a Set.
func (c *RedisCatalogCache) Get(ctx context.Context, limit, offset int) (*dto.ArticleListResponse, int64, bool, error) {
	v, err := c.version(ctx)
	if err != nil {
		return nil, 0, false, fmt.Errorf("leer versión del catálogo: %w", err)
	}
	raw, err := c.rdb.Get(ctx, pageKey(v, limit, offset)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, v, false, nil
	}
	if err != nil {
		return nil, v, false, fmt.Errorf("leer página del catálogo: %w", err)
	}
	var page dto.ArticleListResponse
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, v, false, fmt.Errorf("decodificar página del catálogo: %w", err)
	}
	return &page, v, true, nil
}

// Set guarda la página bajo la versión que devolvió Get, con el TTL configurado.
// Si hubo un Invalidate entretanto, la clave ya no es la vigente y la página no se sirve.
func (c *RedisCatalogCache) Set(ctx context.Context, version int64, limit, offset int, page *dto.ArticleListResponse) error {
	raw, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("codificar página del catálogo: %w", err)
	}
	return c.rdb.Set(ctx, pageKey(version, limit, offset), raw, c.ttl).Err()
}

// Invalidate descarta todas las páginas incrementando la versión.
func (c *RedisCatalogCache) Invalidate(ctx context.Context) error {
	return c.rdb.Incr(ctx, versionKey).Err()
}
