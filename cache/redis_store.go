package catalog_cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Modeva-Ecommerce/product-filter-api/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// DefaultPrefix namespaces every key this service writes.
const DefaultPrefix = "pfa:"

const snapshotKey = "catalog:snapshot"

// RedisStore shares the snapshot between instances as one JSON value.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger zerolog.Logger
}

// NewRedisStore wraps an already connected client.
func NewRedisStore(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *RedisStore {
	if ttl <= 0 {
		ttl = TTL
	}
	return &RedisStore{
		client: client,
		prefix: DefaultPrefix,
		ttl:    ttl,
		logger: logger.With().Str("component", "catalog-cache").Logger(),
	}
}

// Key returns the full Redis key of the snapshot.
func (s *RedisStore) Key() string {
	return s.prefix + snapshotKey
}

func (s *RedisStore) Get(ctx context.Context) (models.ProductList, bool) {
	raw, err := s.client.Get(ctx, s.Key()).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.ProductList{}, false
	}
	if err != nil {
		s.logger.Warn().Err(err).Msg("redis get failed, treating as miss")
		return models.ProductList{}, false
	}

	var list models.ProductList
	if err := json.Unmarshal(raw, &list); err != nil {
		s.logger.Warn().Err(err).Msg("corrupt cached catalog, dropping")
		s.Invalidate(ctx)
		return models.ProductList{}, false
	}
	return list, true
}

func (s *RedisStore) Set(ctx context.Context, list models.ProductList) {
	raw, err := json.Marshal(list)
	if err != nil {
		s.logger.Warn().Err(err).Msg("encode catalog for cache")
		return
	}
	if err := s.client.Set(ctx, s.Key(), raw, s.ttl).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("redis set failed")
	}
}

func (s *RedisStore) Invalidate(ctx context.Context) {
	if err := s.client.Del(ctx, s.Key()).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("redis delete failed")
	}
}
