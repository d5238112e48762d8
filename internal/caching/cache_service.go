package caching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"vsdcgateway/internal/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "vsdc:"

type CacheService interface {
	// Item caching, keyed by item code
	GetItem(ctx context.Context, itemCd string) (*models.Item, error)
	SetItem(ctx context.Context, item *models.Item, ttl time.Duration) error
	DeleteItem(ctx context.Context, itemCd string) error

	// Rate limiting
	IsRateLimited(ctx context.Context, key string, limit int, window time.Duration) (bool, error)

	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

// NewRedisCacheService accepts host:port or a redis:// or rediss:// URL.
func NewRedisCacheService(addr, password string, db int, logger *zap.Logger) CacheService {
	opts := redisOptions(addr, password, db, logger)
	client := redis.NewClient(opts)

	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		logger.Warn("redis ping failed on initialization", zap.String("addr", opts.Addr), zap.Error(pingErr))
	} else {
		logger.Debug("redis connection established", zap.String("addr", opts.Addr))
	}

	return &redisCacheService{client: client}
}

// redisOptions keeps every setting a URL carries. An explicit password or a non-zero db
// overrides the URL.
func redisOptions(addr, password string, db int, logger *zap.Logger) *redis.Options {
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		opts, err := redis.ParseURL(addr)
		if err == nil {
			if password != "" {
				opts.Password = password
			}
			if db != 0 {
				opts.DB = db
			}
			return opts
		}
		logger.Warn("invalid redis url, using it as an address", zap.Error(err))
	}
	return &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
}

// NewCacheServiceWithClient wraps an existing client.
func NewCacheServiceWithClient(client *redis.Client) CacheService {
	return &redisCacheService{client: client}
}

func itemKey(itemCd string) string {
	return fmt.Sprintf("%sitem:%s", keyPrefix, itemCd)
}

func (r *redisCacheService) GetItem(ctx context.Context, itemCd string) (*models.Item, error) {
	data, err := r.client.Get(ctx, itemKey(itemCd)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var item models.Item
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *redisCacheService) SetItem(ctx context.Context, item *models.Item, ttl time.Duration) error {
	data, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, itemKey(item.ItemCd), data, ttl).Err()
}

func (r *redisCacheService) DeleteItem(ctx context.Context, itemCd string) error {
	return r.client.Del(ctx, itemKey(itemCd)).Err()
}

func (r *redisCacheService) IsRateLimited(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	cacheKey := fmt.Sprintf("%sratelimit:%s", keyPrefix, key)

	var (
		incr *redis.IntCmd
		ttl  *redis.DurationCmd
	)
	if _, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, cacheKey)
		ttl = pipe.TTL(ctx, cacheKey)
		return nil
	}); err != nil {
		return false, err
	}

	// a counter without expiry starts the window, including one left behind by a failed Expire
	if ttl.Val() < 0 {
		if err := r.client.Expire(ctx, cacheKey, window).Err(); err != nil {
			return false, err
		}
	}

	return incr.Val() > int64(limit), nil
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
