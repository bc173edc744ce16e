package catalog

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "storefront:catalog:"

// RedisCache Redis의 키 만료(TTL)를 사용하는 Cache입니다. 여러 인스턴스가 같은 캐시를 공유할 수 있습니다.
type RedisCache struct {
	client redis.UniversalClient
}

var _ Cache = (*RedisCache)(nil)

// NewRedisCache 새로운 RedisCache를 생성합니다.
func NewRedisCache(client redis.UniversalClient) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Unavailable, "Redis 캐시 조회에 실패했습니다")
	}

	return data, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, redisKeyPrefix+key, value, ttl).Err(); err != nil {
		return apperrors.Wrap(err, apperrors.Unavailable, "Redis 캐시 저장에 실패했습니다")
	}
	return nil
}

// Ping Redis 연결 상태를 확인합니다.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close Redis 연결을 닫습니다.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
