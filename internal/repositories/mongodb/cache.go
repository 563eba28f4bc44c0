package mongodb

import (
	"context"
	"time"
)

// CacheService is the slice of the cache the rate repositories need for
// cache-aside reads. Satisfied by pkg/cache.RedisCache.
type CacheService interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Rate tables change rarely; a short TTL keeps back-office edits visible
// without a cache invalidation protocol.
const rateCacheTTL = 5 * time.Minute
