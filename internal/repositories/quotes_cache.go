package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// ErrQuoteNotCached is returned on a cache miss.
var ErrQuoteNotCached = errors.New("quote not cached")

// QuoteCacheRepository caches market quotes in Redis with a short TTL so the
// external quote API is not hit on every request.
type QuoteCacheRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewQuoteCacheRepository(rdb *redis.Client, ttl time.Duration) *QuoteCacheRepository {
	return &QuoteCacheRepository{rdb: rdb, ttl: ttl}
}

func quoteKey(asset string) string {
	return "quote:" + asset
}

// GetPrice returns the cached price for an asset, or ErrQuoteNotCached.
func (r *QuoteCacheRepository) GetPrice(ctx context.Context, asset string) (decimal.Decimal, error) {
	val, err := r.rdb.Get(ctx, quoteKey(asset)).Result()
	if errors.Is(err, redis.Nil) {
		return decimal.Zero, ErrQuoteNotCached
	}
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(val)
}

// SetPrice caches the price for an asset.
func (r *QuoteCacheRepository) SetPrice(ctx context.Context, asset string, price decimal.Decimal) error {
	return r.rdb.Set(ctx, quoteKey(asset), price.String(), r.ttl).Err()
}
