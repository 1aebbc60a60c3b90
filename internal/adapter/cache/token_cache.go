// Package cache holds in-process caches built on go-cache.
package cache

import (
	"context"
	"time"

	"pst-registry/internal/core/domain"
	"pst-registry/internal/core/ports"

	"github.com/jackc/pgx/v5"
	gocache "github.com/patrickmn/go-cache"
)

// TokenCache decorates a ports.TokenRepository with a read-through cache.
// Token records are append-only, so a cached record never goes stale.
// Misses are not cached: a token may be appointed right after a miss.
type TokenCache struct {
	next  ports.TokenRepository
	cache *gocache.Cache
}

// NewTokenCache wraps next. ttl bounds memory use, not staleness.
func NewTokenCache(next ports.TokenRepository, ttl time.Duration) *TokenCache {
	return &TokenCache{
		next:  next,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (c *TokenCache) Create(ctx context.Context, tx pgx.Tx, token *domain.TokenRecord) error {
	return c.next.Create(ctx, tx, token)
}

func (c *TokenCache) GetByAddress(ctx context.Context, addr domain.Address) (*domain.TokenRecord, error) {
	key := addr.Hex()
	if cached, found := c.cache.Get(key); found {
		rec := cached.(domain.TokenRecord)
		return &rec, nil
	}

	rec, err := c.next.GetByAddress(ctx, addr)
	if err != nil || rec == nil {
		return rec, err
	}
	c.cache.Set(key, *rec, gocache.DefaultExpiration)
	return rec, nil
}

// GetForShare always goes to the store so the row lock is taken.
func (c *TokenCache) GetForShare(ctx context.Context, tx pgx.Tx, addr domain.Address) (*domain.TokenRecord, error) {
	return c.next.GetForShare(ctx, tx, addr)
}

// Len reports the number of cached records.
func (c *TokenCache) Len() int {
	return c.cache.ItemCount()
}
