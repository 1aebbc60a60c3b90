package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pst-registry/internal/core/ports"

	gocache "github.com/patrickmn/go-cache"
)

// RateLimitStore is the in-process ports.RateLimitStore used when Redis is
// disabled. Counters are per process, so limits are not shared across replicas.
type RateLimitStore struct {
	mu       sync.Mutex
	counters *gocache.Cache
	now      func() time.Time
}

// NewRateLimitStore creates an in-process fixed-window rate limit store.
func NewRateLimitStore() *RateLimitStore {
	return &RateLimitStore{
		counters: gocache.New(gocache.NoExpiration, time.Minute),
		now:      time.Now,
	}
}

func (s *RateLimitStore) Allow(_ context.Context, key string, limit int64, window time.Duration) (*ports.RateLimitResult, error) {
	seconds := int64(window / time.Second)
	if seconds <= 0 {
		seconds = 1
	}
	windowID := s.now().Unix() / seconds
	counterKey := fmt.Sprintf("%s:%d", key, windowID)

	s.mu.Lock()
	count := int64(1)
	if v, found := s.counters.Get(counterKey); found {
		count = v.(int64) + 1
	}
	s.counters.Set(counterKey, count, time.Duration(seconds+1)*time.Second)
	s.mu.Unlock()

	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}
	return &ports.RateLimitResult{
		Allowed:   count <= limit,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   (windowID + 1) * seconds,
	}, nil
}
