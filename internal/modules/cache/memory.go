package cache

import (
	"context"
	"strings"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/eko/gocache/store/go_cache/v4"
	gocache "github.com/patrickmn/go-cache"
)

type Manager[T any] struct {
	cache *cache.Cache[T]
}

var (
	statsCacheManager *Manager[int64]
)

func init() {
	client := gocache.New(5*time.Minute, 5*time.Minute)
	statsCacheManager = &Manager[int64]{
		cache: cache.New[int64](go_cache.NewGoCache(client)),
	}
}

// StatsCacheManager caches cheap aggregate reads such as the processed
// image count. Signed URLs are never cached here or anywhere else.
func StatsCacheManager() *Manager[int64] {
	return statsCacheManager
}

func (m *Manager[T]) SetWithExpiration(key string, value T, expir time.Duration) error {
	timeout, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()
	return m.cache.Set(timeout, key, value, store.WithExpiration(expir))
}

func (m *Manager[T]) GetValue(key string) (value T, ok bool, err error) {
	timeout, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()
	const errorMessage = "value not found"
	value, err = m.cache.Get(timeout, key)
	if err != nil {
		if strings.Contains(err.Error(), errorMessage) {
			return value, false, nil
		}
		return value, false, err
	}
	return value, true, nil
}
