package ratelimit

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory counts calls per identity in an expiring in-process cache. The
// window is anchored at the identity's first recorded call and the
// counter evaporates with its cache entry, which is the whole reset
// logic. Counters do not survive a restart.
type Memory struct {
	counters *gocache.Cache
	limit    int
	window   time.Duration
}

func NewMemory(limit int, window time.Duration) *Memory {
	return &Memory{
		counters: gocache.New(window, 10*time.Minute),
		limit:    limit,
		window:   window,
	}
}

func (m *Memory) Allow(identity string) bool {
	v, ok := m.counters.Get(identity)
	if !ok {
		return true
	}
	return v.(int) < m.limit
}

func (m *Memory) Record(identity string) {
	// Add fails when the entry exists, so the expiration set here sticks
	// to the first call of the window.
	_ = m.counters.Add(identity, 0, m.window)
	_, _ = m.counters.IncrementInt(identity, 1)
}

func (m *Memory) Limit() int {
	return m.limit
}
