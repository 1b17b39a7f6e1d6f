package ratelimit

import (
	"testing"
	"time"
)

func TestMemoryQuota(t *testing.T) {
	t.Run("denies after limit", func(t *testing.T) {
		m := NewMemory(3, time.Hour)
		identity := "203.0.113.7:analyze"
		for i := 0; i < 3; i++ {
			if !m.Allow(identity) {
				t.Fatalf("call %d should be allowed", i+1)
			}
			m.Record(identity)
		}
		if m.Allow(identity) {
			t.Fatalf("call 4 should be denied")
		}
	})

	t.Run("identities count independently", func(t *testing.T) {
		m := NewMemory(1, time.Hour)
		m.Record("203.0.113.7:analyze")
		if m.Allow("203.0.113.7:analyze") {
			t.Fatalf("exhausted identity should be denied")
		}
		if !m.Allow("203.0.113.7:generate") {
			t.Fatalf("other action must have its own counter")
		}
		if !m.Allow("198.51.100.2:analyze") {
			t.Fatalf("other client must have its own counter")
		}
	})

	t.Run("window expiry resets the counter", func(t *testing.T) {
		m := NewMemory(1, 20*time.Millisecond)
		identity := "203.0.113.7:analyze"
		m.Record(identity)
		if m.Allow(identity) {
			t.Fatalf("should be denied inside the window")
		}
		time.Sleep(40 * time.Millisecond)
		if !m.Allow(identity) {
			t.Fatalf("should be allowed after the window expires")
		}
	})

	t.Run("limit is exposed", func(t *testing.T) {
		m := NewMemory(5, time.Hour)
		if m.Limit() != 5 {
			t.Fatalf("expected limit 5, got %d", m.Limit())
		}
	})
}
