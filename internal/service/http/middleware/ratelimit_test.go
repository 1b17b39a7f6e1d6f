package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/ghibli-detox/internal/consts"
	"github.com/reusedev/ghibli-detox/internal/modules/logs"
	"github.com/reusedev/ghibli-detox/internal/modules/ratelimit"
)

type stubLimiter struct {
	allow    bool
	limit    int
	recorded []string
}

func (s *stubLimiter) Allow(string) bool { return s.allow }

func (s *stubLimiter) Record(identity string) { s.recorded = append(s.recorded, identity) }

func (s *stubLimiter) Limit() int { return s.limit }

func router(limiter ratelimit.Limiter, action consts.Action) *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	e.POST("/api/analyze", RateLimit(limiter, action), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return e
}

func TestRateLimitMiddleware(t *testing.T) {
	logs.InitTestLogger()

	t.Run("allowed call passes and is recorded", func(t *testing.T) {
		limiter := &stubLimiter{allow: true, limit: 3}
		e := router(limiter, consts.ActionAnalyze)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/analyze", nil)
		e.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if len(limiter.recorded) != 1 {
			t.Fatalf("expected one recorded call, got %d", len(limiter.recorded))
		}
		if !strings.HasSuffix(limiter.recorded[0], ":analyze") {
			t.Fatalf("identity should carry the action: %s", limiter.recorded[0])
		}
	})

	t.Run("denied call gets 429 with the quota message", func(t *testing.T) {
		limiter := &stubLimiter{allow: false, limit: 3}
		e := router(limiter, consts.ActionAnalyze)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/analyze", nil)
		e.ServeHTTP(w, req)

		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, "10003") {
			t.Fatalf("expected quota error code in body: %s", body)
		}
		if !strings.Contains(body, "daily limit of 3 deghibs") {
			t.Fatalf("expected quota message in body: %s", body)
		}
		if len(limiter.recorded) != 0 {
			t.Fatalf("denied call must not be recorded")
		}
	})
}
