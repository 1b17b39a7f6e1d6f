package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/ghibli-detox/internal/consts"
	"github.com/reusedev/ghibli-detox/internal/modules/logs"
	"github.com/reusedev/ghibli-detox/internal/modules/ratelimit"
	"github.com/reusedev/ghibli-detox/internal/service/http/handler/response"
)

// RateLimit enforces the per-IP quota for one action. Each action keeps
// its own counter, so a denied analyze never burns generate quota. The
// call is counted up front; a later upstream failure does not refund it.
func RateLimit(limiter ratelimit.Limiter, action consts.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := c.ClientIP() + ":" + action.String()
		if !limiter.Allow(identity) {
			logs.Logger.Info().
				Str("identity", identity).
				Int("limit", limiter.Limit()).
				Msg("quota exceeded")
			message := fmt.Sprintf(
				"You've reached your daily limit of %d deghibs. Please try again tomorrow.",
				limiter.Limit(),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.QuotaExceededWithMessage(message))
			return
		}
		limiter.Record(identity)
		c.Next()
	}
}
