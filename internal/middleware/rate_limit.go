package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kingrain94/business-feed-api/internal/ratelimit"
	"github.com/kingrain94/business-feed-api/pkg/logger"
)

const rateLimitExceededMessage = "Rate limit exceeded. Please try again later."

type RateLimitMiddleware struct {
	limiter *ratelimit.Limiter
	logger  *logger.Logger
}

func NewRateLimitMiddleware(limiter *ratelimit.Limiter, logger *logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		logger:  logger,
	}
}

// Limit consumes one token from the caller's bucket. Authenticated callers
// are keyed by email, everyone else by client IP.
func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key, tier := m.bucketFor(c)

		decision, err := m.limiter.Allow(c.Request.Context(), key, tier)
		if err != nil {
			m.logger.Error("Rate limit store error", err, zap.String("key", key))
			// Allow request to continue on store error (fail open)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		if !decision.Allowed {
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(decision.RetryAfterSeconds()))
			c.String(http.StatusTooManyRequests, rateLimitExceededMessage)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		c.Next()
	}
}

func (m *RateLimitMiddleware) bucketFor(c *gin.Context) (string, ratelimit.Tier) {
	user, ok := principal(c)
	if !ok {
		return ratelimit.IPKey(c.ClientIP()), ratelimit.TierUnauthenticated
	}
	if user.Role.IsAdministrative() {
		return ratelimit.UserKey(user.Email), ratelimit.TierAdmin
	}
	return ratelimit.UserKey(user.Email), ratelimit.TierAuthenticated
}
