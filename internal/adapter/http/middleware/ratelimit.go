package middleware

import (
	"fmt"
	"strconv"
	"time"

	"pst-registry/internal/core/ports"
	"pst-registry/pkg/apperror"
	"pst-registry/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Endpoint groups for rate limiting.
const (
	GroupIdentityRegister = "identity_register"
	GroupAuthToken        = "auth_token"
	GroupWrite            = "write"
	GroupRead             = "read"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DegradedRecorder counts requests let through while the limiter store is down.
type DegradedRecorder interface {
	IncrementRateLimitDegraded()
}

// DefaultRateLimitRules returns the rate limits per endpoint group.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		GroupIdentityRegister: {Limit: 5, Window: time.Hour},
		GroupAuthToken:        {Limit: 10, Window: time.Minute},
		GroupWrite:            {Limit: 60, Window: time.Minute},
		GroupRead:             {Limit: 300, Window: time.Minute},
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
// A store failure lets the request through (degraded mode).
func RateLimiter(store ports.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger, degraded DegradedRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", extractIdentifier(c), group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			if degraded != nil {
				degraded.IncrementRateLimitDegraded()
			}
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier keys authenticated callers by EIN, everyone else by IP.
func extractIdentifier(c *gin.Context) string {
	if ein, ok := CallerEIN(c); ok {
		return "ein:" + ein.String()
	}
	return "ip:" + c.ClientIP()
}
