package middleware

import (
	"math"
	"strconv"

	"vidtube/domain/apperror"
	"vidtube/infrastructure/cache"
	"vidtube/infrastructure/logger"

	"github.com/gin-gonic/gin"
)

// RateLimit throttles requests per client IP and route. Limiter errors let
// the request through.
func RateLimit(limiter cache.ILimiter, prefix string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if limiter == nil {
			ctx.Next()
			return
		}
		key := prefix + ":" + ctx.FullPath() + ":" + ctx.ClientIP()
		decision, err := limiter.Allow(ctx.Request.Context(), key)
		if err != nil {
			logger.GetLogger().WithField("error", err).WithField("key", key).Warn("Rate limiter unavailable")
			ctx.Next()
			return
		}

		ctx.Header("X-RateLimit-Limit", strconv.Itoa(limiter.Limit()))
		ctx.Header("X-RateLimit-Remaining", strconv.FormatInt(decision.Remaining, 10))
		if !decision.Allowed {
			retry := int(math.Ceil(decision.RetryAfter.Seconds()))
			if retry < 1 {
				retry = 1
			}
			ctx.Header("Retry-After", strconv.Itoa(retry))
			abort(ctx, apperror.TooManyRequests("Too many requests, try again later"))
			return
		}
		ctx.Next()
	}
}
