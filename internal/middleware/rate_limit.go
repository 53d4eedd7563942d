package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillboost/skillboost/internal/config"
	"github.com/skillboost/skillboost/internal/repository/sqlc"
)

// RateLimit returns middleware that enforces a per-minute request limit per
// authenticated user. Must run after Auth.
func RateLimit(queries *sqlc.Queries) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetUser(c)
		if user == nil {
			c.Next()
			return
		}

		count, err := queries.CheckAndIncrementRateLimit(c.Request.Context(), user.ID)
		if err != nil {
			slog.Error("rate limit check failed", "error", err, "user_id", user.ID)
			c.Next()
			return
		}

		if int(count) > config.RateLimitPerMinute {
			slog.Debug("rate limited", "user_id", user.ID, "count", count)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, slow down"})
			return
		}

		c.Next()
	}
}
