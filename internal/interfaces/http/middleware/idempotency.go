package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	cache "github.com/patrickmn/go-cache"

	"github.com/turtacn/mfo-shield/internal/config"
	"github.com/turtacn/mfo-shield/internal/infrastructure/monitoring"
	"github.com/turtacn/mfo-shield/pkg/errors"
	"github.com/turtacn/mfo-shield/pkg/logger"
)

// IdempotencyKeyHeader carries the client-chosen replay protection key.
const IdempotencyKeyHeader = "Idempotency-Key"

// Idempotency rejects duplicate POST requests that reuse an
// Idempotency-Key within the replay window. Requests without the header
// pass through untouched. Keys are scoped per method and path so the
// same key can be used against different endpoints.
func Idempotency(store *cache.Cache, cfg *config.IdempotencyConfig, metrics *monitoring.Metrics, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.Enabled || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		key := strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader))
		if key == "" {
			c.Next()
			return
		}

		// Add is the atomic check-and-set: it fails when the key is
		// already present and unexpired.
		scopedKey := c.Request.Method + ":" + c.Request.URL.Path + ":" + key
		if err := store.Add(scopedKey, struct{}{}, cache.DefaultExpiration); err != nil {
			log.Warn(c.Request.Context(), "Rejected duplicate request",
				logger.String("idempotency_key", key),
				logger.String("path", c.Request.URL.Path),
			)
			metrics.RecordIdempotencyReplay()

			shieldErr := errors.ErrIdempotencyReplay(key)
			c.AbortWithStatusJSON(shieldErr.HTTPStatus(), errors.ToErrorResponse(shieldErr))
			return
		}

		c.Next()
	}
}
