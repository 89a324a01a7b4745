package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIKeyHeader is the header carrying the webhook ingress credential
const APIKeyHeader = "X-API-Key"

// APIKeyAuth protects webhook routes with a shared secret. Automation
// flows cannot hold per-tenant JWTs, so ingress authenticates with a
// single key configured on both sides.
func APIKeyAuth(apiKey string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			// No key configured: reject everything rather than running
			// an open webhook endpoint.
			if logger != nil {
				logger.Error("webhook request rejected, no ingress api key configured",
					zap.String("path", c.Request.URL.Path))
			}
			abortUnauthorized(c, "Webhook authentication is not configured")
			return
		}

		provided := c.GetHeader(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			if logger != nil {
				logger.Warn("webhook request with invalid api key",
					zap.String("path", c.Request.URL.Path),
					zap.String("remote_addr", c.ClientIP()))
			}
			abortUnauthorized(c, "Invalid API key")
			return
		}

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}
