package middlewares

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

const apiKeyHeader = "Api-Key"

// HasValidAPIKey accepts the request if any Api-Key header value matches one of validKeys.
func HasValidAPIKey(validKeys []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		keysInHeader := c.Request.Header.Values(apiKeyHeader)
		if len(keysInHeader) < 1 {
			slog.Error("A valid API key missing", slog.String("path", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "A valid API key missing"})
			return
		}

		for _, k := range keysInHeader {
			for _, vk := range validKeys {
				if vk != "" && subtle.ConstantTimeCompare([]byte(k), []byte(vk)) == 1 {
					c.Next()
					return
				}
			}
		}

		// If no keys matched:
		slog.Error("A valid API key missing", slog.String("path", c.FullPath()), slog.Int("receivedKeys", len(keysInHeader)))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "A valid API key missing"})
	}
}
