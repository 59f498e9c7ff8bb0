package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"indexing-srv/pkg/response"
)

const (
	HeaderServiceKey  = "X-Service-Key"
	ContextServiceKey = "service_name"
)

// ServiceAuth validates the X-Service-Key header (format serviceName:key)
// against the configured service keys.
func (m Middleware) ServiceAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		serviceKey := c.GetHeader(HeaderServiceKey)
		if serviceKey == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		serviceName, keyValue, ok := strings.Cut(serviceKey, ":")
		if !ok {
			m.l.Warnf(c.Request.Context(), "middleware.ServiceAuth: Invalid key format (expected serviceName:key)")
			response.Unauthorized(c)
			c.Abort()
			return
		}

		configuredKey, exists := m.serviceKeys[serviceName]
		if !exists {
			m.l.Warnf(c.Request.Context(), "middleware.ServiceAuth: Service not found: %s", serviceName)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// do not log key values
		if subtle.ConstantTimeCompare([]byte(keyValue), []byte(configuredKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.ServiceAuth: Key mismatch for service %s", serviceName)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(ContextServiceKey, serviceName)
		c.Next()
	}
}
