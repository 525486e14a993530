package middleware

import (
	"crypto/subtle"
	"strings"

	"tweet-insights-srv/internal/model"
	"tweet-insights-srv/pkg/response"
	"tweet-insights-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

const (
	HeaderServiceKey = "X-Service-Key"
	ContextService   = "service_name"
)

// ServiceAuth validates the X-Service-Key header ("serviceName:key") for internal service-to-service calls.
func (m Middleware) ServiceAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		serviceName, keyValue, ok := strings.Cut(c.GetHeader(HeaderServiceKey), ":")
		if !ok || serviceName == "" || keyValue == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		configuredKey, exists := m.serviceKeys[serviceName]
		if !exists {
			m.l.Warnf(ctx, "middleware.ServiceAuth: unknown service %s", serviceName)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Do not log key values
		if subtle.ConstantTimeCompare([]byte(keyValue), []byte(configuredKey)) != 1 {
			m.l.Warnf(ctx, "middleware.ServiceAuth: key mismatch for service %s", serviceName)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(ContextService, serviceName)
		ctx = scope.SetScopeToContext(ctx, model.Scope{UserID: serviceName, Username: serviceName, Role: "system"})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
