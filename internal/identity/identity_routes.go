package identity

import (
	"github.com/Iamvlnmurthy/pepl/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRoutes mounts the webhook without the auth guard; svix signature
// verification is the only gate.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	webhooks := r.Group("/webhooks")
	webhooks.Use(middleware.ContextLogger(logger))
	{
		webhooks.POST("/clerk",
			middleware.RateLimitByIP(5, 10),
			handler.Webhook,
		)
	}
}
