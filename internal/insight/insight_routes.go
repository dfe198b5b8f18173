package insight

import (
	"github.com/Iamvlnmurthy/pepl/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	resolver middleware.IdentityResolver,
	rbacService middleware.RBACService,
	logger *zap.Logger,
) {
	ai := r.Group("/ai")
	ai.Use(middleware.AuthMiddleware(resolver))
	ai.Use(middleware.ContextLogger(logger))
	{
		ai.GET("/attrition-risk",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "insight", "read"),
			handler.AttritionRisk,
		)

		ai.GET("/sales-forecast",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "insight", "read"),
			handler.SalesForecast,
		)
	}
}
