package role

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
	roles := r.Group("/roles")
	roles.Use(middleware.AuthMiddleware(resolver))
	roles.Use(middleware.ContextLogger(logger))
	{
		roles.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "role", "read"),
			handler.GetAll,
		)

		roles.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "role", "read"),
			handler.GetById,
		)

		roles.POST("",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "role", "create"),
			handler.Create,
		)

		roles.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "role", "update"),
			handler.Update,
		)

		roles.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, "role", "delete"),
			handler.Delete,
		)
	}
}
