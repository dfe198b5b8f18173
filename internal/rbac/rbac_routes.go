package rbac

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
	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware(resolver))
	group.Use(middleware.ContextLogger(logger))
	{
		group.POST("/enforce",
			middleware.RateLimitByUser(3, 10),
			handler.Enforce,
		)

		group.GET("/permissions",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "rbac", "read"),
			handler.ListPermissions,
		)

		group.GET("/roles/:roleId/permissions",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "rbac", "read"),
			handler.GetRolePermissions,
		)

		group.PUT("/roles/:roleId/permissions",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "rbac", "manage"),
			handler.UpdateRolePermissions,
		)
	}
}
