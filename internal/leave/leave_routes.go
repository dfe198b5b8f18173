package leave

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
	leave := r.Group("/leave")
	leave.Use(middleware.AuthMiddleware(resolver))
	leave.Use(middleware.ContextLogger(logger))
	{
		leave.GET("/types",
			middleware.RateLimitByUser(3, 10),
			handler.ListTypes,
		)

		leave.POST("/apply",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "leave", "create"),
			handler.Apply,
		)

		leave.GET("/employee/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "leave", "read"),
			handler.GetEmployeeLeaves,
		)

		leave.PATCH("/status/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "leave", "approve"),
			handler.UpdateStatus,
		)
	}
}
