package salarystructure

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
	structures := r.Group("/salary-structures")
	structures.Use(middleware.AuthMiddleware(resolver))
	structures.Use(middleware.ContextLogger(logger))
	{
		structures.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "salary", "create"),
			handler.Create,
		)

		structures.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "salary", "read"),
			handler.GetAll,
		)

		structures.GET("/employee/:employeeId",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "salary", "read"),
			handler.GetActiveByEmployee,
		)

		structures.GET("/employee/:employeeId/history",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "salary", "read"),
			handler.GetHistoryByEmployee,
		)
	}
}
