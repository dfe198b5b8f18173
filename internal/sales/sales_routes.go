package sales

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
	sales := r.Group("/sales")
	sales.Use(middleware.AuthMiddleware(resolver))
	sales.Use(middleware.ContextLogger(logger))
	{
		sales.POST("/record",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "sales", "create"),
			handler.AddRecord,
		)

		sales.GET("/employee/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "sales", "read"),
			handler.GetEmployeeSales,
		)

		sales.POST("/calculate-incentive",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "sales", "calculate"),
			handler.CalculateIncentive,
		)

		sales.GET("/incentives/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "sales", "read"),
			handler.GetEmployeeIncentives,
		)
	}
}
