package payroll

import (
	"github.com/Iamvlnmurthy/pepl/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	resolver middleware.IdentityResolver,
	rbacService middleware.RBACService,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	payroll := r.Group("/payroll")
	payroll.Use(middleware.AuthMiddleware(resolver))
	payroll.Use(middleware.ContextLogger(logger))
	{
		payroll.POST("/process",
			middleware.RateLimitByUser(0.2, 1),
			middleware.Idempotency(rdb),
			middleware.RBACAuthorize(rbacService, "payroll", "process"),
			handler.Process,
		)

		payroll.GET("/history/:companyId",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "payroll", "read"),
			handler.History,
		)

		payroll.GET("/calculate/:employeeId",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "payroll", "read"),
			handler.Calculate,
		)

		payroll.GET("/payslip/:employeeId",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "payroll", "read"),
			handler.Payslip,
		)
	}
}
