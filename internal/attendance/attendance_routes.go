package attendance

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
	attendance := r.Group("/attendance")
	attendance.Use(middleware.AuthMiddleware(resolver))
	attendance.Use(middleware.ContextLogger(logger))
	{
		attendance.POST("/check-in",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "attendance", "create"),
			handler.CheckIn,
		)

		attendance.POST("/check-out/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "attendance", "update"),
			handler.CheckOut,
		)

		attendance.GET("/monthly/:employeeId",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "attendance", "read"),
			handler.GetMonthly,
		)

		// No RBAC guard: every authenticated employee may read their own rows.
		attendance.GET("/me",
			middleware.RateLimitByUser(3, 10),
			handler.Me,
		)
	}
}
