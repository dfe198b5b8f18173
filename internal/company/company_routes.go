package company

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
	companies := r.Group("/companies")
	companies.Use(middleware.AuthMiddleware(resolver))
	companies.Use(middleware.ContextLogger(logger))
	{
		companies.POST("/groups",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "company", "create"),
			handler.CreateGroup,
		)

		companies.POST("",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "company", "create"),
			handler.CreateCompany,
		)

		companies.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "company", "read"),
			handler.GetCompany,
		)

		companies.GET("/group/:groupId",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "company", "read"),
			handler.ListGroupCompanies,
		)

		companies.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "company", "update"),
			handler.UpdateCompany,
		)
	}
}
