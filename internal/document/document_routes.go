package document

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
	documents := r.Group("/documents")
	documents.Use(middleware.AuthMiddleware(resolver))
	documents.Use(middleware.ContextLogger(logger))
	{
		documents.POST("/upload",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "document", "create"),
			handler.Upload,
		)

		documents.GET("/employee/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "document", "read"),
			handler.GetEmployeeDocuments,
		)

		documents.GET("/company/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "document", "read"),
			handler.GetCompanyDocuments,
		)
	}
}
