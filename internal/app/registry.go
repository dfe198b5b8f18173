package app

import (
	"context"
	"database/sql"
	"os"

	"github.com/Iamvlnmurthy/pepl/internal/attendance"
	"github.com/Iamvlnmurthy/pepl/internal/company"
	"github.com/Iamvlnmurthy/pepl/internal/department"
	"github.com/Iamvlnmurthy/pepl/internal/document"
	"github.com/Iamvlnmurthy/pepl/internal/employee"
	"github.com/Iamvlnmurthy/pepl/internal/identity"
	"github.com/Iamvlnmurthy/pepl/internal/insight"
	"github.com/Iamvlnmurthy/pepl/internal/leave"
	"github.com/Iamvlnmurthy/pepl/internal/messaging/kafka"
	"github.com/Iamvlnmurthy/pepl/internal/payroll"
	"github.com/Iamvlnmurthy/pepl/internal/rbac"
	"github.com/Iamvlnmurthy/pepl/internal/role"
	"github.com/Iamvlnmurthy/pepl/internal/salarystructure"
	"github.com/Iamvlnmurthy/pepl/internal/sales"
	"github.com/Iamvlnmurthy/pepl/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	companyRepo := company.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	roleRepo := role.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	structureRepo := salarystructure.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	salesRepo := sales.NewRepository(gormDB)
	documentRepo := document.NewRepository(gormDB)
	insightRepo := insight.NewRepository(gormDB)
	identityRepo := identity.NewRepository(gormDB)
	rbacRepo := rbac.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)

	// --- AI ---
	generator, err := insight.NewGeminiGenerator(context.Background(), os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		return err
	}

	// --- Services ---
	companyService := company.NewService(companyRepo, logger)
	departmentService := department.NewService(departmentRepo, logger)
	roleService := role.NewService(roleRepo, logger)
	employeeService := employee.NewService(db, employeeRepo, counterRepo, outboxRepo, logger)
	attendanceService := attendance.NewService(attendanceRepo, logger)
	leaveService := leave.NewService(leaveRepo, logger)
	structureService := salarystructure.NewService(db, structureRepo, logger)
	payrollService := payroll.NewService(db, payrollRepo, logger)
	salesService := sales.NewService(salesRepo, logger)
	documentService := document.NewService(documentRepo, logger)
	insightService := insight.NewService(insightRepo, generator, rdb, logger)
	identityService := identity.NewService(db, identityRepo, outboxRepo, os.Getenv("HR_DEFAULT_COMPANY_ID"), logger)

	// --- Handlers ---
	companyHandler := company.NewHandler(companyService, logger)
	departmentHandler := department.NewHandler(departmentService, logger)
	roleHandler := role.NewHandler(roleService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)
	structureHandler := salarystructure.NewHandler(structureService, logger)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb, logger)
	salesHandler := sales.NewHandler(salesService, logger)
	documentHandler := document.NewHandler(documentService, logger)
	insightHandler := insight.NewHandler(insightService, logger)
	identityHandler := identity.NewHandler(identityService, os.Getenv("CLERK_WEBHOOK_SECRET"), logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	// Employee lookups back the auth middleware: the Clerk subject on the
	// token resolves to a tenant-scoped employee identity.
	resolver := employeeService

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		company.RegisterRoutes(api, companyHandler, resolver, rbacService, logger)
		department.RegisterRoutes(api, departmentHandler, resolver, rbacService, logger)
		role.RegisterRoutes(api, roleHandler, resolver, rbacService, logger)
		employee.RegisterRoutes(api, employeeHandler, resolver, rbacService, logger)
		attendance.RegisterRoutes(api, attendanceHandler, resolver, rbacService, logger)
		leave.RegisterRoutes(api, leaveHandler, resolver, rbacService, logger)
		salarystructure.RegisterRoutes(api, structureHandler, resolver, rbacService, logger)
		payroll.RegisterRoutes(api, payrollHandler, resolver, rbacService, rdb, logger)
		sales.RegisterRoutes(api, salesHandler, resolver, rbacService, logger)
		document.RegisterRoutes(api, documentHandler, resolver, rbacService, logger)
		insight.RegisterRoutes(api, insightHandler, resolver, rbacService, logger)
		rbac.RegisterRoutes(api, rbacHandler, resolver, rbacService, logger)
		identity.RegisterRoutes(api, identityHandler, logger)
	}

	return nil
}
