package rbac

import (
	"context"
	"sync"

	"github.com/Iamvlnmurthy/pepl/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)

	ListPermissions(ctx context.Context) ([]PermissionRow, error)
	GetRolePermissions(ctx context.Context, roleID string) ([]PermissionRow, error)
	UpdateRolePermissions(ctx context.Context, roleID string, permissionIDs []string) error
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

// loadCompanyPolicy rebuilds the in-memory policy for one tenant. Policies
// are small enough that reloading per check keeps permission edits live
// without cache invalidation.
func (s *service) loadCompanyPolicy(companyID string) error {
	s.enforcer.ClearPolicy()

	ctx := context.Background()

	employeeRoles, err := s.repo.GetEmployeeRoles(ctx, companyID)
	if err != nil {
		return err
	}
	for _, er := range employeeRoles {
		if _, err := s.enforcer.AddGroupingPolicy(er.EmployeeID, er.RoleID, companyID); err != nil {
			return err
		}
	}

	rolePerms, err := s.repo.GetRolePermissions(ctx, companyID)
	if err != nil {
		return err
	}
	for _, rp := range rolePerms {
		if _, err := s.enforcer.AddPolicy(rp.RoleID, companyID, rp.Resource, rp.Action); err != nil {
			return err
		}
	}

	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadCompanyPolicy(req.CompanyID); err != nil {
		return false, err
	}

	allowed, err := s.enforcer.Enforce(req.EmployeeID, req.CompanyID, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("enforce failed",
			zap.String("employee_id", req.EmployeeID),
			zap.String("company_id", req.CompanyID),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("enforce",
		zap.String("employee_id", req.EmployeeID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) ListPermissions(ctx context.Context) ([]PermissionRow, error) {
	return s.repo.ListPermissions(ctx)
}

func (s *service) GetRolePermissions(ctx context.Context, roleID string) ([]PermissionRow, error) {
	return s.repo.GetPermissionsByRoleID(ctx, roleID)
}

func (s *service) UpdateRolePermissions(ctx context.Context, roleID string, permissionIDs []string) error {
	if err := s.repo.UpdateRolePermissions(ctx, roleID, permissionIDs); err != nil {
		s.logger.Error("update role permissions failed", zap.String("role_id", roleID), zap.Error(err))
		return err
	}
	s.logger.Info("role permissions updated",
		zap.String("role_id", roleID),
		zap.Int("count", len(permissionIDs)),
	)
	return nil
}
