package rbac_test

import (
	"context"
	"testing"

	"github.com/Iamvlnmurthy/pepl/internal/domain"
	"github.com/Iamvlnmurthy/pepl/internal/rbac"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRBACRepo struct {
	employeeRoles []rbac.EmployeeRoleRow
	rolePerms     []rbac.RolePermissionRow
}

func (f *fakeRBACRepo) GetEmployeeRoles(ctx context.Context, companyID string) ([]rbac.EmployeeRoleRow, error) {
	return f.employeeRoles, nil
}
func (f *fakeRBACRepo) GetRolePermissions(ctx context.Context, companyID string) ([]rbac.RolePermissionRow, error) {
	return f.rolePerms, nil
}
func (f *fakeRBACRepo) ListPermissions(ctx context.Context) ([]rbac.PermissionRow, error) {
	return nil, nil
}
func (f *fakeRBACRepo) GetPermissionsByRoleID(ctx context.Context, roleID string) ([]rbac.PermissionRow, error) {
	return nil, nil
}
func (f *fakeRBACRepo) UpdateRolePermissions(ctx context.Context, roleID string, permissionIDs []string) error {
	return nil
}

func TestRBACService_Enforce(t *testing.T) {
	companyID := uuid.New().String()
	employeeID := uuid.New().String()
	roleID := uuid.New().String()

	newService := func(repo rbac.Repository) rbac.Service {
		enforcer, err := rbac.NewEnforcer()
		assert.NoError(t, err)
		return rbac.NewService(repo, enforcer)
	}

	t.Run("role permission grants access", func(t *testing.T) {
		repo := &fakeRBACRepo{
			employeeRoles: []rbac.EmployeeRoleRow{{EmployeeID: employeeID, RoleID: roleID}},
			rolePerms:     []rbac.RolePermissionRow{{RoleID: roleID, Resource: "payroll", Action: "process"}},
		}
		svc := newService(repo)

		allowed, err := svc.Enforce(domain.EnforceRequest{
			EmployeeID: employeeID,
			CompanyID:  companyID,
			Resource:   "payroll",
			Action:     "process",
		})

		assert.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("different action denied", func(t *testing.T) {
		repo := &fakeRBACRepo{
			employeeRoles: []rbac.EmployeeRoleRow{{EmployeeID: employeeID, RoleID: roleID}},
			rolePerms:     []rbac.RolePermissionRow{{RoleID: roleID, Resource: "payroll", Action: "read"}},
		}
		svc := newService(repo)

		allowed, err := svc.Enforce(domain.EnforceRequest{
			EmployeeID: employeeID,
			CompanyID:  companyID,
			Resource:   "payroll",
			Action:     "process",
		})

		assert.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("employee without role denied", func(t *testing.T) {
		repo := &fakeRBACRepo{
			rolePerms: []rbac.RolePermissionRow{{RoleID: roleID, Resource: "payroll", Action: "process"}},
		}
		svc := newService(repo)

		allowed, err := svc.Enforce(domain.EnforceRequest{
			EmployeeID: employeeID,
			CompanyID:  companyID,
			Resource:   "payroll",
			Action:     "process",
		})

		assert.NoError(t, err)
		assert.False(t, allowed)
	})
}
