package rbac

import (
	"context"

	"gorm.io/gorm"
)

type EmployeeRoleRow struct {
	EmployeeID string
	RoleID     string
}

type RolePermissionRow struct {
	RoleID   string
	Resource string
	Action   string
}

type PermissionRow struct {
	ID       string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Resource string
	Action   string
	Label    string
	Category string
}

func (PermissionRow) TableName() string {
	return "permissions"
}

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetEmployeeRoles(ctx context.Context, companyID string) ([]EmployeeRoleRow, error)
	GetRolePermissions(ctx context.Context, companyID string) ([]RolePermissionRow, error)

	ListPermissions(ctx context.Context) ([]PermissionRow, error)
	GetPermissionsByRoleID(ctx context.Context, roleID string) ([]PermissionRow, error)
	UpdateRolePermissions(ctx context.Context, roleID string, permissionIDs []string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetEmployeeRoles reads the role assignment straight off the employees
// table; an employee carries at most one role.
func (r *repository) GetEmployeeRoles(ctx context.Context, companyID string) ([]EmployeeRoleRow, error) {
	var rows []EmployeeRoleRow
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("employees.id AS employee_id", "employees.role_id").
		Where("employees.company_id = ?", companyID).
		Where("employees.role_id IS NOT NULL").
		Where("employees.status = ?", "active").
		Where("employees.deleted_at IS NULL").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) GetRolePermissions(ctx context.Context, companyID string) ([]RolePermissionRow, error) {
	var rows []RolePermissionRow
	err := r.db.WithContext(ctx).
		Table("role_permissions").
		Select("role_permissions.role_id", "permissions.resource", "permissions.action").
		Joins("JOIN roles ON roles.id = role_permissions.role_id").
		Joins("JOIN permissions ON permissions.id = role_permissions.permission_id").
		Where("roles.company_id = ?", companyID).
		Where("roles.deleted_at IS NULL").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) ListPermissions(ctx context.Context) ([]PermissionRow, error) {
	var rows []PermissionRow
	err := r.db.WithContext(ctx).
		Order("category, label").
		Find(&rows).Error
	return rows, err
}

func (r *repository) GetPermissionsByRoleID(ctx context.Context, roleID string) ([]PermissionRow, error) {
	var rows []PermissionRow
	err := r.db.WithContext(ctx).
		Table("permissions").
		Select("permissions.*").
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Where("role_permissions.role_id = ?", roleID).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) UpdateRolePermissions(ctx context.Context, roleID string, permissionIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM role_permissions WHERE role_id = ?", roleID).Error; err != nil {
			return err
		}
		for _, pid := range permissionIDs {
			if err := tx.Exec(
				"INSERT INTO role_permissions (role_id, permission_id) VALUES (?, ?)",
				roleID, pid,
			).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
