package role

import (
	"context"

	"github.com/Iamvlnmurthy/pepl/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=role_repo.go -destination=mock/role_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, role *Role) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Role, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Role, error)
	Update(ctx context.Context, role *Role) error
	Delete(ctx context.Context, companyID string, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, role *Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Role, error) {
	var roles []Role
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("name ASC").
		Find(&roles).Error
	return roles, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Role, error) {
	var role Role
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&role, "id = ?", id).Error
	return &role, err
}

func (r *repository) Update(ctx context.Context, role *Role) error {
	return r.db.WithContext(ctx).Save(role).Error
}

func (r *repository) Delete(ctx context.Context, companyID string, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Role{}, "id = ?", id).Error
}
