package document

import (
	"context"

	"github.com/Iamvlnmurthy/pepl/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=document_repo.go -destination=mock/document_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, record *DocumentRecord) error
	FindByEmployee(ctx context.Context, employeeID string) ([]DocumentRecord, error)
	FindByCompany(ctx context.Context, companyID string) ([]DocumentRecord, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, record *DocumentRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]DocumentRecord, error) {
	var records []DocumentRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindByCompany(ctx context.Context, companyID string) ([]DocumentRecord, error) {
	var records []DocumentRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Employee").
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}
