package salarystructure

import (
	"context"
	"database/sql"

	"github.com/Iamvlnmurthy/pepl/internal/tenant"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_structure_repo.go -destination=mock/salary_structure_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, structure *SalaryStructure) error
	DeactivateActiveByEmployee(ctx context.Context, employeeID string) error
	FindActiveByEmployee(ctx context.Context, employeeID string) (*SalaryStructure, error)
	FindAllByCompany(ctx context.Context, companyID string) ([]SalaryStructure, error)
	FindHistoryByEmployee(ctx context.Context, employeeID string) ([]SalaryStructure, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx runs all repository statements on the caller's open transaction.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	txDB, err := gorm.Open(postgres.New(postgres.Config{Conn: tx}), &gorm.Config{})
	if err != nil {
		return r
	}
	return &repository{db: txDB}
}

func (r *repository) Create(ctx context.Context, structure *SalaryStructure) error {
	return r.db.WithContext(ctx).Create(structure).Error
}

func (r *repository) DeactivateActiveByEmployee(ctx context.Context, employeeID string) error {
	return r.db.WithContext(ctx).
		Model(&SalaryStructure{}).
		Where("employee_id = ?", employeeID).
		Where("is_active").
		Update("is_active", false).Error
}

func (r *repository) FindActiveByEmployee(ctx context.Context, employeeID string) (*SalaryStructure, error) {
	var structure SalaryStructure
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("is_active").
		First(&structure).Error
	return &structure, err
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]SalaryStructure, error) {
	var structures []SalaryStructure
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("is_active").
		Order("created_at DESC").
		Find(&structures).Error
	return structures, err
}

func (r *repository) FindHistoryByEmployee(ctx context.Context, employeeID string) ([]SalaryStructure, error) {
	var structures []SalaryStructure
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("effective_date DESC").
		Find(&structures).Error
	return structures, err
}
