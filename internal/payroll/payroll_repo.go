package payroll

import (
	"context"
	"database/sql"

	"github.com/Iamvlnmurthy/pepl/internal/salarystructure"
	"github.com/Iamvlnmurthy/pepl/internal/tenant"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EmployeeRef is the slice of the employees table payroll needs to walk a
// company roster.
type EmployeeRef struct {
	ID           string
	EmployeeCode string
	FullName     string
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	ListActiveEmployees(ctx context.Context, companyID string) ([]EmployeeRef, error)
	FindActiveStructure(ctx context.Context, employeeID string) (*salarystructure.SalaryStructure, error)
	UpsertRun(ctx context.Context, run *PayrollRun) error
	FindRunsByCompany(ctx context.Context, companyID string) ([]PayrollRun, error)
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

func (r *repository) ListActiveEmployees(ctx context.Context, companyID string) ([]EmployeeRef, error) {
	var refs []EmployeeRef
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("id", "employee_code", "full_name").
		Scopes(tenant.Scope(companyID)).
		Where("status = ?", "active").
		Where("deleted_at IS NULL").
		Order("employee_code ASC").
		Scan(&refs).Error
	return refs, err
}

func (r *repository) FindActiveStructure(ctx context.Context, employeeID string) (*salarystructure.SalaryStructure, error) {
	var structure salarystructure.SalaryStructure
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("is_active").
		First(&structure).Error
	return &structure, err
}

// UpsertRun inserts the run or, when the period was already processed,
// overwrites the previous result. Reprocessing a month is idempotent.
func (r *repository) UpsertRun(ctx context.Context, run *PayrollRun) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "company_id"},
				{Name: "month"},
				{Name: "year"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"status", "total_payout", "stats", "processed_at", "updated_at",
			}),
		}).
		Create(run).Error
}

func (r *repository) FindRunsByCompany(ctx context.Context, companyID string) ([]PayrollRun, error) {
	var runs []PayrollRun
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("year DESC").
		Order("month DESC").
		Find(&runs).Error
	return runs, err
}
