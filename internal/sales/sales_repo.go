package sales

import (
	"context"
	"time"

	"github.com/Iamvlnmurthy/pepl/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=sales_repo.go -destination=mock/sales_repo_mock.go -package=mock
type Repository interface {
	CreateRecord(ctx context.Context, record *SalesData) error
	FindByEmployee(ctx context.Context, employeeID string) ([]SalesData, error)
	FindByEmployeeAndPeriod(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]SalesData, error)
	UpsertIncentive(ctx context.Context, incentive *Incentive) error
	FindIncentivesByEmployee(ctx context.Context, employeeID string) ([]Incentive, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateRecord(ctx context.Context, record *SalesData) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]SalesData, error) {
	var records []SalesData
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("date DESC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindByEmployeeAndPeriod(
	ctx context.Context,
	companyID, employeeID string,
	from, to time.Time,
) ([]SalesData, error) {
	var records []SalesData
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("date >= ? AND date < ?", from, to).
		Order("date ASC").
		Find(&records).Error
	return records, err
}

// UpsertIncentive recalculates in place when the period was already settled.
func (r *repository) UpsertIncentive(ctx context.Context, incentive *Incentive) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "employee_id"},
				{Name: "month"},
				{Name: "year"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"amount", "status", "breakdown", "updated_at",
			}),
		}).
		Create(incentive).Error
}

func (r *repository) FindIncentivesByEmployee(ctx context.Context, employeeID string) ([]Incentive, error) {
	var incentives []Incentive
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("year DESC").
		Order("month DESC").
		Find(&incentives).Error
	return incentives, err
}
