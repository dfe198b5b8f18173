package leave

import (
	"context"

	"github.com/Iamvlnmurthy/pepl/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	ListTypesByCompany(ctx context.Context, companyID string) ([]LeaveType, error)
	GetTypeByIDAndCompany(ctx context.Context, companyID, id string) (*LeaveType, error)
	CreateApplication(ctx context.Context, app *LeaveApplication) error
	FindApplicationByID(ctx context.Context, id string) (*LeaveApplication, error)
	FindApplicationsByEmployee(ctx context.Context, employeeID string) ([]LeaveApplication, error)
	UpdateApplication(ctx context.Context, app *LeaveApplication) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListTypesByCompany(ctx context.Context, companyID string) ([]LeaveType, error) {
	var types []LeaveType
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("name ASC").
		Find(&types).Error
	return types, err
}

func (r *repository) GetTypeByIDAndCompany(ctx context.Context, companyID, id string) (*LeaveType, error) {
	var lt LeaveType
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&lt, "id = ?", id).Error
	return &lt, err
}

func (r *repository) CreateApplication(ctx context.Context, app *LeaveApplication) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *repository) FindApplicationByID(ctx context.Context, id string) (*LeaveApplication, error) {
	var app LeaveApplication
	err := r.db.WithContext(ctx).
		Preload("LeaveType").
		First(&app, "id = ?", id).Error
	return &app, err
}

func (r *repository) FindApplicationsByEmployee(ctx context.Context, employeeID string) ([]LeaveApplication, error) {
	var apps []LeaveApplication
	err := r.db.WithContext(ctx).
		Preload("LeaveType").
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *repository) UpdateApplication(ctx context.Context, app *LeaveApplication) error {
	return r.db.WithContext(ctx).Save(app).Error
}
