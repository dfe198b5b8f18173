package attendance

import (
	"context"
	"time"

	"github.com/Iamvlnmurthy/pepl/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, att *Attendance) error
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Attendance, error)
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	FindByEmployeeAndPeriod(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)
	Update(ctx context.Context, att *Attendance) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, att *Attendance) error {
	return r.db.WithContext(ctx).Create(att).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Attendance, error) {
	var att Attendance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&att, "id = ?", id).Error
	return &att, err
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
	var att Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("date = ?", date.Format("2006-01-02")).
		First(&att).Error
	return &att, err
}

func (r *repository) FindByEmployeeAndPeriod(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error) {
	var atts []Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("date >= ? AND date < ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("date DESC").
		Find(&atts).Error
	return atts, err
}

func (r *repository) Update(ctx context.Context, att *Attendance) error {
	return r.db.WithContext(ctx).Save(att).Error
}
