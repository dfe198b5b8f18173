package insight

import (
	"context"
	"time"

	"github.com/Iamvlnmurthy/pepl/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=insight_repo.go -destination=mock/insight_repo_mock.go -package=mock
type Repository interface {
	Snapshot(ctx context.Context, companyID string) (CompanySnapshot, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Snapshot(ctx context.Context, companyID string) (CompanySnapshot, error) {
	var snap CompanySnapshot
	now := time.Now().UTC()

	err := r.db.WithContext(ctx).
		Table("employees").
		Scopes(tenant.Scope(companyID)).
		Where("status = ?", "active").
		Where("deleted_at IS NULL").
		Count(&snap.ActiveEmployees).Error
	if err != nil {
		return snap, err
	}

	err = r.db.WithContext(ctx).
		Table("employees").
		Scopes(tenant.Scope(companyID)).
		Where("status = ?", "terminated").
		Where("deleted_at IS NULL").
		Count(&snap.TerminatedEmployees).Error
	if err != nil {
		return snap, err
	}

	err = r.db.WithContext(ctx).
		Table("leave_applications").
		Scopes(tenant.Scope(companyID)).
		Where("status = ?", "pending").
		Count(&snap.PendingLeaves).Error
	if err != nil {
		return snap, err
	}

	err = r.db.WithContext(ctx).
		Table("attendances").
		Scopes(tenant.Scope(companyID)).
		Where("is_late").
		Where("date >= ?", now.AddDate(0, 0, -30)).
		Count(&snap.LateArrivals30d).Error
	if err != nil {
		return snap, err
	}

	type salesTotals struct {
		Target   float64
		Achieved float64
	}
	var totals salesTotals
	err = r.db.WithContext(ctx).
		Table("sales_data").
		Select("COALESCE(SUM(target_amount), 0) AS target", "COALESCE(SUM(achieved_amount), 0) AS achieved").
		Scopes(tenant.Scope(companyID)).
		Where("date >= ?", now.AddDate(0, 0, -90)).
		Scan(&totals).Error
	if err != nil {
		return snap, err
	}
	snap.SalesTarget90d = totals.Target
	snap.SalesAchieved90d = totals.Achieved

	return snap, nil
}
