package sales_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Iamvlnmurthy/pepl/internal/sales"
	saleserrors "github.com/Iamvlnmurthy/pepl/internal/sales/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeSalesRepo struct {
	CreateRecordFn             func(ctx context.Context, record *sales.SalesData) error
	FindByEmployeeFn           func(ctx context.Context, employeeID string) ([]sales.SalesData, error)
	FindByEmployeeAndPeriodFn  func(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]sales.SalesData, error)
	UpsertIncentiveFn          func(ctx context.Context, incentive *sales.Incentive) error
	FindIncentivesByEmployeeFn func(ctx context.Context, employeeID string) ([]sales.Incentive, error)
}

func (f *fakeSalesRepo) CreateRecord(ctx context.Context, record *sales.SalesData) error {
	return f.CreateRecordFn(ctx, record)
}
func (f *fakeSalesRepo) FindByEmployee(ctx context.Context, employeeID string) ([]sales.SalesData, error) {
	return f.FindByEmployeeFn(ctx, employeeID)
}
func (f *fakeSalesRepo) FindByEmployeeAndPeriod(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]sales.SalesData, error) {
	return f.FindByEmployeeAndPeriodFn(ctx, companyID, employeeID, from, to)
}
func (f *fakeSalesRepo) UpsertIncentive(ctx context.Context, incentive *sales.Incentive) error {
	return f.UpsertIncentiveFn(ctx, incentive)
}
func (f *fakeSalesRepo) FindIncentivesByEmployee(ctx context.Context, employeeID string) ([]sales.Incentive, error) {
	return f.FindIncentivesByEmployeeFn(ctx, employeeID)
}

func TestSalesService_AddSalesRecord(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	employeeID := uuid.New().String()

	t.Run("computes achievement percentage", func(t *testing.T) {
		repo := &fakeSalesRepo{
			CreateRecordFn: func(ctx context.Context, record *sales.SalesData) error {
				assert.Equal(t, "83.33", record.Percentage.StringFixed(2))
				return nil
			},
		}
		svc := sales.NewService(repo)

		resp, err := svc.AddSalesRecord(ctx, companyID, sales.AddSalesRecordRequest{
			EmployeeID:     employeeID,
			Date:           "2026-03-15",
			TargetAmount:   60000,
			AchievedAmount: 50000,
		})

		assert.NoError(t, err)
		assert.Equal(t, 83.33, resp.Percentage)
	})

	t.Run("zero target rejected", func(t *testing.T) {
		svc := sales.NewService(&fakeSalesRepo{})

		_, err := svc.AddSalesRecord(ctx, companyID, sales.AddSalesRecordRequest{
			EmployeeID:     employeeID,
			Date:           "2026-03-15",
			TargetAmount:   0,
			AchievedAmount: 50000,
		})

		assert.ErrorIs(t, err, saleserrors.ErrInvalidSalesTarget)
	})

	t.Run("negative target rejected", func(t *testing.T) {
		svc := sales.NewService(&fakeSalesRepo{})

		_, err := svc.AddSalesRecord(ctx, companyID, sales.AddSalesRecordRequest{
			EmployeeID:     employeeID,
			Date:           "2026-03-15",
			TargetAmount:   -100,
			AchievedAmount: 50000,
		})

		assert.ErrorIs(t, err, saleserrors.ErrInvalidSalesTarget)
	})

	t.Run("bad date", func(t *testing.T) {
		svc := sales.NewService(&fakeSalesRepo{})

		_, err := svc.AddSalesRecord(ctx, companyID, sales.AddSalesRecordRequest{
			EmployeeID:     employeeID,
			Date:           "15-03-2026",
			TargetAmount:   60000,
			AchievedAmount: 50000,
		})

		assert.ErrorIs(t, err, saleserrors.ErrInvalidSalesDate)
	})
}

func TestSalesService_CalculateIncentive(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	employeeID := uuid.New().String()

	record := func(target, achieved int64) sales.SalesData {
		return sales.SalesData{
			ID:             uuid.New(),
			TargetAmount:   decimal.NewFromInt(target),
			AchievedAmount: decimal.NewFromInt(achieved),
		}
	}

	t.Run("high tier at 120 percent", func(t *testing.T) {
		var saved *sales.Incentive
		repo := &fakeSalesRepo{
			FindByEmployeeAndPeriodFn: func(ctx context.Context, cid, eid string, from, to time.Time) ([]sales.SalesData, error) {
				assert.Equal(t, companyID, cid)
				assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), from)
				assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), to)
				return []sales.SalesData{record(100000, 120000)}, nil
			},
			UpsertIncentiveFn: func(ctx context.Context, incentive *sales.Incentive) error {
				saved = incentive
				return nil
			},
		}
		svc := sales.NewService(repo)

		resp, err := svc.CalculateIncentive(ctx, companyID, sales.CalculateIncentiveRequest{
			EmployeeID: employeeID,
			Month:      3,
			Year:       2026,
		})

		assert.NoError(t, err)
		assert.Equal(t, 6000.0, resp.Amount)
		assert.Equal(t, 120.0, resp.Breakdown.Percentage)
		assert.Equal(t, sales.IncentiveStatusPending, resp.Status)

		assert.NotNil(t, saved)
		assert.Equal(t, "6000", saved.Amount.String())

		var breakdown sales.IncentiveBreakdown
		assert.NoError(t, json.Unmarshal(saved.Breakdown, &breakdown))
		assert.Equal(t, 120000.0, breakdown.TotalAchieved)
		assert.Equal(t, 100000.0, breakdown.TotalTarget)
	})

	t.Run("low tier at 80 percent", func(t *testing.T) {
		repo := &fakeSalesRepo{
			FindByEmployeeAndPeriodFn: func(ctx context.Context, cid, eid string, from, to time.Time) ([]sales.SalesData, error) {
				return []sales.SalesData{record(100000, 80000)}, nil
			},
			UpsertIncentiveFn: func(ctx context.Context, incentive *sales.Incentive) error { return nil },
		}
		svc := sales.NewService(repo)

		resp, err := svc.CalculateIncentive(ctx, companyID, sales.CalculateIncentiveRequest{
			EmployeeID: employeeID,
			Month:      3,
			Year:       2026,
		})

		assert.NoError(t, err)
		assert.Equal(t, 1600.0, resp.Amount)
		assert.Equal(t, 80.0, resp.Breakdown.Percentage)
	})

	t.Run("aggregate exactly 100 percent earns the high tier", func(t *testing.T) {
		repo := &fakeSalesRepo{
			FindByEmployeeAndPeriodFn: func(ctx context.Context, cid, eid string, from, to time.Time) ([]sales.SalesData, error) {
				return []sales.SalesData{
					record(60000, 50000),
					record(40000, 50000),
				}, nil
			},
			UpsertIncentiveFn: func(ctx context.Context, incentive *sales.Incentive) error { return nil },
		}
		svc := sales.NewService(repo)

		resp, err := svc.CalculateIncentive(ctx, companyID, sales.CalculateIncentiveRequest{
			EmployeeID: employeeID,
			Month:      3,
			Year:       2026,
		})

		assert.NoError(t, err)
		assert.Equal(t, 100.0, resp.Breakdown.Percentage)
		assert.Equal(t, 5000.0, resp.Amount)
	})

	t.Run("no records in period", func(t *testing.T) {
		repo := &fakeSalesRepo{
			FindByEmployeeAndPeriodFn: func(ctx context.Context, cid, eid string, from, to time.Time) ([]sales.SalesData, error) {
				return nil, nil
			},
		}
		svc := sales.NewService(repo)

		_, err := svc.CalculateIncentive(ctx, companyID, sales.CalculateIncentiveRequest{
			EmployeeID: employeeID,
			Month:      3,
			Year:       2026,
		})

		assert.ErrorIs(t, err, saleserrors.ErrNoSalesData)
	})

	t.Run("invalid period", func(t *testing.T) {
		svc := sales.NewService(&fakeSalesRepo{})

		_, err := svc.CalculateIncentive(ctx, companyID, sales.CalculateIncentiveRequest{
			EmployeeID: employeeID,
			Month:      13,
			Year:       2026,
		})

		assert.ErrorIs(t, err, saleserrors.ErrInvalidIncentivePeriod)
	})
}
