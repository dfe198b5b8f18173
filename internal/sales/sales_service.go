package sales

import (
	"context"
	"encoding/json"
	"time"

	saleserrors "github.com/Iamvlnmurthy/pepl/internal/sales/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	hundred         = decimal.NewFromInt(100)
	highTierPercent = decimal.NewFromFloat(0.05)
	lowTierPercent  = decimal.NewFromFloat(0.02)
)

//go:generate mockgen -source=sales_service.go -destination=mock/sales_service_mock.go -package=mock
type Service interface {
	AddSalesRecord(ctx context.Context, companyID string, req AddSalesRecordRequest) (SalesRecordResponse, error)
	GetEmployeeSales(ctx context.Context, employeeID string) ([]SalesRecordResponse, error)
	CalculateIncentive(ctx context.Context, companyID string, req CalculateIncentiveRequest) (IncentiveResponse, error)
	GetEmployeeIncentives(ctx context.Context, employeeID string) ([]IncentiveResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("sales.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("sales.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) AddSalesRecord(
	ctx context.Context,
	companyID string,
	req AddSalesRecordRequest,
) (SalesRecordResponse, error) {
	if req.TargetAmount <= 0 {
		return SalesRecordResponse{}, saleserrors.ErrInvalidSalesTarget
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return SalesRecordResponse{}, saleserrors.ErrInvalidSalesDate
	}

	target := decimal.NewFromFloat(req.TargetAmount)
	achieved := decimal.NewFromFloat(req.AchievedAmount)
	percentage := achieved.Div(target).Mul(hundred).Round(2)

	record := &SalesData{
		ID:             uuid.New(),
		EmployeeID:     uuid.MustParse(req.EmployeeID),
		CompanyID:      uuid.MustParse(companyID),
		Date:           date,
		TargetAmount:   target,
		AchievedAmount: achieved,
		Percentage:     percentage,
	}

	if err := s.repo.CreateRecord(ctx, record); err != nil {
		s.logger.Error("add sales record persist failed",
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return SalesRecordResponse{}, err
	}

	s.logger.Info("sales record added",
		zap.String("employee_id", req.EmployeeID),
		zap.String("percentage", percentage.String()),
	)
	return mapRecordToResponse(*record), nil
}

func (s *service) GetEmployeeSales(ctx context.Context, employeeID string) ([]SalesRecordResponse, error) {
	records, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("get employee sales failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	resp := make([]SalesRecordResponse, len(records))
	for i, record := range records {
		resp[i] = mapRecordToResponse(record)
	}
	return resp, nil
}

// CalculateIncentive aggregates the employee's sales for the declared period
// within the caller's company. Aggregate achievement of 100% or more earns 5%
// of the achieved amount, anything below earns 2%.
func (s *service) CalculateIncentive(
	ctx context.Context,
	companyID string,
	req CalculateIncentiveRequest,
) (IncentiveResponse, error) {
	if req.Month < 1 || req.Month > 12 || req.Year < 2000 {
		return IncentiveResponse{}, saleserrors.ErrInvalidIncentivePeriod
	}

	from := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	records, err := s.repo.FindByEmployeeAndPeriod(ctx, companyID, req.EmployeeID, from, to)
	if err != nil {
		s.logger.Error("calculate incentive period lookup failed",
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return IncentiveResponse{}, err
	}
	if len(records) == 0 {
		return IncentiveResponse{}, saleserrors.ErrNoSalesData
	}

	totalTarget := decimal.Zero
	totalAchieved := decimal.Zero
	for _, record := range records {
		totalTarget = totalTarget.Add(record.TargetAmount)
		totalAchieved = totalAchieved.Add(record.AchievedAmount)
	}

	percentage := totalAchieved.Div(totalTarget).Mul(hundred).Round(2)

	rate := lowTierPercent
	if percentage.GreaterThanOrEqual(hundred) {
		rate = highTierPercent
	}
	amount := totalAchieved.Mul(rate).Round(2)

	breakdown := IncentiveBreakdown{
		TotalAchieved: totalAchieved.InexactFloat64(),
		TotalTarget:   totalTarget.InexactFloat64(),
		Percentage:    percentage.InexactFloat64(),
	}
	breakdownJSON, err := json.Marshal(breakdown)
	if err != nil {
		return IncentiveResponse{}, err
	}

	incentive := &Incentive{
		ID:         uuid.New(),
		EmployeeID: uuid.MustParse(req.EmployeeID),
		CompanyID:  uuid.MustParse(companyID),
		Month:      req.Month,
		Year:       req.Year,
		Amount:     amount,
		Status:     IncentiveStatusPending,
		Breakdown:  breakdownJSON,
	}

	if err := s.repo.UpsertIncentive(ctx, incentive); err != nil {
		s.logger.Error("calculate incentive persist failed",
			zap.String("employee_id", req.EmployeeID),
			zap.Int("month", req.Month),
			zap.Int("year", req.Year),
			zap.Error(err),
		)
		return IncentiveResponse{}, err
	}

	s.logger.Info("incentive calculated",
		zap.String("employee_id", req.EmployeeID),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
		zap.String("amount", amount.String()),
	)

	return IncentiveResponse{
		ID:         incentive.ID.String(),
		EmployeeID: incentive.EmployeeID.String(),
		CompanyID:  incentive.CompanyID.String(),
		Month:      incentive.Month,
		Year:       incentive.Year,
		Amount:     amount.InexactFloat64(),
		Status:     incentive.Status,
		Breakdown:  breakdown,
	}, nil
}

func (s *service) GetEmployeeIncentives(ctx context.Context, employeeID string) ([]IncentiveResponse, error) {
	incentives, err := s.repo.FindIncentivesByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("get employee incentives failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	resp := make([]IncentiveResponse, len(incentives))
	for i, incentive := range incentives {
		resp[i] = mapIncentiveToResponse(incentive)
	}
	return resp, nil
}

func mapRecordToResponse(record SalesData) SalesRecordResponse {
	return SalesRecordResponse{
		ID:             record.ID.String(),
		EmployeeID:     record.EmployeeID.String(),
		CompanyID:      record.CompanyID.String(),
		Date:           record.Date.Format("2006-01-02"),
		TargetAmount:   record.TargetAmount.InexactFloat64(),
		AchievedAmount: record.AchievedAmount.InexactFloat64(),
		Percentage:     record.Percentage.InexactFloat64(),
	}
}

func mapIncentiveToResponse(incentive Incentive) IncentiveResponse {
	resp := IncentiveResponse{
		ID:         incentive.ID.String(),
		EmployeeID: incentive.EmployeeID.String(),
		CompanyID:  incentive.CompanyID.String(),
		Month:      incentive.Month,
		Year:       incentive.Year,
		Amount:     incentive.Amount.InexactFloat64(),
		Status:     incentive.Status,
	}
	if len(incentive.Breakdown) > 0 {
		_ = json.Unmarshal(incentive.Breakdown, &resp.Breakdown)
	}
	return resp
}
