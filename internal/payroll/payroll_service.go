package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	payrollerrors "github.com/Iamvlnmurthy/pepl/internal/payroll/errors"
	"github.com/Iamvlnmurthy/pepl/internal/salarystructure"
	"github.com/Iamvlnmurthy/pepl/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const reasonNoActiveStructure = "no active salary structure"

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	CalculateMonthlySalary(ctx context.Context, employeeID string, month, year int) (SalaryBreakdownResponse, error)
	ProcessPayroll(ctx context.Context, companyID string, month, year int) (ProcessPayrollResponse, error)
	GetPayrollHistory(ctx context.Context, companyID string) ([]PayrollRunResponse, error)
	GeneratePayslip(ctx context.Context, employeeID string, month, year int) ([]byte, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		logger: l,
		now:    time.Now,
	}
}

// NewServiceWithClock is for tests that pin the processing timestamp.
func NewServiceWithClock(db *sql.DB, repo Repository, now func() time.Time, logger ...*zap.Logger) Service {
	svc := NewService(db, repo, logger...).(*service)
	svc.now = now
	return svc
}

func validatePeriod(month, year int) error {
	if month < 1 || month > 12 || year < 2000 {
		return payrollerrors.ErrInvalidPayPeriod
	}
	return nil
}

func (s *service) CalculateMonthlySalary(
	ctx context.Context,
	employeeID string,
	month, year int,
) (SalaryBreakdownResponse, error) {
	if err := validatePeriod(month, year); err != nil {
		return SalaryBreakdownResponse{}, err
	}

	structure, err := s.repo.FindActiveStructure(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryBreakdownResponse{}, payrollerrors.ErrNoActiveSalaryStructure
		}
		s.logger.Error("calculate salary structure lookup failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return SalaryBreakdownResponse{}, err
	}

	return mapToBreakdown(employeeID, month, year, *structure), nil
}

// ProcessPayroll walks the active roster, computes every employee's monthly
// salary, and upserts the run for (company, month, year). Employees without an
// active structure are reported per item instead of failing the whole run.
func (s *service) ProcessPayroll(
	ctx context.Context,
	companyID string,
	month, year int,
) (ProcessPayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if err := validatePeriod(month, year); err != nil {
		return ProcessPayrollResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("process payroll begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return ProcessPayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	employees, err := qtx.ListActiveEmployees(ctx, companyID)
	if err != nil {
		s.logger.Error("process payroll roster lookup failed", zap.String("company_id", companyID), zap.Error(err))
		return ProcessPayrollResponse{}, err
	}

	items := make([]PayrollItemResult, 0, len(employees))
	totalGross := decimal.Zero
	totalDeductions := decimal.Zero
	headCount := 0

	for _, empl := range employees {
		item := PayrollItemResult{
			EmployeeID:   empl.ID,
			EmployeeCode: empl.EmployeeCode,
			FullName:     empl.FullName,
		}

		structure, err := qtx.FindActiveStructure(ctx, empl.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				item.Reason = reasonNoActiveStructure
				items = append(items, item)
				continue
			}
			s.logger.Error("process payroll structure lookup failed",
				zap.String("employee_id", empl.ID),
				zap.Error(err),
			)
			return ProcessPayrollResponse{}, err
		}

		gross := structure.Gross()
		deductions := structure.Deductions()
		net := gross.Sub(deductions)

		item.Success = true
		item.Gross = gross.InexactFloat64()
		item.Deductions = deductions.InexactFloat64()
		item.Net = net.InexactFloat64()
		items = append(items, item)

		totalGross = totalGross.Add(gross)
		totalDeductions = totalDeductions.Add(deductions)
		headCount++
	}

	totalPayout := totalGross.Sub(totalDeductions)
	stats := RunStats{
		HeadCount:       headCount,
		TotalGross:      totalGross.InexactFloat64(),
		TotalDeductions: totalDeductions.InexactFloat64(),
	}
	statsJSON, err := json.Marshal(stats)
	if err != nil {
		return ProcessPayrollResponse{}, err
	}

	processedAt := s.now().UTC()
	run := &PayrollRun{
		ID:          uuid.New(),
		CompanyID:   uuid.MustParse(companyID),
		Month:       month,
		Year:        year,
		Status:      StatusProcessed,
		TotalPayout: totalPayout,
		Stats:       statsJSON,
		ProcessedAt: &processedAt,
	}

	if err := qtx.UpsertRun(ctx, run); err != nil {
		s.logger.Error("process payroll persist run failed",
			zap.String("company_id", companyID),
			zap.Int("month", month),
			zap.Int("year", year),
			zap.Error(err),
		)
		return ProcessPayrollResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("process payroll commit failed", zap.String("request_id", rid), zap.Error(err))
		return ProcessPayrollResponse{}, err
	}

	s.logger.Info("process payroll success",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.Int("month", month),
		zap.Int("year", year),
		zap.Int("head_count", headCount),
		zap.Int("roster_size", len(employees)),
	)

	return ProcessPayrollResponse{
		RunID:       run.ID.String(),
		CompanyID:   companyID,
		Month:       month,
		Year:        year,
		Status:      run.Status,
		TotalPayout: totalPayout.InexactFloat64(),
		Stats:       stats,
		Items:       items,
	}, nil
}

func (s *service) GetPayrollHistory(ctx context.Context, companyID string) ([]PayrollRunResponse, error) {
	runs, err := s.repo.FindRunsByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("get payroll history failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, err
	}

	resp := make([]PayrollRunResponse, len(runs))
	for i, run := range runs {
		resp[i] = mapRunToResponse(run)
	}
	return resp, nil
}

func (s *service) GeneratePayslip(ctx context.Context, employeeID string, month, year int) ([]byte, error) {
	breakdown, err := s.CalculateMonthlySalary(ctx, employeeID, month, year)
	if err != nil {
		return nil, err
	}
	return buildPayslipPDF(breakdown)
}

func mapToBreakdown(employeeID string, month, year int, structure salarystructure.SalaryStructure) SalaryBreakdownResponse {
	return SalaryBreakdownResponse{
		EmployeeID:       employeeID,
		Month:            month,
		Year:             year,
		Basic:            structure.Basic.InexactFloat64(),
		HRA:              structure.HRA.InexactFloat64(),
		Conveyance:       structure.Conveyance.InexactFloat64(),
		Medical:          structure.Medical.InexactFloat64(),
		SpecialAllowance: structure.SpecialAllowance.InexactFloat64(),
		PFEmployee:       structure.PFEmployee.InexactFloat64(),
		ESIEmployee:      structure.ESIEmployee.InexactFloat64(),
		ProfessionalTax:  structure.ProfessionalTax.InexactFloat64(),
		Gross:            structure.Gross().InexactFloat64(),
		Deductions:       structure.Deductions().InexactFloat64(),
		Net:              structure.Net().InexactFloat64(),
	}
}

func mapRunToResponse(run PayrollRun) PayrollRunResponse {
	resp := PayrollRunResponse{
		ID:          run.ID.String(),
		CompanyID:   run.CompanyID.String(),
		Month:       run.Month,
		Year:        run.Year,
		Status:      run.Status,
		TotalPayout: run.TotalPayout.InexactFloat64(),
	}
	if len(run.Stats) > 0 {
		_ = json.Unmarshal(run.Stats, &resp.Stats)
	}
	if run.ProcessedAt != nil {
		resp.ProcessedAt = run.ProcessedAt.Format(time.RFC3339)
	}
	return resp
}
