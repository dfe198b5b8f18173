package salarystructure

import (
	"context"
	"database/sql"
	"time"

	salarystructureerrors "github.com/Iamvlnmurthy/pepl/internal/salarystructure/errors"
	"github.com/Iamvlnmurthy/pepl/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=salary_structure_service.go -destination=mock/salary_structure_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateSalaryStructureRequest) (SalaryStructureResponse, error)
	CreateDefault(ctx context.Context, companyID, employeeID string) (SalaryStructureResponse, error)
	GetActiveByEmployee(ctx context.Context, employeeID string) (SalaryStructureResponse, error)
	GetHistoryByEmployee(ctx context.Context, employeeID string) ([]SalaryStructureResponse, error)
	GetAllByCompany(ctx context.Context, companyID string) ([]SalaryStructureResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("salarystructure.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salarystructure.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		logger: l,
	}
}

// Create revises an employee's pay components. The previous active row is
// deactivated in the same transaction so exactly one active structure
// survives per employee.
func (s *service) Create(
	ctx context.Context,
	companyID string,
	req CreateSalaryStructureRequest,
) (SalaryStructureResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	effectiveDate, err := time.Parse("2006-01-02", req.EffectiveDate)
	if err != nil {
		s.logger.Warn("create salary structure invalid effective_date",
			zap.String("effective_date", req.EffectiveDate),
			zap.Error(err),
		)
		return SalaryStructureResponse{}, salarystructureerrors.ErrInvalidEffectiveDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create salary structure begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryStructureResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.DeactivateActiveByEmployee(ctx, req.EmployeeID); err != nil {
		s.logger.Error("deactivate previous salary structure failed",
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return SalaryStructureResponse{}, err
	}

	structure := &SalaryStructure{
		ID:               uuid.New(),
		EmployeeID:       uuid.MustParse(req.EmployeeID),
		CompanyID:        uuid.MustParse(companyID),
		Basic:            decimal.NewFromFloat(req.Basic),
		HRA:              decimal.NewFromFloat(req.HRA),
		Conveyance:       decimal.NewFromFloat(req.Conveyance),
		Medical:          decimal.NewFromFloat(req.Medical),
		SpecialAllowance: decimal.NewFromFloat(req.SpecialAllowance),
		PFEmployee:       decimal.NewFromFloat(req.PFEmployee),
		ESIEmployee:      decimal.NewFromFloat(req.ESIEmployee),
		ProfessionalTax:  decimal.NewFromFloat(req.ProfessionalTax),
		IsActive:         true,
		EffectiveDate:    effectiveDate,
	}

	if err := qtx.Create(ctx, structure); err != nil {
		s.logger.Error("create salary structure persist failed",
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return SalaryStructureResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create salary structure commit failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryStructureResponse{}, err
	}

	s.logger.Info("create salary structure success",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("structure_id", structure.ID.String()),
	)

	return mapToResponse(*structure), nil
}

// CreateDefault provisions a zeroed structure for a freshly onboarded
// employee. It never deactivates existing rows, so a replayed event hits the
// active-row unique index and surfaces as a conflict the caller can skip.
func (s *service) CreateDefault(ctx context.Context, companyID, employeeID string) (SalaryStructureResponse, error) {
	emplID, err := uuid.Parse(employeeID)
	if err != nil {
		return SalaryStructureResponse{}, err
	}
	compID, err := uuid.Parse(companyID)
	if err != nil {
		return SalaryStructureResponse{}, err
	}

	structure := &SalaryStructure{
		ID:               uuid.New(),
		EmployeeID:       emplID,
		CompanyID:        compID,
		Basic:            decimal.Zero,
		HRA:              decimal.Zero,
		Conveyance:       decimal.Zero,
		Medical:          decimal.Zero,
		SpecialAllowance: decimal.Zero,
		PFEmployee:       decimal.Zero,
		ESIEmployee:      decimal.Zero,
		ProfessionalTax:  decimal.Zero,
		IsActive:         true,
		EffectiveDate:    time.Now().UTC().Truncate(24 * time.Hour),
	}

	if err := s.repo.Create(ctx, structure); err != nil {
		return SalaryStructureResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("default salary structure created",
		zap.String("employee_id", employeeID),
		zap.String("structure_id", structure.ID.String()),
	)
	return mapToResponse(*structure), nil
}

func (s *service) GetActiveByEmployee(ctx context.Context, employeeID string) (SalaryStructureResponse, error) {
	structure, err := s.repo.FindActiveByEmployee(ctx, employeeID)
	if err != nil {
		return SalaryStructureResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*structure), nil
}

func (s *service) GetHistoryByEmployee(ctx context.Context, employeeID string) ([]SalaryStructureResponse, error) {
	structures, err := s.repo.FindHistoryByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("get salary structure history failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(structures), nil
}

func (s *service) GetAllByCompany(ctx context.Context, companyID string) ([]SalaryStructureResponse, error) {
	structures, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("get company salary structures failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(structures), nil
}

func mapToResponse(s SalaryStructure) SalaryStructureResponse {
	return SalaryStructureResponse{
		ID:               s.ID.String(),
		EmployeeID:       s.EmployeeID.String(),
		CompanyID:        s.CompanyID.String(),
		Basic:            s.Basic.InexactFloat64(),
		HRA:              s.HRA.InexactFloat64(),
		Conveyance:       s.Conveyance.InexactFloat64(),
		Medical:          s.Medical.InexactFloat64(),
		SpecialAllowance: s.SpecialAllowance.InexactFloat64(),
		PFEmployee:       s.PFEmployee.InexactFloat64(),
		ESIEmployee:      s.ESIEmployee.InexactFloat64(),
		ProfessionalTax:  s.ProfessionalTax.InexactFloat64(),
		IsActive:         s.IsActive,
		EffectiveDate:    s.EffectiveDate.Format("2006-01-02"),
	}
}

func mapToListResponse(structures []SalaryStructure) []SalaryStructureResponse {
	res := make([]SalaryStructureResponse, len(structures))
	for i, s := range structures {
		res[i] = mapToResponse(s)
	}
	return res
}
