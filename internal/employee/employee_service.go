package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	employeeerrors "github.com/Iamvlnmurthy/pepl/internal/employee/errors"
	"github.com/Iamvlnmurthy/pepl/internal/events"
	"github.com/Iamvlnmurthy/pepl/internal/messaging/kafka"
	"github.com/Iamvlnmurthy/pepl/internal/middleware"
	"github.com/Iamvlnmurthy/pepl/internal/shared/apperror"
	"github.com/Iamvlnmurthy/pepl/internal/shared/contextutil"
	"github.com/Iamvlnmurthy/pepl/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, companyID string) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, companyID, id string) (EmployeeResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Terminate(ctx context.Context, companyID, id string) error
	ResolveByClerkID(ctx context.Context, clerkID string) (middleware.EmployeeIdentity, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		logger:  l,
	}
}

func (s *service) Create(
	ctx context.Context,
	companyID string,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("personal_email", req.PersonalEmail),
	)

	joiningDate, err := time.Parse("2006-01-02", req.JoiningDate)
	if err != nil {
		s.logger.Warn("create employee invalid joining_date",
			zap.String("joining_date", req.JoiningDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidJoiningDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if req.RoleID != "" {
		ownerID, err := qtx.GetCompanyIDByRole(ctx, companyID, req.RoleID)
		if err != nil {
			s.logger.Error("create employee role lookup failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		if ownerID == "" {
			return EmployeeResponse{}, apperror.New(
				apperror.CodeInvalidInput,
				"Role not found for this company",
				http.StatusBadRequest,
			)
		}
	}

	if req.EmployeeCode == "" {
		nextVal, err := s.counter.GetNextValue(ctx, companyID, "employee_code")
		if err != nil {
			s.logger.Error("create employee generate code failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		req.EmployeeCode = fmt.Sprintf("EMP-%04d", nextVal)
	}

	empl := &Employee{
		ID:            uuid.New(),
		CompanyID:     uuid.MustParse(companyID),
		DepartmentID:  uuidPtr(req.DepartmentID),
		RoleID:        uuidPtr(req.RoleID),
		ManagerID:     uuidPtr(req.ManagerID),
		EmployeeCode:  req.EmployeeCode,
		FullName:      req.FullName,
		PersonalEmail: req.PersonalEmail,
		WorkEmail:     req.WorkEmail,
		Phone:         req.Phone,
		Status:        StatusActive,
		JoiningDate:   joiningDate,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:  "employee.created",
			EmployeeID: empl.ID.String(),
			CompanyID:  companyID,
			Source:     "onboarding",
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("employee_code", empl.EmployeeCode),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]EmployeeResponse, error) {
	empls, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) Update(
	ctx context.Context,
	companyID, id string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.FullName = req.FullName
	empl.WorkEmail = req.WorkEmail
	empl.Phone = req.Phone
	empl.DepartmentID = uuidPtr(req.DepartmentID)
	empl.RoleID = uuidPtr(req.RoleID)
	empl.ManagerID = uuidPtr(req.ManagerID)

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(*empl), nil
}

// Terminate flips the employee to the terminated state. Rows are retained;
// termination is the terminal state of the lifecycle, not a hard delete.
func (s *service) Terminate(ctx context.Context, companyID, id string) error {
	empl, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if empl.Status == StatusTerminated {
		return employeeerrors.ErrEmployeeTerminated
	}

	empl.Status = StatusTerminated
	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("terminate employee persist failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("terminate employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) ResolveByClerkID(ctx context.Context, clerkID string) (middleware.EmployeeIdentity, error) {
	empl, err := s.repo.FindByClerkID(ctx, clerkID)
	if err != nil {
		return middleware.EmployeeIdentity{}, mapRepositoryError(err)
	}

	identity := middleware.EmployeeIdentity{
		EmployeeID: empl.ID.String(),
		CompanyID:  empl.CompanyID.String(),
		Status:     empl.Status,
	}
	if empl.RoleID != nil {
		identity.RoleID = empl.RoleID.String()
	}
	return identity, nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:            empl.ID.String(),
		CompanyID:     empl.CompanyID.String(),
		DepartmentID:  uuidToString(empl.DepartmentID),
		RoleID:        uuidToString(empl.RoleID),
		ManagerID:     uuidToString(empl.ManagerID),
		EmployeeCode:  empl.EmployeeCode,
		FullName:      empl.FullName,
		PersonalEmail: empl.PersonalEmail,
		WorkEmail:     empl.WorkEmail,
		Phone:         empl.Phone,
		AvatarURL:     empl.AvatarURL,
		Status:        empl.Status,
	}
	if !empl.JoiningDate.IsZero() {
		resp.JoiningDate = empl.JoiningDate.Format("2006-01-02")
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}

func uuidPtr(v string) *uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}

func uuidToString(v *uuid.UUID) string {
	if v == nil {
		return ""
	}
	return v.String()
}
