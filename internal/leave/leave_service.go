package leave

import (
	"context"
	"errors"
	"time"

	leaveerrors "github.com/Iamvlnmurthy/pepl/internal/leave/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	ListTypes(ctx context.Context, companyID string) ([]LeaveTypeResponse, error)
	Apply(ctx context.Context, companyID string, req ApplyLeaveRequest) (LeaveApplicationResponse, error)
	GetEmployeeLeaves(ctx context.Context, employeeID string) ([]LeaveApplicationResponse, error)
	UpdateStatus(ctx context.Context, id, status, approverID string) (LeaveApplicationResponse, error)
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{repo: repo, now: func() time.Time { return time.Now().UTC() }, logger: l}
}

func (s *service) ListTypes(ctx context.Context, companyID string) ([]LeaveTypeResponse, error) {
	types, err := s.repo.ListTypesByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("list leave types failed", zap.Error(err))
		return nil, err
	}

	res := make([]LeaveTypeResponse, len(types))
	for i, lt := range types {
		res[i] = mapTypeToResponse(lt)
	}
	return res, nil
}

// Apply creates a pending application. Quota checks against the annual
// allowance are deliberately out of scope here; approvers see the balance
// in the dashboard.
func (s *service) Apply(ctx context.Context, companyID string, req ApplyLeaveRequest) (LeaveApplicationResponse, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return LeaveApplicationResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return LeaveApplicationResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	if endDate.Before(startDate) {
		return LeaveApplicationResponse{}, leaveerrors.ErrInvalidLeaveDates
	}

	if _, err := s.repo.GetTypeByIDAndCompany(ctx, companyID, req.LeaveTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveApplicationResponse{}, leaveerrors.ErrLeaveTypeNotFound
		}
		s.logger.Error("apply leave type lookup failed", zap.Error(err))
		return LeaveApplicationResponse{}, err
	}

	app := &LeaveApplication{
		ID:          uuid.New(),
		EmployeeID:  uuid.MustParse(req.EmployeeID),
		CompanyID:   uuid.MustParse(companyID),
		LeaveTypeID: uuid.MustParse(req.LeaveTypeID),
		StartDate:   startDate,
		EndDate:     endDate,
		Reason:      req.Reason,
		Status:      StatusPending,
	}

	if err := s.repo.CreateApplication(ctx, app); err != nil {
		s.logger.Error("apply leave persist failed", zap.Error(err))
		return LeaveApplicationResponse{}, err
	}

	s.logger.Info("leave application created",
		zap.String("application_id", app.ID.String()),
		zap.String("employee_id", req.EmployeeID),
	)
	return mapApplicationToResponse(*app), nil
}

func (s *service) GetEmployeeLeaves(ctx context.Context, employeeID string) ([]LeaveApplicationResponse, error) {
	apps, err := s.repo.FindApplicationsByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("get employee leaves failed", zap.Error(err))
		return nil, err
	}

	res := make([]LeaveApplicationResponse, len(apps))
	for i, a := range apps {
		res[i] = mapApplicationToResponse(a)
	}
	return res, nil
}

// UpdateStatus transitions a pending application to approved, rejected or
// cancelled. Any other starting state is rejected; an application that has
// been decided stays decided.
func (s *service) UpdateStatus(ctx context.Context, id, status, approverID string) (LeaveApplicationResponse, error) {
	app, err := s.repo.FindApplicationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveApplicationResponse{}, leaveerrors.ErrLeaveApplicationNotFound
		}
		s.logger.Error("update leave status lookup failed", zap.Error(err))
		return LeaveApplicationResponse{}, err
	}

	if app.Status != StatusPending {
		s.logger.Warn("leave status transition rejected",
			zap.String("application_id", id),
			zap.String("current_status", app.Status),
			zap.String("requested_status", status),
		)
		return LeaveApplicationResponse{}, leaveerrors.ErrLeaveNotPending
	}

	now := s.now()
	app.Status = status
	app.ApprovedAt = &now
	if approver, err := uuid.Parse(approverID); err == nil {
		app.ApproverID = &approver
	}

	if err := s.repo.UpdateApplication(ctx, app); err != nil {
		s.logger.Error("update leave status persist failed", zap.Error(err))
		return LeaveApplicationResponse{}, err
	}

	s.logger.Info("leave status updated",
		zap.String("application_id", id),
		zap.String("status", status),
	)
	return mapApplicationToResponse(*app), nil
}

func mapTypeToResponse(lt LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:         lt.ID.String(),
		CompanyID:  lt.CompanyID.String(),
		Name:       lt.Name,
		AnnualDays: lt.AnnualDays,
		IsPaid:     lt.IsPaid,
	}
}

func mapApplicationToResponse(a LeaveApplication) LeaveApplicationResponse {
	resp := LeaveApplicationResponse{
		ID:          a.ID.String(),
		EmployeeID:  a.EmployeeID.String(),
		CompanyID:   a.CompanyID.String(),
		LeaveTypeID: a.LeaveTypeID.String(),
		StartDate:   a.StartDate.Format("2006-01-02"),
		EndDate:     a.EndDate.Format("2006-01-02"),
		Reason:      a.Reason,
		Status:      a.Status,
	}
	if a.ApproverID != nil {
		resp.ApproverID = a.ApproverID.String()
	}
	if a.ApprovedAt != nil {
		resp.ApprovedAt = a.ApprovedAt.Format(time.RFC3339)
	}
	if a.LeaveType != nil {
		lt := mapTypeToResponse(*a.LeaveType)
		resp.LeaveType = &lt
	}
	return resp
}
