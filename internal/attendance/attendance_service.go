package attendance

import (
	"context"
	"errors"
	"time"

	attendanceerrors "github.com/Iamvlnmurthy/pepl/internal/attendance/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Check-ins after this wall-clock time (UTC) are flagged late.
const (
	lateHour   = 9
	lateMinute = 15
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	CheckIn(ctx context.Context, companyID string, req CheckInRequest) (AttendanceResponse, error)
	CheckOut(ctx context.Context, companyID, id string, req CheckOutRequest) (AttendanceResponse, error)
	GetMonthlyAttendance(ctx context.Context, employeeID string, month, year int) ([]AttendanceResponse, error)
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{repo: repo, now: func() time.Time { return time.Now().UTC() }, logger: l}
}

// NewServiceWithClock fixes the clock, for tests.
func NewServiceWithClock(repo Repository, now func() time.Time, logger ...*zap.Logger) Service {
	svc := NewService(repo, logger...).(*service)
	svc.now = now
	return svc
}

func (s *service) CheckIn(ctx context.Context, companyID string, req CheckInRequest) (AttendanceResponse, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	existing, err := s.repo.FindByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err == nil && existing != nil && existing.ID != uuid.Nil {
		s.logger.Warn("duplicate check-in rejected",
			zap.String("employee_id", req.EmployeeID),
			zap.String("date", today.Format("2006-01-02")),
		)
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedIn
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("check-in lookup failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	lateCutoff := time.Date(now.Year(), now.Month(), now.Day(), lateHour, lateMinute, 0, 0, time.UTC)

	att := &Attendance{
		ID:              uuid.New(),
		EmployeeID:      uuid.MustParse(req.EmployeeID),
		CompanyID:       uuid.MustParse(companyID),
		Date:            today,
		CheckInAt:       &now,
		CheckInLocation: req.Location,
		Status:          StatusPresent,
		IsLate:          now.After(lateCutoff),
	}

	if err := s.repo.Create(ctx, att); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedIn
		}
		s.logger.Error("check-in persist failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("check-in success",
		zap.String("employee_id", req.EmployeeID),
		zap.Bool("is_late", att.IsLate),
	)
	return mapToResponse(*att), nil
}

func (s *service) CheckOut(ctx context.Context, companyID, id string, req CheckOutRequest) (AttendanceResponse, error) {
	att, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
		}
		s.logger.Error("check-out lookup failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	if att.IsLocked {
		return AttendanceResponse{}, attendanceerrors.ErrAttendanceLocked
	}
	if att.CheckOutAt != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedOut
	}

	now := s.now()
	if att.CheckInAt == nil || now.Before(*att.CheckInAt) {
		return AttendanceResponse{}, attendanceerrors.ErrCheckOutBeforeCheckIn
	}

	att.CheckOutAt = &now
	att.CheckOutLocation = req.Location
	att.WorkHours = workHours(*att.CheckInAt, now)

	if err := s.repo.Update(ctx, att); err != nil {
		s.logger.Error("check-out persist failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("check-out success",
		zap.String("attendance_id", id),
		zap.String("work_hours", att.WorkHours.String()),
	)
	return mapToResponse(*att), nil
}

func (s *service) GetMonthlyAttendance(ctx context.Context, employeeID string, month, year int) ([]AttendanceResponse, error) {
	if month < 1 || month > 12 || year < 2000 {
		return nil, attendanceerrors.ErrInvalidPeriod
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	atts, err := s.repo.FindByEmployeeAndPeriod(ctx, employeeID, from, to)
	if err != nil {
		s.logger.Error("monthly attendance query failed", zap.Error(err))
		return nil, err
	}

	res := make([]AttendanceResponse, len(atts))
	for i, a := range atts {
		res[i] = mapToResponse(a)
	}
	return res, nil
}

// workHours is (out - in) in hours, rounded to two decimals.
func workHours(in, out time.Time) decimal.Decimal {
	seconds := decimal.NewFromInt(int64(out.Sub(in) / time.Second))
	return seconds.Div(decimal.NewFromInt(3600)).Round(2)
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:               a.ID.String(),
		EmployeeID:       a.EmployeeID.String(),
		CompanyID:        a.CompanyID.String(),
		Date:             a.Date.Format("2006-01-02"),
		CheckInLocation:  a.CheckInLocation,
		CheckOutLocation: a.CheckOutLocation,
		WorkHours:        a.WorkHours.InexactFloat64(),
		Status:           a.Status,
		IsLate:           a.IsLate,
		IsLocked:         a.IsLocked,
	}
	if a.CheckInAt != nil {
		resp.CheckInAt = a.CheckInAt.Format(time.RFC3339)
	}
	if a.CheckOutAt != nil {
		resp.CheckOutAt = a.CheckOutAt.Format(time.RFC3339)
	}
	return resp
}
