package attendance_test

import (
	"context"
	"testing"
	"time"

	"github.com/Iamvlnmurthy/pepl/internal/attendance"
	attendanceerrors "github.com/Iamvlnmurthy/pepl/internal/attendance/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeAttendanceRepo struct {
	CreateFn                  func(ctx context.Context, att *attendance.Attendance) error
	FindByIDAndCompanyFn      func(ctx context.Context, companyID string, id string) (*attendance.Attendance, error)
	FindByEmployeeAndDateFn   func(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error)
	FindByEmployeeAndPeriodFn func(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error)
	UpdateFn                  func(ctx context.Context, att *attendance.Attendance) error
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att *attendance.Attendance) error {
	return f.CreateFn(ctx, att)
}
func (f *fakeAttendanceRepo) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*attendance.Attendance, error) {
	return f.FindByIDAndCompanyFn(ctx, companyID, id)
}
func (f *fakeAttendanceRepo) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	return f.FindByEmployeeAndDateFn(ctx, employeeID, date)
}
func (f *fakeAttendanceRepo) FindByEmployeeAndPeriod(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	return f.FindByEmployeeAndPeriodFn(ctx, employeeID, from, to)
}
func (f *fakeAttendanceRepo) Update(ctx context.Context, att *attendance.Attendance) error {
	return f.UpdateFn(ctx, att)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestAttendanceService_CheckIn(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	employeeID := uuid.New().String()

	t.Run("on-time check-in", func(t *testing.T) {
		now := time.Date(2026, 3, 2, 8, 55, 0, 0, time.UTC)
		repo := &fakeAttendanceRepo{
			FindByEmployeeAndDateFn: func(ctx context.Context, eid string, date time.Time) (*attendance.Attendance, error) {
				return nil, gorm.ErrRecordNotFound
			},
			CreateFn: func(ctx context.Context, att *attendance.Attendance) error {
				assert.Equal(t, attendance.StatusPresent, att.Status)
				assert.False(t, att.IsLate)
				assert.Equal(t, "2026-03-02", att.Date.Format("2006-01-02"))
				return nil
			},
		}
		svc := attendance.NewServiceWithClock(repo, fixedClock(now))

		resp, err := svc.CheckIn(ctx, companyID, attendance.CheckInRequest{EmployeeID: employeeID})

		assert.NoError(t, err)
		assert.False(t, resp.IsLate)
		assert.Equal(t, attendance.StatusPresent, resp.Status)
	})

	t.Run("late after 09:15", func(t *testing.T) {
		now := time.Date(2026, 3, 2, 9, 16, 0, 0, time.UTC)
		repo := &fakeAttendanceRepo{
			FindByEmployeeAndDateFn: func(ctx context.Context, eid string, date time.Time) (*attendance.Attendance, error) {
				return nil, gorm.ErrRecordNotFound
			},
			CreateFn: func(ctx context.Context, att *attendance.Attendance) error {
				assert.True(t, att.IsLate)
				return nil
			},
		}
		svc := attendance.NewServiceWithClock(repo, fixedClock(now))

		resp, err := svc.CheckIn(ctx, companyID, attendance.CheckInRequest{EmployeeID: employeeID})

		assert.NoError(t, err)
		assert.True(t, resp.IsLate)
	})

	t.Run("duplicate same-day check-in rejected", func(t *testing.T) {
		now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
		repo := &fakeAttendanceRepo{
			FindByEmployeeAndDateFn: func(ctx context.Context, eid string, date time.Time) (*attendance.Attendance, error) {
				return &attendance.Attendance{ID: uuid.New()}, nil
			},
		}
		svc := attendance.NewServiceWithClock(repo, fixedClock(now))

		_, err := svc.CheckIn(ctx, companyID, attendance.CheckInRequest{EmployeeID: employeeID})

		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedIn)
	})
}

func TestAttendanceService_CheckOut(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	attID := uuid.New()

	t.Run("nine hour day yields 9.00 work hours", func(t *testing.T) {
		checkIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
		checkOut := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)

		repo := &fakeAttendanceRepo{
			FindByIDAndCompanyFn: func(ctx context.Context, cid, id string) (*attendance.Attendance, error) {
				return &attendance.Attendance{ID: attID, CheckInAt: &checkIn, Status: attendance.StatusPresent}, nil
			},
			UpdateFn: func(ctx context.Context, att *attendance.Attendance) error {
				assert.Equal(t, "9", att.WorkHours.String())
				return nil
			},
		}
		svc := attendance.NewServiceWithClock(repo, fixedClock(checkOut))

		resp, err := svc.CheckOut(ctx, companyID, attID.String(), attendance.CheckOutRequest{})

		assert.NoError(t, err)
		assert.InDelta(t, 9.00, resp.WorkHours, 0.001)
	})

	t.Run("half hours rounded to two decimals", func(t *testing.T) {
		checkIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
		checkOut := time.Date(2026, 3, 2, 17, 20, 0, 0, time.UTC)

		repo := &fakeAttendanceRepo{
			FindByIDAndCompanyFn: func(ctx context.Context, cid, id string) (*attendance.Attendance, error) {
				return &attendance.Attendance{ID: attID, CheckInAt: &checkIn}, nil
			},
			UpdateFn: func(ctx context.Context, att *attendance.Attendance) error { return nil },
		}
		svc := attendance.NewServiceWithClock(repo, fixedClock(checkOut))

		resp, err := svc.CheckOut(ctx, companyID, attID.String(), attendance.CheckOutRequest{})

		assert.NoError(t, err)
		assert.InDelta(t, 8.33, resp.WorkHours, 0.001)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeAttendanceRepo{
			FindByIDAndCompanyFn: func(ctx context.Context, cid, id string) (*attendance.Attendance, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := attendance.NewService(repo)

		_, err := svc.CheckOut(ctx, companyID, attID.String(), attendance.CheckOutRequest{})

		assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceNotFound)
	})

	t.Run("already checked out", func(t *testing.T) {
		checkIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
		checkedOut := checkIn.Add(8 * time.Hour)

		repo := &fakeAttendanceRepo{
			FindByIDAndCompanyFn: func(ctx context.Context, cid, id string) (*attendance.Attendance, error) {
				return &attendance.Attendance{ID: attID, CheckInAt: &checkIn, CheckOutAt: &checkedOut}, nil
			},
		}
		svc := attendance.NewService(repo)

		_, err := svc.CheckOut(ctx, companyID, attID.String(), attendance.CheckOutRequest{})

		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedOut)
	})

	t.Run("check-out before check-in rejected", func(t *testing.T) {
		checkIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
		clock := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

		repo := &fakeAttendanceRepo{
			FindByIDAndCompanyFn: func(ctx context.Context, cid, id string) (*attendance.Attendance, error) {
				return &attendance.Attendance{ID: attID, CheckInAt: &checkIn}, nil
			},
		}
		svc := attendance.NewServiceWithClock(repo, fixedClock(clock))

		_, err := svc.CheckOut(ctx, companyID, attID.String(), attendance.CheckOutRequest{})

		assert.ErrorIs(t, err, attendanceerrors.ErrCheckOutBeforeCheckIn)
	})

	t.Run("locked row rejected", func(t *testing.T) {
		checkIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
		repo := &fakeAttendanceRepo{
			FindByIDAndCompanyFn: func(ctx context.Context, cid, id string) (*attendance.Attendance, error) {
				return &attendance.Attendance{ID: attID, CheckInAt: &checkIn, IsLocked: true}, nil
			},
		}
		svc := attendance.NewService(repo)

		_, err := svc.CheckOut(ctx, companyID, attID.String(), attendance.CheckOutRequest{})

		assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceLocked)
	})
}

func TestAttendanceService_GetMonthlyAttendance(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	t.Run("queries only the declared period", func(t *testing.T) {
		var gotFrom, gotTo time.Time
		repo := &fakeAttendanceRepo{
			FindByEmployeeAndPeriodFn: func(ctx context.Context, eid string, from, to time.Time) ([]attendance.Attendance, error) {
				gotFrom, gotTo = from, to
				return []attendance.Attendance{
					{ID: uuid.New(), Date: time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)},
					{ID: uuid.New(), Date: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)},
				}, nil
			},
		}
		svc := attendance.NewService(repo)

		resp, err := svc.GetMonthlyAttendance(ctx, employeeID, 2, 2026)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), gotFrom)
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), gotTo)
	})

	t.Run("invalid month", func(t *testing.T) {
		svc := attendance.NewService(&fakeAttendanceRepo{})

		_, err := svc.GetMonthlyAttendance(ctx, employeeID, 13, 2026)

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidPeriod)
	})
}
