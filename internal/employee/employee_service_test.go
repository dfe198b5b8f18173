package employee_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/Iamvlnmurthy/pepl/internal/employee"
	employeeerrors "github.com/Iamvlnmurthy/pepl/internal/employee/errors"
	"github.com/Iamvlnmurthy/pepl/internal/events"
	"github.com/Iamvlnmurthy/pepl/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmployeeRepo struct {
	CreateFn             func(ctx context.Context, empl *employee.Employee) error
	FindAllByCompanyFn   func(ctx context.Context, companyID string) ([]employee.Employee, error)
	FindByIDAndCompanyFn func(ctx context.Context, companyID string, id string) (*employee.Employee, error)
	FindByClerkIDFn      func(ctx context.Context, clerkID string) (*employee.Employee, error)
	GetCompanyIDByRoleFn func(ctx context.Context, companyID, roleID string) (string, error)
	UpdateFn             func(ctx context.Context, empl *employee.Employee) error
}

func (f *fakeEmployeeRepo) WithTx(tx *sql.Tx) employee.Repository { return f }
func (f *fakeEmployeeRepo) Create(ctx context.Context, empl *employee.Employee) error {
	return f.CreateFn(ctx, empl)
}
func (f *fakeEmployeeRepo) FindAllByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return f.FindAllByCompanyFn(ctx, companyID)
}
func (f *fakeEmployeeRepo) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*employee.Employee, error) {
	return f.FindByIDAndCompanyFn(ctx, companyID, id)
}
func (f *fakeEmployeeRepo) FindByClerkID(ctx context.Context, clerkID string) (*employee.Employee, error) {
	return f.FindByClerkIDFn(ctx, clerkID)
}
func (f *fakeEmployeeRepo) GetCompanyIDByRole(ctx context.Context, companyID, roleID string) (string, error) {
	return f.GetCompanyIDByRoleFn(ctx, companyID, roleID)
}
func (f *fakeEmployeeRepo) Update(ctx context.Context, empl *employee.Employee) error {
	return f.UpdateFn(ctx, empl)
}

type fakeCounterRepo struct {
	GetNextValueFn func(ctx context.Context, companyID string, counterType string) (int64, error)
}

func (f *fakeCounterRepo) GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error) {
	return f.GetNextValueFn(ctx, companyID, counterType)
}

type fakeOutboxRepo struct {
	events []kafka.OutboxEvent
	err    error
}

func (f *fakeOutboxRepo) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutboxRepo) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}
func (f *fakeOutboxRepo) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutboxRepo) MarkSent(ctx context.Context, id string) error   { return nil }
func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id, r string) error { return nil }

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("success - auto generate employee code", func(t *testing.T) {
		db, sqlMock, _ := sqlmock.New()
		defer db.Close()
		expectTx(t, sqlMock, true)

		repo := &fakeEmployeeRepo{
			CreateFn: func(ctx context.Context, empl *employee.Employee) error {
				assert.Equal(t, "EMP-0042", empl.EmployeeCode)
				assert.Equal(t, employee.StatusActive, empl.Status)
				assert.Equal(t, companyID, empl.CompanyID.String())
				return nil
			},
		}
		counter := &fakeCounterRepo{
			GetNextValueFn: func(ctx context.Context, cid, counterType string) (int64, error) {
				assert.Equal(t, "employee_code", counterType)
				return 42, nil
			},
		}
		outbox := &fakeOutboxRepo{}

		svc := employee.NewService(db, repo, counter, outbox)

		resp, err := svc.Create(ctx, companyID, employee.CreateEmployeeRequest{
			FullName:      "Ravi Kumar",
			PersonalEmail: "ravi@example.com",
			JoiningDate:   "2026-02-01",
		})

		assert.NoError(t, err)
		assert.Equal(t, "EMP-0042", resp.EmployeeCode)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("outbox event queued inside the tx", func(t *testing.T) {
		db, sqlMock, _ := sqlmock.New()
		defer db.Close()
		expectTx(t, sqlMock, true)

		repo := &fakeEmployeeRepo{
			CreateFn: func(ctx context.Context, empl *employee.Employee) error { return nil },
		}
		counter := &fakeCounterRepo{
			GetNextValueFn: func(ctx context.Context, cid, ct string) (int64, error) { return 1, nil },
		}
		outbox := &fakeOutboxRepo{}

		svc := employee.NewService(db, repo, counter, outbox)

		_, err := svc.Create(ctx, companyID, employee.CreateEmployeeRequest{
			FullName:      "Ravi Kumar",
			PersonalEmail: "ravi@example.com",
			JoiningDate:   "2026-02-01",
		})

		assert.NoError(t, err)
		assert.Len(t, outbox.events, 1)
		assert.Equal(t, events.EmployeeCreatedTopic, outbox.events[0].Topic)
		assert.Equal(t, "employee.created", outbox.events[0].EventType)
		assert.Equal(t, kafka.OutboxStatusPending, outbox.events[0].Status)
	})

	t.Run("invalid joining date", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		svc := employee.NewService(db, &fakeEmployeeRepo{}, &fakeCounterRepo{}, nil)

		_, err := svc.Create(ctx, companyID, employee.CreateEmployeeRequest{
			FullName:      "Ravi",
			PersonalEmail: "ravi@example.com",
			JoiningDate:   "01-02-2026",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidJoiningDate)
	})

	t.Run("duplicate employee code -> conflict", func(t *testing.T) {
		db, sqlMock, _ := sqlmock.New()
		defer db.Close()
		expectTx(t, sqlMock, false)

		repo := &fakeEmployeeRepo{
			CreateFn: func(ctx context.Context, empl *employee.Employee) error {
				return &pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_code"}
			},
		}
		counter := &fakeCounterRepo{
			GetNextValueFn: func(ctx context.Context, cid, ct string) (int64, error) { return 7, nil },
		}

		svc := employee.NewService(db, repo, counter, nil)

		_, err := svc.Create(ctx, companyID, employee.CreateEmployeeRequest{
			FullName:      "Ravi",
			PersonalEmail: "ravi@example.com",
			JoiningDate:   "2026-02-01",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeCodeAlreadyExists)
	})

	t.Run("repo error -> rollback", func(t *testing.T) {
		db, sqlMock, _ := sqlmock.New()
		defer db.Close()
		expectTx(t, sqlMock, false)

		repo := &fakeEmployeeRepo{
			CreateFn: func(ctx context.Context, empl *employee.Employee) error {
				return errors.New("db error")
			},
		}
		svc := employee.NewService(db, repo, &fakeCounterRepo{
			GetNextValueFn: func(ctx context.Context, cid, ct string) (int64, error) { return 1, nil },
		}, nil)

		_, err := svc.Create(ctx, companyID, employee.CreateEmployeeRequest{
			FullName:      "Ravi",
			PersonalEmail: "ravi@example.com",
			JoiningDate:   "2026-02-01",
		})

		assert.Error(t, err)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_Terminate(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	id := uuid.New()

	t.Run("success flips status", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		repo := &fakeEmployeeRepo{
			FindByIDAndCompanyFn: func(ctx context.Context, cid, eid string) (*employee.Employee, error) {
				return &employee.Employee{ID: id, Status: employee.StatusActive}, nil
			},
			UpdateFn: func(ctx context.Context, empl *employee.Employee) error {
				assert.Equal(t, employee.StatusTerminated, empl.Status)
				return nil
			},
		}
		svc := employee.NewService(db, repo, &fakeCounterRepo{}, nil)

		err := svc.Terminate(ctx, companyID, id.String())

		assert.NoError(t, err)
	})

	t.Run("already terminated", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		repo := &fakeEmployeeRepo{
			FindByIDAndCompanyFn: func(ctx context.Context, cid, eid string) (*employee.Employee, error) {
				return &employee.Employee{ID: id, Status: employee.StatusTerminated}, nil
			},
		}
		svc := employee.NewService(db, repo, &fakeCounterRepo{}, nil)

		err := svc.Terminate(ctx, companyID, id.String())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeTerminated)
	})

	t.Run("not found", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		repo := &fakeEmployeeRepo{
			FindByIDAndCompanyFn: func(ctx context.Context, cid, eid string) (*employee.Employee, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := employee.NewService(db, repo, &fakeCounterRepo{}, nil)

		err := svc.Terminate(ctx, companyID, id.String())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_ResolveByClerkID(t *testing.T) {
	ctx := context.Background()

	t.Run("maps identity fields", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		id := uuid.New()
		companyID := uuid.New()
		roleID := uuid.New()

		repo := &fakeEmployeeRepo{
			FindByClerkIDFn: func(ctx context.Context, clerkID string) (*employee.Employee, error) {
				assert.Equal(t, "user_abc", clerkID)
				return &employee.Employee{
					ID:        id,
					CompanyID: companyID,
					RoleID:    &roleID,
					Status:    employee.StatusActive,
				}, nil
			},
		}
		svc := employee.NewService(db, repo, &fakeCounterRepo{}, nil)

		identity, err := svc.ResolveByClerkID(ctx, "user_abc")

		assert.NoError(t, err)
		assert.Equal(t, id.String(), identity.EmployeeID)
		assert.Equal(t, companyID.String(), identity.CompanyID)
		assert.Equal(t, roleID.String(), identity.RoleID)
		assert.Equal(t, employee.StatusActive, identity.Status)
	})

	t.Run("unknown clerk id", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		repo := &fakeEmployeeRepo{
			FindByClerkIDFn: func(ctx context.Context, clerkID string) (*employee.Employee, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := employee.NewService(db, repo, &fakeCounterRepo{}, nil)

		_, err := svc.ResolveByClerkID(ctx, "user_missing")

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}
