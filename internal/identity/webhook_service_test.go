package identity_test

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/Iamvlnmurthy/pepl/internal/employee"
	"github.com/Iamvlnmurthy/pepl/internal/identity"
	"github.com/Iamvlnmurthy/pepl/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeIdentityRepo struct {
	FindByPersonalEmailFn func(ctx context.Context, email string) (*employee.Employee, error)
	FindByClerkIDFn       func(ctx context.Context, clerkID string) (*employee.Employee, error)
	CreateFn              func(ctx context.Context, empl *employee.Employee) error
	UpdateFn              func(ctx context.Context, empl *employee.Employee) error
}

func (f *fakeIdentityRepo) WithTx(tx *sql.Tx) identity.Repository { return f }
func (f *fakeIdentityRepo) FindByPersonalEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return f.FindByPersonalEmailFn(ctx, email)
}
func (f *fakeIdentityRepo) FindByClerkID(ctx context.Context, clerkID string) (*employee.Employee, error) {
	return f.FindByClerkIDFn(ctx, clerkID)
}
func (f *fakeIdentityRepo) Create(ctx context.Context, empl *employee.Employee) error {
	return f.CreateFn(ctx, empl)
}
func (f *fakeIdentityRepo) Update(ctx context.Context, empl *employee.Employee) error {
	return f.UpdateFn(ctx, empl)
}

type fakeOutboxRepo struct {
	events []kafka.OutboxEvent
}

func (f *fakeOutboxRepo) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutboxRepo) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.events = append(f.events, event)
	return nil
}
func (f *fakeOutboxRepo) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutboxRepo) MarkSent(ctx context.Context, id string) error      { return nil }
func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id, r string) error { return nil }

func clerkUser(id, email string) identity.ClerkUserData {
	return identity.ClerkUserData{
		ID:                    id,
		FirstName:             "Ravi",
		LastName:              "Kumar",
		ImageURL:              "https://img.clerk.com/ravi.png",
		PrimaryEmailAddressID: "em_1",
		EmailAddresses: []identity.ClerkEmailAddress{
			{ID: "em_1", EmailAddress: email},
		},
	}
}

func TestWebhookService_HandleUserCreated(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("attaches clerk id to existing employee", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		existing := &employee.Employee{ID: uuid.New(), Status: employee.StatusActive}
		repo := &fakeIdentityRepo{
			FindByPersonalEmailFn: func(ctx context.Context, email string) (*employee.Employee, error) {
				assert.Equal(t, "ravi@example.com", email)
				return existing, nil
			},
			UpdateFn: func(ctx context.Context, empl *employee.Employee) error {
				assert.Equal(t, "user_abc", empl.ClerkID)
				assert.Equal(t, "https://img.clerk.com/ravi.png", empl.AvatarURL)
				return nil
			},
		}
		svc := identity.NewService(db, repo, nil, companyID)

		err := svc.HandleUserCreated(ctx, clerkUser("user_abc", "ravi@example.com"))

		assert.NoError(t, err)
	})

	t.Run("creates shell employee and outbox event", func(t *testing.T) {
		db, sqlMock, _ := sqlmock.New()
		defer db.Close()
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		var created *employee.Employee
		repo := &fakeIdentityRepo{
			FindByPersonalEmailFn: func(ctx context.Context, email string) (*employee.Employee, error) {
				return nil, gorm.ErrRecordNotFound
			},
			CreateFn: func(ctx context.Context, empl *employee.Employee) error {
				created = empl
				return nil
			},
		}
		outbox := &fakeOutboxRepo{}
		svc := identity.NewService(db, repo, outbox, companyID)

		err := svc.HandleUserCreated(ctx, clerkUser("user_new", "new@example.com"))

		assert.NoError(t, err)
		assert.NotNil(t, created)
		assert.True(t, strings.HasPrefix(created.EmployeeCode, "EMP-"))
		assert.Equal(t, "Ravi Kumar", created.FullName)
		assert.Equal(t, employee.StatusActive, created.Status)
		assert.Equal(t, companyID, created.CompanyID.String())
		assert.False(t, created.JoiningDate.IsZero())

		assert.Len(t, outbox.events, 1)
		assert.Equal(t, "employee.created", outbox.events[0].EventType)
		assert.Contains(t, string(outbox.events[0].Payload), "clerk-webhook")
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("missing email ignored", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		svc := identity.NewService(db, &fakeIdentityRepo{}, nil, companyID)

		err := svc.HandleUserCreated(ctx, identity.ClerkUserData{ID: "user_x"})

		assert.NoError(t, err)
	})
}

func TestWebhookService_HandleUserUpdated(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("blank fields keep existing values", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		existing := &employee.Employee{
			ID:        uuid.New(),
			FullName:  "Ravi Kumar",
			AvatarURL: "https://img.clerk.com/old.png",
		}
		repo := &fakeIdentityRepo{
			FindByClerkIDFn: func(ctx context.Context, clerkID string) (*employee.Employee, error) {
				return existing, nil
			},
			UpdateFn: func(ctx context.Context, empl *employee.Employee) error {
				assert.Equal(t, "Ravi Kumar", empl.FullName)
				assert.Equal(t, "https://img.clerk.com/old.png", empl.AvatarURL)
				return nil
			},
		}
		svc := identity.NewService(db, repo, nil, companyID)

		err := svc.HandleUserUpdated(ctx, identity.ClerkUserData{ID: "user_abc"})

		assert.NoError(t, err)
	})

	t.Run("unknown clerk id ignored", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		repo := &fakeIdentityRepo{
			FindByClerkIDFn: func(ctx context.Context, clerkID string) (*employee.Employee, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := identity.NewService(db, repo, nil, companyID)

		err := svc.HandleUserUpdated(ctx, identity.ClerkUserData{ID: "user_missing"})

		assert.NoError(t, err)
	})
}

func TestWebhookService_HandleUserDeleted(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("terminates the mapped employee", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		repo := &fakeIdentityRepo{
			FindByClerkIDFn: func(ctx context.Context, clerkID string) (*employee.Employee, error) {
				return &employee.Employee{ID: uuid.New(), Status: employee.StatusActive}, nil
			},
			UpdateFn: func(ctx context.Context, empl *employee.Employee) error {
				assert.Equal(t, employee.StatusTerminated, empl.Status)
				return nil
			},
		}
		svc := identity.NewService(db, repo, nil, companyID)

		err := svc.HandleUserDeleted(ctx, identity.ClerkUserData{ID: "user_abc"})

		assert.NoError(t, err)
	})

	t.Run("already terminated is a no-op", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		repo := &fakeIdentityRepo{
			FindByClerkIDFn: func(ctx context.Context, clerkID string) (*employee.Employee, error) {
				return &employee.Employee{ID: uuid.New(), Status: employee.StatusTerminated}, nil
			},
			UpdateFn: func(ctx context.Context, empl *employee.Employee) error {
				t.Fatal("update must not be called")
				return nil
			},
		}
		svc := identity.NewService(db, repo, nil, companyID)

		err := svc.HandleUserDeleted(ctx, identity.ClerkUserData{ID: "user_abc"})

		assert.NoError(t, err)
	})
}

func TestClerkUserData_PrimaryEmail(t *testing.T) {
	data := identity.ClerkUserData{
		PrimaryEmailAddressID: "em_2",
		EmailAddresses: []identity.ClerkEmailAddress{
			{ID: "em_1", EmailAddress: "first@example.com"},
			{ID: "em_2", EmailAddress: "primary@example.com"},
		},
	}
	assert.Equal(t, "primary@example.com", data.PrimaryEmail())

	data.PrimaryEmailAddressID = "em_missing"
	assert.Equal(t, "first@example.com", data.PrimaryEmail())

	assert.Equal(t, "", identity.ClerkUserData{}.PrimaryEmail())
}
