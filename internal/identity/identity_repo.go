package identity

import (
	"context"
	"database/sql"

	"github.com/Iamvlnmurthy/pepl/internal/employee"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//go:generate mockgen -source=identity_repo.go -destination=mock/identity_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindByPersonalEmail(ctx context.Context, email string) (*employee.Employee, error)
	FindByClerkID(ctx context.Context, clerkID string) (*employee.Employee, error)
	Create(ctx context.Context, empl *employee.Employee) error
	Update(ctx context.Context, empl *employee.Employee) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx runs all repository statements on the caller's open transaction.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	txDB, err := gorm.Open(postgres.New(postgres.Config{Conn: tx}), &gorm.Config{})
	if err != nil {
		return r
	}
	return &repository{db: txDB}
}

func (r *repository) FindByPersonalEmail(ctx context.Context, email string) (*employee.Employee, error) {
	var empl employee.Employee
	err := r.db.WithContext(ctx).
		First(&empl, "personal_email = ?", email).Error
	return &empl, err
}

func (r *repository) FindByClerkID(ctx context.Context, clerkID string) (*employee.Employee, error) {
	var empl employee.Employee
	err := r.db.WithContext(ctx).
		First(&empl, "clerk_id = ?", clerkID).Error
	return &empl, err
}

func (r *repository) Create(ctx context.Context, empl *employee.Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) Update(ctx context.Context, empl *employee.Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}
