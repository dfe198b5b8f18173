package company_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Iamvlnmurthy/pepl/internal/company"
	companyerrors "github.com/Iamvlnmurthy/pepl/internal/company/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeCompanyRepo struct {
	CreateGroupFn          func(ctx context.Context, group *company.Group) error
	GetGroupByIDFn         func(ctx context.Context, id uuid.UUID) (*company.Group, error)
	CreateCompanyFn        func(ctx context.Context, comp *company.Company) error
	GetCompanyByIDFn       func(ctx context.Context, id uuid.UUID) (*company.Company, error)
	ListCompaniesByGroupFn func(ctx context.Context, groupID uuid.UUID) ([]company.Company, error)
	UpdateCompanyFn        func(ctx context.Context, comp *company.Company) error
}

func (f *fakeCompanyRepo) CreateGroup(ctx context.Context, group *company.Group) error {
	return f.CreateGroupFn(ctx, group)
}
func (f *fakeCompanyRepo) GetGroupByID(ctx context.Context, id uuid.UUID) (*company.Group, error) {
	return f.GetGroupByIDFn(ctx, id)
}
func (f *fakeCompanyRepo) CreateCompany(ctx context.Context, comp *company.Company) error {
	return f.CreateCompanyFn(ctx, comp)
}
func (f *fakeCompanyRepo) GetCompanyByID(ctx context.Context, id uuid.UUID) (*company.Company, error) {
	return f.GetCompanyByIDFn(ctx, id)
}
func (f *fakeCompanyRepo) ListCompaniesByGroup(ctx context.Context, groupID uuid.UUID) ([]company.Company, error) {
	return f.ListCompaniesByGroupFn(ctx, groupID)
}
func (f *fakeCompanyRepo) UpdateCompany(ctx context.Context, comp *company.Company) error {
	return f.UpdateCompanyFn(ctx, comp)
}

func TestCompanyService_CreateCompany(t *testing.T) {
	ctx := context.Background()
	groupID := uuid.New()

	t.Run("success - code uppercased", func(t *testing.T) {
		repo := &fakeCompanyRepo{
			GetGroupByIDFn: func(ctx context.Context, id uuid.UUID) (*company.Group, error) {
				assert.Equal(t, groupID, id)
				return &company.Group{ID: groupID, Name: "Holding"}, nil
			},
			CreateCompanyFn: func(ctx context.Context, comp *company.Company) error {
				assert.Equal(t, "ACME-IN", comp.Code)
				assert.True(t, comp.IsActive)
				return nil
			},
		}
		svc := company.NewService(repo)

		resp, err := svc.CreateCompany(ctx, company.CreateCompanyRequest{
			GroupID: groupID.String(),
			Name:    "Acme India",
			Code:    " acme-in ",
		})

		assert.NoError(t, err)
		assert.Equal(t, "ACME-IN", resp.Code)
		assert.Equal(t, groupID.String(), resp.GroupID)
	})

	t.Run("group not found", func(t *testing.T) {
		repo := &fakeCompanyRepo{
			GetGroupByIDFn: func(ctx context.Context, id uuid.UUID) (*company.Group, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := company.NewService(repo)

		_, err := svc.CreateCompany(ctx, company.CreateCompanyRequest{
			GroupID: groupID.String(),
			Name:    "Acme",
			Code:    "ACME",
		})

		assert.ErrorIs(t, err, companyerrors.ErrGroupNotFound)
	})

	t.Run("duplicate code -> conflict", func(t *testing.T) {
		repo := &fakeCompanyRepo{
			GetGroupByIDFn: func(ctx context.Context, id uuid.UUID) (*company.Group, error) {
				return &company.Group{ID: groupID}, nil
			},
			CreateCompanyFn: func(ctx context.Context, comp *company.Company) error {
				return &pgconn.PgError{Code: "23505", ConstraintName: "uq_company_code"}
			},
		}
		svc := company.NewService(repo)

		_, err := svc.CreateCompany(ctx, company.CreateCompanyRequest{
			GroupID: groupID.String(),
			Name:    "Acme",
			Code:    "ACME",
		})

		assert.ErrorIs(t, err, companyerrors.ErrCompanyCodeAlreadyExists)
	})

	t.Run("invalid group id", func(t *testing.T) {
		svc := company.NewService(&fakeCompanyRepo{})

		_, err := svc.CreateCompany(ctx, company.CreateCompanyRequest{
			GroupID: "not-a-uuid",
			Name:    "Acme",
			Code:    "ACME",
		})

		assert.ErrorIs(t, err, companyerrors.ErrInvalidGroupID)
	})
}

func TestCompanyService_GetCompany(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		repo := &fakeCompanyRepo{
			GetCompanyByIDFn: func(ctx context.Context, got uuid.UUID) (*company.Company, error) {
				assert.Equal(t, id, got)
				return &company.Company{ID: id, Name: "Acme", Code: "ACME", IsActive: true}, nil
			},
		}
		svc := company.NewService(repo)

		resp, err := svc.GetCompany(ctx, id.String())

		assert.NoError(t, err)
		assert.Equal(t, "Acme", resp.Name)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeCompanyRepo{
			GetCompanyByIDFn: func(ctx context.Context, got uuid.UUID) (*company.Company, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := company.NewService(repo)

		_, err := svc.GetCompany(ctx, uuid.New().String())

		assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
	})
}

func TestCompanyService_UpdateCompany(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("partial update keeps existing fields", func(t *testing.T) {
		inactive := false
		repo := &fakeCompanyRepo{
			GetCompanyByIDFn: func(ctx context.Context, got uuid.UUID) (*company.Company, error) {
				return &company.Company{ID: id, Name: "Old Name", Code: "ACME", Email: "old@acme.com", IsActive: true}, nil
			},
			UpdateCompanyFn: func(ctx context.Context, comp *company.Company) error {
				assert.Equal(t, "Old Name", comp.Name)
				assert.False(t, comp.IsActive)
				return nil
			},
		}
		svc := company.NewService(repo)

		resp, err := svc.UpdateCompany(ctx, id.String(), company.UpdateCompanyRequest{IsActive: &inactive})

		assert.NoError(t, err)
		assert.False(t, resp.IsActive)
		assert.Equal(t, "ACME", resp.Code)
	})

	t.Run("repo error", func(t *testing.T) {
		repo := &fakeCompanyRepo{
			GetCompanyByIDFn: func(ctx context.Context, got uuid.UUID) (*company.Company, error) {
				return &company.Company{ID: id}, nil
			},
			UpdateCompanyFn: func(ctx context.Context, comp *company.Company) error {
				return errors.New("db error")
			},
		}
		svc := company.NewService(repo)

		_, err := svc.UpdateCompany(ctx, id.String(), company.UpdateCompanyRequest{Name: "New"})

		assert.Error(t, err)
	})
}
