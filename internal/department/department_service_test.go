package department_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Iamvlnmurthy/pepl/internal/department"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeDepartmentRepo struct {
	CreateFn             func(ctx context.Context, dept *department.Department) error
	FindAllByCompanyFn   func(ctx context.Context, companyID string) ([]department.Department, error)
	FindByIDAndCompanyFn func(ctx context.Context, companyID string, id string) (*department.Department, error)
	UpdateFn             func(ctx context.Context, dept *department.Department) error
	DeleteFn             func(ctx context.Context, companyID string, id string) error
}

func (f *fakeDepartmentRepo) Create(ctx context.Context, dept *department.Department) error {
	return f.CreateFn(ctx, dept)
}
func (f *fakeDepartmentRepo) FindAllByCompany(ctx context.Context, companyID string) ([]department.Department, error) {
	return f.FindAllByCompanyFn(ctx, companyID)
}
func (f *fakeDepartmentRepo) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*department.Department, error) {
	return f.FindByIDAndCompanyFn(ctx, companyID, id)
}
func (f *fakeDepartmentRepo) Update(ctx context.Context, dept *department.Department) error {
	return f.UpdateFn(ctx, dept)
}
func (f *fakeDepartmentRepo) Delete(ctx context.Context, companyID string, id string) error {
	return f.DeleteFn(ctx, companyID, id)
}

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("success with parent and head", func(t *testing.T) {
		parentID := uuid.New().String()
		headID := uuid.New().String()

		repo := &fakeDepartmentRepo{
			CreateFn: func(ctx context.Context, dept *department.Department) error {
				assert.Equal(t, companyID, dept.CompanyID.String())
				assert.Equal(t, parentID, dept.ParentID.String())
				assert.Equal(t, headID, dept.HeadID.String())
				return nil
			},
		}
		svc := department.NewService(repo)

		resp, err := svc.Create(ctx, companyID, department.CreateDepartmentRequest{
			Name:     "Engineering",
			ParentID: parentID,
			HeadID:   headID,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Engineering", resp.Name)
		assert.Equal(t, parentID, resp.ParentID)
	})

	t.Run("root department has no parent", func(t *testing.T) {
		repo := &fakeDepartmentRepo{
			CreateFn: func(ctx context.Context, dept *department.Department) error {
				assert.Nil(t, dept.ParentID)
				return nil
			},
		}
		svc := department.NewService(repo)

		resp, err := svc.Create(ctx, companyID, department.CreateDepartmentRequest{Name: "Corporate"})

		assert.NoError(t, err)
		assert.Empty(t, resp.ParentID)
	})

	t.Run("repo error", func(t *testing.T) {
		repo := &fakeDepartmentRepo{
			CreateFn: func(ctx context.Context, dept *department.Department) error {
				return errors.New("db error")
			},
		}
		svc := department.NewService(repo)

		_, err := svc.Create(ctx, companyID, department.CreateDepartmentRequest{Name: "HR"})

		assert.Error(t, err)
	})
}

func TestDepartmentService_GetByID(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("not found mapped", func(t *testing.T) {
		repo := &fakeDepartmentRepo{
			FindByIDAndCompanyFn: func(ctx context.Context, cid, id string) (*department.Department, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := department.NewService(repo)

		_, err := svc.GetByID(ctx, companyID, uuid.New().String())

		assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
	})
}
