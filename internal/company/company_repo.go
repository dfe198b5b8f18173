package company

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	CreateGroup(ctx context.Context, group *Group) error
	GetGroupByID(ctx context.Context, id uuid.UUID) (*Group, error)
	CreateCompany(ctx context.Context, comp *Company) error
	GetCompanyByID(ctx context.Context, id uuid.UUID) (*Company, error)
	ListCompaniesByGroup(ctx context.Context, groupID uuid.UUID) ([]Company, error)
	UpdateCompany(ctx context.Context, comp *Company) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateGroup(ctx context.Context, group *Group) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *repository) GetGroupByID(ctx context.Context, id uuid.UUID) (*Group, error) {
	var group Group
	err := r.db.WithContext(ctx).First(&group, "id = ?", id).Error
	return &group, err
}

func (r *repository) CreateCompany(ctx context.Context, comp *Company) error {
	return r.db.WithContext(ctx).Create(comp).Error
}

func (r *repository) GetCompanyByID(ctx context.Context, id uuid.UUID) (*Company, error) {
	var comp Company
	err := r.db.WithContext(ctx).First(&comp, "id = ?", id).Error
	return &comp, err
}

func (r *repository) ListCompaniesByGroup(ctx context.Context, groupID uuid.UUID) ([]Company, error) {
	var comps []Company
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("name ASC").
		Find(&comps).Error
	return comps, err
}

func (r *repository) UpdateCompany(ctx context.Context, comp *Company) error {
	return r.db.WithContext(ctx).Save(comp).Error
}
