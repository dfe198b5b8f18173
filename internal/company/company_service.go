package company

import (
	"context"
	"errors"
	"strings"

	companyerrors "github.com/Iamvlnmurthy/pepl/internal/company/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	CreateGroup(ctx context.Context, req CreateGroupRequest) (GroupResponse, error)
	CreateCompany(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)
	GetCompany(ctx context.Context, id string) (CompanyResponse, error)
	ListGroupCompanies(ctx context.Context, groupID string) ([]CompanyResponse, error)
	UpdateCompany(ctx context.Context, id string, req UpdateCompanyRequest) (CompanyResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) CreateGroup(ctx context.Context, req CreateGroupRequest) (GroupResponse, error) {
	group := &Group{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(req.Name),
		Branding: req.Branding,
		Settings: req.Settings,
	}

	if err := s.repo.CreateGroup(ctx, group); err != nil {
		s.logger.Error("create group persist failed", zap.Error(err))
		return GroupResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create group success", zap.String("group_id", group.ID.String()))
	return mapGroupToResponse(*group), nil
}

func (s *service) CreateCompany(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error) {
	groupID, err := uuid.Parse(req.GroupID)
	if err != nil {
		return CompanyResponse{}, companyerrors.ErrInvalidGroupID
	}

	if _, err := s.repo.GetGroupByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CompanyResponse{}, companyerrors.ErrGroupNotFound
		}
		return CompanyResponse{}, err
	}

	comp := &Company{
		ID:       uuid.New(),
		GroupID:  groupID,
		Name:     strings.TrimSpace(req.Name),
		Code:     strings.ToUpper(strings.TrimSpace(req.Code)),
		Email:    req.Email,
		IsActive: true,
	}

	if err := s.repo.CreateCompany(ctx, comp); err != nil {
		s.logger.Error("create company persist failed", zap.Error(err))
		return CompanyResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create company success",
		zap.String("company_id", comp.ID.String()),
		zap.String("code", comp.Code),
	)
	return mapCompanyToResponse(*comp), nil
}

func (s *service) GetCompany(ctx context.Context, id string) (CompanyResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return CompanyResponse{}, companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.repo.GetCompanyByID(ctx, uid)
	if err != nil {
		s.logger.Error("get company failed", zap.Error(err))
		return CompanyResponse{}, mapRepositoryError(err)
	}

	return mapCompanyToResponse(*comp), nil
}

func (s *service) ListGroupCompanies(ctx context.Context, groupID string) ([]CompanyResponse, error) {
	gid, err := uuid.Parse(groupID)
	if err != nil {
		return nil, companyerrors.ErrInvalidGroupID
	}

	comps, err := s.repo.ListCompaniesByGroup(ctx, gid)
	if err != nil {
		s.logger.Error("list group companies failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]CompanyResponse, len(comps))
	for i, c := range comps {
		res[i] = mapCompanyToResponse(c)
	}
	return res, nil
}

func (s *service) UpdateCompany(ctx context.Context, id string, req UpdateCompanyRequest) (CompanyResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return CompanyResponse{}, companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.repo.GetCompanyByID(ctx, uid)
	if err != nil {
		return CompanyResponse{}, mapRepositoryError(err)
	}

	if req.Name != "" {
		comp.Name = req.Name
	}
	if req.Email != "" {
		comp.Email = req.Email
	}
	if req.IsActive != nil {
		comp.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateCompany(ctx, comp); err != nil {
		s.logger.Error("update company persist failed", zap.Error(err))
		return CompanyResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update company success", zap.String("company_id", id))
	return mapCompanyToResponse(*comp), nil
}

func mapGroupToResponse(g Group) GroupResponse {
	return GroupResponse{
		ID:       g.ID.String(),
		Name:     g.Name,
		Branding: g.Branding,
		Settings: g.Settings,
	}
}

func mapCompanyToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:       c.ID.String(),
		GroupID:  c.GroupID.String(),
		Name:     c.Name,
		Code:     c.Code,
		Email:    c.Email,
		IsActive: c.IsActive,
	}
}
