package role

import (
	"context"
	"errors"
	"net/http"

	"github.com/Iamvlnmurthy/pepl/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrRoleNotFound = apperror.New(
	apperror.CodeNotFound,
	"Role not found",
	http.StatusNotFound,
)

//go:generate mockgen -source=role_service.go -destination=mock/role_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateRoleRequest) (RoleResponse, error)
	GetAll(ctx context.Context, companyID string) ([]RoleResponse, error)
	GetByID(ctx context.Context, companyID, id string) (RoleResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateRoleRequest) (RoleResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("role.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("role.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateRoleRequest) (RoleResponse, error) {
	role := &Role{
		ID:           uuid.New(),
		CompanyID:    uuid.MustParse(companyID),
		DepartmentID: uuidPtr(req.DepartmentID),
		Name:         req.Name,
		IsSalesRole:  req.IsSalesRole,
	}

	if err := s.repo.Create(ctx, role); err != nil {
		s.logger.Error("create role persist failed", zap.Error(err))
		return RoleResponse{}, err
	}

	s.logger.Info("create role success",
		zap.String("role_id", role.ID.String()),
		zap.Bool("is_sales_role", role.IsSalesRole),
	)
	return mapToResponse(*role), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]RoleResponse, error) {
	roles, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("get all roles failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(roles), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (RoleResponse, error) {
	role, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RoleResponse{}, ErrRoleNotFound
		}
		s.logger.Error("get role by id failed", zap.Error(err))
		return RoleResponse{}, err
	}
	return mapToResponse(*role), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateRoleRequest) (RoleResponse, error) {
	role, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RoleResponse{}, ErrRoleNotFound
		}
		return RoleResponse{}, err
	}

	role.Name = req.Name
	role.DepartmentID = uuidPtr(req.DepartmentID)
	role.IsSalesRole = req.IsSalesRole

	if err := s.repo.Update(ctx, role); err != nil {
		s.logger.Error("update role persist failed", zap.Error(err))
		return RoleResponse{}, err
	}

	s.logger.Info("update role success", zap.String("role_id", id))
	return mapToResponse(*role), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if err := s.repo.Delete(ctx, companyID, id); err != nil {
		s.logger.Error("delete role failed", zap.Error(err))
		return err
	}
	s.logger.Info("delete role success", zap.String("role_id", id))
	return nil
}

func mapToResponse(r Role) RoleResponse {
	resp := RoleResponse{
		ID:          r.ID.String(),
		CompanyID:   r.CompanyID.String(),
		Name:        r.Name,
		IsSalesRole: r.IsSalesRole,
	}
	if r.DepartmentID != nil {
		resp.DepartmentID = r.DepartmentID.String()
	}
	return resp
}

func mapToListResponse(roles []Role) []RoleResponse {
	res := make([]RoleResponse, len(roles))
	for i, r := range roles {
		res[i] = mapToResponse(r)
	}
	return res
}

func uuidPtr(v string) *uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}
