package document

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=document_service.go -destination=mock/document_service_mock.go -package=mock
type Service interface {
	Upload(ctx context.Context, companyID string, req UploadDocumentRequest) (DocumentResponse, error)
	GetEmployeeDocuments(ctx context.Context, employeeID string) ([]DocumentResponse, error)
	GetCompanyDocuments(ctx context.Context, companyID string) ([]DocumentResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("document.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.service")
	}
	return &service{repo: repo, logger: l}
}

// Upload records document metadata only. The file itself lives in object
// storage; the URL is taken as-is.
func (s *service) Upload(ctx context.Context, companyID string, req UploadDocumentRequest) (DocumentResponse, error) {
	record := &DocumentRecord{
		ID:         uuid.New(),
		EmployeeID: uuid.MustParse(req.EmployeeID),
		CompanyID:  uuid.MustParse(companyID),
		Name:       req.Name,
		Type:       req.Type,
		URL:        req.URL,
		Status:     StatusVerified,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		s.logger.Error("upload document persist failed",
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return DocumentResponse{}, err
	}

	s.logger.Info("document uploaded",
		zap.String("employee_id", req.EmployeeID),
		zap.String("document_id", record.ID.String()),
		zap.String("type", record.Type),
	)
	return mapToResponse(*record), nil
}

func (s *service) GetEmployeeDocuments(ctx context.Context, employeeID string) ([]DocumentResponse, error) {
	records, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("get employee documents failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(records), nil
}

func (s *service) GetCompanyDocuments(ctx context.Context, companyID string) ([]DocumentResponse, error) {
	records, err := s.repo.FindByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("get company documents failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(records), nil
}

func mapToResponse(record DocumentRecord) DocumentResponse {
	resp := DocumentResponse{
		ID:         record.ID.String(),
		EmployeeID: record.EmployeeID.String(),
		CompanyID:  record.CompanyID.String(),
		Name:       record.Name,
		Type:       record.Type,
		URL:        record.URL,
		Status:     record.Status,
		UploadedAt: record.CreatedAt.Format(time.RFC3339),
	}
	if record.Employee != nil {
		resp.EmployeeName = record.Employee.FullName
	}
	return resp
}

func mapToListResponse(records []DocumentRecord) []DocumentResponse {
	resp := make([]DocumentResponse, len(records))
	for i, record := range records {
		resp[i] = mapToResponse(record)
	}
	return resp
}
