package identity

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Iamvlnmurthy/pepl/internal/employee"
	"github.com/Iamvlnmurthy/pepl/internal/events"
	"github.com/Iamvlnmurthy/pepl/internal/messaging/kafka"
	"github.com/Iamvlnmurthy/pepl/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=webhook_service.go -destination=mock/webhook_service_mock.go -package=mock
type Service interface {
	HandleUserCreated(ctx context.Context, data ClerkUserData) error
	HandleUserUpdated(ctx context.Context, data ClerkUserData) error
	HandleUserDeleted(ctx context.Context, data ClerkUserData) error
}

type service struct {
	db               *sql.DB
	repo             Repository
	outbox           kafka.OutboxRepository
	defaultCompanyID string
	logger           *zap.Logger
	now              func() time.Time
}

// NewService wires the Clerk identity sync. defaultCompanyID is the tenant
// shell employees are parked under until HR claims them.
func NewService(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	defaultCompanyID string,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("identity.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("identity.service")
	}
	return &service{
		db:               db,
		repo:             repo,
		outbox:           outboxRepo,
		defaultCompanyID: defaultCompanyID,
		logger:           l,
		now:              time.Now,
	}
}

// HandleUserCreated links the Clerk user to the employee sharing its personal
// email, or creates a shell employee when onboarding has not happened yet.
func (s *service) HandleUserCreated(ctx context.Context, data ClerkUserData) error {
	email := data.PrimaryEmail()
	if email == "" {
		s.logger.Warn("user.created without an email address, ignoring", zap.String("clerk_id", data.ID))
		return nil
	}

	empl, err := s.repo.FindByPersonalEmail(ctx, email)
	if err == nil {
		empl.ClerkID = data.ID
		if data.ImageURL != "" {
			empl.AvatarURL = data.ImageURL
		}
		if err := s.repo.Update(ctx, empl); err != nil {
			s.logger.Error("attach clerk id failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return err
		}
		s.logger.Info("clerk id attached to existing employee",
			zap.String("employee_id", empl.ID.String()),
			zap.String("clerk_id", data.ID),
		)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.createShellEmployee(ctx, data, email)
}

func (s *service) createShellEmployee(ctx context.Context, data ClerkUserData, email string) error {
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	now := s.now().UTC()
	empl := &employee.Employee{
		ID:            uuid.New(),
		CompanyID:     uuid.MustParse(s.defaultCompanyID),
		EmployeeCode:  fmt.Sprintf("EMP-%d", now.UnixMilli()),
		FullName:      data.FullName(),
		PersonalEmail: email,
		ClerkID:       data.ID,
		AvatarURL:     data.ImageURL,
		Status:        employee.StatusActive,
		JoiningDate:   now,
	}
	if empl.FullName == "" {
		empl.FullName = email
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create shell employee failed", zap.String("clerk_id", data.ID), zap.Error(err))
		return err
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:  "employee.created",
			EmployeeID: empl.ID.String(),
			CompanyID:  empl.CompanyID.String(),
			Source:     "clerk-webhook",
			OccurredAt: now,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("shell employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("shell employee created from clerk webhook",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("employee_code", empl.EmployeeCode),
		zap.String("clerk_id", data.ID),
	)
	return nil
}

// HandleUserUpdated refreshes name and avatar, keeping existing values when
// Clerk sends blanks.
func (s *service) HandleUserUpdated(ctx context.Context, data ClerkUserData) error {
	empl, err := s.repo.FindByClerkID(ctx, data.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("user.updated for unknown clerk id, ignoring", zap.String("clerk_id", data.ID))
			return nil
		}
		return err
	}

	if name := data.FullName(); name != "" {
		empl.FullName = name
	}
	if data.ImageURL != "" {
		empl.AvatarURL = data.ImageURL
	}

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("sync clerk profile failed", zap.String("employee_id", empl.ID.String()), zap.Error(err))
		return err
	}

	s.logger.Info("clerk profile synced", zap.String("employee_id", empl.ID.String()))
	return nil
}

// HandleUserDeleted terminates the mapped employee. The row is kept.
func (s *service) HandleUserDeleted(ctx context.Context, data ClerkUserData) error {
	empl, err := s.repo.FindByClerkID(ctx, data.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("user.deleted for unknown clerk id, ignoring", zap.String("clerk_id", data.ID))
			return nil
		}
		return err
	}

	if empl.Status == employee.StatusTerminated {
		return nil
	}

	empl.Status = employee.StatusTerminated
	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("terminate employee from webhook failed",
			zap.String("employee_id", empl.ID.String()),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("employee terminated from clerk webhook", zap.String("employee_id", empl.ID.String()))
	return nil
}
