package credit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"credit-system/internal/domain/customer"
	"credit-system/internal/event"
	"credit-system/internal/infrastructure/monitoring"
	"credit-system/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreditService interface {
	// CreateCredit validates the request, re-resolves the owning customer by
	// ID and persists a new pending credit with that customer attached. A
	// nested customer payload supplied by the caller is never trusted.
	CreateCredit(ctx context.Context, creditValue decimal.Decimal, dayFirstInstallment time.Time, numberOfInstallments int, customerID int64) (*Credit, error)

	FindAllByCustomer(ctx context.Context, customerID int64) ([]*Credit, error)

	// FindByCreditCode returns the credit identified by creditCode only when
	// it is owned by customerID.
	FindByCreditCode(ctx context.Context, customerID int64, creditCode uuid.UUID) (*Credit, error)
}

var _ CreditService = (*creditService)(nil)

type creditService struct {
	repo            Repository
	customerService customer.CustomerService
	pub             event.EventPublisher
	logger          *slog.Logger
}

func NewCreditService(repo Repository, customerService customer.CustomerService, eventPublisher event.EventPublisher, logger *slog.Logger) CreditService {
	if repo == nil {
		panic("credit repository cannot be nil")
	}
	if customerService == nil {
		panic("customer service cannot be nil")
	}
	if eventPublisher == nil {
		eventPublisher = event.NewNoopEventPublisher(logger)
	}
	return &creditService{
		repo:            repo,
		customerService: customerService,
		pub:             eventPublisher,
		logger:          logger.With(slog.String("component", "creditService")),
	}
}

func (s *creditService) CreateCredit(ctx context.Context, creditValue decimal.Decimal, dayFirstInstallment time.Time, numberOfInstallments int, customerID int64) (*Credit, error) {
	s.logger.InfoContext(ctx, "Attempting to create new credit", slog.Int64("customerID", customerID))

	crd, err := NewCredit(creditValue, dayFirstInstallment, numberOfInstallments, customerID)
	if err != nil {
		s.logger.WarnContext(ctx, "Validation failed for new credit", slog.Any("error", err))
		return nil, err
	}

	owner, err := s.customerService.GetCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, "Owning customer not found, credit not persisted", slog.Int64("customerID", customerID))
			return nil, err
		}
		s.logger.ErrorContext(ctx, "Failed to resolve owning customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to resolve customer %d: %w", customerID, err)
	}

	crd.Customer = owner
	crd.CustomerID = owner.CustomerID

	s.logger.InfoContext(ctx, "Calling repository Save", slog.String("creditCode", crd.CreditCode.String()))
	if err := s.repo.Save(ctx, crd); err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to save new credit", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save new credit: %w", err)
	}

	monitoring.RecordCreditCreated()

	createdEvent := event.CreditCreatedEvent{
		Timestamp: time.Now(),
		Payload: event.CreditEventPayload{
			CreditCode:           crd.CreditCode.String(),
			CreditValue:          crd.CreditValue.StringFixed(2),
			NumberOfInstallments: crd.NumberOfInstallments,
			Status:               string(crd.Status),
			CustomerID:           crd.CustomerID,
			CreatedAt:            crd.CreatedAt,
		},
	}
	if pubErr := s.pub.PublishCreditCreated(ctx, createdEvent); pubErr != nil {
		s.logger.ErrorContext(ctx, "Credit created, but FAILED to publish creation event", slog.Any("error", pubErr))
	}

	s.logger.InfoContext(ctx, "Successfully created new credit",
		slog.Int64("creditID", crd.ID), slog.String("creditCode", crd.CreditCode.String()))
	return crd, nil
}

func (s *creditService) FindAllByCustomer(ctx context.Context, customerID int64) ([]*Credit, error) {
	s.logger.InfoContext(ctx, "Attempting to list credits by customer", slog.Int64("customerID", customerID))

	credits, err := s.repo.FindAllByCustomerID(ctx, customerID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing credits", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list credits for customer %d: %w", customerID, err)
	}

	s.logger.InfoContext(ctx, "Successfully listed credits", slog.Int("count", len(credits)))
	return credits, nil
}

func (s *creditService) FindByCreditCode(ctx context.Context, customerID int64, creditCode uuid.UUID) (*Credit, error) {
	s.logger.InfoContext(ctx, "Attempting to find credit by code", slog.Int64("customerID", customerID))

	crd, err := s.repo.FindByCreditCode(ctx, creditCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, "Credit not found by code")
			return nil, fmt.Errorf("%w: creditcode %s not found", apperrors.ErrNotFound, creditCode)
		}
		s.logger.ErrorContext(ctx, "Repository error finding credit by code", slog.Any("error", err))
		return nil, fmt.Errorf("failed to find credit by code %s: %w", creditCode, err)
	}

	if !crd.BelongsTo(customerID) {
		// The denial stays generic towards the caller; the structured fields
		// are only surfaced through logs.
		s.logger.WarnContext(ctx, "Ownership check failed for credit code",
			slog.Int64("attemptedCustomerID", customerID),
			slog.Int64("ownerCustomerID", crd.CustomerID),
			slog.String("creditCode", creditCode.String()))
		return nil, apperrors.NewAccessDeniedError(customerID, creditCode.String())
	}

	s.logger.InfoContext(ctx, "Successfully found credit by code", slog.Int64("creditID", crd.ID))
	return crd, nil
}
