package customer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"credit-system/internal/event"
	"credit-system/internal/infrastructure/monitoring"
	"credit-system/internal/pkg/apperrors"

	"golang.org/x/crypto/bcrypt"
)

const customerNotFoundMsg = "Customer not found by repository"

type CustomerService interface {
	CreateCustomer(ctx context.Context, cust *Customer) (*Customer, error)
	GetCustomer(ctx context.Context, customerID int64) (*Customer, error)
	UpdateCustomer(ctx context.Context, customerID int64, patch Patch) (*Customer, error)
	DeleteCustomer(ctx context.Context, customerID int64) error
}

var _ CustomerService = (*customerService)(nil)

type customerService struct {
	repo   CustomerRepository
	pub    event.EventPublisher
	logger *slog.Logger
}

func NewCustomerService(repo CustomerRepository, eventPublisher event.EventPublisher, logger *slog.Logger) CustomerService {
	if repo == nil {
		panic("customer repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerService, using default stderr handler")
	}
	if eventPublisher == nil {
		eventPublisher = event.NewNoopEventPublisher(logger)
	}

	return &customerService{
		repo:   repo,
		pub:    eventPublisher,
		logger: logger.With(slog.String("component", "customerService")),
	}
}

func newCustomerEventPayload(cust *Customer) event.CustomerEventPayload {
	if cust == nil {
		return event.CustomerEventPayload{}
	}
	return event.CustomerEventPayload{
		CustomerID: cust.CustomerID,
		FirstName:  cust.FirstName,
		LastName:   cust.LastName,
		Email:      cust.Email,
		CreatedAt:  cust.CreatedAt,
		UpdatedAt:  cust.UpdatedAt,
	}
}

func (s *customerService) validateNewCustomer(cust *Customer) error {
	cust.FirstName = strings.TrimSpace(cust.FirstName)
	cust.LastName = strings.TrimSpace(cust.LastName)
	cust.CPF = strings.TrimSpace(cust.CPF)
	cust.Email = strings.TrimSpace(cust.Email)

	switch {
	case cust.FirstName == "":
		return apperrors.NewValidationError("firstName", "cannot be empty")
	case cust.LastName == "":
		return apperrors.NewValidationError("lastName", "cannot be empty")
	case cust.CPF == "":
		return apperrors.NewValidationError("cpf", "cannot be empty")
	case cust.Email == "":
		return apperrors.NewValidationError("email", "cannot be empty")
	case cust.Password == "":
		return apperrors.NewValidationError("password", "cannot be empty")
	case cust.Income.IsNegative():
		return apperrors.NewValidationError("income", "cannot be negative")
	}
	return nil
}

func (s *customerService) CreateCustomer(ctx context.Context, cust *Customer) (*Customer, error) {
	s.logger.InfoContext(ctx, "Attempting to create new customer")

	if cust == nil {
		return nil, fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}
	if err := s.validateNewCustomer(cust); err != nil {
		s.logger.WarnContext(ctx, "Validation failed for new customer", slog.Any("error", err))
		return nil, err
	}

	// Credentials are stored hashed; the raw password never reaches the store.
	hashed, err := bcrypt.GenerateFromPassword([]byte(cust.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to hash customer password", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to hash password: %v", apperrors.ErrInternalServer, err)
	}
	cust.Password = string(hashed)

	s.logger.InfoContext(ctx, "Calling repository Save")
	if err := s.repo.Save(ctx, cust); err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to save new customer", slog.Any("error", err))
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to save new customer: %w", err)
	}

	monitoring.RecordCustomerCreated()

	createdEvent := event.CustomerCreatedEvent{
		Timestamp: time.Now(),
		Payload:   newCustomerEventPayload(cust),
	}
	if pubErr := s.pub.PublishCustomerCreated(ctx, createdEvent); pubErr != nil {
		s.logger.ErrorContext(ctx, "Customer created, but FAILED to publish creation event", slog.Any("error", pubErr))
	}

	s.logger.InfoContext(ctx, "Successfully created new customer", slog.Int64("customerID", cust.CustomerID))
	return cust, nil
}

func (s *customerService) GetCustomer(ctx context.Context, customerID int64) (*Customer, error) {
	s.logger.InfoContext(ctx, "Attempting to get customer by ID", slog.Int64("customerID", customerID))

	cust, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, customerNotFoundMsg, slog.Int64("customerID", customerID))
			return nil, fmt.Errorf("%w: customer %d", apperrors.ErrNotFound, customerID)
		}
		s.logger.ErrorContext(ctx, "Repository error finding customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get customer %d: %w", customerID, err)
	}

	return cust, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID int64, patch Patch) (*Customer, error) {
	s.logger.InfoContext(ctx, "Attempting to update customer", slog.Int64("customerID", customerID))

	if patch.IsEmpty() {
		s.logger.WarnContext(ctx, "Validation failed: empty update patch")
		return nil, fmt.Errorf("%w: no fields provided for update", apperrors.ErrInvalidArgument)
	}
	if patch.Income != nil && patch.Income.IsNegative() {
		return nil, apperrors.NewValidationError("income", "cannot be negative")
	}

	existing, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, customerNotFoundMsg, slog.Int64("customerID", customerID))
			return nil, fmt.Errorf("%w: customer %d", apperrors.ErrNotFound, customerID)
		}
		s.logger.ErrorContext(ctx, "Repository error finding customer for update", slog.Any("error", err))
		return nil, fmt.Errorf("cannot find customer %d to update: %w", customerID, err)
	}

	updated := patch.Apply(*existing)

	s.logger.InfoContext(ctx, "Calling repository Save to persist merged customer")
	if err := s.repo.Save(ctx, &updated); err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to save updated customer", slog.Any("error", err))
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: customer %d", apperrors.ErrNotFound, customerID)
		}
		return nil, fmt.Errorf("failed to save updated customer %d: %w", customerID, err)
	}

	updatedEvent := event.CustomerUpdatedEvent{
		Timestamp: time.Now(),
		Payload:   newCustomerEventPayload(&updated),
	}
	if pubErr := s.pub.PublishCustomerUpdated(ctx, updatedEvent); pubErr != nil {
		s.logger.ErrorContext(ctx, "Customer updated, but FAILED to publish update event", slog.Any("error", pubErr))
	}

	s.logger.InfoContext(ctx, "Successfully updated customer", slog.Int64("customerID", customerID))
	return &updated, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID int64) error {
	s.logger.InfoContext(ctx, "Attempting to delete customer", slog.Int64("customerID", customerID))

	// A bare delete on a missing ID would not fail on its own, so existence is
	// checked first.
	if _, err := s.repo.FindByID(ctx, customerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, customerNotFoundMsg, slog.Int64("customerID", customerID))
			return fmt.Errorf("%w: customer %d", apperrors.ErrNotFound, customerID)
		}
		s.logger.ErrorContext(ctx, "Repository error finding customer for delete", slog.Any("error", err))
		return fmt.Errorf("cannot find customer %d to delete: %w", customerID, err)
	}

	if err := s.repo.Delete(ctx, customerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, "Customer disappeared before delete completed", slog.Int64("customerID", customerID))
			return fmt.Errorf("%w: customer %d", apperrors.ErrNotFound, customerID)
		}
		s.logger.ErrorContext(ctx, "Repository failed to delete customer", slog.Any("error", err))
		return fmt.Errorf("failed to delete customer %d: %w", customerID, err)
	}

	s.logger.InfoContext(ctx, "Successfully deleted customer", slog.Int64("customerID", customerID))
	return nil
}
