package credit

import (
	"time"

	"credit-system/internal/domain/customer"
	"credit-system/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MaxInstallments = 48

	// First installment may be scheduled at most this many months ahead.
	MaxFirstInstallmentLeadMonths = 3
)

type CreditStatus string

const (
	StatusPending  CreditStatus = "PENDING"
	StatusApproved CreditStatus = "APPROVED"
	StatusRejected CreditStatus = "REJECTED"
)

type Credit struct {
	ID                   int64              `json:"id"`
	CreditCode           uuid.UUID          `json:"creditCode"`
	CreditValue          decimal.Decimal    `json:"creditValue"`
	DayFirstInstallment  time.Time          `json:"dayFirstInstallment"`
	NumberOfInstallments int                `json:"numberOfInstallments"`
	Status               CreditStatus       `json:"status"`
	CustomerID           int64              `json:"customerId"`
	Customer             *customer.Customer `json:"customer,omitempty"`
	CreatedAt            time.Time          `json:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt"`
}

// NewCredit builds a pending credit with a freshly generated credit code. The
// owning customer is resolved and attached by the service, not here.
func NewCredit(creditValue decimal.Decimal, dayFirstInstallment time.Time, numberOfInstallments int, customerID int64) (*Credit, error) {
	if !creditValue.IsPositive() {
		return nil, apperrors.NewValidationError("creditValue", "must be greater than zero")
	}
	if numberOfInstallments < 1 || numberOfInstallments > MaxInstallments {
		return nil, apperrors.NewValidationError("numberOfInstallments", "must be between 1 and 48")
	}
	if customerID <= 0 {
		return nil, apperrors.NewValidationError("customerId", "is required")
	}

	today := time.Now().Truncate(24 * time.Hour)
	if !dayFirstInstallment.After(today) {
		return nil, apperrors.NewValidationError("dayFirstInstallment", "must be in the future")
	}
	if dayFirstInstallment.After(today.AddDate(0, MaxFirstInstallmentLeadMonths, 0)) {
		return nil, apperrors.NewValidationError("dayFirstInstallment", "must be within the next 3 months")
	}

	return &Credit{
		CreditCode:           uuid.New(),
		CreditValue:          creditValue,
		DayFirstInstallment:  dayFirstInstallment,
		NumberOfInstallments: numberOfInstallments,
		Status:               StatusPending,
		CustomerID:           customerID,
	}, nil
}

func (c *Credit) BelongsTo(customerID int64) bool {
	return c.CustomerID == customerID
}
