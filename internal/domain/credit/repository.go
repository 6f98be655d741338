package credit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	// Save inserts the credit when its ID is zero and updates it otherwise,
	// populating the generated ID and timestamps on insert.
	Save(ctx context.Context, credit *Credit) error

	FindAllByCustomerID(ctx context.Context, customerID int64) ([]*Credit, error)

	FindByCreditCode(ctx context.Context, creditCode uuid.UUID) (*Credit, error)

	// MarkExpiredPending rejects pending credits whose first installment date
	// is before asOf and returns how many rows changed.
	MarkExpiredPending(ctx context.Context, asOf time.Time) (int64, error)
}
