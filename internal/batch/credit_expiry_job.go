package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"credit-system/internal/domain/credit"
	"credit-system/internal/infrastructure/monitoring"
)

// CreditExpiryJob rejects pending credits whose first installment date has
// already passed. Scheduled nightly; also safe to run ad hoc.
type CreditExpiryJob struct {
	creditRepo credit.Repository
	logger     *slog.Logger
}

func NewCreditExpiryJob(creditRepo credit.Repository, logger *slog.Logger) *CreditExpiryJob {
	if creditRepo == nil || logger == nil {
		panic("CreditExpiryJob dependencies cannot be nil")
	}
	return &CreditExpiryJob{
		creditRepo: creditRepo,
		logger:     logger.With("job", "CreditExpiry"),
	}
}

func (j *CreditExpiryJob) Run(ctx context.Context) error {
	startTime := time.Now()
	j.logger.InfoContext(ctx, "Starting credit expiry job.")

	count, err := j.creditRepo.MarkExpiredPending(ctx, startTime)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to reject expired pending credits, aborting job.", slog.Any("error", err))
		return fmt.Errorf("cannot run job, failed to reject expired credits: %w", err)
	}

	if count > 0 {
		monitoring.RecordCreditsExpired(count)
	}

	j.logger.InfoContext(ctx, "Credit expiry job finished.",
		slog.Duration("duration", time.Since(startTime)),
		slog.Int64("credits_rejected", count))
	return nil
}
