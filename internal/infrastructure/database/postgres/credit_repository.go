package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"credit-system/internal/domain/credit"
	"credit-system/internal/infrastructure/monitoring"
	"credit-system/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CreditRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ credit.Repository = (*CreditRepository)(nil)

func NewCreditRepository(db DBPool, logger *slog.Logger) *CreditRepository {
	if db == nil {
		panic("DBPool cannot be nil for CreditRepository")
	}
	return &CreditRepository{
		db:     db,
		logger: logger.With("component", "CreditRepository"),
	}
}

func (r *CreditRepository) Save(ctx context.Context, crd *credit.Credit) error {
	if crd == nil {
		return fmt.Errorf("%w: credit cannot be nil", apperrors.ErrInvalidArgument)
	}

	if crd.ID == 0 {
		return r.createCredit(ctx, crd)
	}
	return r.updateCredit(ctx, crd)
}

func (r *CreditRepository) createCredit(ctx context.Context, crd *credit.Credit) error {
	r.logger.InfoContext(ctx, "Attempting to insert new credit", slog.String("creditCode", crd.CreditCode.String()))

	query := `
        INSERT INTO credits (credit_code, credit_value, day_first_installment, number_of_installments, status, customer_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
        RETURNING id, created_at, updated_at`

	start := time.Now()
	err := r.db.QueryRow(ctx, query,
		crd.CreditCode,
		crd.CreditValue,
		crd.DayFirstInstallment,
		crd.NumberOfInstallments,
		crd.Status,
		crd.CustomerID,
	).Scan(
		&crd.ID,
		&crd.CreatedAt,
		&crd.UpdatedAt,
	)
	monitoring.RecordDBQuery("credit_insert", queryStatus(err), time.Since(start))

	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrAlreadyExists) {
			r.logger.WarnContext(ctx, "Failed to insert credit due to unique constraint violation", slog.Any("error", err))
			return translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to insert credit", slog.Any("error", err))
		return fmt.Errorf("%w: failed to insert credit: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Credit inserted successfully", slog.Int64("creditID", crd.ID))
	return nil
}

func (r *CreditRepository) updateCredit(ctx context.Context, crd *credit.Credit) error {
	r.logger.InfoContext(ctx, "Attempting to update credit", slog.Int64("creditID", crd.ID))

	query := `
        UPDATE credits
        SET status = $1,
            updated_at = NOW()
        WHERE id = $2`

	start := time.Now()
	cmdTag, err := r.db.Exec(ctx, query, crd.Status, crd.ID)
	monitoring.RecordDBQuery("credit_update", queryStatus(err), time.Since(start))

	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to update credit", slog.Any("error", err))
		return fmt.Errorf("%w: failed to update credit: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Update affected zero rows, credit likely not found")
		return apperrors.ErrNotFound
	}

	r.logger.InfoContext(ctx, "Credit updated successfully")
	return nil
}

func (r *CreditRepository) FindAllByCustomerID(ctx context.Context, customerID int64) ([]*credit.Credit, error) {
	r.logger.InfoContext(ctx, "Attempting to find credits by customer ID", slog.Int64("customerID", customerID))

	query := `
        SELECT id, credit_code, credit_value, day_first_installment, number_of_installments, status, customer_id, created_at, updated_at
        FROM credits
        WHERE customer_id = $1
        ORDER BY id ASC`

	start := time.Now()
	rows, err := r.db.Query(ctx, query, customerID)
	monitoring.RecordDBQuery("credit_find_all_by_customer", queryStatus(err), time.Since(start))
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query credits", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query credits: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	credits := make([]*credit.Credit, 0)
	for rows.Next() {
		crd, err := scanCredit(rows)
		if err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan credit row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan credit row: %w", apperrors.ErrDatabase, err)
		}
		credits = append(credits, crd)
	}

	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating credit rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating credit rows: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Finished finding credits", slog.Int("count", len(credits)))
	return credits, nil
}

func (r *CreditRepository) FindByCreditCode(ctx context.Context, creditCode uuid.UUID) (*credit.Credit, error) {
	r.logger.InfoContext(ctx, "Attempting to find credit by code")

	query := `
        SELECT id, credit_code, credit_value, day_first_installment, number_of_installments, status, customer_id, created_at, updated_at
        FROM credits
        WHERE credit_code = $1`

	var crd credit.Credit
	start := time.Now()
	err := r.db.QueryRow(ctx, query, creditCode).Scan(
		&crd.ID,
		&crd.CreditCode,
		&crd.CreditValue,
		&crd.DayFirstInstallment,
		&crd.NumberOfInstallments,
		&crd.Status,
		&crd.CustomerID,
		&crd.CreatedAt,
		&crd.UpdatedAt,
	)
	monitoring.RecordDBQuery("credit_find_by_code", queryStatus(err), time.Since(start))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Credit not found by code")
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query/scan credit by code", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get credit by code: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Credit found successfully", slog.Int64("creditID", crd.ID))
	return &crd, nil
}

func (r *CreditRepository) MarkExpiredPending(ctx context.Context, asOf time.Time) (int64, error) {
	r.logger.InfoContext(ctx, "Attempting to reject expired pending credits", slog.Time("asOf", asOf))

	query := `
        UPDATE credits
        SET status = $1,
            updated_at = NOW()
        WHERE status = $2 AND day_first_installment < $3`

	start := time.Now()
	cmdTag, err := r.db.Exec(ctx, query, credit.StatusRejected, credit.StatusPending, asOf)
	monitoring.RecordDBQuery("credit_mark_expired_pending", queryStatus(err), time.Since(start))

	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to reject expired pending credits", slog.Any("error", err))
		return 0, fmt.Errorf("%w: failed to reject expired pending credits: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Expired pending credits rejected", slog.Int64("count", cmdTag.RowsAffected()))
	return cmdTag.RowsAffected(), nil
}

func scanCredit(rows pgx.Rows) (*credit.Credit, error) {
	var crd credit.Credit
	err := rows.Scan(
		&crd.ID,
		&crd.CreditCode,
		&crd.CreditValue,
		&crd.DayFirstInstallment,
		&crd.NumberOfInstallments,
		&crd.Status,
		&crd.CustomerID,
		&crd.CreatedAt,
		&crd.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &crd, nil
}
