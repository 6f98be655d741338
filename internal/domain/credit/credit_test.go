package credit_test

import (
	"testing"
	"time"

	"credit-system/internal/domain/credit"
	"credit-system/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewCredit(t *testing.T) {
	value := decimal.NewFromFloat(2000.0)
	firstInstallment := time.Now().AddDate(0, 0, 45)

	t.Run("valid credit gets code and pending status", func(t *testing.T) {
		crd, err := credit.NewCredit(value, firstInstallment, 5, 1)

		assert.NoError(t, err)
		assert.NotNil(t, crd)
		assert.NotEqual(t, uuid.Nil, crd.CreditCode)
		assert.Equal(t, credit.StatusPending, crd.Status)
		assert.Equal(t, int64(1), crd.CustomerID)
		assert.Equal(t, 5, crd.NumberOfInstallments)
		assert.True(t, value.Equal(crd.CreditValue))
	})

	t.Run("credit codes are unique per credit", func(t *testing.T) {
		first, err := credit.NewCredit(value, firstInstallment, 5, 1)
		assert.NoError(t, err)
		second, err := credit.NewCredit(value, firstInstallment, 5, 1)
		assert.NoError(t, err)

		assert.NotEqual(t, first.CreditCode, second.CreditCode)
	})

	t.Run("zero value rejected", func(t *testing.T) {
		_, err := credit.NewCredit(decimal.Zero, firstInstallment, 5, 1)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("installments out of range rejected", func(t *testing.T) {
		_, err := credit.NewCredit(value, firstInstallment, 0, 1)
		assert.ErrorIs(t, err, apperrors.ErrValidation)

		_, err = credit.NewCredit(value, firstInstallment, credit.MaxInstallments+1, 1)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("missing customer id rejected", func(t *testing.T) {
		_, err := credit.NewCredit(value, firstInstallment, 5, 0)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("first installment in the past rejected", func(t *testing.T) {
		_, err := credit.NewCredit(value, time.Now().AddDate(0, 0, -1), 5, 1)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("first installment beyond three months rejected", func(t *testing.T) {
		_, err := credit.NewCredit(value, time.Now().AddDate(0, 4, 0), 5, 1)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestBelongsTo(t *testing.T) {
	crd := credit.Credit{CustomerID: 7}

	assert.True(t, crd.BelongsTo(7))
	assert.False(t, crd.BelongsTo(999))
}
