package batch_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"credit-system/internal/batch"
	"credit-system/internal/domain/credit"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCreditRepository struct {
	mock.Mock
}

func (m *MockCreditRepository) Save(ctx context.Context, crd *credit.Credit) error {
	args := m.Called(ctx, crd)
	return args.Error(0)
}

func (m *MockCreditRepository) FindAllByCustomerID(ctx context.Context, customerID int64) ([]*credit.Credit, error) {
	args := m.Called(ctx, customerID)
	if credits, ok := args.Get(0).([]*credit.Credit); ok {
		return credits, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCreditRepository) FindByCreditCode(ctx context.Context, creditCode uuid.UUID) (*credit.Credit, error) {
	args := m.Called(ctx, creditCode)
	if crd, ok := args.Get(0).(*credit.Credit); ok {
		return crd, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCreditRepository) MarkExpiredPending(ctx context.Context, asOf time.Time) (int64, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).(int64), args.Error(1)
}

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestCreditExpiryJobRun(t *testing.T) {
	t.Run("rejects expired pending credits", func(t *testing.T) {
		mockRepo := new(MockCreditRepository)
		job := batch.NewCreditExpiryJob(mockRepo, logger)

		mockRepo.On("MarkExpiredPending", mock.Anything, mock.AnythingOfType("time.Time")).
			Return(int64(3), nil)

		err := job.Run(context.Background())

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("no expired credits", func(t *testing.T) {
		mockRepo := new(MockCreditRepository)
		job := batch.NewCreditExpiryJob(mockRepo, logger)

		mockRepo.On("MarkExpiredPending", mock.Anything, mock.AnythingOfType("time.Time")).
			Return(int64(0), nil)

		err := job.Run(context.Background())

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository failure aborts the job", func(t *testing.T) {
		mockRepo := new(MockCreditRepository)
		job := batch.NewCreditExpiryJob(mockRepo, logger)

		repoErr := errors.New("connection reset")
		mockRepo.On("MarkExpiredPending", mock.Anything, mock.AnythingOfType("time.Time")).
			Return(int64(0), repoErr)

		err := job.Run(context.Background())

		assert.Error(t, err)
		assert.ErrorIs(t, err, repoErr)
		mockRepo.AssertExpectations(t)
	})
}
