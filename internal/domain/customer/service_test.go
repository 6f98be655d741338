package customer_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"credit-system/internal/domain/customer"
	"credit-system/internal/pkg/apperrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func setupTest() (*customer.MockCustomerRepository, customer.CustomerService) {
	mockRepo := new(customer.MockCustomerRepository)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := customer.NewCustomerService(mockRepo, nil, logger)
	return mockRepo, service
}

func newCustomerFixture() *customer.Customer {
	return customer.NewCustomer(
		"Mateus", "Lima", "28475934625", "mateus@email.com",
		decimal.NewFromFloat(2000.0), "1234",
		customer.Address{ZipCode: "000000", Street: "Rua de tal, 123"},
	)
}

func TestCustomerService_CreateCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo, service := setupTest()
		cust := newCustomerFixture()
		expectedCustomerID := int64(1)

		mockRepo.On("Save", ctx, mock.MatchedBy(func(c *customer.Customer) bool {
			match := c.FirstName == "Mateus" &&
				c.LastName == "Lima" &&
				c.CPF == "28475934625" &&
				c.Email == "mateus@email.com"
			if match {
				c.CustomerID = expectedCustomerID
			}
			return match
		})).Return(nil).Once()

		created, err := service.CreateCustomer(ctx, cust)

		assert.NoError(t, err)
		assert.NotNil(t, created)
		if created != nil {
			assert.Equal(t, expectedCustomerID, created.CustomerID)
			assert.Equal(t, "Mateus", created.FirstName)
			assert.Equal(t, "mateus@email.com", created.Email)
			assert.True(t, decimal.NewFromFloat(2000.0).Equal(created.Income))
			assert.Equal(t, "000000", created.Address.ZipCode)
		}
		mockRepo.AssertExpectations(t)
	})

	t.Run("Password is stored hashed", func(t *testing.T) {
		mockRepo, service := setupTest()
		cust := newCustomerFixture()

		var savedPassword string
		mockRepo.On("Save", ctx, mock.AnythingOfType("*customer.Customer")).Run(func(args mock.Arguments) {
			savedPassword = args.Get(1).(*customer.Customer).Password
		}).Return(nil).Once()

		_, err := service.CreateCustomer(ctx, cust)

		assert.NoError(t, err)
		assert.NotEqual(t, "1234", savedPassword)
		assert.True(t, strings.HasPrefix(savedPassword, "$2"))
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(savedPassword), []byte("1234")))
	})

	t.Run("Error - Empty FirstName", func(t *testing.T) {
		mockRepo, service := setupTest()
		cust := newCustomerFixture()
		cust.FirstName = "  "

		_, err := service.CreateCustomer(ctx, cust)

		assert.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Error - Negative Income", func(t *testing.T) {
		mockRepo, service := setupTest()
		cust := newCustomerFixture()
		cust.Income = decimal.NewFromFloat(-1.0)

		_, err := service.CreateCustomer(ctx, cust)

		assert.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Error - Duplicate CPF", func(t *testing.T) {
		mockRepo, service := setupTest()
		cust := newCustomerFixture()
		dupErr := errors.Join(apperrors.ErrAlreadyExists, customer.ErrDuplicateCPF)

		mockRepo.On("Save", ctx, mock.AnythingOfType("*customer.Customer")).Return(dupErr).Once()

		_, err := service.CreateCustomer(ctx, cust)

		assert.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - Repository Save Failure", func(t *testing.T) {
		mockRepo, service := setupTest()
		cust := newCustomerFixture()
		dbError := errors.New("database connection failed")

		mockRepo.On("Save", ctx, mock.AnythingOfType("*customer.Customer")).Return(dbError).Once()

		created, err := service.CreateCustomer(ctx, cust)

		assert.Error(t, err)
		assert.Nil(t, created)
		assert.ErrorIs(t, err, dbError)
		assert.Contains(t, err.Error(), "failed to save new customer")
		mockRepo.AssertExpectations(t)
	})
}

func TestCustomerService_GetCustomer(t *testing.T) {
	ctx := context.Background()
	customerID := int64(42)

	t.Run("Success", func(t *testing.T) {
		mockRepo, service := setupTest()
		expected := &customer.Customer{CustomerID: customerID, FirstName: "Mateus"}

		mockRepo.On("FindByID", ctx, customerID).Return(expected, nil).Once()

		cust, err := service.GetCustomer(ctx, customerID)

		assert.NoError(t, err)
		assert.Equal(t, expected, cust)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - Not Found", func(t *testing.T) {
		mockRepo, service := setupTest()

		mockRepo.On("FindByID", ctx, customerID).Return(nil, apperrors.ErrNotFound).Once()

		cust, err := service.GetCustomer(ctx, customerID)

		assert.Error(t, err)
		assert.Nil(t, cust)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Contains(t, err.Error(), "42")
		mockRepo.AssertExpectations(t)
	})
}

func TestCustomerService_UpdateCustomer(t *testing.T) {
	ctx := context.Background()
	customerID := int64(7)

	t.Run("Success - partial merge", func(t *testing.T) {
		mockRepo, service := setupTest()
		existing := newCustomerFixture()
		existing.CustomerID = customerID

		newStreet := "Rua Nova, 42"
		patch := customer.Patch{Street: &newStreet}

		mockRepo.On("FindByID", ctx, customerID).Return(existing, nil).Once()
		mockRepo.On("Save", ctx, mock.MatchedBy(func(c *customer.Customer) bool {
			return c.CustomerID == customerID &&
				c.Address.Street == newStreet &&
				c.FirstName == existing.FirstName
		})).Return(nil).Once()

		updated, err := service.UpdateCustomer(ctx, customerID, patch)

		assert.NoError(t, err)
		assert.NotNil(t, updated)
		assert.Equal(t, newStreet, updated.Address.Street)
		assert.Equal(t, existing.Email, updated.Email)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - empty patch", func(t *testing.T) {
		mockRepo, service := setupTest()

		_, err := service.UpdateCustomer(ctx, customerID, customer.Patch{})

		assert.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
		mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("Error - customer not found", func(t *testing.T) {
		mockRepo, service := setupTest()
		newName := "Joao"

		mockRepo.On("FindByID", ctx, customerID).Return(nil, apperrors.ErrNotFound).Once()

		_, err := service.UpdateCustomer(ctx, customerID, customer.Patch{FirstName: &newName})

		assert.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCustomerService_DeleteCustomer(t *testing.T) {
	ctx := context.Background()
	customerID := int64(3)

	t.Run("Success", func(t *testing.T) {
		mockRepo, service := setupTest()
		existing := &customer.Customer{CustomerID: customerID}

		mockRepo.On("FindByID", ctx, customerID).Return(existing, nil).Once()
		mockRepo.On("Delete", ctx, customerID).Return(nil).Once()

		err := service.DeleteCustomer(ctx, customerID)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - deleting missing customer fails with NotFound", func(t *testing.T) {
		mockRepo, service := setupTest()

		mockRepo.On("FindByID", ctx, customerID).Return(nil, apperrors.ErrNotFound).Once()

		err := service.DeleteCustomer(ctx, customerID)

		assert.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
