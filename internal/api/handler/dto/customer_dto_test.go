package dto

import (
	"testing"
	"time"

	"credit-system/internal/domain/customer"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

const validRequest = "Valid request"

func validCreateCustomerRequest() CreateCustomerRequest {
	return CreateCustomerRequest{
		FirstName: "Mateus",
		LastName:  "Lima",
		CPF:       "28475934625",
		Email:     "mateus@email.com",
		Income:    "2000.00",
		Password:  "1234",
		ZipCode:   "000000",
		Street:    "Rua de tal, 123",
	}
}

func TestCreateCustomerRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *CreateCustomerRequest)
		wantErr bool
	}{
		{validRequest, func(r *CreateCustomerRequest) {}, false},
		{"Empty firstName", func(r *CreateCustomerRequest) { r.FirstName = "" }, true},
		{"Empty lastName", func(r *CreateCustomerRequest) { r.LastName = "" }, true},
		{"Empty cpf", func(r *CreateCustomerRequest) { r.CPF = "" }, true},
		{"Empty email", func(r *CreateCustomerRequest) { r.Email = "" }, true},
		{"Empty password", func(r *CreateCustomerRequest) { r.Password = "" }, true},
		{"Non numeric income", func(r *CreateCustomerRequest) { r.Income = "lots" }, true},
		{"Empty income", func(r *CreateCustomerRequest) { r.Income = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateCustomerRequest()
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateCustomerRequestValidate(t *testing.T) {
	income := "3500.50"
	badIncome := "not-a-number"

	tests := []struct {
		name    string
		request UpdateCustomerRequest
		wantErr bool
	}{
		{validRequest, UpdateCustomerRequest{Income: &income}, false},
		{"Empty patch is valid at DTO level", UpdateCustomerRequest{}, false},
		{"Non numeric income", UpdateCustomerRequest{Income: &badIncome}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateCustomerRequestToPatch(t *testing.T) {
	firstName := "Cami"
	income := "3500.50"
	req := UpdateCustomerRequest{FirstName: &firstName, Income: &income}

	patch := req.ToPatch()

	assert.NotNil(t, patch.FirstName)
	assert.Equal(t, firstName, *patch.FirstName)
	assert.Nil(t, patch.LastName)
	assert.Nil(t, patch.ZipCode)
	assert.NotNil(t, patch.Income)
	assert.True(t, patch.Income.Equal(decimal.RequireFromString(income)))
}

func TestNewCustomerResponse(t *testing.T) {
	now := time.Now()
	cust := &customer.Customer{
		CustomerID: 7,
		FirstName:  "Mateus",
		LastName:   "Lima",
		CPF:        "28475934625",
		Email:      "mateus@email.com",
		Income:     decimal.NewFromFloat(2000.0),
		Password:   "secret-hash",
		Address:    customer.Address{ZipCode: "000000", Street: "Rua de tal, 123"},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	resp := NewCustomerResponse(cust)

	assert.Equal(t, "7", resp.CustomerID)
	assert.Equal(t, "2000.00", resp.Income)
	assert.Equal(t, "000000", resp.ZipCode)
	assert.Equal(t, "Rua de tal, 123", resp.Street)
}

func TestNewCustomerResponseNilCustomer(t *testing.T) {
	resp := NewCustomerResponse(nil)
	assert.Equal(t, CustomerResponse{}, resp)
}

func TestNewCustomerCreatedResponse(t *testing.T) {
	cust := &customer.Customer{CustomerID: 3, Email: "mateus@email.com"}

	resp := NewCustomerCreatedResponse(cust)

	assert.Equal(t, "3", resp.CustomerID)
	assert.Contains(t, resp.Message, "mateus@email.com")
}
