package dto

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"credit-system/internal/domain/customer"

	"github.com/shopspring/decimal"
)

type CreateCustomerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	CPF       string `json:"cpf"`
	Email     string `json:"email"`
	Income    string `json:"income"`
	Password  string `json:"password"`
	ZipCode   string `json:"zipCode"`
	Street    string `json:"street"`
}

func (r *CreateCustomerRequest) Validate() error {
	if strings.TrimSpace(r.FirstName) == "" {
		return fmt.Errorf("firstName cannot be empty")
	}
	if strings.TrimSpace(r.LastName) == "" {
		return fmt.Errorf("lastName cannot be empty")
	}
	if strings.TrimSpace(r.CPF) == "" {
		return fmt.Errorf("cpf cannot be empty")
	}
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if strings.TrimSpace(r.Password) == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if _, err := decimal.NewFromString(r.Income); err != nil || r.Income == "" {
		return fmt.Errorf("invalid income: %w", err)
	}
	return nil
}

// IncomeDecimal is only valid after Validate has passed.
func (r *CreateCustomerRequest) IncomeDecimal() decimal.Decimal {
	d, _ := decimal.NewFromString(r.Income)
	return d
}

// UpdateCustomerRequest carries a partial update. Absent fields stay nil and
// leave the stored value untouched.
type UpdateCustomerRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Income    *string `json:"income,omitempty"`
	ZipCode   *string `json:"zipCode,omitempty"`
	Street    *string `json:"street,omitempty"`
}

func (r *UpdateCustomerRequest) Validate() error {
	if r.Income != nil {
		if _, err := decimal.NewFromString(*r.Income); err != nil {
			return fmt.Errorf("invalid income: %w", err)
		}
	}
	return nil
}

func (r *UpdateCustomerRequest) ToPatch() customer.Patch {
	p := customer.Patch{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		ZipCode:   r.ZipCode,
		Street:    r.Street,
	}
	if r.Income != nil {
		d, _ := decimal.NewFromString(*r.Income)
		p.Income = &d
	}
	return p
}

type CustomerResponse struct {
	CustomerID string    `json:"customerId"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	CPF        string    `json:"cpf"`
	Email      string    `json:"email"`
	Income     string    `json:"income"`
	ZipCode    string    `json:"zipCode"`
	Street     string    `json:"street"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type CustomerCreatedResponse struct {
	CustomerID string `json:"customerId"`
	Message    string `json:"message"`
}

func NewCustomerResponse(cust *customer.Customer) CustomerResponse {
	if cust == nil {
		return CustomerResponse{}
	}

	return CustomerResponse{
		CustomerID: strconv.FormatInt(cust.CustomerID, 10),
		FirstName:  cust.FirstName,
		LastName:   cust.LastName,
		CPF:        cust.CPF,
		Email:      cust.Email,
		Income:     cust.Income.StringFixed(2),
		ZipCode:    cust.Address.ZipCode,
		Street:     cust.Address.Street,
		CreatedAt:  cust.CreatedAt,
		UpdatedAt:  cust.UpdatedAt,
	}
}

func NewCustomerCreatedResponse(cust *customer.Customer) CustomerCreatedResponse {
	if cust == nil {
		return CustomerCreatedResponse{}
	}
	return CustomerCreatedResponse{
		CustomerID: strconv.FormatInt(cust.CustomerID, 10),
		Message:    fmt.Sprintf("Customer %s saved", cust.Email),
	}
}
