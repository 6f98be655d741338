package customer

import (
	"time"

	"github.com/shopspring/decimal"
)

type Address struct {
	ZipCode string `json:"zipCode"`
	Street  string `json:"street"`
}

type Customer struct {
	CustomerID int64           `json:"customerId"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	CPF        string          `json:"cpf"`
	Email      string          `json:"email"`
	Income     decimal.Decimal `json:"income"`
	Password   string          `json:"-"`
	Address    Address         `json:"address"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

func NewCustomer(firstName, lastName, cpf, email string, income decimal.Decimal, password string, address Address) *Customer {
	now := time.Now()
	return &Customer{
		FirstName: firstName,
		LastName:  lastName,
		CPF:       cpf,
		Email:     email,
		Income:    income,
		Password:  password,
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
