package customer

import (
	"context"
	"errors"
)

var (
	ErrDuplicateCPF = errors.New("cpf already registered")

	ErrDuplicateEmail = errors.New("email already registered")
)

type CustomerRepository interface {
	// Save inserts the customer when its ID is zero and updates it otherwise,
	// populating the generated ID and timestamps on insert.
	Save(ctx context.Context, customer *Customer) error

	FindByID(ctx context.Context, customerID int64) (*Customer, error)

	Delete(ctx context.Context, customerID int64) error
}
