package event

import "time"

// Payload structs mirror the domain entities without importing them, so the
// domain packages can depend on this package for publishing.

type CustomerEventPayload struct {
	CustomerID int64     `json:"customerId"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type CustomerCreatedEvent struct {
	Timestamp time.Time            `json:"timestamp"`
	Payload   CustomerEventPayload `json:"payload"`
}

type CustomerUpdatedEvent struct {
	Timestamp time.Time            `json:"timestamp"`
	Payload   CustomerEventPayload `json:"payload"`
}

type CreditEventPayload struct {
	CreditCode           string    `json:"creditCode"`
	CreditValue          string    `json:"creditValue"`
	NumberOfInstallments int       `json:"numberOfInstallments"`
	Status               string    `json:"status"`
	CustomerID           int64     `json:"customerId"`
	CreatedAt            time.Time `json:"createdAt"`
}

type CreditCreatedEvent struct {
	Timestamp time.Time          `json:"timestamp"`
	Payload   CreditEventPayload `json:"payload"`
}
