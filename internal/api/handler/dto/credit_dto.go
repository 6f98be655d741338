package dto

import (
	"fmt"
	"strconv"
	"time"

	"credit-system/internal/domain/credit"

	"github.com/shopspring/decimal"
)

type CreateCreditRequest struct {
	CreditValue          string `json:"creditValue"`
	DayFirstInstallment  string `json:"dayFirstInstallment"`
	NumberOfInstallments int    `json:"numberOfInstallments"`
	CustomerID           int64  `json:"customerId"`
}

func (r *CreateCreditRequest) Validate() error {
	if _, err := decimal.NewFromString(r.CreditValue); err != nil || r.CreditValue == "" {
		return fmt.Errorf("invalid creditValue: %w", err)
	}
	if _, err := time.Parse(time.RFC3339[:10], r.DayFirstInstallment); err != nil || r.DayFirstInstallment == "" {
		return fmt.Errorf("invalid dayFirstInstallment format (use YYYY-MM-DD): %w", err)
	}
	if r.NumberOfInstallments <= 0 {
		return fmt.Errorf("numberOfInstallments must be positive")
	}
	if r.CustomerID <= 0 {
		return fmt.Errorf("customerId must be a positive number")
	}
	return nil
}

// CreditValueDecimal is only valid after Validate has passed.
func (r *CreateCreditRequest) CreditValueDecimal() decimal.Decimal {
	d, _ := decimal.NewFromString(r.CreditValue)
	return d
}

// DayFirstInstallmentDate is only valid after Validate has passed.
func (r *CreateCreditRequest) DayFirstInstallmentDate() time.Time {
	t, _ := time.Parse(time.RFC3339[:10], r.DayFirstInstallment)
	return t
}

type CreditResponse struct {
	CreditCode           string `json:"creditCode"`
	CreditValue          string `json:"creditValue"`
	DayFirstInstallment  string `json:"dayFirstInstallment"`
	NumberOfInstallments int    `json:"numberOfInstallments"`
	Status               string `json:"status"`
	CustomerID           string `json:"customerId"`
	CustomerEmail        string `json:"customerEmail,omitempty"`
	CustomerIncome       string `json:"customerIncome,omitempty"`
}

type CreditSummaryResponse struct {
	CreditCode           string `json:"creditCode"`
	CreditValue          string `json:"creditValue"`
	NumberOfInstallments int    `json:"numberOfInstallments"`
}

func NewCreditResponse(crd *credit.Credit) CreditResponse {
	if crd == nil {
		return CreditResponse{}
	}

	resp := CreditResponse{
		CreditCode:           crd.CreditCode.String(),
		CreditValue:          crd.CreditValue.StringFixed(2),
		DayFirstInstallment:  crd.DayFirstInstallment.Format(time.RFC3339[:10]),
		NumberOfInstallments: crd.NumberOfInstallments,
		Status:               string(crd.Status),
		CustomerID:           strconv.FormatInt(crd.CustomerID, 10),
	}
	if crd.Customer != nil {
		resp.CustomerEmail = crd.Customer.Email
		resp.CustomerIncome = crd.Customer.Income.StringFixed(2)
	}
	return resp
}

func NewCreditSummaryResponse(crd *credit.Credit) CreditSummaryResponse {
	if crd == nil {
		return CreditSummaryResponse{}
	}
	return CreditSummaryResponse{
		CreditCode:           crd.CreditCode.String(),
		CreditValue:          crd.CreditValue.StringFixed(2),
		NumberOfInstallments: crd.NumberOfInstallments,
	}
}

func NewCreditSummaryList(credits []*credit.Credit) []CreditSummaryResponse {
	out := make([]CreditSummaryResponse, len(credits))
	for i, crd := range credits {
		out[i] = NewCreditSummaryResponse(crd)
	}
	return out
}

type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type TokenRequest struct {
	Username string `json:"username"`
}
