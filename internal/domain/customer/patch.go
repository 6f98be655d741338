package customer

import (
	"time"

	"github.com/shopspring/decimal"
)

// Patch carries the optional fields of a partial customer update. A nil field
// leaves the existing value untouched. CPF, email and password are deliberately
// not patchable through this path.
type Patch struct {
	FirstName *string
	LastName  *string
	Income    *decimal.Decimal
	ZipCode   *string
	Street    *string
}

func (p Patch) IsEmpty() bool {
	return p.FirstName == nil &&
		p.LastName == nil &&
		p.Income == nil &&
		p.ZipCode == nil &&
		p.Street == nil
}

// Apply merges the patch into a copy of the existing customer and returns the
// result. The receiver and the input are never mutated.
func (p Patch) Apply(existing Customer) Customer {
	updated := existing

	if p.FirstName != nil {
		updated.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		updated.LastName = *p.LastName
	}
	if p.Income != nil {
		updated.Income = *p.Income
	}
	if p.ZipCode != nil {
		updated.Address.ZipCode = *p.ZipCode
	}
	if p.Street != nil {
		updated.Address.Street = *p.Street
	}

	if !p.IsEmpty() {
		updated.UpdatedAt = time.Now()
	}
	return updated
}
