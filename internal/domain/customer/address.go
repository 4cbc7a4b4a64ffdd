package customer

import (
	"strings"

	"github.com/clientes/backend/internal/domain/shared"
)

// Address is a postal address owned by exactly one customer.
// CustomerID is a back-reference only; ownership lives on Customer.Addresses.
type Address struct {
	shared.BaseEntity
	Street     string
	Number     string
	Complement *string
	District   string
	City       string
	State      string
	PostalCode string
	CustomerID uint
}

// Normalize trims text fields and upper-cases the state code
func (a Address) Normalize() Address {
	a.Street = shared.NormalizeText(a.Street)
	a.Number = strings.TrimSpace(a.Number)
	a.Complement = shared.NormalizeOptional(a.Complement)
	a.District = shared.NormalizeText(a.District)
	a.City = shared.NormalizeText(a.City)
	a.State = strings.ToUpper(strings.TrimSpace(a.State))
	a.PostalCode = strings.TrimSpace(a.PostalCode)
	return a
}

// Validate checks every address constraint and reports all violations
func (a Address) Validate() error {
	complement := ""
	if a.Complement != nil {
		complement = *a.Complement
	}
	return AddressConstraints.Validate(map[string]any{
		"street":      a.Street,
		"number":      a.Number,
		"complement":  complement,
		"district":    a.District,
		"city":        a.City,
		"state":       a.State,
		"postal_code": a.PostalCode,
	})
}

// CopyFieldsFrom overwrites the postal fields, keeping identity and owner
func (a *Address) CopyFieldsFrom(other Address) {
	a.Street = other.Street
	a.Number = other.Number
	a.Complement = other.Complement
	a.District = other.District
	a.City = other.City
	a.State = other.State
	a.PostalCode = other.PostalCode
}
