package catalog

import (
	"github.com/clientes/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MinPrice is the smallest accepted price
var MinPrice = decimal.RequireFromString("0.01")

// DetailsConstraints validates the text fields shared by products and services
var DetailsConstraints = shared.ConstraintTable{
	{Field: "name", Rules: "required,max=100"},
	{Field: "description", Rules: "max=500"},
}

// Details holds the fields shared by products and services
type Details struct {
	Name        string
	Description string
	Price       decimal.Decimal
}

// Normalize trims and NFC-normalizes text fields
func (d Details) Normalize() Details {
	d.Name = shared.NormalizeText(d.Name)
	d.Description = shared.NormalizeText(d.Description)
	return d
}

// Validate reports every violation, including a price below MinPrice
func (d Details) Validate() error {
	err := DetailsConstraints.Validate(map[string]any{
		"name":        d.Name,
		"description": d.Description,
	})
	if d.Price.GreaterThanOrEqual(MinPrice) {
		return err
	}

	verr, ok := err.(*shared.ValidationError)
	if !ok {
		verr = &shared.ValidationError{}
	}
	verr.Add("price", "gte", "Must be greater than or equal to "+MinPrice.String())
	return verr
}
