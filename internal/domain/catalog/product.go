package catalog

import "github.com/clientes/backend/internal/domain/shared"

// Product is a sellable good
type Product struct {
	shared.BaseEntity
	Details
}

// NewProduct validates d and returns an unsaved product
func NewProduct(d Details) (*Product, error) {
	d = d.Normalize()
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &Product{Details: d}, nil
}

// Update replaces the product details
func (p *Product) Update(d Details) error {
	d = d.Normalize()
	if err := d.Validate(); err != nil {
		return err
	}
	p.Details = d
	return nil
}
