package catalog

import "github.com/clientes/backend/internal/domain/shared"

// Service is a billable service offering
type Service struct {
	shared.BaseEntity
	Details
}

// NewService validates d and returns an unsaved service
func NewService(d Details) (*Service, error) {
	d = d.Normalize()
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &Service{Details: d}, nil
}

// Update replaces the service details
func (s *Service) Update(d Details) error {
	d = d.Normalize()
	if err := d.Validate(); err != nil {
		return err
	}
	s.Details = d
	return nil
}
