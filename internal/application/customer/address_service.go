package customer

import (
	"context"

	"github.com/clientes/backend/internal/domain/customer"
	"github.com/clientes/backend/internal/domain/shared"
	"github.com/clientes/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// AddressService handles standalone address operations.
// Addresses of an inactive customer are read-only.
type AddressService struct {
	addressRepo  customer.AddressRepository
	customerRepo customer.CustomerRepository
}

// NewAddressService creates a new AddressService
func NewAddressService(addressRepo customer.AddressRepository, customerRepo customer.CustomerRepository) *AddressService {
	return &AddressService{
		addressRepo:  addressRepo,
		customerRepo: customerRepo,
	}
}

// Create attaches a new address to the customer named by customer_id
func (s *AddressService) Create(ctx context.Context, req CreateAddressRequest) (*AddressResponse, error) {
	a := req.toDomain().Normalize()

	verr := &shared.ValidationError{}
	verr.Merge("", a.Validate())
	if req.CustomerID == nil || *req.CustomerID == 0 {
		verr.Add("customer_id", "required", "This field is required")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	if _, err := s.activeOwner(ctx, *req.CustomerID); err != nil {
		return nil, err
	}

	a.CustomerID = *req.CustomerID
	if err := s.addressRepo.Create(ctx, &a); err != nil {
		return nil, err
	}

	logger.L(ctx).Info("Address created",
		zap.Uint("address_id", a.ID),
		zap.Uint("customer_id", a.CustomerID),
	)

	response := ToAddressResponse(&a)
	return &response, nil
}

// GetByID returns an address by id
func (s *AddressService) GetByID(ctx context.Context, id uint) (*AddressResponse, error) {
	a, err := s.addressRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToAddressResponse(a)
	return &response, nil
}

// List returns every address, or only those of customerID when it is set
func (s *AddressService) List(ctx context.Context, customerID *uint) ([]AddressResponse, error) {
	var (
		addresses []customer.Address
		err       error
	)
	if customerID != nil {
		addresses, err = s.addressRepo.FindByCustomer(ctx, *customerID)
	} else {
		addresses, err = s.addressRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]AddressResponse, len(addresses))
	for i := range addresses {
		responses[i] = ToAddressResponse(&addresses[i])
	}
	return responses, nil
}

// Update overwrites the postal fields of an address. The owner is kept.
func (s *AddressService) Update(ctx context.Context, id uint, req UpdateAddressRequest) (*AddressResponse, error) {
	if req.ID == nil || *req.ID != id {
		return nil, shared.ErrIDMismatch
	}

	incoming := req.toDomain().Normalize()
	if err := incoming.Validate(); err != nil {
		return nil, err
	}

	a, err := s.addressRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.activeOwner(ctx, a.CustomerID); err != nil {
		return nil, err
	}

	a.CopyFieldsFrom(incoming)
	if err := s.addressRepo.Save(ctx, a); err != nil {
		return nil, err
	}

	logger.L(ctx).Info("Address updated", zap.Uint("address_id", id))

	response := ToAddressResponse(a)
	return &response, nil
}

// Delete removes an address permanently
func (s *AddressService) Delete(ctx context.Context, id uint) error {
	a, err := s.addressRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.activeOwner(ctx, a.CustomerID); err != nil {
		return err
	}

	if err := s.addressRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.L(ctx).Info("Address deleted",
		zap.Uint("address_id", id),
		zap.Uint("customer_id", a.CustomerID),
	)
	return nil
}

func (s *AddressService) activeOwner(ctx context.Context, customerID uint) (*customer.Customer, error) {
	owner, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !owner.IsActive() {
		return nil, customer.ErrInactiveCustomer
	}
	return owner, nil
}
