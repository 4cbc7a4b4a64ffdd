package customer

import (
	"context"
	"errors"

	"github.com/clientes/backend/internal/domain/customer"
	"github.com/clientes/backend/internal/domain/shared"
	"github.com/clientes/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// CustomerService runs the customer create, update and soft-delete workflows
// and serves customer reads.
type CustomerService struct {
	customerRepo customer.CustomerRepository
	cpfValidator customer.CPFValidator
	metrics      Metrics
	now          shared.Clock
}

// Option configures a CustomerService
type Option func(*CustomerService)

// WithMetrics reports lifecycle events to m
func WithMetrics(m Metrics) Option {
	return func(s *CustomerService) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithClock replaces the UTC wall clock
func WithClock(clock shared.Clock) Option {
	return func(s *CustomerService) {
		if clock != nil {
			s.now = clock
		}
	}
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo customer.CustomerRepository, cpfValidator customer.CPFValidator, opts ...Option) *CustomerService {
	s := &CustomerService{
		customerRepo: customerRepo,
		cpfValidator: cpfValidator,
		metrics:      nopMetrics{},
		now:          shared.UTCNow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates the input, checks CPF and email uniqueness, validates the
// CPF and persists a new active customer with its addresses.
// Nothing is written unless every check passes.
func (s *CustomerService) Create(ctx context.Context, in CustomerInput) (*CustomerResponse, error) {
	profile := in.profile()
	addresses := in.addresses()

	if err := customer.ValidateWithAddresses(profile, addresses); err != nil {
		return nil, s.reject(ctx, err)
	}

	conflict, err := s.customerRepo.ExistsConflict(ctx, profile.CPF, profile.Email, nil)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, s.reject(ctx, customer.ErrDuplicateCustomer)
	}

	if !s.cpfValidator.Validate(ctx, profile.CPF) {
		return nil, s.reject(ctx, customer.ErrInvalidCPF)
	}

	c := customer.NewCustomer(profile, addresses, s.now())
	if err := s.customerRepo.Create(ctx, c); err != nil {
		if errors.Is(err, customer.ErrDuplicateCustomer) {
			return nil, s.reject(ctx, err)
		}
		return nil, err
	}

	s.metrics.CustomerCreated(ctx)
	logger.L(ctx).Info("Customer created",
		zap.Uint("customer_id", c.ID),
		zap.Int("addresses", len(c.Addresses)),
	)

	response := ToCustomerResponse(c)
	return &response, nil
}

// Update overwrites the customer's profile and replaces its whole address set.
// The body must carry the same id as the route.
func (s *CustomerService) Update(ctx context.Context, id uint, in CustomerInput) (*CustomerResponse, error) {
	if in.ID == nil || *in.ID != id {
		return nil, s.reject(ctx, shared.ErrIDMismatch)
	}

	profile := in.profile()
	addresses := in.addresses()
	if err := customer.ValidateWithAddresses(profile, addresses); err != nil {
		return nil, s.reject(ctx, err)
	}

	c, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.IsActive() {
		return nil, s.reject(ctx, customer.ErrInactiveCustomer)
	}

	conflict, err := s.customerRepo.ExistsConflict(ctx, profile.CPF, profile.Email, &id)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, s.reject(ctx, customer.ErrDuplicateCustomer)
	}

	if profile.CPF != c.CPF && !s.cpfValidator.Validate(ctx, profile.CPF) {
		return nil, s.reject(ctx, customer.ErrInvalidCPF)
	}

	changes, err := c.Overwrite(profile, addresses, s.now())
	if err != nil {
		return nil, s.reject(ctx, err)
	}

	if err := s.customerRepo.Update(ctx, c, changes); err != nil {
		if errors.Is(err, customer.ErrDuplicateCustomer) || errors.Is(err, customer.ErrCustomerModified) {
			return nil, s.reject(ctx, err)
		}
		return nil, err
	}

	s.metrics.CustomerUpdated(ctx)
	logger.L(ctx).Info("Customer updated",
		zap.Uint("customer_id", c.ID),
		zap.Uints("removed_address_ids", changes.DeleteIDs()),
		zap.Int("addresses_added", len(changes.ToInsert)),
	)

	response := ToCustomerResponse(c)
	return &response, nil
}

// SoftDelete marks the customer inactive. Repeating it is a successful no-op.
func (s *CustomerService) SoftDelete(ctx context.Context, id uint) error {
	c, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !c.Deactivate(s.now()) {
		logger.L(ctx).Debug("Customer already inactive", zap.Uint("customer_id", id))
		return nil
	}

	if err := s.customerRepo.SaveWithLock(ctx, c); err != nil {
		return err
	}

	s.metrics.CustomerDeactivated(ctx)
	logger.L(ctx).Info("Customer deactivated", zap.Uint("customer_id", id))
	return nil
}

// GetByID returns a customer, active or not, with its addresses
func (s *CustomerService) GetByID(ctx context.Context, id uint) (*CustomerResponse, error) {
	c, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToCustomerResponse(c)
	return &response, nil
}

// ListActive returns the active customers ordered by id
func (s *CustomerService) ListActive(ctx context.Context) ([]CustomerListResponse, error) {
	customers, err := s.customerRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]CustomerListResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerListResponse(&customers[i])
	}
	return responses, nil
}

// reject records a client-correctable failure and returns it unchanged
func (s *CustomerService) reject(ctx context.Context, err error) error {
	reason := rejectionReason(err)
	s.metrics.CustomerRejected(ctx, reason)
	logger.L(ctx).Warn("Customer write rejected", zap.String("reason", reason))
	return err
}

func rejectionReason(err error) string {
	var verr *shared.ValidationError
	if errors.As(err, &verr) {
		return shared.CodeValidation
	}
	var derr *shared.DomainError
	if errors.As(err, &derr) {
		return derr.Code
	}
	return "UNKNOWN"
}
