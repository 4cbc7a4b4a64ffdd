package customer

import (
	"context"

	"github.com/clientes/backend/internal/domain/customer"
	"github.com/stretchr/testify/mock"
)

// MockCustomerRepository is a mock implementation of customer.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) ExistsConflict(ctx context.Context, cpf, email string, excludingID *uint) (bool, error) {
	args := m.Called(ctx, cpf, email, excludingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uint) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindActive(ctx context.Context) ([]customer.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer, changes customer.AddressChanges) error {
	args := m.Called(ctx, c, changes)
	return args.Error(0)
}

func (m *MockCustomerRepository) SaveWithLock(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// MockAddressRepository is a mock implementation of customer.AddressRepository
type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) FindByID(ctx context.Context, id uint) (*customer.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Address), args.Error(1)
}

func (m *MockAddressRepository) FindAll(ctx context.Context) ([]customer.Address, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]customer.Address), args.Error(1)
}

func (m *MockAddressRepository) FindByCustomer(ctx context.Context, customerID uint) ([]customer.Address, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]customer.Address), args.Error(1)
}

func (m *MockAddressRepository) Create(ctx context.Context, a *customer.Address) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAddressRepository) Save(ctx context.Context, a *customer.Address) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAddressRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCPFValidator is a mock implementation of customer.CPFValidator
type MockCPFValidator struct {
	mock.Mock
}

func (m *MockCPFValidator) Validate(ctx context.Context, cpf string) bool {
	args := m.Called(ctx, cpf)
	return args.Bool(0)
}

// recordingMetrics counts lifecycle events
type recordingMetrics struct {
	created, updated, deactivated int
	rejected                      []string
}

func (r *recordingMetrics) CustomerCreated(context.Context)     { r.created++ }
func (r *recordingMetrics) CustomerUpdated(context.Context)     { r.updated++ }
func (r *recordingMetrics) CustomerDeactivated(context.Context) { r.deactivated++ }
func (r *recordingMetrics) CustomerRejected(_ context.Context, reason string) {
	r.rejected = append(r.rejected, reason)
}
