package customer

import "context"

// UniquenessChecker reports whether a CPF or email is already taken.
// Results must reflect persisted state at call time.
type UniquenessChecker interface {
	// ExistsConflict returns true if any customer, active or not, other than
	// excludingID has the given CPF or email
	ExistsConflict(ctx context.Context, cpf, email string, excludingID *uint) (bool, error)
}

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	UniquenessChecker

	// FindByID loads a customer with its addresses
	FindByID(ctx context.Context, id uint) (*Customer, error)

	// FindActive lists active customers without their addresses
	FindActive(ctx context.Context) ([]Customer, error)

	// Create inserts the customer and its addresses, assigning identities
	Create(ctx context.Context, customer *Customer) error

	// Update persists the scalar fields and applies the address changes in one
	// transaction, guarded by the customer's version
	Update(ctx context.Context, customer *Customer, changes AddressChanges) error

	// SaveWithLock persists scalar fields only, guarded by the customer's version
	SaveWithLock(ctx context.Context, customer *Customer) error
}

// AddressRepository defines the interface for direct address persistence
type AddressRepository interface {
	FindByID(ctx context.Context, id uint) (*Address, error)
	FindAll(ctx context.Context) ([]Address, error)
	FindByCustomer(ctx context.Context, customerID uint) ([]Address, error)
	Create(ctx context.Context, address *Address) error
	Save(ctx context.Context, address *Address) error
	Delete(ctx context.Context, id uint) error
}
