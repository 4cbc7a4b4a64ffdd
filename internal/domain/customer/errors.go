package customer

import "github.com/clientes/backend/internal/domain/shared"

// Error codes specific to the customer context
const (
	CodeInvalidCPF       = "INVALID_CPF"
	CodeInactiveCustomer = "INACTIVE_CUSTOMER"
)

var (
	ErrCustomerNotFound  = shared.NewDomainError(shared.CodeNotFound, "Customer not found")
	ErrAddressNotFound   = shared.NewDomainError(shared.CodeNotFound, "Address not found")
	ErrDuplicateCustomer = shared.NewDomainError(shared.CodeConflict, "A customer with this CPF or email already exists")
	ErrInvalidCPF        = shared.NewDomainError(CodeInvalidCPF, "The informed CPF is invalid")
	ErrInactiveCustomer  = shared.NewDomainError(CodeInactiveCustomer, "Customer is inactive and cannot be modified")
	ErrCustomerModified  = shared.NewDomainError(shared.CodeConcurrencyConflict, "Customer was modified by another request, reload and try again")
)
