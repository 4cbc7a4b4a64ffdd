package customer

import "context"

// CPFValidator decides whether a CPF may be registered.
// Implementations never fail: anything that prevents a positive answer,
// including network errors, yields false.
type CPFValidator interface {
	Validate(ctx context.Context, cpf string) bool
}
