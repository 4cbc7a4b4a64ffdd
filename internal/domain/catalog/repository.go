package catalog

import (
	"context"

	"github.com/clientes/backend/internal/domain/shared"
)

var (
	ErrProductNotFound = shared.NewDomainError(shared.CodeNotFound, "Product not found")
	ErrServiceNotFound = shared.NewDomainError(shared.CodeNotFound, "Service not found")
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	FindByID(ctx context.Context, id uint) (*Product, error)
	FindAll(ctx context.Context) ([]Product, error)
	Save(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uint) error
}

// ServiceRepository defines the interface for service persistence
type ServiceRepository interface {
	FindByID(ctx context.Context, id uint) (*Service, error)
	FindAll(ctx context.Context) ([]Service, error)
	Save(ctx context.Context, service *Service) error
	Delete(ctx context.Context, id uint) error
}
