// Package catalog implements product and service use cases.
package catalog

import (
	"context"

	"github.com/clientes/backend/internal/domain/catalog"
	"github.com/clientes/backend/internal/domain/shared"
	"github.com/clientes/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req ItemRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(req.details())
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	logger.L(ctx).Info("Product created", zap.Uint("product_id", product.ID))

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uint) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// List returns every product ordered by id
func (s *ProductService) List(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses, nil
}

// Update replaces a product's details
func (s *ProductService) Update(ctx context.Context, id uint, req ItemRequest) (*ProductResponse, error) {
	if req.ID == nil || *req.ID != id {
		return nil, shared.ErrIDMismatch
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.Update(req.details()); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete removes a product permanently
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.L(ctx).Info("Product deleted", zap.Uint("product_id", id))
	return nil
}
