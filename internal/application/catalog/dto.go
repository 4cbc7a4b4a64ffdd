package catalog

import (
	"github.com/clientes/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ItemRequest is the body of product and service create and update requests
type ItemRequest struct {
	ID          *uint           `json:"id,omitempty"`
	Name        string          `json:"name" example:"Notebook"`
	Description string          `json:"description" example:"14 inch, 16GB RAM"`
	Price       decimal.Decimal `json:"price" swaggertype:"number" example:"3499.90"`
}

func (r ItemRequest) details() catalog.Details {
	return catalog.Details{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
	}
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" swaggertype:"number"`
}

// ServiceResponse represents a service in API responses
type ServiceResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" swaggertype:"number"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
	}
}

// ToServiceResponse converts a domain Service to ServiceResponse
func ToServiceResponse(s *catalog.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
	}
}
