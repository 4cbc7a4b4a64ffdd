package catalog

import (
	"context"

	"github.com/clientes/backend/internal/domain/catalog"
	"github.com/clientes/backend/internal/domain/shared"
	"github.com/clientes/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// ServiceService handles operations on billable services
type ServiceService struct {
	serviceRepo catalog.ServiceRepository
}

// NewServiceService creates a new ServiceService
func NewServiceService(serviceRepo catalog.ServiceRepository) *ServiceService {
	return &ServiceService{serviceRepo: serviceRepo}
}

// Create creates a new service
func (s *ServiceService) Create(ctx context.Context, req ItemRequest) (*ServiceResponse, error) {
	service, err := catalog.NewService(req.details())
	if err != nil {
		return nil, err
	}

	if err := s.serviceRepo.Save(ctx, service); err != nil {
		return nil, err
	}

	logger.L(ctx).Info("Service created", zap.Uint("service_id", service.ID))

	response := ToServiceResponse(service)
	return &response, nil
}

// GetByID retrieves a service by ID
func (s *ServiceService) GetByID(ctx context.Context, id uint) (*ServiceResponse, error) {
	service, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToServiceResponse(service)
	return &response, nil
}

// List returns every service ordered by id
func (s *ServiceService) List(ctx context.Context) ([]ServiceResponse, error) {
	services, err := s.serviceRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]ServiceResponse, len(services))
	for i := range services {
		responses[i] = ToServiceResponse(&services[i])
	}
	return responses, nil
}

// Update replaces a service's details
func (s *ServiceService) Update(ctx context.Context, id uint, req ItemRequest) (*ServiceResponse, error) {
	if req.ID == nil || *req.ID != id {
		return nil, shared.ErrIDMismatch
	}

	service, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := service.Update(req.details()); err != nil {
		return nil, err
	}

	if err := s.serviceRepo.Save(ctx, service); err != nil {
		return nil, err
	}

	response := ToServiceResponse(service)
	return &response, nil
}

// Delete removes a service permanently
func (s *ServiceService) Delete(ctx context.Context, id uint) error {
	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.L(ctx).Info("Service deleted", zap.Uint("service_id", id))
	return nil
}
