package persistence

import (
	"context"
	"errors"

	"github.com/clientes/backend/internal/domain/catalog"
	"github.com/clientes/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uint) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrProductNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists every product ordered by ID
func (r *GormProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	var productModels []models.ProductModel
	if err := r.db.WithContext(ctx).Order("id").Find(&productModels).Error; err != nil {
		return nil, err
	}
	products := make([]catalog.Product, len(productModels))
	for i := range productModels {
		products[i] = *productModels[i].ToDomain()
	}
	return products, nil
}

// Save inserts a new product or overwrites an existing one
func (r *GormProductRepository) Save(ctx context.Context, p *catalog.Product) error {
	model := models.ProductModelFromDomain(p)
	if err := saveDetails(r.db.WithContext(ctx), model, model.ID, catalog.ErrProductNotFound); err != nil {
		return err
	}
	p.ID = model.ID
	return nil
}

// Delete removes the product permanently
func (r *GormProductRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.ProductModel{}, id, catalog.ErrProductNotFound)
}

// GormServiceRepository implements catalog.ServiceRepository using GORM
type GormServiceRepository struct {
	db *gorm.DB
}

// NewGormServiceRepository creates a new GormServiceRepository
func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

// FindByID finds a service by its ID
func (r *GormServiceRepository) FindByID(ctx context.Context, id uint) (*catalog.Service, error) {
	var model models.ServiceModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrServiceNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists every service ordered by ID
func (r *GormServiceRepository) FindAll(ctx context.Context) ([]catalog.Service, error) {
	var serviceModels []models.ServiceModel
	if err := r.db.WithContext(ctx).Order("id").Find(&serviceModels).Error; err != nil {
		return nil, err
	}
	services := make([]catalog.Service, len(serviceModels))
	for i := range serviceModels {
		services[i] = *serviceModels[i].ToDomain()
	}
	return services, nil
}

// Save inserts a new service or overwrites an existing one
func (r *GormServiceRepository) Save(ctx context.Context, s *catalog.Service) error {
	model := models.ServiceModelFromDomain(s)
	if err := saveDetails(r.db.WithContext(ctx), model, model.ID, catalog.ErrServiceNotFound); err != nil {
		return err
	}
	s.ID = model.ID
	return nil
}

// Delete removes the service permanently
func (r *GormServiceRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.ServiceModel{}, id, catalog.ErrServiceNotFound)
}

// saveDetails creates model when id is zero, otherwise updates every column
// of the existing row and reports notFound when there is none
func saveDetails(db *gorm.DB, model any, id uint, notFound error) error {
	if id == 0 {
		return db.Create(model).Error
	}
	result := db.Model(model).Where("id = ?", id).Select("name", "description", "price").Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound
	}
	return nil
}

func deleteByID(db *gorm.DB, model any, id uint, notFound error) error {
	result := db.Delete(model, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound
	}
	return nil
}

var (
	_ catalog.ProductRepository = (*GormProductRepository)(nil)
	_ catalog.ServiceRepository = (*GormServiceRepository)(nil)
)
