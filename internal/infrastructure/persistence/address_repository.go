package persistence

import (
	"context"
	"errors"

	"github.com/clientes/backend/internal/domain/customer"
	"github.com/clientes/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAddressRepository implements customer.AddressRepository using GORM
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GormAddressRepository
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// FindByID finds an address by its ID
func (r *GormAddressRepository) FindByID(ctx context.Context, id uint) (*customer.Address, error) {
	var model models.AddressModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrAddressNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists every address ordered by ID
func (r *GormAddressRepository) FindAll(ctx context.Context) ([]customer.Address, error) {
	return r.find(r.db.WithContext(ctx))
}

// FindByCustomer lists the addresses of one customer ordered by ID
func (r *GormAddressRepository) FindByCustomer(ctx context.Context, customerID uint) ([]customer.Address, error) {
	return r.find(r.db.WithContext(ctx).Where("customer_id = ?", customerID))
}

func (r *GormAddressRepository) find(query *gorm.DB) ([]customer.Address, error) {
	var addressModels []models.AddressModel
	if err := query.Order("id").Find(&addressModels).Error; err != nil {
		return nil, err
	}
	addresses := make([]customer.Address, len(addressModels))
	for i := range addressModels {
		addresses[i] = *addressModels[i].ToDomain()
	}
	return addresses, nil
}

// Create inserts the address and writes the assigned ID back
func (r *GormAddressRepository) Create(ctx context.Context, a *customer.Address) error {
	var model models.AddressModel
	model.FromDomain(a)
	model.ID = 0
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}
	a.ID = model.ID
	return nil
}

// Save overwrites the postal fields of an existing address; the owner never changes
func (r *GormAddressRepository) Save(ctx context.Context, a *customer.Address) error {
	var model models.AddressModel
	model.FromDomain(a)
	result := r.db.WithContext(ctx).
		Model(&models.AddressModel{}).
		Where("id = ?", a.ID).
		Updates(model.AddressColumns())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return customer.ErrAddressNotFound
	}
	return nil
}

// Delete removes the address permanently
func (r *GormAddressRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.AddressModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return customer.ErrAddressNotFound
	}
	return nil
}

// Ensure GormAddressRepository implements AddressRepository
var _ customer.AddressRepository = (*GormAddressRepository)(nil)
