package persistence

import (
	"context"
	"errors"

	"github.com/clientes/backend/internal/domain/customer"
	"github.com/clientes/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCustomerRepository implements customer.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// ExistsConflict checks the CPF and email across every customer, active or not.
// It always queries the store; results are never cached.
func (r *GormCustomerRepository) ExistsConflict(ctx context.Context, cpf, email string, excludingID *uint) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Where(r.db.Where("cpf = ?", cpf).Or("email = ?", email))
	if excludingID != nil {
		query = query.Where("id <> ?", *excludingID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByID finds a customer by its ID, active or not, with its addresses
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uint) (*customer.Customer, error) {
	var model models.CustomerModel
	err := r.db.WithContext(ctx).
		Preload("Addresses", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, err
	}
	domain := model.ToDomain()
	if domain.Addresses == nil {
		domain.Addresses = []customer.Address{}
	}
	return domain, nil
}

// FindActive lists active customers ordered by ID, without addresses
func (r *GormCustomerRepository) FindActive(ctx context.Context) ([]customer.Customer, error) {
	var customerModels []models.CustomerModel
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("id").
		Find(&customerModels).Error; err != nil {
		return nil, err
	}

	customers := make([]customer.Customer, len(customerModels))
	for i, model := range customerModels {
		customers[i] = *model.ToDomain()
	}
	return customers, nil
}

// Create inserts the customer and its addresses in one transaction and
// writes the assigned identities back into c
func (r *GormCustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	model := models.CustomerModelFromDomain(c)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(model).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return customer.ErrDuplicateCustomer
		}
		return err
	}

	c.ID = model.ID
	for i := range c.Addresses {
		c.Addresses[i].ID = model.Addresses[i].ID
		c.Addresses[i].CustomerID = model.ID
	}
	return nil
}

// Update overwrites the scalar fields and applies the address changes
// atomically. A version mismatch aborts with ErrCustomerModified.
func (r *GormCustomerRepository) Update(ctx context.Context, c *customer.Customer, changes customer.AddressChanges) error {
	var inserted []models.AddressModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateScalars(tx, c); err != nil {
			return err
		}

		// Every persisted address of the owner goes, including rows written
		// through the address endpoints after the aggregate was loaded.
		if err := tx.Where("customer_id = ?", c.ID).
			Delete(&models.AddressModel{}).Error; err != nil {
			return err
		}

		if len(changes.ToInsert) == 0 {
			return nil
		}
		inserted = make([]models.AddressModel, len(changes.ToInsert))
		for i := range changes.ToInsert {
			inserted[i].FromDomain(&changes.ToInsert[i])
			inserted[i].ID = 0
			inserted[i].CustomerID = c.ID
		}
		return tx.Create(&inserted).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return customer.ErrDuplicateCustomer
		}
		return err
	}

	c.IncrementVersion()
	c.Addresses = make([]customer.Address, len(inserted))
	for i := range inserted {
		c.Addresses[i] = *inserted[i].ToDomain()
	}
	return nil
}

// SaveWithLock persists the scalar fields only, guarded by the version
func (r *GormCustomerRepository) SaveWithLock(ctx context.Context, c *customer.Customer) error {
	if err := updateScalars(r.db.WithContext(ctx), c); err != nil {
		if isUniqueViolation(err) {
			return customer.ErrDuplicateCustomer
		}
		return err
	}
	c.IncrementVersion()
	return nil
}

// updateScalars writes the customer row if its version still matches
func updateScalars(tx *gorm.DB, c *customer.Customer) error {
	model := models.CustomerModelFromDomain(c)
	columns := model.ScalarColumns()
	columns["version"] = c.Version + 1

	result := tx.Model(&models.CustomerModel{}).
		Where("id = ? AND version = ?", c.ID, c.Version).
		Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return customer.ErrCustomerModified
	}
	return nil
}

// Ensure GormCustomerRepository implements CustomerRepository
var _ customer.CustomerRepository = (*GormCustomerRepository)(nil)
