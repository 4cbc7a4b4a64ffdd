package models

import (
	"github.com/clientes/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// DetailsColumns holds the columns shared by products and services
type DetailsColumns struct {
	Name        string          `gorm:"type:varchar(100);not null"`
	Description string          `gorm:"type:varchar(500)"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

func (d DetailsColumns) toDomain() catalog.Details {
	return catalog.Details{Name: d.Name, Description: d.Description, Price: d.Price}
}

func detailsFromDomain(d catalog.Details) DetailsColumns {
	return DetailsColumns{Name: d.Name, Description: d.Description, Price: d.Price}
}

// ProductModel is the persistence model for the Product entity.
type ProductModel struct {
	BaseModel
	DetailsColumns `gorm:"embedded"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseEntity: m.BaseModel.ToDomain(),
		Details:    m.DetailsColumns.toDomain(),
	}
}

// ProductModelFromDomain creates a ProductModel from a domain Product
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{DetailsColumns: detailsFromDomain(p.Details)}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}

// ServiceModel is the persistence model for the Service entity.
type ServiceModel struct {
	BaseModel
	DetailsColumns `gorm:"embedded"`
}

// TableName returns the table name for GORM
func (ServiceModel) TableName() string {
	return "services"
}

// ToDomain converts the persistence model to a domain Service
func (m *ServiceModel) ToDomain() *catalog.Service {
	return &catalog.Service{
		BaseEntity: m.BaseModel.ToDomain(),
		Details:    m.DetailsColumns.toDomain(),
	}
}

// ServiceModelFromDomain creates a ServiceModel from a domain Service
func ServiceModelFromDomain(s *catalog.Service) *ServiceModel {
	m := &ServiceModel{DetailsColumns: detailsFromDomain(s.Details)}
	m.FromDomainBaseEntity(s.BaseEntity)
	return m
}

// All lists every model, in dependency order, for AutoMigrate
func All() []any {
	return []any{
		&CustomerModel{},
		&AddressModel{},
		&ProductModel{},
		&ServiceModel{},
	}
}
