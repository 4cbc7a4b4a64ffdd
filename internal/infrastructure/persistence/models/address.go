package models

import "github.com/clientes/backend/internal/domain/customer"

// AddressModel is the persistence model for a customer's address.
type AddressModel struct {
	BaseModel
	Street     string  `gorm:"type:varchar(100);not null"`
	Number     string  `gorm:"type:varchar(10);not null"`
	Complement *string `gorm:"type:varchar(50)"`
	District   string  `gorm:"type:varchar(50);not null"`
	City       string  `gorm:"type:varchar(50);not null"`
	State      string  `gorm:"type:char(2);not null"`
	PostalCode string  `gorm:"type:varchar(9);not null"`
	CustomerID uint    `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (AddressModel) TableName() string {
	return "addresses"
}

// ToDomain converts the persistence model to a domain Address
func (m *AddressModel) ToDomain() *customer.Address {
	return &customer.Address{
		BaseEntity: m.BaseModel.ToDomain(),
		Street:     m.Street,
		Number:     m.Number,
		Complement: m.Complement,
		District:   m.District,
		City:       m.City,
		State:      m.State,
		PostalCode: m.PostalCode,
		CustomerID: m.CustomerID,
	}
}

// FromDomain populates the persistence model from a domain Address
func (m *AddressModel) FromDomain(a *customer.Address) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.Street = a.Street
	m.Number = a.Number
	m.Complement = a.Complement
	m.District = a.District
	m.City = a.City
	m.State = a.State
	m.PostalCode = a.PostalCode
	m.CustomerID = a.CustomerID
}

// AddressColumns returns the postal columns an update may overwrite; the owner is excluded
func (m *AddressModel) AddressColumns() map[string]any {
	return map[string]any{
		"street":      m.Street,
		"number":      m.Number,
		"complement":  m.Complement,
		"district":    m.District,
		"city":        m.City,
		"state":       m.State,
		"postal_code": m.PostalCode,
	}
}
