package models

import (
	"time"

	"github.com/clientes/backend/internal/domain/customer"
)

// CustomerModel is the persistence model for the Customer aggregate root.
type CustomerModel struct {
	AggregateModel
	Name          string         `gorm:"type:varchar(100);not null"`
	Surname       string         `gorm:"type:varchar(100);not null"`
	Email         string         `gorm:"type:varchar(100);not null;uniqueIndex:idx_customers_email"`
	CPF           string         `gorm:"column:cpf;type:varchar(11);not null;uniqueIndex:idx_customers_cpf"`
	Phone         string         `gorm:"type:varchar(15);not null"`
	BirthDate     time.Time      `gorm:"type:date;not null"`
	RegisteredAt  time.Time      `gorm:"not null"`
	LastUpdatedAt *time.Time
	Active        bool           `gorm:"not null;index"`
	Addresses     []AddressModel `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer.
// Addresses are mapped only when they were preloaded.
func (m *CustomerModel) ToDomain() *customer.Customer {
	c := &customer.Customer{
		BaseAggregateRoot: m.AggregateModel.ToDomain(),
		Profile: customer.Profile{
			Name:      m.Name,
			Surname:   m.Surname,
			Email:     m.Email,
			CPF:       m.CPF,
			Phone:     m.Phone,
			BirthDate: m.BirthDate,
		},
		RegisteredAt:  m.RegisteredAt,
		LastUpdatedAt: m.LastUpdatedAt,
		Active:        m.Active,
	}
	if m.Addresses != nil {
		c.Addresses = make([]customer.Address, len(m.Addresses))
		for i := range m.Addresses {
			c.Addresses[i] = *m.Addresses[i].ToDomain()
		}
	}
	return c
}

// FromDomain populates the persistence model from a domain Customer, addresses included
func (m *CustomerModel) FromDomain(c *customer.Customer) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Name = c.Name
	m.Surname = c.Surname
	m.Email = c.Email
	m.CPF = c.CPF
	m.Phone = c.Phone
	m.BirthDate = c.BirthDate
	m.RegisteredAt = c.RegisteredAt
	m.LastUpdatedAt = c.LastUpdatedAt
	m.Active = c.Active
	m.Addresses = make([]AddressModel, len(c.Addresses))
	for i := range c.Addresses {
		m.Addresses[i].FromDomain(&c.Addresses[i])
	}
}

// ScalarColumns returns the columns an update may overwrite. Identity and
// registration timestamp are not part of it.
func (m *CustomerModel) ScalarColumns() map[string]any {
	return map[string]any{
		"name":            m.Name,
		"surname":         m.Surname,
		"email":           m.Email,
		"cpf":             m.CPF,
		"phone":           m.Phone,
		"birth_date":      m.BirthDate,
		"last_updated_at": m.LastUpdatedAt,
		"active":          m.Active,
	}
}

// CustomerModelFromDomain creates a new CustomerModel from a domain Customer
func CustomerModelFromDomain(c *customer.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}
