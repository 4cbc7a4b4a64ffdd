package customer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/clientes/backend/internal/domain/customer"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// Date is a calendar date encoded as "2006-01-02". RFC 3339 timestamps are
// accepted on input and truncated to their date.
type Date struct {
	time.Time
}

// NewDate truncates t to a UTC calendar date
func NewDate(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		*d = NewDate(t)
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	*d = NewDate(t)
	return nil
}

// =============================================================================
// Customer DTOs
// =============================================================================

// AddressInput is an address as received from clients.
// ID and CustomerID are accepted but never trusted.
type AddressInput struct {
	ID         *uint   `json:"id,omitempty"`
	Street     string  `json:"street" example:"Rua das Flores"`
	Number     string  `json:"number" example:"100"`
	Complement *string `json:"complement,omitempty" example:"Apto 12"`
	District   string  `json:"district" example:"Centro"`
	City       string  `json:"city" example:"São Paulo"`
	State      string  `json:"state" example:"SP"`
	PostalCode string  `json:"postal_code" example:"01310-100"`
	CustomerID *uint   `json:"customer_id,omitempty"`
}

// toDomain maps the postal fields only
func (in AddressInput) toDomain() customer.Address {
	return customer.Address{
		Street:     in.Street,
		Number:     in.Number,
		Complement: in.Complement,
		District:   in.District,
		City:       in.City,
		State:      in.State,
		PostalCode: in.PostalCode,
	}
}

// CustomerInput is the body of create and update requests.
// RegisteredAt and Active are ignored; the server owns them.
type CustomerInput struct {
	ID           *uint          `json:"id,omitempty"`
	Name         string         `json:"name" example:"Ana"`
	Surname      string         `json:"surname" example:"Souza"`
	Email        string         `json:"email" example:"ana@example.com"`
	CPF          string         `json:"cpf" example:"12345678901"`
	Phone        string         `json:"phone" example:"11987654321"`
	BirthDate    Date           `json:"birth_date" swaggertype:"string" example:"1990-05-17"`
	RegisteredAt *time.Time     `json:"registered_at,omitempty"`
	Active       *bool          `json:"active,omitempty"`
	Addresses    []AddressInput `json:"addresses"`
}

// profile returns the normalized profile
func (in CustomerInput) profile() customer.Profile {
	return customer.Profile{
		Name:      in.Name,
		Surname:   in.Surname,
		Email:     in.Email,
		CPF:       in.CPF,
		Phone:     in.Phone,
		BirthDate: in.BirthDate.Time,
	}.Normalize()
}

// addresses returns the normalized addresses; a null list is empty
func (in CustomerInput) addresses() []customer.Address {
	out := make([]customer.Address, len(in.Addresses))
	for i, a := range in.Addresses {
		out[i] = a.toDomain()
	}
	return customer.NormalizeAddresses(out)
}

// AddressResponse represents an address in API responses
type AddressResponse struct {
	ID         uint    `json:"id"`
	Street     string  `json:"street"`
	Number     string  `json:"number"`
	Complement *string `json:"complement"`
	District   string  `json:"district"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postal_code"`
	CustomerID uint    `json:"customer_id"`
}

// CustomerResponse represents a customer with its addresses
type CustomerResponse struct {
	ID            uint              `json:"id"`
	Name          string            `json:"name"`
	Surname       string            `json:"surname"`
	Email         string            `json:"email"`
	CPF           string            `json:"cpf"`
	Phone         string            `json:"phone"`
	BirthDate     Date              `json:"birth_date" swaggertype:"string" example:"1990-05-17"`
	RegisteredAt  time.Time         `json:"registered_at"`
	LastUpdatedAt *time.Time        `json:"last_updated_at"`
	Active        bool              `json:"active"`
	Addresses     []AddressResponse `json:"addresses"`
}

// CustomerListResponse is the projection returned by the active customer listing
type CustomerListResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	BirthDate Date   `json:"birth_date" swaggertype:"string" example:"1990-05-17"`
}

// ToAddressResponse converts a domain Address to AddressResponse
func ToAddressResponse(a *customer.Address) AddressResponse {
	return AddressResponse{
		ID:         a.ID,
		Street:     a.Street,
		Number:     a.Number,
		Complement: a.Complement,
		District:   a.District,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		CustomerID: a.CustomerID,
	}
}

// ToCustomerResponse converts a domain Customer to CustomerResponse.
// Serialization goes Customer to Addresses only.
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	addresses := make([]AddressResponse, len(c.Addresses))
	for i := range c.Addresses {
		addresses[i] = ToAddressResponse(&c.Addresses[i])
	}
	return CustomerResponse{
		ID:            c.ID,
		Name:          c.Name,
		Surname:       c.Surname,
		Email:         c.Email,
		CPF:           c.CPF,
		Phone:         c.Phone,
		BirthDate:     NewDate(c.BirthDate),
		RegisteredAt:  c.RegisteredAt,
		LastUpdatedAt: c.LastUpdatedAt,
		Active:        c.Active,
		Addresses:     addresses,
	}
}

// ToCustomerListResponse projects a domain Customer for listings
func ToCustomerListResponse(c *customer.Customer) CustomerListResponse {
	return CustomerListResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		BirthDate: NewDate(c.BirthDate),
	}
}

// =============================================================================
// Address DTOs
// =============================================================================

// CreateAddressRequest creates a standalone address; customer_id names the owner
type CreateAddressRequest struct {
	AddressInput
}

// UpdateAddressRequest overwrites an address's postal fields.
// A customer_id in the body is ignored; the owner never changes.
type UpdateAddressRequest struct {
	AddressInput
}
