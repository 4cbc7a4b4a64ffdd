package customer

import (
	"fmt"
	"strings"
	"time"

	"github.com/clientes/backend/internal/domain/shared"
)

// Profile holds the customer fields a client may set on create and update
type Profile struct {
	Name      string
	Surname   string
	Email     string
	CPF       string
	Phone     string
	BirthDate time.Time
}

// Normalize returns a copy with whitespace trimmed, text in NFC and the email lower-cased.
// The CPF is left untouched so malformed input is still reported as such.
func (p Profile) Normalize() Profile {
	return Profile{
		Name:      shared.NormalizeText(p.Name),
		Surname:   shared.NormalizeText(p.Surname),
		Email:     strings.ToLower(strings.TrimSpace(p.Email)),
		CPF:       p.CPF,
		Phone:     strings.TrimSpace(p.Phone),
		BirthDate: p.BirthDate,
	}
}

// Validate checks every profile constraint and reports all violations
func (p Profile) Validate() error {
	return ProfileConstraints.Validate(map[string]any{
		"name":       p.Name,
		"surname":    p.Surname,
		"email":      p.Email,
		"cpf":        p.CPF,
		"phone":      p.Phone,
		"birth_date": p.BirthDate,
	})
}

// ValidateWithAddresses validates the profile and every address in one pass.
// Address violations are reported as addresses[i].field.
func ValidateWithAddresses(p Profile, addresses []Address) error {
	verr := &shared.ValidationError{}
	verr.Merge("", p.Validate())
	for i, a := range addresses {
		verr.Merge(fmt.Sprintf("addresses[%d]", i), a.Validate())
	}
	return verr.OrNil()
}

// NormalizeAddresses returns a normalized copy of addresses; nil stays empty
func NormalizeAddresses(addresses []Address) []Address {
	out := make([]Address, len(addresses))
	for i, a := range addresses {
		out[i] = a.Normalize()
	}
	return out
}

// Customer is the aggregate root of the customer context.
// It exclusively owns its addresses.
type Customer struct {
	shared.BaseAggregateRoot
	Profile
	RegisteredAt  time.Time
	LastUpdatedAt *time.Time
	Active        bool
	Addresses     []Address
}

// NewCustomer creates an active customer registered at now.
// Incoming addresses are attached with their identity cleared.
func NewCustomer(p Profile, addresses []Address, now time.Time) *Customer {
	c := &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Profile:           p,
		RegisteredAt:      now,
		Active:            true,
	}
	c.Addresses = ReplaceAddresses(0, nil, addresses).ToInsert
	return c
}

// IsActive returns true unless the customer was soft-deleted
func (c *Customer) IsActive() bool {
	return c.Active
}

// Overwrite replaces the profile fields and the whole address set.
// Identity, registration timestamp and active flag are never touched.
func (c *Customer) Overwrite(p Profile, addresses []Address, now time.Time) (AddressChanges, error) {
	if !c.Active {
		return AddressChanges{}, ErrInactiveCustomer
	}

	changes := ReplaceAddresses(c.ID, c.Addresses, addresses)
	c.Profile = p
	c.Addresses = changes.ToInsert
	c.touch(now)
	return changes, nil
}

// Deactivate soft-deletes the customer. It reports false when the customer
// was already inactive, in which case nothing changed.
func (c *Customer) Deactivate(now time.Time) bool {
	if !c.Active {
		return false
	}
	c.Active = false
	c.touch(now)
	return true
}

// touch keeps LastUpdatedAt monotonically non-decreasing
func (c *Customer) touch(now time.Time) {
	if c.LastUpdatedAt != nil && now.Before(*c.LastUpdatedAt) {
		now = *c.LastUpdatedAt
	}
	c.LastUpdatedAt = &now
}
