package ordering

import (
	"strings"

	"github.com/plaudstore/backend/internal/domain/shared"
)

// Customer is a storefront customer identified by email. The email is the
// natural key: repeat orders refresh name and phone instead of creating a
// second row.
type Customer struct {
	shared.BaseEntity
	Email string
	Name  string
	Phone string
}

// NewCustomer creates a customer, lower-casing the email.
func NewCustomer(email, name, phone string) (*Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Email:      email,
		Name:       name,
		Phone:      phone,
	}, nil
}

// Refresh replaces contact details with the latest submitted values.
func (c *Customer) Refresh(name, phone string) {
	c.Name = name
	c.Phone = phone
	c.Touch()
}

func validateEmail(email string) error {
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	return nil
}
