package ordering

import (
	"context"

	"github.com/google/uuid"
)

// CustomerRepository persists customers keyed by email.
type CustomerRepository interface {
	// Upsert inserts the customer or, when a row with the same email exists,
	// refreshes its name, phone and updated_at. Returns the persisted
	// customer carrying the datastore's row ID.
	Upsert(ctx context.Context, customer *Customer) (*Customer, error)
	FindByEmail(ctx context.Context, email string) (*Customer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
}

// OrderRepository persists orders.
type OrderRepository interface {
	Insert(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*Order, error)
}
