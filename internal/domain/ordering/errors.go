package ordering

import "github.com/plaudstore/backend/internal/domain/shared"

// Validation errors carry the exact messages the order endpoint returns.
var (
	ErrInvalidEmail   = shared.NewDomainError("INVALID_EMAIL", "Invalid email")
	ErrEmptyItems     = shared.NewDomainError("EMPTY_ITEMS", "Items list is empty")
	ErrMissingAddress = shared.NewDomainError("MISSING_ADDRESS", "Shipping address is required")
)

// Infrastructure errors keep datastore details out of the wire response.
var (
	ErrServerConfig  = shared.NewDomainError("SERVER_CONFIG", "Server configuration error")
	ErrCustomerWrite = shared.NewDomainError("CUSTOMER_WRITE_FAILED", "Failed to save customer data")
	ErrOrderWrite    = shared.NewDomainError("ORDER_WRITE_FAILED", "Failed to create order")
)
