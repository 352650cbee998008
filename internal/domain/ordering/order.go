package ordering

import (
	"github.com/google/uuid"
	"github.com/plaudstore/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the order lifecycle state
type OrderStatus string

const (
	// OrderStatusNew is the only status assigned at creation time
	OrderStatusNew OrderStatus = "new"
)

// DefaultCurrency is used when the submitted currency is empty
const DefaultCurrency = "RUB"

// ShippingAddress is the delivery address snapshot stored with the order.
type ShippingAddress struct {
	Address1   string `json:"address1"`
	Address2   string `json:"address2,omitempty"`
	City       string `json:"city,omitempty"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

// OrderItem is a sanitized line-item snapshot. Qty and Price already went
// through lenient coercion; invalid submissions arrive here as zero.
type OrderItem struct {
	SKU   string          `json:"sku"`
	Title string          `json:"title"`
	Qty   int             `json:"qty"`
	Price decimal.Decimal `json:"price"`
}

// Amount returns qty × price for this line.
func (i OrderItem) Amount() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Qty)))
}

// Order is a placed order referencing its customer, with structured
// snapshots of the shipping address and line items.
type Order struct {
	shared.BaseEntity
	CustomerID      uuid.UUID
	Status          OrderStatus
	TotalAmount     decimal.Decimal
	Currency        string
	Comment         string
	ShippingAddress ShippingAddress
	Items           []OrderItem
}

// NewOrder creates an order in status "new". The total is always recomputed
// from the items; any client-submitted total is ignored upstream.
func NewOrder(customerID uuid.UUID, currency, comment string, shipping ShippingAddress, items []OrderItem) (*Order, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "customer id is required")
	}
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}
	if shipping.Address1 == "" {
		return nil, ErrMissingAddress
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	return &Order{
		BaseEntity:      shared.NewBaseEntity(),
		CustomerID:      customerID,
		Status:          OrderStatusNew,
		TotalAmount:     ComputeTotal(items),
		Currency:        currency,
		Comment:         comment,
		ShippingAddress: shipping,
		Items:           items,
	}, nil
}

// ComputeTotal sums qty × price over all items.
func ComputeTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount())
	}
	return total
}
