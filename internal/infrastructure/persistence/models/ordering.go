package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/plaudstore/backend/internal/domain/ordering"
	"github.com/plaudstore/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CustomerModel is the database model for customers
type CustomerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name      string    `gorm:"type:varchar(255)"`
	Phone     string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the model to a domain customer
func (m *CustomerModel) ToDomain() *ordering.Customer {
	return &ordering.Customer{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Email: m.Email,
		Name:  m.Name,
		Phone: m.Phone,
	}
}

// CustomerModelFromDomain converts a domain customer to the database model
func CustomerModelFromDomain(c *ordering.Customer) *CustomerModel {
	return &CustomerModel{
		ID:        c.ID,
		Email:     c.Email,
		Name:      c.Name,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// OrderModel is the database model for orders. ShippingAddress and Items
// are jsonb snapshots of the sanitized submission.
type OrderModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status          string          `gorm:"type:varchar(20);not null"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Currency        string          `gorm:"type:varchar(3);not null"`
	Comment         string          `gorm:"type:text"`
	ShippingAddress string          `gorm:"type:jsonb"`
	Items           string          `gorm:"type:jsonb"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName specifies the table name
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the model to a domain order
func (m *OrderModel) ToDomain() (*ordering.Order, error) {
	var shipping ordering.ShippingAddress
	if m.ShippingAddress != "" {
		if err := json.Unmarshal([]byte(m.ShippingAddress), &shipping); err != nil {
			return nil, fmt.Errorf("failed to decode shipping address: %w", err)
		}
	}

	var items []ordering.OrderItem
	if m.Items != "" {
		if err := json.Unmarshal([]byte(m.Items), &items); err != nil {
			return nil, fmt.Errorf("failed to decode order items: %w", err)
		}
	}

	return &ordering.Order{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		CustomerID:      m.CustomerID,
		Status:          ordering.OrderStatus(m.Status),
		TotalAmount:     m.TotalAmount,
		Currency:        m.Currency,
		Comment:         m.Comment,
		ShippingAddress: shipping,
		Items:           items,
	}, nil
}

// OrderModelFromDomain converts a domain order to the database model
func OrderModelFromDomain(o *ordering.Order) (*OrderModel, error) {
	shipping, err := json.Marshal(o.ShippingAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to encode shipping address: %w", err)
	}

	items, err := json.Marshal(o.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order items: %w", err)
	}

	return &OrderModel{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		Status:          string(o.Status),
		TotalAmount:     o.TotalAmount,
		Currency:        o.Currency,
		Comment:         o.Comment,
		ShippingAddress: string(shipping),
		Items:           string(items),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}, nil
}
