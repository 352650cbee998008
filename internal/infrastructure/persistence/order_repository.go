package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/plaudstore/backend/internal/domain/ordering"
	"github.com/plaudstore/backend/internal/domain/shared"
	"github.com/plaudstore/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormOrderRepository implements ordering.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Insert persists a new order
func (r *GormOrderRepository) Insert(ctx context.Context, order *ordering.Order) error {
	model, err := models.OrderModelFromDomain(order)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID finds an order by ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	var model models.OrderModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	return model.ToDomain()
}

// FindByCustomer returns all orders of a customer, newest first
func (r *GormOrderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*ordering.Order, error) {
	var rows []models.OrderModel
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*ordering.Order, 0, len(rows))
	for i := range rows {
		order, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// Ensure interface compliance
var _ ordering.OrderRepository = (*GormOrderRepository)(nil)
