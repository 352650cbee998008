package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/plaudstore/backend/internal/domain/ordering"
	"github.com/plaudstore/backend/internal/domain/shared"
	"github.com/plaudstore/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCustomerRepository implements ordering.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Upsert inserts the customer or refreshes name, phone and updated_at when a
// row with the same email already exists, then reads the row back so the
// caller gets the persisted ID.
func (r *GormCustomerRepository) Upsert(ctx context.Context, customer *ordering.Customer) (*ordering.Customer, error) {
	model := models.CustomerModelFromDomain(customer)

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "phone", "updated_at"}),
		}).
		Create(model).Error
	if err != nil {
		return nil, err
	}

	var saved models.CustomerModel
	err = r.db.WithContext(ctx).
		Where("email = ?", customer.Email).
		First(&saved).Error
	if err != nil {
		return nil, err
	}

	return saved.ToDomain(), nil
}

// FindByEmail finds a customer by email, matching case-insensitively.
func (r *GormCustomerRepository) FindByEmail(ctx context.Context, email string) (*ordering.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, shared.ErrInvalidInput
	}

	var model models.CustomerModel
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	return model.ToDomain(), nil
}

// FindByID finds a customer by ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Customer, error) {
	var model models.CustomerModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	return model.ToDomain(), nil
}

// Ensure interface compliance
var _ ordering.CustomerRepository = (*GormCustomerRepository)(nil)
