package ordering

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/plaudstore/backend/internal/domain/ordering"
	"go.uber.org/zap"
)

// CreateOrderRequest is the checkout payload submitted by the storefront.
// Qty and Price are typed loosely on purpose: browsers send numbers or
// strings interchangeably and both coerce leniently, defaulting to 0.
type CreateOrderRequest struct {
	Customer CustomerPayload `json:"customer"`
	Shipping ShippingPayload `json:"shipping"`
	Items    []ItemPayload   `json:"items"`
	Comment  string          `json:"comment"`
	Currency string          `json:"currency"`
}

// CustomerPayload carries the customer contact block of the checkout form.
type CustomerPayload struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ShippingPayload carries the delivery address block of the checkout form.
type ShippingPayload struct {
	Address1   string `json:"address1"`
	Address2   string `json:"address2"`
	City       string `json:"city"`
	Region     string `json:"region"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// ItemPayload is a submitted line item.
type ItemPayload struct {
	SKU   string `json:"sku"`
	Title string `json:"title"`
	Qty   any    `json:"qty"`
	Price any    `json:"price"`
}

// CreateOrderResult carries the identifiers returned to the storefront.
type CreateOrderResult struct {
	OrderID   uuid.UUID
	CreatedAt time.Time
}

// OrderService implements order creation. When the datastore is not
// configured the repositories are nil and every submission fails with
// ErrServerConfig; the process itself keeps serving.
type OrderService struct {
	customers ordering.CustomerRepository
	orders    ordering.OrderRepository
	logger    *zap.Logger
}

// NewOrderService creates a new OrderService. Either repository may be nil
// when the datastore is unconfigured.
func NewOrderService(customers ordering.CustomerRepository, orders ordering.OrderRepository, logger *zap.Logger) *OrderService {
	return &OrderService{
		customers: customers,
		orders:    orders,
		logger:    logger,
	}
}

// Configured reports whether the datastore-backed repositories are wired.
func (s *OrderService) Configured() bool {
	return s.customers != nil && s.orders != nil
}

// CreateOrder validates the submission, recomputes the total from the
// sanitized items, upserts the customer by email and inserts the order.
func (s *OrderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Customer.Email))
	if !strings.Contains(email, "@") {
		return nil, ordering.ErrInvalidEmail
	}
	if len(req.Items) == 0 {
		return nil, ordering.ErrEmptyItems
	}
	if strings.TrimSpace(req.Shipping.Address1) == "" {
		return nil, ordering.ErrMissingAddress
	}

	if !s.Configured() {
		s.logger.Error("order submission rejected: datastore not configured")
		return nil, ordering.ErrServerConfig
	}

	items := make([]ordering.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ordering.OrderItem{
			SKU:   safeText(it.SKU, maxTextLen),
			Title: safeText(it.Title, maxTextLen),
			Qty:   lenientInt(it.Qty),
			Price: lenientPrice(it.Price),
		})
	}

	customer, err := ordering.NewCustomer(
		email,
		safeText(req.Customer.Name, maxTextLen),
		safeText(req.Customer.Phone, maxTextLen),
	)
	if err != nil {
		return nil, err
	}

	saved, err := s.customers.Upsert(ctx, customer)
	if err != nil {
		s.logger.Error("customer upsert failed",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, ordering.ErrCustomerWrite
	}

	shipping := ordering.ShippingAddress{
		Address1:   safeText(req.Shipping.Address1, maxTextLen),
		Address2:   safeText(req.Shipping.Address2, maxTextLen),
		City:       safeText(req.Shipping.City, maxTextLen),
		Region:     safeText(req.Shipping.Region, maxTextLen),
		PostalCode: safeText(req.Shipping.PostalCode, maxTextLen),
		Country:    safeText(req.Shipping.Country, maxTextLen),
	}

	order, err := ordering.NewOrder(
		saved.ID,
		safeText(req.Currency, maxCurrencyLen),
		safeText(req.Comment, maxCommentLen),
		shipping,
		items,
	)
	if err != nil {
		return nil, err
	}

	// The two writes are not transactional: a customer row without an order
	// can remain after a failed insert.
	if err := s.orders.Insert(ctx, order); err != nil {
		s.logger.Error("order insert failed",
			zap.Error(err),
			zap.String("order_id", order.ID.String()),
			zap.String("customer_id", saved.ID.String()),
		)
		return nil, ordering.ErrOrderWrite
	}

	s.logger.Info("order created",
		zap.String("order_id", order.ID.String()),
		zap.String("customer_id", saved.ID.String()),
		zap.String("total", order.TotalAmount.String()),
		zap.String("currency", order.Currency),
	)

	return &CreateOrderResult{
		OrderID:   order.ID,
		CreatedAt: order.CreatedAt,
	}, nil
}
