package dto

import (
	"time"

	"github.com/plaudstore/backend/internal/domain/catalog"
)

// ErrorResponse is the wire format for every failed request.
type ErrorResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{OK: false, Message: message}
}

// OrderCreatedResponse is returned after a successful order submission.
// CreatedAt marshals as an ISO-8601 timestamp.
type OrderCreatedResponse struct {
	OK        bool      `json:"ok"`
	OrderID   string    `json:"orderId"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProductListResponse carries the full catalog.
type ProductListResponse struct {
	OK       bool              `json:"ok"`
	Products []catalog.Product `json:"products"`
}

// ProductResponse carries a single catalog entry.
type ProductResponse struct {
	OK      bool            `json:"ok"`
	Product catalog.Product `json:"product"`
}

// HealthResponse reports process and datastore health. A degraded datastore
// keeps the response at 200; the storefront stays up without it.
type HealthResponse struct {
	OK        bool   `json:"ok"`
	Status    string `json:"status"`
	Datastore string `json:"datastore"`
	Uptime    string `json:"uptime"`
}
