// Package orderclient submits checkout payloads to the storefront backend,
// mirroring what the browser checkout does.
package orderclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DefaultErrorMessage is used when the server gives no usable message.
const DefaultErrorMessage = "Ошибка оформления заказа"

const createOrderPath = "/api/create-order"

// Customer is the contact block of the checkout payload.
type Customer struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Shipping is the delivery address block of the checkout payload.
type Shipping struct {
	Address1   string `json:"address1"`
	Address2   string `json:"address2"`
	City       string `json:"city"`
	Region     string `json:"region"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Item is a submitted line item.
type Item struct {
	SKU   string  `json:"sku"`
	Title string  `json:"title"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

// Order is the full checkout payload.
type Order struct {
	Customer Customer `json:"customer"`
	Shipping Shipping `json:"shipping"`
	Items    []Item   `json:"items"`
	Comment  string   `json:"comment"`
	Currency string   `json:"currency"`
}

// Result carries the identifiers of an accepted order.
type Result struct {
	OrderID   string
	CreatedAt time.Time
}

// APIError is a rejection reported by the backend. The Message is the
// server's wire message, falling back to DefaultErrorMessage.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client submits orders to a storefront backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the backend at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Submit POSTs the order and normalizes the outcome: any non-2xx status or
// ok:false body becomes an *APIError carrying the server message.
func (c *Client) Submit(ctx context.Context, order Order) (*Result, error) {
	payload, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+createOrderPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("order submission failed: %w", err)
	}
	defer resp.Body.Close()

	var body struct {
		OK        bool      `json:"ok"`
		Message   string    `json:"message"`
		OrderID   string    `json:"orderId"`
		CreatedAt time.Time `json:"createdAt"`
	}
	decodeErr := json.NewDecoder(resp.Body).Decode(&body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !body.OK {
		message := body.Message
		if decodeErr != nil || message == "" {
			message = DefaultErrorMessage
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: message}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("failed to decode response: %w", decodeErr)
	}

	return &Result{
		OrderID:   body.OrderID,
		CreatedAt: body.CreatedAt,
	}, nil
}
