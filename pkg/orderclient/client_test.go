package orderclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/plaudstore/backend/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder() Order {
	return Order{
		Customer: Customer{Email: "ivan@example.com", Name: "Иван Иванов", Phone: "+7 999 000-00-00"},
		Shipping: Shipping{Address1: "ул. Тверская, д. 1", City: "Москва", PostalCode: "101000", Country: "Russia"},
		Items:    []Item{{SKU: "PLAUD-NOTE", Title: "Plaud Note", Qty: 1, Price: 21000}},
		Comment:  "Order for Plaud Note",
		Currency: "RUB",
	}
}

func TestClient_Submit(t *testing.T) {
	t.Run("returns order id and created timestamp on success", func(t *testing.T) {
		createdAt := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/create-order", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var got Order
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.Equal(t, "ivan@example.com", got.Customer.Email)

			json.NewEncoder(w).Encode(map[string]any{
				"ok":        true,
				"orderId":   "8b7f3a0e-5b0e-4f47-9f5a-9a1c2d3e4f50",
				"createdAt": createdAt,
			})
		}))
		defer server.Close()

		client := New(server.URL)
		result, err := client.Submit(context.Background(), testOrder())

		require.NoError(t, err)
		assert.Equal(t, "8b7f3a0e-5b0e-4f47-9f5a-9a1c2d3e4f50", result.OrderID)
		assert.True(t, result.CreatedAt.Equal(createdAt))
	})

	t.Run("carries the server message on rejection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{"ok": false, "message": "Invalid email"})
		}))
		defer server.Close()

		client := New(server.URL)
		result, err := client.Submit(context.Background(), testOrder())

		assert.Nil(t, result)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "Invalid email", apiErr.Message)
	})

	t.Run("treats ok false in a 200 body as an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"ok": false, "message": "Failed to create order"})
		}))
		defer server.Close()

		client := New(server.URL)
		_, err := client.Submit(context.Background(), testOrder())

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Failed to create order", apiErr.Message)
	})

	t.Run("falls back to the generic message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream exploded"))
		}))
		defer server.Close()

		client := New(server.URL)
		_, err := client.Submit(context.Background(), testOrder())

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, DefaultErrorMessage, apiErr.Message)
	})

	t.Run("propagates transport failures", func(t *testing.T) {
		client := New("http://127.0.0.1:1")

		_, err := client.Submit(context.Background(), testOrder())

		assert.Error(t, err)
		var apiErr *APIError
		assert.False(t, errors.As(err, &apiErr))
	})
}

func TestCheckoutOrder(t *testing.T) {
	product, ok := catalog.FindBySlug("plaud-note")
	require.True(t, ok)

	customer := Customer{Email: "ivan@example.com", Name: "Ivan"}
	shipping := Shipping{Address1: "ул. Тверская, д. 1", Country: "Russia"}

	t.Run("builds a one-unit order priced from the display string", func(t *testing.T) {
		order := CheckoutOrder(*product, customer, shipping, "позвоните заранее")

		require.Len(t, order.Items, 1)
		item := order.Items[0]
		assert.Equal(t, "PLAUD-NOTE", item.SKU)
		assert.Equal(t, "Plaud Note", item.Title)
		assert.Equal(t, 1, item.Qty)
		assert.Equal(t, float64(21000), item.Price)
		assert.Equal(t, "RUB", order.Currency)
		assert.Equal(t, "позвоните заранее", order.Comment)
	})

	t.Run("generates a comment when the buyer left none", func(t *testing.T) {
		order := CheckoutOrder(*product, customer, shipping, "")

		assert.Equal(t, "Order for Plaud Note", order.Comment)
	})
}

func TestParsePrice(t *testing.T) {
	assert.Equal(t, float64(21000), parsePrice("21 000"))
	assert.Equal(t, float64(26000), parsePrice("26 000"))
	assert.Equal(t, 19999.5, parsePrice("19 999.5"))
	assert.Equal(t, float64(0), parsePrice("дорого"))
	assert.Equal(t, float64(0), parsePrice(""))
}
