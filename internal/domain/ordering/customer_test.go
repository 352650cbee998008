package ordering

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("creates customer with lower-cased email", func(t *testing.T) {
		customer, err := NewCustomer("Ivan@Example.COM", "Иван Иванов", "+7 999 000-00-00")

		require.NoError(t, err)
		assert.Equal(t, "ivan@example.com", customer.Email)
		assert.Equal(t, "Иван Иванов", customer.Name)
		assert.Equal(t, "+7 999 000-00-00", customer.Phone)
		assert.NotEqual(t, uuid.Nil, customer.ID)
		assert.False(t, customer.CreatedAt.IsZero())
	})

	t.Run("trims surrounding whitespace from email", func(t *testing.T) {
		customer, err := NewCustomer("  ivan@example.com  ", "Ivan", "")

		require.NoError(t, err)
		assert.Equal(t, "ivan@example.com", customer.Email)
	})

	t.Run("rejects email without at sign", func(t *testing.T) {
		customer, err := NewCustomer("not-an-email", "Ivan", "")

		assert.Nil(t, customer)
		assert.Equal(t, ErrInvalidEmail, err)
		assert.Equal(t, "Invalid email", err.Error())
	})

	t.Run("rejects empty email", func(t *testing.T) {
		_, err := NewCustomer("", "Ivan", "")

		assert.Equal(t, ErrInvalidEmail, err)
	})
}

func TestCustomer_Refresh(t *testing.T) {
	t.Run("replaces contact details and bumps updated_at", func(t *testing.T) {
		customer, err := NewCustomer("ivan@example.com", "Old Name", "111")
		require.NoError(t, err)

		before := customer.UpdatedAt
		customer.Refresh("New Name", "222")

		assert.Equal(t, "New Name", customer.Name)
		assert.Equal(t, "222", customer.Phone)
		assert.False(t, customer.UpdatedAt.Before(before))
	})
}
