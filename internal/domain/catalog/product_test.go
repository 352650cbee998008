package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	t.Run("returns both products in declaration order", func(t *testing.T) {
		all := All()

		require.Len(t, all, 2)
		assert.Equal(t, "plaud-note", all[0].Slug)
		assert.Equal(t, "plaud-note-pro", all[1].Slug)
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		all := All()
		all[0].Name = "mutated"

		again := All()
		assert.Equal(t, "Plaud Note", again[0].Name)
	})
}

func TestFindBySlug(t *testing.T) {
	t.Run("finds existing product", func(t *testing.T) {
		p, ok := FindBySlug("plaud-note-pro")

		require.True(t, ok)
		assert.Equal(t, "Plaud Note Pro", p.Name)
		assert.Equal(t, "PLAUD-NOTE-PRO", p.SKU)
		assert.Equal(t, "26 000", p.Price)
	})

	t.Run("returns false for unknown slug", func(t *testing.T) {
		p, ok := FindBySlug("plaud-note-ultra")

		assert.False(t, ok)
		assert.Nil(t, p)
	})
}

func TestFindBySKU(t *testing.T) {
	t.Run("finds product by SKU", func(t *testing.T) {
		p, ok := FindBySKU("PLAUD-NOTE")

		require.True(t, ok)
		assert.Equal(t, "plaud-note", p.Slug)
		assert.Len(t, p.Colors, 4)
	})

	t.Run("returns false for unknown SKU", func(t *testing.T) {
		_, ok := FindBySKU("UNKNOWN-SKU")

		assert.False(t, ok)
	})
}
