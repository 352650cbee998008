package ordering

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSafeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"trims whitespace", "  hello  ", 255, "hello"},
		{"truncates long input", strings.Repeat("a", 300), 255, strings.Repeat("a", 255)},
		{"keeps short input", "short", 255, "short"},
		{"empty stays empty", "   ", 255, ""},
		{"currency cap", "RUBLES", 3, "RUB"},
		{"zero max falls back to default", strings.Repeat("b", 300), 0, strings.Repeat("b", 255)},
		{"counts runes not bytes", strings.Repeat("ж", 10), 5, strings.Repeat("ж", 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, safeText(tt.in, tt.max))
		})
	}
}

func TestLenientInt(t *testing.T) {
	assert.Equal(t, 2, lenientInt(2))
	assert.Equal(t, 2, lenientInt("2"))
	assert.Equal(t, 2, lenientInt(2.9))
	assert.Equal(t, 0, lenientInt("abc"))
	assert.Equal(t, 0, lenientInt(nil))
	assert.Equal(t, 0, lenientInt([]string{"x"}))
}

func TestLenientPrice(t *testing.T) {
	assert.True(t, lenientPrice(21000).Equal(decimal.NewFromInt(21000)))
	assert.True(t, lenientPrice("21000.50").Equal(decimal.NewFromFloat(21000.50)))
	assert.True(t, lenientPrice("abc").IsZero())
	assert.True(t, lenientPrice(nil).IsZero())
}
