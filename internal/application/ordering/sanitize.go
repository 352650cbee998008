package ordering

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Field length caps mirror the datastore column widths.
const (
	maxTextLen     = 255
	maxCurrencyLen = 3
	maxCommentLen  = 1000
)

// safeText trims surrounding whitespace and truncates to max runes.
func safeText(s string, max int) string {
	s = strings.TrimSpace(s)
	if max <= 0 {
		max = maxTextLen
	}
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max])
	}
	return s
}

// lenientInt coerces qty-ish values (numbers, numeric strings) to an int.
// Anything unparseable counts as 0.
func lenientInt(v any) int {
	return cast.ToInt(v)
}

// lenientPrice coerces price-ish values to a decimal via float64.
// Anything unparseable counts as 0.
func lenientPrice(v any) decimal.Decimal {
	return decimal.NewFromFloat(cast.ToFloat64(v))
}
