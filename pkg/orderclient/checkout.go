package orderclient

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/plaudstore/backend/internal/domain/catalog"
)

// CheckoutOrder assembles the single-product checkout payload: one unit of
// the chosen product, priced from its display string, with a generated
// comment when the buyer left none.
func CheckoutOrder(product catalog.Product, customer Customer, shipping Shipping, comment string) Order {
	if comment == "" {
		comment = fmt.Sprintf("Order for %s", product.Name)
	}

	return Order{
		Customer: customer,
		Shipping: shipping,
		Items: []Item{
			{
				SKU:   product.SKU,
				Title: product.Name,
				Qty:   1,
				Price: parsePrice(product.Price),
			},
		},
		Comment:  comment,
		Currency: "RUB",
	}
}

// parsePrice converts a display price like "21 000" to a number by
// stripping every whitespace rune. Unparseable input counts as 0.
func parsePrice(display string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, display)

	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return price
}
