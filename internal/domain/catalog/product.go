package catalog

// Product is a catalog entry. The catalog is a small fixed data set compiled
// into the binary; prices are display strings in the store locale.
type Product struct {
	ID              string         `json:"id"`
	Slug            string         `json:"slug"`
	Name            string         `json:"name"`
	Price           string         `json:"price"`
	Description     string         `json:"description"`
	FullDescription string         `json:"fullDescription"`
	Image           string         `json:"image"`
	Gallery         []string       `json:"gallery"`
	Features        []string       `json:"features"`
	Specs           []Spec         `json:"specs"`
	SKU             string         `json:"sku"`
	Colors          []ColorVariant `json:"colors"`
}

// Spec is a labeled product characteristic shown on the detail page.
type Spec struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ColorVariant is an available color option with its swatch hex value.
type ColorVariant struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

var products = []Product{
	{
		ID:          "1",
		Slug:        "plaud-note",
		Name:        "Plaud Note",
		Price:       "21 000",
		Description: "Классический ИИ-диктофон для ежедневных задач.",
		FullDescription: "PLAUD NOTE — это первый в мире ИИ-диктофон на базе ChatGPT. " +
			"Тонкий корпус из авиационного алюминия толщиной всего 2.97 мм. " +
			"Идеально помещается в кошелек или крепится к смартфону через MagSafe.",
		Image: "https://uk.plaud.ai/cdn/shop/files/plaud-note-black.webp?v=1759799193",
		Gallery: []string{
			"https://uk.plaud.ai/cdn/shop/files/plaud-note-black.webp?v=1759799193",
			"https://uk.plaud.ai/cdn/shop/files/plaud-note-silver-front.webp?v=1759799193",
		},
		Features: []string{
			"64 ГБ памяти",
			"30 ч записи",
			"Бесплатный стартовый ИИ-план",
			"Чехол MagSafe в комплекте",
		},
		Specs: []Spec{
			{Label: "Толщина", Value: "2.97 мм"},
			{Label: "Вес", Value: "30 г"},
			{Label: "Память", Value: "64 ГБ"},
			{Label: "Батарея", Value: "30 часов записи"},
		},
		SKU: "PLAUD-NOTE",
		Colors: []ColorVariant{
			{Name: "Black", Hex: "#1a1a1a"},
			{Name: "Silver", Hex: "#d1d1d1"},
			{Name: "Starlight", Hex: "#e3d9c6"},
			{Name: "Navy Blue", Hex: "#1a2a4a"},
		},
	},
	{
		ID:          "2",
		Slug:        "plaud-note-pro",
		Name:        "Plaud Note Pro",
		Price:       "26 000",
		Description: "Максимальная производительность для профессионалов.",
		FullDescription: "PLAUD NOTE PRO предлагает расширенные возможности для тех, кому нужно больше. " +
			"Увеличенная память, улучшенное шумоподавление и премиальные аксессуары в комплекте.",
		Image: "https://uk.plaud.ai/cdn/shop/files/PlaudNotePro-front-black.webp?v=1759235691",
		Gallery: []string{
			"https://uk.plaud.ai/cdn/shop/files/PlaudNotePro-front-black.webp?v=1759235691",
			"https://uk.plaud.ai/cdn/shop/files/plaud-note-black.webp?v=1759799193",
		},
		Features: []string{
			"128 ГБ памяти",
			"50 ч записи",
			"Пожизненная подписка AI Pro",
			"Премиальный кожаный чехол",
			"Шумоподавление нового поколения",
		},
		Specs: []Spec{
			{Label: "Толщина", Value: "2.97 мм"},
			{Label: "Вес", Value: "30 г"},
			{Label: "Память", Value: "128 ГБ"},
			{Label: "Батарея", Value: "50 часов записи"},
		},
		SKU: "PLAUD-NOTE-PRO",
		Colors: []ColorVariant{
			{Name: "Black", Hex: "#1a1a1a"},
			{Name: "Silver", Hex: "#d1d1d1"},
		},
	},
}

// All returns every product in declaration order.
func All() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// FindBySlug returns the product with the given slug.
func FindBySlug(slug string) (*Product, bool) {
	for i := range products {
		if products[i].Slug == slug {
			p := products[i]
			return &p, true
		}
	}
	return nil, false
}

// FindBySKU returns the product with the given SKU.
func FindBySKU(sku string) (*Product, bool) {
	for i := range products {
		if products[i].SKU == sku {
			p := products[i]
			return &p, true
		}
	}
	return nil, false
}
