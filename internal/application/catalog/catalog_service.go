package catalog

import (
	"github.com/plaudstore/backend/internal/domain/catalog"
	"github.com/plaudstore/backend/internal/domain/shared"
)

// ErrProductNotFound is returned for unknown slugs.
var ErrProductNotFound = shared.NewDomainError("PRODUCT_NOT_FOUND", "Product not found")

// CatalogService serves catalog queries over the compiled-in product set.
type CatalogService struct{}

// NewCatalogService creates a new CatalogService
func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

// ListProducts returns all products in catalog order.
func (s *CatalogService) ListProducts() []catalog.Product {
	return catalog.All()
}

// GetProduct returns the product with the given slug.
func (s *CatalogService) GetProduct(slug string) (*catalog.Product, error) {
	product, ok := catalog.FindBySlug(slug)
	if !ok {
		return nil, ErrProductNotFound
	}
	return product, nil
}
