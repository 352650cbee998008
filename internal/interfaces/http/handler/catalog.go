package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/plaudstore/backend/internal/application/catalog"
	"github.com/plaudstore/backend/internal/interfaces/http/dto"
)

// CatalogHandler serves the product catalog
type CatalogHandler struct {
	BaseHandler
	catalog *catalogapp.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalog *catalogapp.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// List handles GET /api/products
func (h *CatalogHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ProductListResponse{
		OK:       true,
		Products: h.catalog.ListProducts(),
	})
}

// Get handles GET /api/products/:slug
func (h *CatalogHandler) Get(c *gin.Context) {
	product, err := h.catalog.GetProduct(c.Param("slug"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProductResponse{
		OK:      true,
		Product: *product,
	})
}
