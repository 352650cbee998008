package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/plaudstore/backend/internal/interfaces/http/dto"
	"github.com/plaudstore/backend/internal/interfaces/http/handler"
)

// Handlers groups everything the router mounts
type Handlers struct {
	Order   *handler.OrderHandler
	Catalog *handler.CatalogHandler
	System  *handler.SystemHandler
}

// Setup registers all routes on the engine. Requests with a known path but
// the wrong method get the JSON 405 the storefront expects.
func Setup(engine *gin.Engine, h Handlers) {
	engine.HandleMethodNotAllowed = true
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponse("Method Not Allowed"))
	})
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Not Found"))
	})

	engine.GET("/health", h.System.Health)

	api := engine.Group("/api")
	{
		api.POST("/create-order", h.Order.Create)
		api.GET("/products", h.Catalog.List)
		api.GET("/products/:slug", h.Catalog.Get)
	}
}
