// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// CatalogHandler handles menu and restaurant endpoints
type CatalogHandler struct {
	catalog catalog.Provider
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(provider catalog.Provider) *CatalogHandler {
	return &CatalogHandler{catalog: provider}
}

// GetRestaurant handles GET /restaurant
func (h *CatalogHandler) GetRestaurant(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": h.catalog.Restaurant(),
	})
}

// GetMenu handles GET /menu
func (h *CatalogHandler) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": h.catalog.Categories(),
	})
}

// GetPopular handles GET /menu/popular
func (h *CatalogHandler) GetPopular(c *gin.Context) {
	popular := h.catalog.Popular()
	if popular == nil {
		popular = []catalog.Product{}
	}
	c.JSON(http.StatusOK, gin.H{
		"data": popular,
	})
}

// SearchMenu handles GET /menu/search
func (h *CatalogHandler) SearchMenu(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query parameter 'q' is required",
		})
		return
	}

	results := h.catalog.Search(query)
	if results == nil {
		results = []catalog.Product{}
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  results,
		"query": query,
	})
}

// GetProduct handles GET /menu/products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, ok := h.catalog.Product(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data": product,
	})
}
