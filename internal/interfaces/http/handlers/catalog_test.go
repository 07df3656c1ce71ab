// internal/interfaces/http/handlers/catalog_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

func catalogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewCatalogHandler(catalog.NewStaticProvider())
	r := gin.New()
	r.GET("/restaurant", h.GetRestaurant)
	r.GET("/menu", h.GetMenu)
	r.GET("/menu/popular", h.GetPopular)
	r.GET("/menu/search", h.SearchMenu)
	r.GET("/menu/products/:id", h.GetProduct)
	return r
}

func TestGetRestaurant(t *testing.T) {
	r := catalogRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/restaurant", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data catalog.Restaurant `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Boteco da Maminha", resp.Data.Name)
}

func TestGetMenu(t *testing.T) {
	r := catalogRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/menu", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []catalog.Category `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data)
}

func TestGetProduct_Found(t *testing.T) {
	r := catalogRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/menu/products/marmita-maminha", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data catalog.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2290), resp.Data.Price)
}

func TestGetProduct_NotFound(t *testing.T) {
	r := catalogRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/menu/products/nope", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchMenu_RequiresQuery(t *testing.T) {
	r := catalogRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/menu/search", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchMenu_EmptyResultIsArray(t *testing.T) {
	r := catalogRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/menu/search?q=sushi", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}
