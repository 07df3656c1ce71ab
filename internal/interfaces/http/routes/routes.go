// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
)

// Services bundles the domain services the routes depend on
type Services struct {
	Catalog  catalog.Provider
	Cart     *cart.Service
	Checkout *checkout.Service
	Order    *order.Service
}

// Setup registers all API routes
func Setup(rg *gin.RouterGroup, svcs Services, cfg *config.Config) {
	setupCatalogRoutes(rg, svcs.Catalog)
	setupCartRoutes(rg, svcs.Cart, cfg)
	setupCheckoutRoutes(rg, svcs.Checkout, cfg)
	setupOrderRoutes(rg, svcs.Order)
}

func setupCatalogRoutes(rg *gin.RouterGroup, provider catalog.Provider) {
	catalogHandler := handlers.NewCatalogHandler(provider)

	rg.GET("/restaurant", catalogHandler.GetRestaurant)

	menu := rg.Group("/menu")
	{
		menu.GET("", catalogHandler.GetMenu)
		menu.GET("/popular", catalogHandler.GetPopular)
		menu.GET("/search", catalogHandler.SearchMenu)
		menu.GET("/products/:id", catalogHandler.GetProduct)
	}
}

func setupCartRoutes(rg *gin.RouterGroup, cartService *cart.Service, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(cartService, cfg)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.PUT("/items/:index", cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:index", cartHandler.RemoveItem)
	}
}

func setupCheckoutRoutes(rg *gin.RouterGroup, checkoutService *checkout.Service, cfg *config.Config) {
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, cfg)

	co := rg.Group("/checkout")
	{
		co.GET("", checkoutHandler.GetStatus)
		co.POST("/finalize", checkoutHandler.Finalize)
		co.PUT("/delivery", checkoutHandler.SetDeliveryInfo)
		co.POST("/delivery/confirm", checkoutHandler.ConfirmDelivery)
		co.POST("/delivery/cancel", checkoutHandler.CancelDelivery)
		co.POST("/back", checkoutHandler.Back)
		co.PUT("/payment", checkoutHandler.SelectPayment)
		co.POST("/confirm", checkoutHandler.Confirm)
		co.POST("/close", checkoutHandler.CloseSummary)
		co.POST("/pix/acknowledge", checkoutHandler.AcknowledgePix)
		co.POST("/pix/cancel", checkoutHandler.CancelPix)
	}
}

func setupOrderRoutes(rg *gin.RouterGroup, orderService *order.Service) {
	orderHandler := handlers.NewOrderHandler(orderService)

	orders := rg.Group("/orders")
	{
		orders.GET("/:number", orderHandler.GetOrder)
	}
}
