package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"aroma_front_end/internal/handlers"
	"aroma_front_end/internal/handlers/admin"
	"aroma_front_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, shop *handlers.Shop, adm *admin.Handler) {
	r.Use(cors.Default())

	// Storefront
	r.GET("/", shop.ShowShop)
	r.GET("/shop", shop.ShowShop)
	r.GET("/product", shop.ShowProduct)

	// Cart
	r.GET("/cart", shop.ShowCart)
	r.POST("/cart/add", shop.AddToCart)
	r.POST("/cart/increment", shop.IncrementItem)
	r.POST("/cart/decrement", shop.DecrementItem)
	r.POST("/cart/remove", shop.RemoveItem)
	r.GET("/ws/cart", shop.CartWebSocket)

	// Checkout
	r.POST("/checkout", shop.Checkout)

	// Stock refresh after a purchase completes
	r.GET("/api/stock", shop.StockLevels)

	// Admin
	r.GET("/admin", adm.ShowGate)
	r.POST("/admin/login", middleware.LoginRateLimit(), adm.Login)
	r.GET("/admin/products", adm.ListProducts)
	r.POST("/admin/products", adm.SaveProduct)
	r.POST("/admin/products/:id/delete", adm.DeleteProduct)
	r.GET("/admin/orders", adm.ListOrders)
	r.POST("/admin/orders/:id/status", adm.UpdateOrderStatus)
}
