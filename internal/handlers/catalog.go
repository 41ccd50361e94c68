package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"aroma_front_end/internal/cart"
	"aroma_front_end/internal/models"
)

// ShowShop renders the catalog. A failed fetch renders an empty shop
// rather than an error page.
func (h *Shop) ShowShop(c *gin.Context) {
	ctx := c.Request.Context()

	products, err := h.Backend.Products(ctx)
	if err != nil {
		log.Printf("❌ Error fetching products: %v", err)
		products = []models.Product{}
	}

	items := h.Cart.Get(ctx, cartID(c))

	c.HTML(http.StatusOK, "shop.html", gin.H{
		"Products":  products,
		"CartCount": cart.Count(items),
		"Alert":     c.Query("alert"),
	})
}

// AddToCart re-fetches the product so the stock check runs against the
// freshest copy the backend will give us, then merges it into the cart.
func (h *Shop) AddToCart(c *gin.Context) {
	ctx := c.Request.Context()
	back := returnTo(c, "/shop")

	productID := c.PostForm("product_id")
	if productID == "" {
		RedirectAlert(c, back, "Could not add to cart.")
		return
	}

	product, err := h.Backend.Product(ctx, productID)
	if err != nil {
		log.Printf("❌ Error fetching product %s: %v", productID, err)
		RedirectAlert(c, back, "Could not add to cart.")
		return
	}

	_, err = h.Cart.Add(ctx, cartID(c), product)
	switch {
	case errors.Is(err, cart.ErrOutOfStock):
		RedirectAlert(c, back, "Sorry, this product is out of stock!")
	case errors.Is(err, cart.ErrMaxStock):
		RedirectAlert(c, back, "You reached the max available stock.")
	case err != nil:
		log.Printf("❌ Error saving cart: %v", err)
		RedirectAlert(c, back, "Could not add to cart.")
	default:
		RedirectAlert(c, back, product.Name+" added to cart!")
	}
}

// StockLevels re-fetches the catalog and returns current stock counts
// keyed by product id, for patching displayed numbers in place after a
// purchase. Nothing calls it automatically.
func (h *Shop) StockLevels(c *gin.Context) {
	products, err := h.Backend.Products(c.Request.Context())
	if err != nil {
		log.Printf("❌ Error refreshing stock: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch products"})
		return
	}

	levels := make(map[string]int, len(products))
	for _, p := range products {
		levels[p.ID] = p.Stock
	}
	c.JSON(http.StatusOK, levels)
}
