package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"aroma_front_end/internal/cart"
)

// ShowProduct renders the detail page for the product named by the
// ?id= query parameter. Adding to the cart from here goes through the
// same stock-checked routine as the catalog.
func (h *Shop) ShowProduct(c *gin.Context) {
	ctx := c.Request.Context()

	items := h.Cart.Get(ctx, cartID(c))
	data := gin.H{
		"CartCount": cart.Count(items),
		"Alert":     c.Query("alert"),
	}

	id := c.Query("id")
	if id == "" {
		c.HTML(http.StatusNotFound, "product.html", data)
		return
	}

	product, err := h.Backend.Product(ctx, id)
	if err != nil {
		log.Printf("❌ Error fetching product %s: %v", id, err)
		c.HTML(http.StatusNotFound, "product.html", data)
		return
	}

	data["Product"] = product
	c.HTML(http.StatusOK, "product.html", data)
}
