package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"aroma_front_end/internal/cart"
	"aroma_front_end/internal/models"
)

// ShowCart renders the cart page. State is re-read from the store on
// every render pass; nothing is cached across requests.
func (h *Shop) ShowCart(c *gin.Context) {
	items := h.Cart.Get(c.Request.Context(), cartID(c))

	c.HTML(http.StatusOK, "cart.html", gin.H{
		"Items":     items,
		"Total":     cart.Total(items).StringFixed(2),
		"CartCount": cart.Count(items),
		"Alert":     c.Query("alert"),
	})
}

func (h *Shop) IncrementItem(c *gin.Context) {
	h.mutateCart(c, h.Cart.Increment)
}

func (h *Shop) DecrementItem(c *gin.Context) {
	h.mutateCart(c, h.Cart.Decrement)
}

func (h *Shop) RemoveItem(c *gin.Context) {
	h.mutateCart(c, h.Cart.Remove)
}

type cartMutation func(ctx context.Context, cartID, productID string) ([]models.CartItem, error)

func (h *Shop) mutateCart(c *gin.Context, mutate cartMutation) {
	_, err := mutate(c.Request.Context(), cartID(c), c.PostForm("product_id"))
	switch {
	case errors.Is(err, cart.ErrMaxStock):
		RedirectAlert(c, "/cart", "You reached the max available stock.")
	case errors.Is(err, cart.ErrNotInCart):
		c.Redirect(http.StatusSeeOther, "/cart")
	case err != nil:
		log.Printf("❌ Error updating cart: %v", err)
		RedirectAlert(c, "/cart", "Could not update cart.")
	default:
		c.Redirect(http.StatusSeeOther, "/cart")
	}
}
