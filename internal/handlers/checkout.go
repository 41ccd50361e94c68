package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Checkout posts the cart to the backend's session endpoint and sends
// the browser to the returned payment URL. Submissions for the same
// cart that arrive while one is already in flight join it instead of
// creating a second session; the guard clears once the call finishes,
// so a failed attempt can be retried.
func (h *Shop) Checkout(c *gin.Context) {
	ctx := c.Request.Context()
	id := cartID(c)

	items := h.Cart.Get(ctx, id)
	if len(items) == 0 {
		RedirectAlert(c, "/cart", "Your cart is empty")
		return
	}

	v, err, _ := h.checkout.Do(id, func() (any, error) {
		return h.Backend.CreateCheckoutSession(ctx, items)
	})
	if err != nil {
		log.Printf("❌ Checkout error: %v", err)
		RedirectAlert(c, "/cart", "Failed to start checkout.")
		return
	}

	c.Redirect(http.StatusSeeOther, v.(string))
}
