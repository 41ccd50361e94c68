package admin

import (
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"aroma_front_end/internal/handlers"
	"aroma_front_end/internal/models"
)

// ListOrders renders the order list. The backend always returns the
// full collection; the ?status= filter is applied here, on the client
// side of the API.
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.Backend.Orders(c.Request.Context())
	if err != nil {
		log.Printf("❌ Error loading orders: %v", err)
		c.HTML(http.StatusOK, "admin_orders.html", gin.H{
			"Error":  "Error loading orders.",
			"Filter": c.Query("status"),
		})
		return
	}

	filter := c.Query("status")
	if filter != "" {
		filtered := make([]models.Order, 0, len(orders))
		for _, order := range orders {
			if order.Status == filter {
				filtered = append(filtered, order)
			}
		}
		orders = filtered
	}

	c.HTML(http.StatusOK, "admin_orders.html", gin.H{
		"Orders": orders,
		"Filter": filter,
		"Alert":  c.Query("alert"),
	})
}

// UpdateOrderStatus issues the transition and reloads the list on
// success. The claimed transition order (paid, processing, shipped) is
// not enforced here; the buttons allow any jump the backend accepts.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id := c.Param("id")
	status := c.PostForm("status")

	back := "/admin/orders"
	if filter := c.PostForm("filter"); filter != "" {
		back += "?status=" + url.QueryEscape(filter)
	}

	if err := h.Backend.UpdateOrderStatus(c.Request.Context(), id, status); err != nil {
		log.Printf("❌ Error updating order %s: %v", id, err)
		handlers.RedirectAlert(c, "/admin/orders", "Failed to update order")
		return
	}
	c.Redirect(http.StatusSeeOther, back)
}
