// Package admin drives the management pages: a password gate, product
// CRUD over the backend, and the order list with status transitions.
//
// The gate is cosmetic. A successful login only reveals the management
// UI; no token is retained and no later request carries credentials, so
// this is not a security boundary. Real protection has to come from the
// backend.
package admin

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"aroma_front_end/internal/backend"
	"aroma_front_end/internal/handlers"
)

type Handler struct {
	Backend *backend.Client
}

func NewHandler(client *backend.Client) *Handler {
	return &Handler{Backend: client}
}

// ShowGate renders the password prompt.
func (h *Handler) ShowGate(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.html", gin.H{
		"Alert": c.Query("alert"),
	})
}

// Login checks the password against the backend and, on success, sends
// the admin through to the management UI.
func (h *Handler) Login(c *gin.Context) {
	password := c.PostForm("password")
	if password == "" {
		handlers.RedirectAlert(c, "/admin", "Access denied")
		return
	}

	if err := h.Backend.AdminLogin(c.Request.Context(), password); err != nil {
		log.Printf("❌ Admin login failed: %v", err)
		handlers.RedirectAlert(c, "/admin", "Wrong password")
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin/products")
}
