// Package handlers renders the storefront pages and applies cart and
// checkout actions. Failures are logged and surfaced to the shopper as
// an alert on the page they came from; nothing is retried.
package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"aroma_front_end/internal/backend"
	"aroma_front_end/internal/cart"
)

const cartCookie = "cart_id"

// Shop holds the collaborators of every storefront page.
type Shop struct {
	Backend *backend.Client
	Cart    *cart.Store

	checkout singleflight.Group
}

func NewShop(client *backend.Client, store *cart.Store) *Shop {
	return &Shop{Backend: client, Cart: store}
}

// cartID returns the browser's cart identity, minting a cookie on the
// first visit. The cookie lifetime matches the stored cart's TTL.
func cartID(c *gin.Context) string {
	if id, err := c.Cookie(cartCookie); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	c.SetCookie(cartCookie, id, int((30 * 24 * time.Hour).Seconds()), "/", "", false, true)
	return id
}

// RedirectAlert sends the browser back with a user-facing alert message
// in the query string, the blocking-alert contract of the original UI.
func RedirectAlert(c *gin.Context, to, msg string) {
	sep := "?"
	if strings.Contains(to, "?") {
		sep = "&"
	}
	c.Redirect(http.StatusSeeOther, to+sep+"alert="+url.QueryEscape(msg))
}

// returnTo picks the page a cart action should land back on. Only
// local paths are accepted so the redirect cannot leave the site.
func returnTo(c *gin.Context, fallback string) string {
	if back := c.PostForm("return"); len(back) > 1 && back[0] == '/' && back[1] != '/' {
		return back
	}
	return fallback
}
