package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"aroma_front_end/internal/cart"
	"aroma_front_end/internal/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// The storefront and the socket share an origin; tighten this
		// if the pages ever move to a separate host.
		return true
	},
}

type cartUpdate struct {
	Type  string            `json:"type"`
	Items []models.CartItem `json:"items"`
	Total string            `json:"total"`
	Count int               `json:"count"`
}

// CartWebSocket pushes the cart to the page whenever the store saves
// it, keeping the embedded cart summary in sync without a reload.
func (h *Shop) CartWebSocket(c *gin.Context) {
	id := cartID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ WebSocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()

	pubsub := h.Cart.Subscribe(ctx, id)
	defer pubsub.Close()
	ch := pubsub.Channel()

	push := func() error {
		items := h.Cart.Get(ctx, id)
		return conn.WriteJSON(cartUpdate{
			Type:  "cart_updated",
			Items: items,
			Total: cart.Total(items).StringFixed(2),
			Count: cart.Count(items),
		})
	}

	if err := push(); err != nil {
		return
	}

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if msg.Payload == "updated" {
				if err := push(); err != nil {
					return
				}
			}
		case <-ctx.Done():
			return
		}
	}
}
