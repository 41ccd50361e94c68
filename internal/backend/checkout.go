package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"aroma_front_end/internal/models"
)

type checkoutRequest struct {
	Items []models.CartItem `json:"items"`
}

type checkoutResponse struct {
	URL string `json:"url"`
}

// CreateCheckoutSession hands the cart to the backend and returns the
// hosted payment URL to navigate to. Any response without a url is a
// failure: the backend reports errors as a different JSON shape.
func (c *Client) CreateCheckoutSession(ctx context.Context, items []models.CartItem) (string, error) {
	res, err := c.sendJSON(ctx, http.MethodPost, "/create-checkout-session", checkoutRequest{Items: items})
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	var session checkoutResponse
	if err := json.NewDecoder(res.Body).Decode(&session); err != nil {
		return "", fmt.Errorf("checkout session: decode response: %w", err)
	}
	if session.URL == "" {
		return "", fmt.Errorf("checkout session: no url in response (status %s)", res.Status)
	}
	return session.URL, nil
}
