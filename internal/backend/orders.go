package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"aroma_front_end/internal/models"
)

// ErrUpdateRejected means the backend answered but refused the status
// transition ({"success": false}).
var ErrUpdateRejected = errors.New("order update rejected by backend")

// Orders fetches the full order collection for the admin panel.
func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.getJSON(ctx, "/api/admin/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

type statusUpdate struct {
	Status string `json:"status"`
}

type statusResult struct {
	Success bool `json:"success"`
}

// UpdateOrderStatus transitions an order to the given status.
func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) error {
	res, err := c.sendJSON(ctx, http.MethodPut, "/api/admin/orders/"+id, statusUpdate{Status: status})
	if err != nil {
		return err
	}
	defer res.Body.Close()

	var result statusResult
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return fmt.Errorf("order status: decode response: %w", err)
	}
	if !result.Success {
		return ErrUpdateRejected
	}
	return nil
}
