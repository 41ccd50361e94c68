// Package cart is the single home of cart state. Every page that
// touches the cart goes through this store, so add/increment validation
// behaves the same everywhere.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"aroma_front_end/internal/models"
)

var (
	ErrOutOfStock = errors.New("product is out of stock")
	ErrMaxStock   = errors.New("max available stock reached")
	ErrNotInCart  = errors.New("product not in cart")
)

const (
	keyPrefix = "cart:"
	cartTTL   = 30 * 24 * time.Hour
)

// Store persists one JSON-encoded array of line items per cart under a
// single key. Last write wins: concurrent mutators are not coordinated.
type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func key(cartID string) string {
	return keyPrefix + cartID
}

// Get decodes the stored cart. An absent key, a transport error or a
// corrupted value all yield an empty cart rather than an error: the
// stored entry is the only copy and dropping it beats failing every
// page render.
func (s *Store) Get(ctx context.Context, cartID string) []models.CartItem {
	data, err := s.client.Get(ctx, key(cartID)).Bytes()
	if err != nil {
		return []models.CartItem{}
	}

	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return []models.CartItem{}
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return items
}

// Save writes the cart synchronously and wakes any websocket listeners
// subscribed to this cart's channel.
func (s *Store) Save(ctx context.Context, cartID string, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := s.client.Set(ctx, key(cartID), data, cartTTL).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	s.client.Publish(ctx, key(cartID), "updated")
	return nil
}

// Add merges one unit of a product into the cart. Identity for merging
// is the product id. Quantity never exceeds the known stock.
func (s *Store) Add(ctx context.Context, cartID string, p models.Product) ([]models.CartItem, error) {
	if p.Stock <= 0 {
		return nil, ErrOutOfStock
	}

	items := s.Get(ctx, cartID)

	found := false
	for i := range items {
		if items[i].ID == p.ID {
			if items[i].Quantity >= p.Stock {
				return nil, ErrMaxStock
			}
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, models.CartItem{Product: p, Quantity: 1})
	}

	if err := s.Save(ctx, cartID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Increment bumps a line item by one, bounded by the stock recorded in
// its snapshot. A zero snapshot stock means the stock was unknown when
// the item was stored, and the bound does not apply.
func (s *Store) Increment(ctx context.Context, cartID, productID string) ([]models.CartItem, error) {
	items := s.Get(ctx, cartID)

	for i := range items {
		if items[i].ID != productID {
			continue
		}
		if items[i].Stock > 0 && items[i].Quantity >= items[i].Stock {
			return nil, ErrMaxStock
		}
		items[i].Quantity++
		if err := s.Save(ctx, cartID, items); err != nil {
			return nil, err
		}
		return items, nil
	}
	return nil, ErrNotInCart
}

// Decrement lowers a line item by one. At quantity 1 the line is
// removed from the cart entirely.
func (s *Store) Decrement(ctx context.Context, cartID, productID string) ([]models.CartItem, error) {
	items := s.Get(ctx, cartID)

	for i := range items {
		if items[i].ID != productID {
			continue
		}
		if items[i].Quantity > 1 {
			items[i].Quantity--
		} else {
			items = append(items[:i], items[i+1:]...)
		}
		if err := s.Save(ctx, cartID, items); err != nil {
			return nil, err
		}
		return items, nil
	}
	return nil, ErrNotInCart
}

// Remove drops a line item regardless of quantity.
func (s *Store) Remove(ctx context.Context, cartID, productID string) ([]models.CartItem, error) {
	items := s.Get(ctx, cartID)

	for i := range items {
		if items[i].ID == productID {
			items = append(items[:i], items[i+1:]...)
			if err := s.Save(ctx, cartID, items); err != nil {
				return nil, err
			}
			return items, nil
		}
	}
	return nil, ErrNotInCart
}

// Subscribe returns the pubsub feed notified after every save of this
// cart. Callers own the returned subscription and must close it.
func (s *Store) Subscribe(ctx context.Context, cartID string) *redis.PubSub {
	return s.client.Subscribe(ctx, key(cartID))
}

// Total is the sum over line items of price times quantity.
func Total(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Count is the number of units in the cart, for the header badge.
func Count(items []models.CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
