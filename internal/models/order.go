package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses the admin panel knows about. The enumeration is open:
// the backend may return other values and they render as-is.
const (
	StatusPaid       = "paid"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
)

// Order is read-only for the front end except for its status, which
// the admin panel can transition.
type Order struct {
	ID            string      `json:"_id"`
	CreatedAt     time.Time   `json:"createdAt"`
	AmountTotal   int64       `json:"amount_total"` // minor currency units
	CustomerEmail string      `json:"customer_email,omitempty"`
	Status        string      `json:"status"`
	Items         []OrderItem `json:"items"`
}

type OrderItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// TotalDisplay converts the minor-unit total to a two-decimal amount.
func (o Order) TotalDisplay() string {
	return decimal.NewFromInt(o.AmountTotal).Div(decimal.NewFromInt(100)).StringFixed(2)
}

func (o Order) StatusOrDefault() string {
	if o.Status == "" {
		return StatusPaid
	}
	return o.Status
}

func (o Order) EmailOrDash() string {
	if o.CustomerEmail == "" {
		return "—"
	}
	return o.CustomerEmail
}
