package models

import "github.com/shopspring/decimal"

// CartItem is a product snapshot plus a requested quantity. The product
// fields are embedded so the serialized form is the product object with
// a quantity added, which keeps previously stored carts decoding.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal is unit price times quantity.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func (i CartItem) SubtotalDisplay() string {
	return i.Subtotal().StringFixed(2)
}
