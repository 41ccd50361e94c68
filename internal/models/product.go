package models

import "github.com/shopspring/decimal"

// PlaceholderImage is served for products without an image of their own.
const PlaceholderImage = "/images/placeholder.png"

// Product mirrors the shape returned by the backend REST API. The front
// end only ever holds ephemeral copies; the backend stays authoritative.
type Product struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	Image       string          `json:"image,omitempty"`
	Stock       int             `json:"stock"`
}

func (p Product) ImageOrPlaceholder() string {
	if p.Image == "" {
		return PlaceholderImage
	}
	return p.Image
}

func (p Product) InStock() bool {
	return p.Stock > 0
}

// PriceDisplay renders the price with two decimals, as the pages show it.
func (p Product) PriceDisplay() string {
	return p.Price.StringFixed(2)
}
