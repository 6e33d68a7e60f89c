package cart

import (
	"github.com/shopspring/decimal"
)

// Product describes a catalog item as consumed by the cart.
// It is immutable catalog data; the cart never owns or mutates it.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Price       string          `json:"price"`
	PriceNumber decimal.Decimal `json:"priceNumber"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Features    []string        `json:"features"`
	Gradient    string          `json:"gradient"`
}

// CartItem is a product line in the cart annotated with quantity.
// A CartItem with quantity <= 0 must never exist in the items collection;
// the reducer removes it instead of keeping it at zero.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal returns the line contribution to the cart total
func (i CartItem) Subtotal() decimal.Decimal {
	return i.PriceNumber.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// WishlistItem is a product saved for later. Wishlist membership has set
// semantics keyed by product ID.
type WishlistItem struct {
	Product
}
