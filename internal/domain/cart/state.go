package cart

import (
	"github.com/shopspring/decimal"
)

// State is the full cart/order aggregate snapshot. Total and ItemCount are
// derived from Items and recomputed by the reducer after every mutation of
// Items; they are never set independently.
type State struct {
	Items     []CartItem      `json:"items"`
	Wishlist  []WishlistItem  `json:"wishlist"`
	Orders    []Order         `json:"orders"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
}

// NewState returns the empty initial state
func NewState() State {
	return State{
		Items:     []CartItem{},
		Wishlist:  []WishlistItem{},
		Orders:    []Order{},
		Total:     decimal.Zero,
		ItemCount: 0,
	}
}

// Clone returns a deep copy of the state. The store hands clones to callers
// so a returned snapshot can never alias the live aggregate.
func (s State) Clone() State {
	out := s
	out.Items = make([]CartItem, len(s.Items))
	copy(out.Items, s.Items)
	out.Wishlist = make([]WishlistItem, len(s.Wishlist))
	copy(out.Wishlist, s.Wishlist)
	out.Orders = make([]Order, len(s.Orders))
	copy(out.Orders, s.Orders)
	return out
}

// FindItem returns the cart line for the given product ID, if present
func (s State) FindItem(productID int) (CartItem, bool) {
	for _, item := range s.Items {
		if item.ID == productID {
			return item, true
		}
	}
	return CartItem{}, false
}

// InWishlist reports whether the product is on the wishlist
func (s State) InWishlist(productID int) bool {
	for _, item := range s.Wishlist {
		if item.ID == productID {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the cart holds no line items
func (s State) IsEmpty() bool {
	return len(s.Items) == 0
}

// recalculate derives Total and ItemCount from the given items
func recalculate(items []CartItem) (decimal.Decimal, int) {
	total := decimal.Zero
	count := 0
	for _, item := range items {
		total = total.Add(item.Subtotal())
		count += item.Quantity
	}
	return total, count
}
