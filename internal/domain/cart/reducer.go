package cart

import (
	"github.com/shopspring/decimal"
)

// Reduce computes the next state for a single action. It is a pure, total
// function: every action on a valid state yields a valid state, and the
// derived aggregates hold after every transition.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case AddToCart:
		items := make([]CartItem, 0, len(state.Items)+1)
		merged := false
		for _, item := range state.Items {
			if item.ID == a.Product.ID {
				item.Quantity++
				merged = true
			}
			items = append(items, item)
		}
		if !merged {
			items = append(items, CartItem{Product: a.Product, Quantity: 1})
		}
		state.Items = items
		state.Total, state.ItemCount = recalculate(items)
		return state

	case RemoveFromCart:
		items := make([]CartItem, 0, len(state.Items))
		for _, item := range state.Items {
			if item.ID != a.ProductID {
				items = append(items, item)
			}
		}
		state.Items = items
		state.Total, state.ItemCount = recalculate(items)
		return state

	case UpdateQuantity:
		items := make([]CartItem, 0, len(state.Items))
		for _, item := range state.Items {
			if item.ID == a.ProductID {
				item.Quantity = max(0, a.Quantity)
			}
			if item.Quantity > 0 {
				items = append(items, item)
			}
		}
		state.Items = items
		state.Total, state.ItemCount = recalculate(items)
		return state

	case ClearCart:
		state.Items = []CartItem{}
		state.Total = decimal.Zero
		state.ItemCount = 0
		return state

	case AddToWishlist:
		if state.InWishlist(a.Product.ID) {
			return state
		}
		wishlist := make([]WishlistItem, 0, len(state.Wishlist)+1)
		wishlist = append(wishlist, state.Wishlist...)
		state.Wishlist = append(wishlist, WishlistItem{Product: a.Product})
		return state

	case RemoveFromWishlist:
		wishlist := make([]WishlistItem, 0, len(state.Wishlist))
		for _, item := range state.Wishlist {
			if item.ID != a.ProductID {
				wishlist = append(wishlist, item)
			}
		}
		state.Wishlist = wishlist
		return state

	case AddOrder:
		orders := make([]Order, 0, len(state.Orders)+1)
		orders = append(orders, a.Order)
		orders = append(orders, state.Orders...)
		state.Orders = orders
		return state

	case LoadState:
		return a.State

	default:
		return state
	}
}
