package notify

import (
	"context"
	"fmt"

	"github.com/velocitynoir/storefront/internal/domain/cart"
	"github.com/velocitynoir/storefront/internal/domain/shared"
)

// Toaster subscribes to cart events and renders each as a
// notification.
type Toaster struct {
	sink Sink
}

// NewToaster creates a toaster feeding the given sink.
func NewToaster(sink Sink) *Toaster {
	return &Toaster{sink: sink}
}

// EventTypes implements shared.EventHandler.
func (t *Toaster) EventTypes() []string {
	return []string{
		cart.EventTypeCartItemAdded,
		cart.EventTypeCartItemRemoved,
		cart.EventTypeCartCleared,
		cart.EventTypeWishlistItemAdded,
		cart.EventTypeWishlistItemRemoved,
		cart.EventTypeOrderPlaced,
		cart.EventTypeCheckoutRequested,
	}
}

// Handle implements shared.EventHandler.
func (t *Toaster) Handle(ctx context.Context, event shared.DomainEvent) error {
	if notification, ok := render(event); ok {
		t.sink.Notify(notification)
	}
	return nil
}

// render maps a cart event to its notification copy.
func render(event shared.DomainEvent) (Notification, bool) {
	switch e := event.(type) {
	case *cart.CartItemAddedEvent:
		return Notification{
			Title:       "Added to cart",
			Description: fmt.Sprintf("%s has been added to your cart.", e.ProductName),
		}, true
	case *cart.CartItemRemovedEvent:
		return Notification{
			Title:       "Removed from cart",
			Description: "Item has been removed from your cart.",
		}, true
	case *cart.CartClearedEvent:
		return Notification{
			Title:       "Cart cleared",
			Description: "All items have been removed from your cart.",
		}, true
	case *cart.WishlistItemAddedEvent:
		return Notification{
			Title:       "Added to wishlist",
			Description: fmt.Sprintf("%s has been added to your wishlist.", e.ProductName),
		}, true
	case *cart.WishlistItemRemovedEvent:
		return Notification{
			Title:       "Removed from wishlist",
			Description: "Item has been removed from your wishlist.",
		}, true
	case *cart.OrderPlacedEvent:
		return Notification{
			Title:       "Order placed!",
			Description: fmt.Sprintf("Order %s has been placed.", e.OrderID),
		}, true
	case *cart.CheckoutRequestedEvent:
		return Notification{
			Title:       "Proceeding to checkout",
			Description: fmt.Sprintf("%s added to cart. Redirecting to checkout...", e.ProductName),
		}, true
	default:
		return Notification{}, false
	}
}
