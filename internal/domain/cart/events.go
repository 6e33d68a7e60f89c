package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/velocitynoir/storefront/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeCart = "Cart"

// Event type constants
const (
	EventTypeCartItemAdded       = "CartItemAdded"
	EventTypeCartItemRemoved     = "CartItemRemoved"
	EventTypeCartQuantityUpdated = "CartQuantityUpdated"
	EventTypeCartCleared         = "CartCleared"
	EventTypeWishlistItemAdded   = "WishlistItemAdded"
	EventTypeWishlistItemRemoved = "WishlistItemRemoved"
	EventTypeOrderPlaced         = "OrderPlaced"
	EventTypeCheckoutRequested   = "CheckoutRequested"
)

// CartItemAddedEvent is published when a product is added to the cart
type CartItemAddedEvent struct {
	shared.BaseDomainEvent
	ProductID   int             `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	CartTotal   decimal.Decimal `json:"cart_total"`
	ItemCount   int             `json:"item_count"`
}

// NewCartItemAddedEvent creates a new CartItemAddedEvent
func NewCartItemAddedEvent(sessionID uuid.UUID, item CartItem, state State) *CartItemAddedEvent {
	return &CartItemAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCartItemAdded, AggregateTypeCart, sessionID),
		ProductID:       item.ID,
		ProductName:     item.Name,
		Quantity:        item.Quantity,
		CartTotal:       state.Total,
		ItemCount:       state.ItemCount,
	}
}

// CartItemRemovedEvent is published when a line is removed from the cart.
// ProductName may be empty when the removed ID was not in the cart.
type CartItemRemovedEvent struct {
	shared.BaseDomainEvent
	ProductID   int    `json:"product_id"`
	ProductName string `json:"product_name,omitempty"`
}

// NewCartItemRemovedEvent creates a new CartItemRemovedEvent
func NewCartItemRemovedEvent(sessionID uuid.UUID, productID int, productName string) *CartItemRemovedEvent {
	return &CartItemRemovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCartItemRemoved, AggregateTypeCart, sessionID),
		ProductID:       productID,
		ProductName:     productName,
	}
}

// CartQuantityUpdatedEvent is published when a line quantity changes
type CartQuantityUpdatedEvent struct {
	shared.BaseDomainEvent
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// NewCartQuantityUpdatedEvent creates a new CartQuantityUpdatedEvent
func NewCartQuantityUpdatedEvent(sessionID uuid.UUID, productID, quantity int) *CartQuantityUpdatedEvent {
	return &CartQuantityUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCartQuantityUpdated, AggregateTypeCart, sessionID),
		ProductID:       productID,
		Quantity:        quantity,
	}
}

// CartClearedEvent is published when all lines are removed at once
type CartClearedEvent struct {
	shared.BaseDomainEvent
	RemovedLines int `json:"removed_lines"`
}

// NewCartClearedEvent creates a new CartClearedEvent
func NewCartClearedEvent(sessionID uuid.UUID, removedLines int) *CartClearedEvent {
	return &CartClearedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCartCleared, AggregateTypeCart, sessionID),
		RemovedLines:    removedLines,
	}
}

// WishlistItemAddedEvent is published on every wishlist add call, including
// calls that were no-ops because the product was already saved
type WishlistItemAddedEvent struct {
	shared.BaseDomainEvent
	ProductID   int    `json:"product_id"`
	ProductName string `json:"product_name"`
}

// NewWishlistItemAddedEvent creates a new WishlistItemAddedEvent
func NewWishlistItemAddedEvent(sessionID uuid.UUID, product Product) *WishlistItemAddedEvent {
	return &WishlistItemAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeWishlistItemAdded, AggregateTypeCart, sessionID),
		ProductID:       product.ID,
		ProductName:     product.Name,
	}
}

// WishlistItemRemovedEvent is published when a wishlist entry is removed
type WishlistItemRemovedEvent struct {
	shared.BaseDomainEvent
	ProductID   int    `json:"product_id"`
	ProductName string `json:"product_name,omitempty"`
}

// NewWishlistItemRemovedEvent creates a new WishlistItemRemovedEvent
func NewWishlistItemRemovedEvent(sessionID uuid.UUID, productID int, productName string) *WishlistItemRemovedEvent {
	return &WishlistItemRemovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeWishlistItemRemoved, AggregateTypeCart, sessionID),
		ProductID:       productID,
		ProductName:     productName,
	}
}

// OrderPlacedEvent is published when an order record is appended to the history
type OrderPlacedEvent struct {
	shared.BaseDomainEvent
	OrderID     string          `json:"order_id"`
	ProductID   int             `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
}

// NewOrderPlacedEvent creates a new OrderPlacedEvent
func NewOrderPlacedEvent(sessionID uuid.UUID, order Order) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderPlaced, AggregateTypeCart, sessionID),
		OrderID:         order.OrderID,
		ProductID:       order.ID,
		ProductName:     order.Name,
		Quantity:        order.Quantity,
		Total:           order.Total,
	}
}

// CheckoutRequestedEvent signals intent to proceed to checkout after a
// buy-now call. Routing is the caller's responsibility.
type CheckoutRequestedEvent struct {
	shared.BaseDomainEvent
	ProductID   int    `json:"product_id"`
	ProductName string `json:"product_name"`
}

// NewCheckoutRequestedEvent creates a new CheckoutRequestedEvent
func NewCheckoutRequestedEvent(sessionID uuid.UUID, product Product) *CheckoutRequestedEvent {
	return &CheckoutRequestedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCheckoutRequested, AggregateTypeCart, sessionID),
		ProductID:       product.ID,
		ProductName:     product.Name,
	}
}
