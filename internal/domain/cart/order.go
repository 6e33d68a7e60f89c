package cart

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/velocitynoir/storefront/internal/domain/shared"
)

// OrderStatus represents the fulfillment status of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status.
// Fulfillment only moves forward: pending -> processing -> shipped -> delivered.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return target == OrderStatusProcessing
	case OrderStatusProcessing:
		return target == OrderStatusShipped
	case OrderStatusShipped:
		return target == OrderStatusDelivered
	case OrderStatusDelivered:
		return false // Terminal state
	}
	return false
}

// Order is an immutable record in the locally-synthesized order history.
// It snapshots the product at purchase time; later catalog changes never
// affect past orders.
type Order struct {
	Product
	OrderID   string          `json:"orderId"`
	OrderDate time.Time       `json:"orderDate"`
	Status    OrderStatus     `json:"status"`
	Quantity  int             `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
}

// NewOrder creates a pending order for the given product and quantity
func NewOrder(product Product, quantity int) (*Order, error) {
	if product.ID == 0 {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	return &Order{
		Product:   product,
		OrderID:   NewOrderNumber(),
		OrderDate: time.Now(),
		Status:    OrderStatusPending,
		Quantity:  quantity,
		Total:     product.PriceNumber.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

// Advance moves the order to the next fulfillment status
func (o *Order) Advance(target OrderStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_TRANSITION", "Order cannot move to "+target.String())
	}
	o.Status = target
	return nil
}

// NewOrderNumber generates a unique human-readable order number
func NewOrderNumber() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "ORD-" + id[:8]
}
