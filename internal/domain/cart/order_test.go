package cart

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	product := testProduct(1, "Velocity Noir - Classic", 299)

	t.Run("creates pending order with derived total", func(t *testing.T) {
		order, err := NewOrder(product, 2)
		require.NoError(t, err)

		assert.Equal(t, OrderStatusPending, order.Status)
		assert.Equal(t, 2, order.Quantity)
		assert.True(t, order.Total.Equal(decimal.NewFromInt(598)))
		assert.False(t, order.OrderDate.IsZero())
	})

	t.Run("generates distinct ORD numbers", func(t *testing.T) {
		a, err := NewOrder(product, 1)
		require.NoError(t, err)
		b, err := NewOrder(product, 1)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(a.OrderID, "ORD-"))
		assert.Len(t, a.OrderID, len("ORD-")+8)
		assert.NotEqual(t, a.OrderID, b.OrderID)
	})

	t.Run("fails with zero quantity", func(t *testing.T) {
		_, err := NewOrder(product, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be positive")
	})

	t.Run("fails with empty product", func(t *testing.T) {
		_, err := NewOrder(Product{}, 1)
		require.Error(t, err)
	})
}

func TestOrderStatusTransitions(t *testing.T) {
	t.Run("fulfillment only moves forward", func(t *testing.T) {
		assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusProcessing))
		assert.True(t, OrderStatusProcessing.CanTransitionTo(OrderStatusShipped))
		assert.True(t, OrderStatusShipped.CanTransitionTo(OrderStatusDelivered))

		assert.False(t, OrderStatusPending.CanTransitionTo(OrderStatusShipped))
		assert.False(t, OrderStatusDelivered.CanTransitionTo(OrderStatusPending))
		assert.False(t, OrderStatusProcessing.CanTransitionTo(OrderStatusPending))
	})

	t.Run("advance walks the full chain", func(t *testing.T) {
		order, err := NewOrder(testProduct(1, "Classic", 299), 1)
		require.NoError(t, err)

		require.NoError(t, order.Advance(OrderStatusProcessing))
		require.NoError(t, order.Advance(OrderStatusShipped))
		require.NoError(t, order.Advance(OrderStatusDelivered))

		err = order.Advance(OrderStatusPending)
		require.Error(t, err)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		order, err := NewOrder(testProduct(1, "Classic", 299), 1)
		require.NoError(t, err)

		err = order.Advance(OrderStatus("lost"))
		require.Error(t, err)
		assert.False(t, OrderStatus("lost").IsValid())
	})
}
