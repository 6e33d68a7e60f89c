package checkout

import (
	"context"
	"time"

	"go.uber.org/zap"

	cartapp "github.com/velocitynoir/storefront/internal/application/cart"
	"github.com/velocitynoir/storefront/internal/domain/cart"
	"github.com/velocitynoir/storefront/internal/domain/shared"
)

// Service turns the current cart contents into order records.
type Service struct {
	store  *cartapp.Store
	delay  time.Duration
	logger *zap.Logger
}

// NewService creates a checkout service. delay simulates payment
// processing time and may be zero.
func NewService(store *cartapp.Store, delay time.Duration, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		delay:  delay,
		logger: logger,
	}
}

// PlaceOrder converts every cart line into an order, appends the orders
// to the history newest first, and clears the cart. The cart must not
// be empty.
func (s *Service) PlaceOrder(ctx context.Context) ([]cart.Order, error) {
	state := s.store.State()
	if state.IsEmpty() {
		return nil, shared.ErrEmptyCart
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	orders := make([]cart.Order, 0, len(state.Items))
	for _, item := range state.Items {
		order, err := cart.NewOrder(item.Product, item.Quantity)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}

	for _, order := range orders {
		s.store.AddOrder(ctx, order)
	}
	s.store.ClearCart(ctx)

	s.logger.Info("checkout completed", zap.Int("orders", len(orders)))

	return orders, nil
}
