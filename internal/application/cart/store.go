// Package cart exposes the session-scoped store wrapping the cart/order
// reducer: named operations, snapshot persistence after every transition,
// and one domain event per user-visible mutation.
package cart

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/velocitynoir/storefront/internal/domain/cart"
	"github.com/velocitynoir/storefront/internal/domain/shared"
)

// Store is the cart/order state container for one storefront session. All
// mutations run through the pure reducer; the store adds hydration, snapshot
// persistence and event publication around it. Operations never fail:
// persistence problems are recoverable and only logged.
type Store struct {
	mu        sync.Mutex
	state     cart.State
	sessionID uuid.UUID
	snapshots cart.SnapshotRepository
	events    shared.EventPublisher
	logger    *zap.Logger
}

// NewStore constructs a store and hydrates it from the snapshot repository.
// An absent snapshot starts the session empty; a malformed one is logged at
// warn and degrades to the empty initial state.
func NewStore(ctx context.Context, snapshots cart.SnapshotRepository, events shared.EventPublisher, logger *zap.Logger) *Store {
	s := &Store{
		state:     cart.NewState(),
		sessionID: uuid.New(),
		snapshots: snapshots,
		events:    events,
		logger:    logger.Named("cart"),
	}

	saved, found, err := snapshots.Load(ctx)
	switch {
	case err != nil:
		s.logger.Warn("discarding unreadable cart snapshot",
			zap.String("session_id", s.sessionID.String()),
			zap.Error(err),
		)
	case found:
		s.state = cart.Reduce(s.state, cart.LoadState{State: saved})
		s.logger.Debug("cart snapshot restored",
			zap.Int("items", len(s.state.Items)),
			zap.Int("orders", len(s.state.Orders)),
		)
	}

	return s
}

// SessionID returns the identifier attached to this session's events
func (s *Store) SessionID() uuid.UUID {
	return s.sessionID
}

// State returns a deep-copied snapshot of the current state
func (s *Store) State() cart.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// AddToCart adds one unit of the product, merging into an existing line
func (s *Store) AddToCart(ctx context.Context, product cart.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = cart.Reduce(s.state, cart.AddToCart{Product: product})
	s.persist(ctx)

	item, _ := s.state.FindItem(product.ID)
	s.publish(ctx, cart.NewCartItemAddedEvent(s.sessionID, item, s.state))
}

// RemoveFromCart deletes the line with the given product ID; no-op if absent
func (s *Store) RemoveFromCart(ctx context.Context, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := ""
	if item, ok := s.state.FindItem(productID); ok {
		name = item.Name
	}

	s.state = cart.Reduce(s.state, cart.RemoveFromCart{ProductID: productID})
	s.persist(ctx)
	s.publish(ctx, cart.NewCartItemRemovedEvent(s.sessionID, productID, name))
}

// UpdateQuantity sets a line's quantity to max(0, quantity); zero removes
// the line entirely
func (s *Store) UpdateQuantity(ctx context.Context, productID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = cart.Reduce(s.state, cart.UpdateQuantity{ProductID: productID, Quantity: quantity})
	s.persist(ctx)
	s.publish(ctx, cart.NewCartQuantityUpdatedEvent(s.sessionID, productID, quantity))
}

// ClearCart empties the cart; wishlist and order history stay untouched
func (s *Store) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := len(s.state.Items)
	s.state = cart.Reduce(s.state, cart.ClearCart{})
	s.persist(ctx)
	s.publish(ctx, cart.NewCartClearedEvent(s.sessionID, removed))
}

// AddToWishlist saves the product; membership is idempotent per product ID
func (s *Store) AddToWishlist(ctx context.Context, product cart.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = cart.Reduce(s.state, cart.AddToWishlist{Product: product})
	s.persist(ctx)
	s.publish(ctx, cart.NewWishlistItemAddedEvent(s.sessionID, product))
}

// RemoveFromWishlist drops the wishlist entry; no-op if absent
func (s *Store) RemoveFromWishlist(ctx context.Context, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := ""
	for _, item := range s.state.Wishlist {
		if item.ID == productID {
			name = item.Name
		}
	}

	s.state = cart.Reduce(s.state, cart.RemoveFromWishlist{ProductID: productID})
	s.persist(ctx)
	s.publish(ctx, cart.NewWishlistItemRemovedEvent(s.sessionID, productID, name))
}

// AddOrder prepends an order record to the history. Every call creates a new
// record; there is no deduplication.
func (s *Store) AddOrder(ctx context.Context, order cart.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = cart.Reduce(s.state, cart.AddOrder{Order: order})
	s.persist(ctx)
	s.publish(ctx, cart.NewOrderPlacedEvent(s.sessionID, order))
}

// BuyNow adds the product to the cart and signals checkout intent. It never
// navigates; routing stays with the caller.
func (s *Store) BuyNow(ctx context.Context, product cart.Product) {
	s.AddToCart(ctx, product)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.publish(ctx, cart.NewCheckoutRequestedEvent(s.sessionID, product))
}

// persist writes the full state after a transition. Callers hold the lock.
func (s *Store) persist(ctx context.Context) {
	if err := s.snapshots.Save(ctx, s.state); err != nil {
		s.logger.Error("failed to persist cart snapshot",
			zap.String("session_id", s.sessionID.String()),
			zap.Error(err),
		)
	}
}

// publish emits a single event for the transition. Callers hold the lock.
func (s *Store) publish(ctx context.Context, event shared.DomainEvent) {
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish cart event",
			zap.String("event_type", event.EventType()),
			zap.Error(err),
		)
	}
}
