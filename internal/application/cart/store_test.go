package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/velocitynoir/storefront/internal/domain/cart"
	"github.com/velocitynoir/storefront/internal/domain/shared"
)

// memorySnapshots is an in-memory SnapshotRepository fake
type memorySnapshots struct {
	state   cart.State
	found   bool
	loadErr error
	saveErr error
	saves   int
}

func (m *memorySnapshots) Load(ctx context.Context) (cart.State, bool, error) {
	if m.loadErr != nil {
		return cart.State{}, false, m.loadErr
	}
	return m.state, m.found, nil
}

func (m *memorySnapshots) Save(ctx context.Context, state cart.State) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.state = state
	m.found = true
	m.saves++
	return nil
}

// recordingPublisher captures every published event
type recordingPublisher struct {
	events []shared.DomainEvent
}

func (p *recordingPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) types() []string {
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType())
	}
	return out
}

func product(id int, name string, price int64) cart.Product {
	return cart.Product{
		ID:          id,
		Name:        name,
		Price:       "$" + decimal.NewFromInt(price).String(),
		PriceNumber: decimal.NewFromInt(price),
	}
}

func newTestStore(t *testing.T) (*Store, *memorySnapshots, *recordingPublisher) {
	t.Helper()
	snapshots := &memorySnapshots{}
	publisher := &recordingPublisher{}
	store := NewStore(context.Background(), snapshots, publisher, zap.NewNop())
	return store, snapshots, publisher
}

func TestNewStoreHydration(t *testing.T) {
	ctx := context.Background()

	t.Run("starts empty without a snapshot", func(t *testing.T) {
		store, _, _ := newTestStore(t)

		state := store.State()
		assert.Empty(t, state.Items)
		assert.True(t, state.Total.IsZero())
	})

	t.Run("restores a saved snapshot", func(t *testing.T) {
		saved := cart.Reduce(cart.NewState(), cart.AddToCart{Product: product(1, "Classic", 299)})
		snapshots := &memorySnapshots{state: saved, found: true}

		store := NewStore(ctx, snapshots, &recordingPublisher{}, zap.NewNop())

		state := store.State()
		require.Len(t, state.Items, 1)
		assert.True(t, state.Total.Equal(decimal.NewFromInt(299)))
	})

	t.Run("malformed snapshot degrades to empty state", func(t *testing.T) {
		snapshots := &memorySnapshots{loadErr: errors.New("failed to parse snapshot")}

		store := NewStore(ctx, snapshots, &recordingPublisher{}, zap.NewNop())

		state := store.State()
		assert.Empty(t, state.Items)
		assert.Empty(t, state.Orders)
	})

	t.Run("hydration publishes no events", func(t *testing.T) {
		saved := cart.Reduce(cart.NewState(), cart.AddToCart{Product: product(1, "Classic", 299)})
		publisher := &recordingPublisher{}

		NewStore(ctx, &memorySnapshots{state: saved, found: true}, publisher, zap.NewNop())

		assert.Empty(t, publisher.events)
	})
}

func TestStoreOperations(t *testing.T) {
	ctx := context.Background()

	t.Run("add accumulates quantity for the same product", func(t *testing.T) {
		store, _, _ := newTestStore(t)
		classic := product(1, "Classic", 100)

		store.AddToCart(ctx, classic)
		store.AddToCart(ctx, classic)

		state := store.State()
		require.Len(t, state.Items, 1)
		assert.Equal(t, 2, state.Items[0].Quantity)
		assert.True(t, state.Total.Equal(decimal.NewFromInt(200)))
		assert.Equal(t, 2, state.ItemCount)
	})

	t.Run("update quantity to zero removes the line", func(t *testing.T) {
		store, _, _ := newTestStore(t)
		store.AddToCart(ctx, product(1, "Classic", 100))
		store.AddToCart(ctx, product(1, "Classic", 100))
		store.AddToCart(ctx, product(2, "Electric", 50))

		store.UpdateQuantity(ctx, 1, 0)

		state := store.State()
		require.Len(t, state.Items, 1)
		assert.Equal(t, 2, state.Items[0].ID)
		assert.True(t, state.Total.Equal(decimal.NewFromInt(50)))
	})

	t.Run("clear cart leaves wishlist and orders", func(t *testing.T) {
		store, _, _ := newTestStore(t)
		store.AddToCart(ctx, product(1, "Classic", 299))
		store.AddToWishlist(ctx, product(4, "Ghost", 279))
		order, err := cart.NewOrder(product(1, "Classic", 299), 1)
		require.NoError(t, err)
		store.AddOrder(ctx, *order)

		store.ClearCart(ctx)

		state := store.State()
		assert.Empty(t, state.Items)
		assert.True(t, state.Total.IsZero())
		assert.Zero(t, state.ItemCount)
		assert.Len(t, state.Wishlist, 1)
		assert.Len(t, state.Orders, 1)
	})

	t.Run("wishlist add is idempotent", func(t *testing.T) {
		store, _, _ := newTestStore(t)
		ghost := product(4, "Ghost", 279)

		store.AddToWishlist(ctx, ghost)
		store.AddToWishlist(ctx, ghost)

		assert.Len(t, store.State().Wishlist, 1)
	})

	t.Run("orders are newest first", func(t *testing.T) {
		store, _, _ := newTestStore(t)
		first, err := cart.NewOrder(product(1, "Classic", 299), 1)
		require.NoError(t, err)
		second, err := cart.NewOrder(product(2, "Electric", 319), 1)
		require.NoError(t, err)

		store.AddOrder(ctx, *first)
		store.AddOrder(ctx, *second)

		state := store.State()
		require.Len(t, state.Orders, 2)
		assert.Equal(t, second.OrderID, state.Orders[0].OrderID)
	})

	t.Run("state snapshots are isolated from the live aggregate", func(t *testing.T) {
		store, _, _ := newTestStore(t)
		store.AddToCart(ctx, product(1, "Classic", 299))

		state := store.State()
		state.Items[0].Quantity = 99

		assert.Equal(t, 1, store.State().Items[0].Quantity)
	})
}

func TestStorePersistence(t *testing.T) {
	ctx := context.Background()

	t.Run("every mutation saves the full snapshot", func(t *testing.T) {
		store, snapshots, _ := newTestStore(t)

		store.AddToCart(ctx, product(1, "Classic", 299))
		store.AddToWishlist(ctx, product(4, "Ghost", 279))
		store.UpdateQuantity(ctx, 1, 3)
		store.RemoveFromWishlist(ctx, 4)
		store.ClearCart(ctx)

		assert.Equal(t, 5, snapshots.saves)
		assert.Empty(t, snapshots.state.Items)
	})

	t.Run("save failure is recoverable and keeps the transition", func(t *testing.T) {
		snapshots := &memorySnapshots{saveErr: errors.New("disk full")}
		store := NewStore(ctx, snapshots, &recordingPublisher{}, zap.NewNop())

		store.AddToCart(ctx, product(1, "Classic", 299))

		assert.Len(t, store.State().Items, 1)
	})

	t.Run("restored snapshot round trips through a fresh store", func(t *testing.T) {
		snapshots := &memorySnapshots{}
		store := NewStore(ctx, snapshots, &recordingPublisher{}, zap.NewNop())
		store.AddToCart(ctx, product(1, "Classic", 299))
		store.AddToCart(ctx, product(1, "Classic", 299))
		store.AddToWishlist(ctx, product(4, "Ghost", 279))

		fresh := NewStore(ctx, snapshots, &recordingPublisher{}, zap.NewNop())

		want := store.State()
		got := fresh.State()
		require.Len(t, got.Items, len(want.Items))
		assert.Equal(t, want.Items[0].Quantity, got.Items[0].Quantity)
		assert.Len(t, got.Wishlist, len(want.Wishlist))
		assert.True(t, got.Total.Equal(want.Total))
		assert.Equal(t, want.ItemCount, got.ItemCount)
	})
}

func TestStoreEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("each mutating call publishes exactly one event", func(t *testing.T) {
		store, _, publisher := newTestStore(t)

		store.AddToCart(ctx, product(1, "Classic", 299))
		store.RemoveFromCart(ctx, 1)
		store.UpdateQuantity(ctx, 1, 2)
		store.ClearCart(ctx)
		store.AddToWishlist(ctx, product(4, "Ghost", 279))
		store.RemoveFromWishlist(ctx, 4)

		assert.Equal(t, []string{
			cart.EventTypeCartItemAdded,
			cart.EventTypeCartItemRemoved,
			cart.EventTypeCartQuantityUpdated,
			cart.EventTypeCartCleared,
			cart.EventTypeWishlistItemAdded,
			cart.EventTypeWishlistItemRemoved,
		}, publisher.types())
	})

	t.Run("added event carries product identity and aggregates", func(t *testing.T) {
		store, _, publisher := newTestStore(t)

		store.AddToCart(ctx, product(1, "Velocity Noir - Classic", 299))

		require.Len(t, publisher.events, 1)
		added, ok := publisher.events[0].(*cart.CartItemAddedEvent)
		require.True(t, ok)
		assert.Equal(t, 1, added.ProductID)
		assert.Equal(t, "Velocity Noir - Classic", added.ProductName)
		assert.Equal(t, 1, added.Quantity)
		assert.True(t, added.CartTotal.Equal(decimal.NewFromInt(299)))
		assert.Equal(t, store.SessionID(), added.AggregateID())
	})

	t.Run("buy now adds to cart and signals checkout intent", func(t *testing.T) {
		store, _, publisher := newTestStore(t)

		store.BuyNow(ctx, product(1, "Classic", 299))

		require.Len(t, store.State().Items, 1)
		assert.Equal(t, []string{
			cart.EventTypeCartItemAdded,
			cart.EventTypeCheckoutRequested,
		}, publisher.types())
	})

	t.Run("no-op wishlist re-add still notifies", func(t *testing.T) {
		store, _, publisher := newTestStore(t)
		ghost := product(4, "Ghost", 279)

		store.AddToWishlist(ctx, ghost)
		store.AddToWishlist(ctx, ghost)

		assert.Len(t, publisher.events, 2)
		assert.Len(t, store.State().Wishlist, 1)
	})
}

func TestStoreContext(t *testing.T) {
	t.Run("round trips through context", func(t *testing.T) {
		store, _, _ := newTestStore(t)
		ctx := WithStore(context.Background(), store)

		got, ok := FromContext(ctx)
		require.True(t, ok)
		assert.Same(t, store, got)
		assert.Same(t, store, MustFromContext(ctx))
	})

	t.Run("missing store fails fast", func(t *testing.T) {
		assert.Panics(t, func() {
			MustFromContext(context.Background())
		})
	})
}
