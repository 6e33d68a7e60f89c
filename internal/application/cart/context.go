package cart

import "context"

// contextKey is a type for context keys used by this package
type contextKey string

// storeKey is the context key under which the session store travels
const storeKey contextKey = "cart_store"

// WithStore returns a new context carrying the session store
func WithStore(ctx context.Context, store *Store) context.Context {
	return context.WithValue(ctx, storeKey, store)
}

// FromContext retrieves the store from context
func FromContext(ctx context.Context) (*Store, bool) {
	store, ok := ctx.Value(storeKey).(*Store)
	return store, ok
}

// MustFromContext retrieves the store from context and panics when it is
// missing. A missing store means a consumer ran outside an initialized
// session, which is an initialization bug, not a runtime data condition.
func MustFromContext(ctx context.Context) *Store {
	store, ok := FromContext(ctx)
	if !ok {
		panic("cart: store not found in context; the session was never initialized")
	}
	return store
}
