package cart

// Action is a discrete state transition input for the reducer. The concrete
// variants below form a closed set; Reduce ignores anything else.
type Action interface {
	isAction()
}

// AddToCart adds one unit of the product, merging into an existing line
type AddToCart struct {
	Product Product
}

// RemoveFromCart deletes the line with the given product ID, if present
type RemoveFromCart struct {
	ProductID int
}

// UpdateQuantity sets a line's quantity to max(0, Quantity); zero removes the line
type UpdateQuantity struct {
	ProductID int
	Quantity  int
}

// ClearCart empties the cart lines, leaving wishlist and orders untouched
type ClearCart struct{}

// AddToWishlist appends the product unless it is already on the wishlist
type AddToWishlist struct {
	Product Product
}

// RemoveFromWishlist deletes the wishlist entry with the given product ID
type RemoveFromWishlist struct {
	ProductID int
}

// AddOrder prepends the order to the history (newest first, no dedup)
type AddOrder struct {
	Order Order
}

// LoadState replaces the entire state; used only for startup hydration
type LoadState struct {
	State State
}

func (AddToCart) isAction()          {}
func (RemoveFromCart) isAction()     {}
func (UpdateQuantity) isAction()     {}
func (ClearCart) isAction()          {}
func (AddToWishlist) isAction()      {}
func (RemoveFromWishlist) isAction() {}
func (AddOrder) isAction()           {}
func (LoadState) isAction()          {}
