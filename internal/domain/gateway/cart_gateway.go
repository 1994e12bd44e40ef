package gateway

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// Cart-specific errors.
var (
	// ErrInsufficientStock is returned when the backend rejects an add
	// because the requested quantity exceeds the available stock.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrCartItemMissingID is returned when a backend cart row carries no
	// usable item identifier under any known field name.
	ErrCartItemMissingID = errors.New("cart item missing identifier")
)

// CartGateway defines the backend operations for the shopping cart. Every
// mutation returns the authoritative post-mutation snapshot.
type CartGateway interface {
	// FetchCart retrieves the current cart.
	FetchCart(ctx context.Context) (*entity.Cart, error)

	// AddItem adds quantity units of a product and returns the resulting
	// cart. Returns ErrInsufficientStock when stock is exhausted.
	AddItem(ctx context.Context, productID int64, quantity int) (*entity.Cart, error)

	// RemoveItem removes a cart line by its item ID and returns the
	// resulting cart.
	RemoveItem(ctx context.Context, cartItemID int64) (*entity.Cart, error)
}
