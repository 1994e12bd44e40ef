package usecase

import (
	"context"
	"strconv"
	"strings"

	"storefront/internal/domain/entity"
)

// CartSnapshot is a point-in-time read of the cart. ItemCount is derived
// from the lines independently of TotalPrice since the badge and the total
// serve different invariants.
type CartSnapshot struct {
	Cart      *entity.Cart
	ItemCount int
	Toast     *StatusMessage
	LastError string
}

// CartUsecase owns the authoritative server-backed cart snapshot. The
// interface is the stable handle through which other flows trigger refresh
// and add without going through the cart's own surface.
type CartUsecase interface {
	// Refresh fetches the current cart and replaces the local snapshot
	// wholesale.
	Refresh(ctx context.Context) error

	// Add puts quantity units of a product into the cart and concludes
	// with a refresh so the badge and total reflect authoritative state.
	Add(ctx context.Context, productID int64, quantity int) error

	// Remove deletes a cart line. The raw identifier is validated locally;
	// a missing or non-numeric one never reaches the network.
	Remove(ctx context.Context, rawItemID string) error

	// Snapshot returns a consistent read of the cart.
	Snapshot() CartSnapshot
}

// NormalizeQuantity converts raw quantity input into a usable value,
// falling back to 1 for blank or invalid input. Called when the user
// leaves the field, not on every keystroke.
func NormalizeQuantity(raw string) int {
	quantity, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || quantity < 1 {
		return 1
	}

	return quantity
}
