package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
	"storefront/internal/usecase"

	domainerrors "storefront/internal/domain/errors"
	stderrors "storefront/internal/errors"
)

type cartService struct {
	carts  gateway.CartGateway
	logger *slog.Logger
	toast  *statusSlot

	mu      sync.Mutex
	cart    *entity.Cart
	lastErr string
}

// NewCartService creates the cart controller owning the authoritative
// server-backed snapshot. The returned interface is the stable handle
// other flows use to trigger refresh and add imperatively.
func NewCartService(carts gateway.CartGateway, cfg *config.Config, logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		carts:  carts,
		logger: logger,
		toast:  newStatusSlot(cfg.Catalog.StatusMessageTTL),
	}
}

// Refresh fetches the current cart and replaces the local snapshot
// wholesale. On failure the previous snapshot is retained.
func (s *cartService) Refresh(ctx context.Context) error {
	cart, err := s.carts.FetchCart(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.lastErr = userMessage(err, "無法載入購物車")

		return err
	}

	s.cart = cart
	s.lastErr = ""

	return nil
}

// Add puts quantity units of a product into the cart. The backend snapshot
// returned by the mutation is applied, then a refresh concludes the
// operation so the badge and total always reflect authoritative state.
// Rapid concurrent adds are not serialized client-side; each one ends in
// its own refresh, which is what preserves correctness.
func (s *cartService) Add(ctx context.Context, productID int64, quantity int) error {
	s.toast.Clear()

	if quantity < 1 {
		err := domainerrors.NewValidationError("數量必須為正整數")
		s.toast.Set(err.Message(), false)

		return err
	}

	cart, err := s.carts.AddItem(ctx, productID, quantity)
	if err != nil {
		message := userMessage(err, "無法加入購物車")
		if stderrors.Is(err, gateway.ErrInsufficientStock) {
			s.logger.Info("add to cart rejected for insufficient stock",
				slog.Int64("productId", productID),
				slog.Int("quantity", quantity),
			)
		}
		s.toast.Set(message, false)

		s.mu.Lock()
		s.lastErr = message
		s.mu.Unlock()

		return err
	}

	s.mu.Lock()
	s.cart = cart
	s.lastErr = ""
	s.mu.Unlock()

	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn("cart refresh after add failed", slog.Any("error", err))
	}

	s.toast.Set("已加入購物車", true)

	return nil
}

// Remove deletes a cart line. The identifier is validated locally first:
// a missing or non-numeric one is rejected with a diagnostic and never
// reaches the network. On success the local snapshot is replaced with the
// backend's post-removal snapshot, not a locally patched one.
func (s *cartService) Remove(ctx context.Context, rawItemID string) error {
	s.toast.Clear()

	trimmed := strings.TrimSpace(rawItemID)
	if trimmed == "" {
		err := domainerrors.ErrInvalidIdentifier.WithDetails("cartItemId is missing")
		s.toast.Set(err.Message(), false)

		return err
	}

	itemID, parseErr := strconv.ParseInt(trimmed, 10, 64)
	if parseErr != nil {
		err := domainerrors.ErrInvalidIdentifier.WithDetails("cartItemId is not numeric: " + trimmed)
		s.toast.Set(err.Message(), false)

		return err
	}

	cart, err := s.carts.RemoveItem(ctx, itemID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.lastErr = userMessage(err, "無法移除購物車項目")
		s.toast.Set(s.lastErr, false)

		return err
	}

	s.cart = cart
	s.lastErr = ""

	return nil
}

// Snapshot returns a consistent read of the cart. The badge count is
// re-derived from the lines on every read, independent of TotalPrice.
func (s *cartService) Snapshot() usecase.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cart *entity.Cart
	if s.cart != nil {
		copied := entity.Cart{
			Items:      make([]entity.CartItem, len(s.cart.Items)),
			TotalPrice: s.cart.TotalPrice,
		}
		copy(copied.Items, s.cart.Items)
		cart = &copied
	}

	return usecase.CartSnapshot{
		Cart:      cart,
		ItemCount: cart.ItemCount(),
		Toast:     s.toast.Current(),
		LastError: s.lastErr,
	}
}
