package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler exposes the server-backed cart snapshot and its mutations.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddItemRequest represents the request body for adding a product to the
// cart. Quantity is accepted as whatever the client's input field held;
// blank or invalid values normalize to 1.
type AddItemRequest struct {
	ProductID int64 `json:"productId" validate:"required"`
	Quantity  any   `json:"quantity"`
}

// cartView is the JSON shape of a cart snapshot. ItemCount drives the
// badge and is derived from the lines, not from TotalPrice.
type cartView struct {
	Items      []entity.CartItem `json:"items"`
	TotalPrice float64           `json:"totalPrice"`
	ItemCount  int               `json:"itemCount"`
	Toast      *statusView       `json:"toast,omitempty"`
	LastError  string            `json:"lastError,omitempty"`
}

func (h *CartHandler) cartView() cartView {
	snapshot := h.cartUC.Snapshot()

	view := cartView{
		ItemCount: snapshot.ItemCount,
		Toast:     newStatusView(snapshot.Toast),
		LastError: snapshot.LastError,
	}
	if snapshot.Cart != nil {
		view.Items = snapshot.Cart.Items
		view.TotalPrice = snapshot.Cart.TotalPrice
	}

	return view
}

// GetCart handles reading the current cart snapshot
func (h *CartHandler) GetCart(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.cartView(), "Cart retrieved successfully")
}

// Refresh handles re-fetching the cart. A fetch failure is scoped into the
// snapshot while the previous lines stay visible.
func (h *CartHandler) Refresh(c echo.Context) error {
	if err := h.cartUC.Refresh(c.Request().Context()); err != nil {
		h.logger.Warn("cart refresh failed", slog.Any("error", err))
	}

	return response.Success(c, http.StatusOK, h.cartView(), "Cart refreshed")
}

// AddItem handles putting a product into the cart
func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	quantity := usecase.NormalizeQuantity(rawQuantity(req.Quantity))
	if err := h.cartUC.Add(c.Request().Context(), req.ProductID, quantity); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.cartView(), "Item added to cart")
}

// RemoveItem handles deleting a cart line. The raw path segment travels to
// the usecase unparsed so its local identifier validation applies.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	if err := h.cartUC.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.cartView(), "Item removed from cart")
}

// rawQuantity renders the client's quantity field back into the raw text
// the normalization rules expect. JSON numbers arrive as float64; anything
// fractional or non-numeric normalizes to 1 downstream.
func rawQuantity(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}

		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (h *CartHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
