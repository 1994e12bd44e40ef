package catalogapi

import (
	"context"
	"net/http"
	"strconv"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"

	domainerrors "storefront/internal/domain/errors"
	stderrors "storefront/internal/errors"
)

type cartGateway struct {
	client *Client
}

// NewCartGateway creates the REST-backed cart gateway.
func NewCartGateway(client *Client) gateway.CartGateway {
	return &cartGateway{client: client}
}

// cartItemPayload mirrors a backend cart row. The item identifier arrives
// under either "id" or "Id" depending on the serializer the backend used;
// both are captured so the ambiguity ends here.
type cartItemPayload struct {
	IDLower     *int64  `json:"id"`
	IDUpper     *int64  `json:"Id"`
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	SubTotal    float64 `json:"subTotal"`
}

type cartPayload struct {
	Items      []cartItemPayload `json:"items"`
	TotalPrice float64           `json:"totalPrice"`
}

// normalize converts the backend payload into the canonical Cart. A row
// lacking an identifier under any known field name is a data-integrity
// error, not a row to skip.
func (p *cartPayload) normalize() (*entity.Cart, error) {
	cart := &entity.Cart{
		Items:      make([]entity.CartItem, 0, len(p.Items)),
		TotalPrice: p.TotalPrice,
	}

	for _, row := range p.Items {
		var itemID int64
		switch {
		case row.IDLower != nil:
			itemID = *row.IDLower
		case row.IDUpper != nil:
			itemID = *row.IDUpper
		default:
			return nil, stderrors.Join(
				gateway.ErrCartItemMissingID,
				domainerrors.ErrCartItemMissingID.WithDetails("product: "+row.ProductName),
			)
		}

		subtotal := row.SubTotal
		if subtotal == 0 {
			subtotal = float64(row.Quantity) * row.Price
		}

		cart.Items = append(cart.Items, entity.CartItem{
			CartItemID:   itemID,
			ProductID:    row.ProductID,
			ProductName:  row.ProductName,
			Quantity:     row.Quantity,
			UnitPrice:    row.Price,
			LineSubtotal: subtotal,
		})
	}

	return cart, nil
}

// FetchCart retrieves the current cart.
func (g *cartGateway) FetchCart(ctx context.Context) (*entity.Cart, error) {
	req, err := g.client.newRequest(ctx, http.MethodGet, "/cart", nil, contentTypeJSON)
	if err != nil {
		return nil, err
	}

	var payload cartPayload
	if err := g.client.doJSON(req, &payload); err != nil {
		return nil, err
	}

	return payload.normalize()
}

type addItemPayload struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// AddItem adds quantity units of a product and returns the resulting cart.
func (g *cartGateway) AddItem(ctx context.Context, productID int64, quantity int) (*entity.Cart, error) {
	body, err := encodeJSON(addItemPayload{ProductID: productID, Quantity: quantity})
	if err != nil {
		return nil, err
	}

	req, err := g.client.newRequest(ctx, http.MethodPost, "/cart/items", body, contentTypeJSON)
	if err != nil {
		return nil, err
	}

	var payload cartPayload
	if err := g.client.doJSON(req, &payload); err != nil {
		return nil, err
	}

	return payload.normalize()
}

// RemoveItem removes a cart line and returns the backend's post-removal
// snapshot.
func (g *cartGateway) RemoveItem(ctx context.Context, cartItemID int64) (*entity.Cart, error) {
	req, err := g.client.newRequest(ctx, http.MethodDelete, "/cart/items/"+strconv.FormatInt(cartItemID, 10), nil, contentTypeJSON)
	if err != nil {
		return nil, err
	}

	var payload cartPayload
	if err := g.client.doJSON(req, &payload); err != nil {
		return nil, err
	}

	return payload.normalize()
}
