package catalogapi

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"

	"github.com/pkg/errors"
)

type productGateway struct {
	client *Client
}

// NewProductGateway creates the REST-backed product gateway.
func NewProductGateway(client *Client) gateway.ProductGateway {
	return &productGateway{client: client}
}

// ListProducts retrieves products, optionally filtered by category.
func (g *productGateway) ListProducts(ctx context.Context, categoryID *int64) ([]entity.Product, error) {
	path := "/products"
	if categoryID != nil {
		path += "?category=" + strconv.FormatInt(*categoryID, 10)
	}

	req, err := g.client.newRequest(ctx, http.MethodGet, path, nil, contentTypeJSON)
	if err != nil {
		return nil, err
	}

	var products []entity.Product
	if err := g.client.doJSON(req, &products); err != nil {
		return nil, err
	}

	return products, nil
}

// SearchProducts retrieves products whose name matches the query.
func (g *productGateway) SearchProducts(ctx context.Context, query string) ([]entity.Product, error) {
	req, err := g.client.newRequest(ctx, http.MethodGet, "/products/search?name="+url.QueryEscape(query), nil, contentTypeJSON)
	if err != nil {
		return nil, err
	}

	var products []entity.Product
	if err := g.client.doJSON(req, &products); err != nil {
		return nil, err
	}

	return products, nil
}

// CreateProduct persists a new product as one multipart request carrying
// the draft fields and the image file.
func (g *productGateway) CreateProduct(ctx context.Context, draft gateway.ProductDraft) error {
	if draft.Image == nil {
		return errors.New("product creation requires an image attachment")
	}

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)

	fields := map[string]string{
		"name":          draft.Name,
		"description":   draft.Description,
		"price":         strconv.FormatFloat(draft.Price, 'f', -1, 64),
		"stockQuantity": strconv.Itoa(draft.StockQuantity),
		"categoryId":    strconv.FormatInt(draft.CategoryID, 10),
	}
	for key, value := range fields {
		if err := form.WriteField(key, value); err != nil {
			return errors.Wrap(err, "failed to write form field")
		}
	}

	part, err := form.CreateFormFile("image", draft.Image.Filename)
	if err != nil {
		return errors.Wrap(err, "failed to create image form part")
	}
	if _, err := part.Write(draft.Image.Content); err != nil {
		return errors.Wrap(err, "failed to write image content")
	}

	if err := form.Close(); err != nil {
		return errors.Wrap(err, "failed to finalize multipart form")
	}

	req, err := g.client.newRequest(ctx, http.MethodPost, "/products", body, form.FormDataContentType())
	if err != nil {
		return err
	}

	return g.client.doJSON(req, nil)
}

// UploadImage stores an image and returns the URL the backend assigned.
func (g *productGateway) UploadImage(ctx context.Context, image gateway.ImageAttachment) (string, error) {
	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)

	part, err := form.CreateFormFile("image", image.Filename)
	if err != nil {
		return "", errors.Wrap(err, "failed to create image form part")
	}
	if _, err := part.Write(image.Content); err != nil {
		return "", errors.Wrap(err, "failed to write image content")
	}
	if err := form.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize multipart form")
	}

	req, err := g.client.newRequest(ctx, http.MethodPost, "/products/upload-image", body, form.FormDataContentType())
	if err != nil {
		return "", err
	}

	var uploaded struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := g.client.doJSON(req, &uploaded); err != nil {
		return "", err
	}

	if uploaded.ImageURL == "" {
		return "", errors.New("upload succeeded but backend returned no imageUrl")
	}

	return uploaded.ImageURL, nil
}

type productUpdatePayload struct {
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stockQuantity"`
	CategoryID    int64   `json:"categoryId"`
	ImageURL      string  `json:"imageUrl"`
}

// UpdateProduct replaces the fields of an existing product.
func (g *productGateway) UpdateProduct(ctx context.Context, id int64, draft gateway.ProductDraft) error {
	body, err := encodeJSON(productUpdatePayload{
		Name:          draft.Name,
		Description:   draft.Description,
		Price:         draft.Price,
		StockQuantity: draft.StockQuantity,
		CategoryID:    draft.CategoryID,
		ImageURL:      draft.ImageURL,
	})
	if err != nil {
		return err
	}

	req, err := g.client.newRequest(ctx, http.MethodPut, "/products/"+strconv.FormatInt(id, 10), body, contentTypeJSON)
	if err != nil {
		return err
	}

	return g.client.doJSON(req, nil)
}

// DeleteProduct removes a product by ID.
func (g *productGateway) DeleteProduct(ctx context.Context, id int64) error {
	req, err := g.client.newRequest(ctx, http.MethodDelete, "/products/"+strconv.FormatInt(id, 10), nil, contentTypeJSON)
	if err != nil {
		return err
	}

	return g.client.doJSON(req, nil)
}
