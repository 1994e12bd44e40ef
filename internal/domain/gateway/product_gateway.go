package gateway

import (
	"context"

	"storefront/internal/domain/entity"
)

// ImageAttachment is an image file handed to the backend's upload endpoint.
type ImageAttachment struct {
	Filename string
	Content  []byte
}

// ProductDraft carries the editable fields of a product. Image is only set
// when a new file is attached; updates without one retain the previously
// stored URL carried in ImageURL.
type ProductDraft struct {
	Name          string
	Description   string
	Price         float64
	StockQuantity int
	CategoryID    int64
	Image         *ImageAttachment
	ImageURL      string
}

// ProductGateway defines the backend operations for products.
type ProductGateway interface {
	// ListProducts retrieves products, optionally filtered by category.
	// A nil categoryID means the whole catalog.
	ListProducts(ctx context.Context, categoryID *int64) ([]entity.Product, error)

	// SearchProducts retrieves products whose name matches the query.
	SearchProducts(ctx context.Context, query string) ([]entity.Product, error)

	// CreateProduct persists a new product as one multipart request
	// carrying the draft fields and the image file.
	CreateProduct(ctx context.Context, draft ProductDraft) error

	// UploadImage stores an image and returns the URL the backend assigned
	// to it. Used as the precursor of an update that replaces the image.
	UploadImage(ctx context.Context, image ImageAttachment) (string, error)

	// UpdateProduct replaces the fields of an existing product with a JSON
	// payload; the image URL inside the draft must already be resolved.
	// Returns ErrNotFound when the product no longer exists.
	UpdateProduct(ctx context.Context, id int64, draft ProductDraft) error

	// DeleteProduct removes a product by ID.
	// Returns ErrNotFound when the product is already gone.
	DeleteProduct(ctx context.Context, id int64) error
}
