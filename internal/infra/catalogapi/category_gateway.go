package catalogapi

import (
	"context"
	"net/http"
	"strconv"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
)

type categoryGateway struct {
	client *Client
}

// NewCategoryGateway creates the REST-backed category gateway.
func NewCategoryGateway(client *Client) gateway.CategoryGateway {
	return &categoryGateway{client: client}
}

type categoryPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListCategories retrieves all categories.
func (g *categoryGateway) ListCategories(ctx context.Context) ([]entity.Category, error) {
	req, err := g.client.newRequest(ctx, http.MethodGet, "/categories", nil, contentTypeJSON)
	if err != nil {
		return nil, err
	}

	var categories []entity.Category
	if err := g.client.doJSON(req, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

// CreateCategory persists a new category.
func (g *categoryGateway) CreateCategory(ctx context.Context, draft gateway.CategoryDraft) error {
	body, err := encodeJSON(categoryPayload{Name: draft.Name, Description: draft.Description})
	if err != nil {
		return err
	}

	req, err := g.client.newRequest(ctx, http.MethodPost, "/categories", body, contentTypeJSON)
	if err != nil {
		return err
	}

	return g.client.doJSON(req, nil)
}

// UpdateCategory replaces the fields of an existing category.
func (g *categoryGateway) UpdateCategory(ctx context.Context, id int64, draft gateway.CategoryDraft) error {
	body, err := encodeJSON(categoryPayload{Name: draft.Name, Description: draft.Description})
	if err != nil {
		return err
	}

	req, err := g.client.newRequest(ctx, http.MethodPut, "/categories/"+strconv.FormatInt(id, 10), body, contentTypeJSON)
	if err != nil {
		return err
	}

	return g.client.doJSON(req, nil)
}

// DeleteCategory removes a category by ID.
func (g *categoryGateway) DeleteCategory(ctx context.Context, id int64) error {
	req, err := g.client.newRequest(ctx, http.MethodDelete, "/categories/"+strconv.FormatInt(id, 10), nil, contentTypeJSON)
	if err != nil {
		return err
	}

	return g.client.doJSON(req, nil)
}
