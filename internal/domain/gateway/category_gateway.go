// Package gateway defines the interfaces for the remote catalog backend.
// These interfaces act as a contract between the application layer and the
// REST collaborator; implementations are typed request functions with no
// state of their own.
package gateway

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// Domain-specific errors for backend access.
var (
	// ErrNotFound is returned when the backend reports a 404-class outcome
	// for the targeted entity.
	ErrNotFound = errors.New("entity not found")
	// ErrUnauthenticated is returned instead of attempting a call when no
	// bearer credential is present.
	ErrUnauthenticated = errors.New("no bearer credential available")
)

// CategoryDraft carries the editable fields of a category.
type CategoryDraft struct {
	Name        string
	Description string
}

// CategoryGateway defines the backend operations for categories.
type CategoryGateway interface {
	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]entity.Category, error)

	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, draft CategoryDraft) error

	// UpdateCategory replaces the fields of an existing category.
	// Returns ErrNotFound when the category no longer exists.
	UpdateCategory(ctx context.Context, id int64, draft CategoryDraft) error

	// DeleteCategory removes a category by ID.
	// Returns ErrNotFound when the category is already gone.
	DeleteCategory(ctx context.Context, id int64) error
}
