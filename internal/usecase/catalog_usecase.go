package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogSnapshot is a point-in-time read of the canonical catalog state.
// VisibleProducts is the list the page should render: the search overlay's
// result set while a search is active, otherwise the canonical list with
// in-stock products first.
type CatalogSnapshot struct {
	Categories         []entity.Category
	Products           []entity.Product
	VisibleProducts    []entity.Product
	SelectedCategoryID *int64
	ActiveManagerTab   entity.EntityKind
	SearchActive       bool
	CategoriesError    string
	ProductsError      string
	LoadingCategories  bool
	LoadingProducts    bool
}

// CatalogUsecase is the root orchestrator: it owns the canonical category
// and product lists, the current filter, and the cross-component edit and
// delete intents, and reconciles every mutation back into the lists.
type CatalogUsecase interface {
	// LoadCategories fetches the category list and replaces it wholesale
	// on success. On failure the previous list stays intact and a scoped
	// error is recorded.
	LoadCategories(ctx context.Context) error

	// LoadProducts fetches the product list for the current category
	// filter with the same replace-wholesale, stale-on-error discipline.
	LoadProducts(ctx context.Context) error

	// SelectCategory changes the filter (nil means all products) and
	// re-fetches the product list.
	SelectCategory(ctx context.Context, categoryID *int64) error

	// SetEditIntent records an edit intent and switches the active manager
	// tab to the intent's kind. A pending intent of the same kind is
	// overwritten, last caller wins.
	SetEditIntent(intent entity.EditIntent)

	// ConsumeEditIntent atomically reads and clears the pending edit
	// intent of the given kind. Only the consuming form calls this.
	ConsumeEditIntent(kind entity.EntityKind) (entity.EditIntent, bool)

	// RequestDelete records a delete intent after the caller-supplied
	// confirmation step passes. Returns false when the caller declined.
	// A delete intent targeting the entity currently referenced by an
	// edit intent of the same kind evicts that edit intent.
	RequestDelete(kind entity.EntityKind, id int64, confirm func() bool) bool

	// PendingDelete exposes the recorded delete intent of the given kind
	// to its consuming form.
	PendingDelete(kind entity.EntityKind) (int64, bool)

	// AcknowledgeDelete clears the delete intent after the consuming form
	// has attempted the delete, regardless of outcome.
	AcknowledgeDelete(kind entity.EntityKind)

	// OnMutated is invoked by the forms after any successful mutation; it
	// re-fetches both canonical lists since product rows denormalize
	// category data.
	OnMutated(ctx context.Context, kind entity.EntityKind)

	// Snapshot returns a consistent read of the catalog state.
	Snapshot() CatalogSnapshot
}
