package impl

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
	"storefront/internal/usecase"
)

type catalogStore struct {
	categories gateway.CategoryGateway
	products   gateway.ProductGateway
	search     usecase.SearchUsecase
	logger     *slog.Logger

	mu                 sync.Mutex
	categoryList       []entity.Category
	productList        []entity.Product
	selectedCategoryID *int64
	activeTab          entity.EntityKind
	categoriesErr      string
	productsErr        string
	loadingCategories  bool
	loadingProducts    bool
	editIntents        map[entity.EntityKind]*entity.EditIntent
	deleteIntents      map[entity.EntityKind]*entity.DeleteIntent
}

// NewCatalogStore creates the root orchestrator owning the canonical
// category/product lists and the cross-component intent signals.
func NewCatalogStore(
	categories gateway.CategoryGateway,
	products gateway.ProductGateway,
	search usecase.SearchUsecase,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogStore{
		categories:    categories,
		products:      products,
		search:        search,
		logger:        logger,
		activeTab:     entity.KindCategory,
		editIntents:   make(map[entity.EntityKind]*entity.EditIntent),
		deleteIntents: make(map[entity.EntityKind]*entity.DeleteIntent),
	}
}

// LoadCategories fetches the category list. On success the canonical list
// is replaced wholesale; on failure the previous list stays intact with a
// scoped error recorded (stale-but-present over empty-on-error).
func (s *catalogStore) LoadCategories(ctx context.Context) error {
	s.mu.Lock()
	s.loadingCategories = true
	s.categoriesErr = ""
	s.mu.Unlock()

	categories, err := s.categories.ListCategories(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadingCategories = false

	if err != nil {
		s.categoriesErr = userMessage(err, "無法載入分類")

		return err
	}

	s.categoryList = categories

	return nil
}

// LoadProducts fetches the product list for the current category filter
// with the same replace-wholesale, stale-on-error discipline. Concurrent
// loads are not coalesced; the last response to arrive wins, which is
// sound because the list is always replaced wholesale.
func (s *catalogStore) LoadProducts(ctx context.Context) error {
	s.mu.Lock()
	s.loadingProducts = true
	s.productsErr = ""
	categoryID := copyIDPtr(s.selectedCategoryID)
	s.mu.Unlock()

	products, err := s.products.ListProducts(ctx, categoryID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadingProducts = false

	if err != nil {
		s.productsErr = userMessage(err, "無法載入商品")

		return err
	}

	s.productList = products

	return nil
}

// SelectCategory changes the filter and re-fetches the product list.
func (s *catalogStore) SelectCategory(ctx context.Context, categoryID *int64) error {
	s.mu.Lock()
	s.selectedCategoryID = copyIDPtr(categoryID)
	s.mu.Unlock()

	return s.LoadProducts(ctx)
}

// SetEditIntent records an edit intent, last caller wins, and switches the
// active manager tab so the matching form surfaces. An intent targeting an
// entity with a delete already pending is not recorded: delete precedence
// keeps the form from referencing an entity being removed.
func (s *catalogStore) SetEditIntent(intent entity.EditIntent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activeTab = intent.Kind

	if pending := s.deleteIntents[intent.Kind]; pending != nil && pending.ID == editIntentID(intent) {
		return
	}

	copied := intent
	s.editIntents[intent.Kind] = &copied
}

// ConsumeEditIntent atomically reads and clears the pending edit intent of
// the given kind. Clearing is the consumer's job; the producer never does
// it, which rules out the race where a producer wipes an unread intent.
func (s *catalogStore) ConsumeEditIntent(kind entity.EntityKind) (entity.EditIntent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := s.editIntents[kind]
	if pending == nil {
		return entity.EditIntent{}, false
	}
	delete(s.editIntents, kind)

	return *pending, true
}

// RequestDelete records a delete intent once the caller-supplied
// confirmation passes. A pending edit intent referencing the same entity
// is evicted, since delete takes precedence.
func (s *catalogStore) RequestDelete(kind entity.EntityKind, id int64, confirm func() bool) bool {
	if confirm != nil && !confirm() {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if pending := s.editIntents[kind]; pending != nil && editIntentID(*pending) == id {
		delete(s.editIntents, kind)
	}

	s.deleteIntents[kind] = &entity.DeleteIntent{Kind: kind, ID: id}

	return true
}

// PendingDelete exposes the recorded delete intent to its consuming form.
func (s *catalogStore) PendingDelete(kind entity.EntityKind) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := s.deleteIntents[kind]
	if pending == nil {
		return 0, false
	}

	return pending.ID, true
}

// AcknowledgeDelete clears the delete intent after the consuming form has
// attempted the delete, regardless of outcome, so the signal can never
// stay stuck.
func (s *catalogStore) AcknowledgeDelete(kind entity.EntityKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.deleteIntents, kind)
}

// OnMutated re-fetches both canonical lists after a confirmed mutation.
// Categories are re-fetched too because product rows denormalize category
// data. Fetch failures are logged, not surfaced: the scoped error state on
// each list already covers the display.
func (s *catalogStore) OnMutated(ctx context.Context, kind entity.EntityKind) {
	if err := s.LoadCategories(ctx); err != nil {
		s.logger.Warn("category re-fetch after mutation failed",
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
	}
	if err := s.LoadProducts(ctx); err != nil {
		s.logger.Warn("product re-fetch after mutation failed",
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
	}
}

// Snapshot returns a consistent read of the catalog state. While a search
// is active its result set eclipses the canonical product list.
func (s *catalogStore) Snapshot() usecase.CatalogSnapshot {
	searchActive := s.search.Active()
	var searchResults []entity.Product
	if searchActive {
		searchResults = s.search.Snapshot().Results
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := usecase.CatalogSnapshot{
		Categories:         make([]entity.Category, len(s.categoryList)),
		Products:           make([]entity.Product, len(s.productList)),
		SelectedCategoryID: copyIDPtr(s.selectedCategoryID),
		ActiveManagerTab:   s.activeTab,
		SearchActive:       searchActive,
		CategoriesError:    s.categoriesErr,
		ProductsError:      s.productsErr,
		LoadingCategories:  s.loadingCategories,
		LoadingProducts:    s.loadingProducts,
	}
	copy(snapshot.Categories, s.categoryList)
	copy(snapshot.Products, s.productList)

	if searchActive {
		snapshot.VisibleProducts = searchResults
	} else {
		snapshot.VisibleProducts = entity.SortProductsByAvailability(s.productList)
	}

	return snapshot
}

func editIntentID(intent entity.EditIntent) int64 {
	switch {
	case intent.Category != nil:
		return intent.Category.ID
	case intent.Product != nil:
		return intent.Product.ID
	default:
		return 0
	}
}

func copyIDPtr(id *int64) *int64 {
	if id == nil {
		return nil
	}
	copied := *id

	return &copied
}
