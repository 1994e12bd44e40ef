package impl

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain/entity"
	mockGateway "storefront/internal/mocks/gateway"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCatalogStore(t *testing.T) (usecase.CatalogUsecase, *mockGateway.MockCategoryGateway, *mockGateway.MockProductGateway) {
	mockCategoryGw := mockGateway.NewMockCategoryGateway(t)
	mockProductGw := mockGateway.NewMockProductGateway(t)
	search := NewSearchOverlay(mockProductGw, createTestCatalogConfig())
	store := NewCatalogStore(mockCategoryGw, mockProductGw, search, createTestLogger())

	return store, mockCategoryGw, mockProductGw
}

func TestCatalogStore_LoadCategories_ReplacesListWholesale(t *testing.T) {
	store, mockCategoryGw, _ := createTestCatalogStore(t)
	ctx := context.Background()

	first := []entity.Category{{ID: 1, Name: "飲料"}}
	second := []entity.Category{{ID: 1, Name: "飲料"}, {ID: 2, Name: "甜點"}}

	mockCategoryGw.EXPECT().ListCategories(ctx).Return(first, nil).Once()
	require.NoError(t, store.LoadCategories(ctx))
	assert.Equal(t, first, store.Snapshot().Categories)

	mockCategoryGw.EXPECT().ListCategories(ctx).Return(second, nil).Once()
	require.NoError(t, store.LoadCategories(ctx))
	assert.Equal(t, second, store.Snapshot().Categories)
}

func TestCatalogStore_LoadCategories_KeepsStaleListOnFailure(t *testing.T) {
	store, mockCategoryGw, _ := createTestCatalogStore(t)
	ctx := context.Background()

	categories := []entity.Category{{ID: 1, Name: "飲料"}}
	mockCategoryGw.EXPECT().ListCategories(ctx).Return(categories, nil).Once()
	require.NoError(t, store.LoadCategories(ctx))

	mockCategoryGw.EXPECT().ListCategories(ctx).Return(nil, errors.New("backend down")).Once()
	err := store.LoadCategories(ctx)
	assert.Error(t, err)

	snapshot := store.Snapshot()
	assert.Equal(t, categories, snapshot.Categories)
	assert.Equal(t, "無法載入分類", snapshot.CategoriesError)
}

func TestCatalogStore_LoadProducts_KeepsStaleListOnFailure(t *testing.T) {
	store, _, mockProductGw := createTestCatalogStore(t)
	ctx := context.Background()

	products := []entity.Product{{ID: 10, Name: "紅茶"}}
	mockProductGw.EXPECT().ListProducts(ctx, (*int64)(nil)).Return(products, nil).Once()
	require.NoError(t, store.LoadProducts(ctx))

	mockProductGw.EXPECT().ListProducts(ctx, (*int64)(nil)).Return(nil, errors.New("backend down")).Once()
	err := store.LoadProducts(ctx)
	assert.Error(t, err)

	snapshot := store.Snapshot()
	assert.Equal(t, products, snapshot.Products)
	assert.Equal(t, "無法載入商品", snapshot.ProductsError)
}

func TestCatalogStore_SelectCategory_RefetchesWithFilter(t *testing.T) {
	store, _, mockProductGw := createTestCatalogStore(t)
	ctx := context.Background()

	categoryID := int64(2)
	filtered := []entity.Product{{ID: 20, Name: "提拉米蘇", CategoryID: categoryID}}

	mockProductGw.EXPECT().
		ListProducts(ctx, mock.MatchedBy(func(id *int64) bool {
			return id != nil && *id == categoryID
		})).
		Return(filtered, nil).Once()

	require.NoError(t, store.SelectCategory(ctx, &categoryID))

	snapshot := store.Snapshot()
	require.NotNil(t, snapshot.SelectedCategoryID)
	assert.Equal(t, categoryID, *snapshot.SelectedCategoryID)
	assert.Equal(t, filtered, snapshot.Products)

	mockProductGw.EXPECT().ListProducts(ctx, (*int64)(nil)).Return(nil, nil).Once()
	require.NoError(t, store.SelectCategory(ctx, nil))
	assert.Nil(t, store.Snapshot().SelectedCategoryID)
}

func TestCatalogStore_ConsumeEditIntent_ReadsAndClears(t *testing.T) {
	store, _, _ := createTestCatalogStore(t)

	category := &entity.Category{ID: 3, Name: "湯品"}
	store.SetEditIntent(entity.EditIntent{Kind: entity.KindCategory, Category: category})

	assert.Equal(t, entity.KindCategory, store.Snapshot().ActiveManagerTab)

	intent, ok := store.ConsumeEditIntent(entity.KindCategory)
	require.True(t, ok)
	assert.Equal(t, category, intent.Category)

	_, ok = store.ConsumeEditIntent(entity.KindCategory)
	assert.False(t, ok)
}

func TestCatalogStore_SetEditIntent_LastCallerWins(t *testing.T) {
	store, _, _ := createTestCatalogStore(t)

	store.SetEditIntent(entity.EditIntent{Kind: entity.KindProduct, Product: &entity.Product{ID: 1, Name: "紅茶"}})
	store.SetEditIntent(entity.EditIntent{Kind: entity.KindProduct, Product: &entity.Product{ID: 2, Name: "綠茶"}})

	intent, ok := store.ConsumeEditIntent(entity.KindProduct)
	require.True(t, ok)
	assert.Equal(t, int64(2), intent.Product.ID)
}

func TestCatalogStore_RequestDelete_ConfirmDeclinedRecordsNothing(t *testing.T) {
	store, _, _ := createTestCatalogStore(t)

	recorded := store.RequestDelete(entity.KindCategory, 5, func() bool { return false })
	assert.False(t, recorded)

	_, ok := store.PendingDelete(entity.KindCategory)
	assert.False(t, ok)
}

func TestCatalogStore_RequestDelete_EvictsMatchingEditIntent(t *testing.T) {
	store, _, _ := createTestCatalogStore(t)

	store.SetEditIntent(entity.EditIntent{Kind: entity.KindProduct, Product: &entity.Product{ID: 7}})

	recorded := store.RequestDelete(entity.KindProduct, 7, func() bool { return true })
	require.True(t, recorded)

	_, ok := store.ConsumeEditIntent(entity.KindProduct)
	assert.False(t, ok)

	id, ok := store.PendingDelete(entity.KindProduct)
	require.True(t, ok)
	assert.Equal(t, int64(7), id)
}

func TestCatalogStore_SetEditIntent_SkippedWhileDeletePending(t *testing.T) {
	store, _, _ := createTestCatalogStore(t)

	require.True(t, store.RequestDelete(entity.KindProduct, 7, nil))

	store.SetEditIntent(entity.EditIntent{Kind: entity.KindProduct, Product: &entity.Product{ID: 7}})

	_, ok := store.ConsumeEditIntent(entity.KindProduct)
	assert.False(t, ok)

	// A different product can still be targeted for editing.
	store.SetEditIntent(entity.EditIntent{Kind: entity.KindProduct, Product: &entity.Product{ID: 8}})
	intent, ok := store.ConsumeEditIntent(entity.KindProduct)
	require.True(t, ok)
	assert.Equal(t, int64(8), intent.Product.ID)
}

func TestCatalogStore_AcknowledgeDelete_ClearsIntent(t *testing.T) {
	store, _, _ := createTestCatalogStore(t)

	require.True(t, store.RequestDelete(entity.KindCategory, 4, nil))
	store.AcknowledgeDelete(entity.KindCategory)

	_, ok := store.PendingDelete(entity.KindCategory)
	assert.False(t, ok)
}

func TestCatalogStore_OnMutated_RefetchesBothLists(t *testing.T) {
	store, mockCategoryGw, mockProductGw := createTestCatalogStore(t)
	ctx := context.Background()

	categories := []entity.Category{{ID: 1, Name: "飲料"}}
	products := []entity.Product{{ID: 10, Name: "紅茶", CategoryName: "飲料"}}

	mockCategoryGw.EXPECT().ListCategories(ctx).Return(categories, nil).Once()
	mockProductGw.EXPECT().ListProducts(ctx, (*int64)(nil)).Return(products, nil).Once()

	store.OnMutated(ctx, entity.KindCategory)

	snapshot := store.Snapshot()
	assert.Equal(t, categories, snapshot.Categories)
	assert.Equal(t, products, snapshot.Products)
}

func TestCatalogStore_OnMutated_FetchFailureDoesNotPanic(t *testing.T) {
	store, mockCategoryGw, mockProductGw := createTestCatalogStore(t)
	ctx := context.Background()

	mockCategoryGw.EXPECT().ListCategories(ctx).Return(nil, errors.New("backend down")).Once()
	mockProductGw.EXPECT().ListProducts(ctx, (*int64)(nil)).Return(nil, errors.New("backend down")).Once()

	store.OnMutated(ctx, entity.KindProduct)

	snapshot := store.Snapshot()
	assert.Equal(t, "無法載入分類", snapshot.CategoriesError)
	assert.Equal(t, "無法載入商品", snapshot.ProductsError)
}

func TestCatalogStore_Snapshot_SortsOutOfStockLast(t *testing.T) {
	store, _, mockProductGw := createTestCatalogStore(t)
	ctx := context.Background()

	products := []entity.Product{
		{ID: 1, Name: "紅茶", OutOfStock: true},
		{ID: 2, Name: "綠茶"},
		{ID: 3, Name: "烏龍茶"},
	}
	mockProductGw.EXPECT().ListProducts(ctx, (*int64)(nil)).Return(products, nil).Once()
	require.NoError(t, store.LoadProducts(ctx))

	snapshot := store.Snapshot()
	require.Len(t, snapshot.VisibleProducts, 3)
	assert.Equal(t, int64(2), snapshot.VisibleProducts[0].ID)
	assert.Equal(t, int64(3), snapshot.VisibleProducts[1].ID)
	assert.Equal(t, int64(1), snapshot.VisibleProducts[2].ID)

	// The canonical list keeps the backend order.
	assert.Equal(t, products, snapshot.Products)
}

func TestCatalogStore_Snapshot_SearchEclipsesCanonicalList(t *testing.T) {
	mockCategoryGw := mockGateway.NewMockCategoryGateway(t)
	mockProductGw := mockGateway.NewMockProductGateway(t)
	search := NewSearchOverlay(mockProductGw, createTestCatalogConfig())
	store := NewCatalogStore(mockCategoryGw, mockProductGw, search, createTestLogger())
	ctx := context.Background()

	canonical := []entity.Product{{ID: 1, Name: "紅茶"}, {ID: 2, Name: "綠茶"}}
	mockProductGw.EXPECT().ListProducts(ctx, (*int64)(nil)).Return(canonical, nil).Once()
	require.NoError(t, store.LoadProducts(ctx))

	results := []entity.Product{{ID: 2, Name: "綠茶"}}
	mockProductGw.EXPECT().SearchProducts(ctx, "綠").Return(results, nil).Once()
	require.NoError(t, search.Search(ctx, "綠"))

	snapshot := store.Snapshot()
	assert.True(t, snapshot.SearchActive)
	assert.Equal(t, results, snapshot.VisibleProducts)

	search.Clear()
	snapshot = store.Snapshot()
	assert.False(t, snapshot.SearchActive)
	assert.Equal(t, canonical, snapshot.VisibleProducts)
}
