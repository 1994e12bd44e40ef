package impl

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
	mockGateway "storefront/internal/mocks/gateway"
	"storefront/internal/usecase"

	domainerrors "storefront/internal/domain/errors"
	stderrors "storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCategoryForm(t *testing.T) (usecase.CategoryFormUsecase, usecase.CatalogUsecase, *mockGateway.MockCategoryGateway, *mockGateway.MockProductGateway) {
	mockCategoryGw := mockGateway.NewMockCategoryGateway(t)
	mockProductGw := mockGateway.NewMockProductGateway(t)
	cfg := createTestCatalogConfig()
	search := NewSearchOverlay(mockProductGw, cfg)
	store := NewCatalogStore(mockCategoryGw, mockProductGw, search, createTestLogger())
	form := NewCategoryForm(mockCategoryGw, store, cfg)

	return form, store, mockCategoryGw, mockProductGw
}

func expectCatalogRefetch(ctx context.Context, mockCategoryGw *mockGateway.MockCategoryGateway, mockProductGw *mockGateway.MockProductGateway) {
	mockCategoryGw.EXPECT().ListCategories(ctx).Return(nil, nil).Once()
	mockProductGw.EXPECT().ListProducts(ctx, (*int64)(nil)).Return(nil, nil).Once()
}

func TestCategoryForm_Create_Success(t *testing.T) {
	form, _, mockCategoryGw, mockProductGw := createTestCategoryForm(t)
	ctx := context.Background()

	form.UpdateDraft(gateway.CategoryDraft{Name: "  飲料  ", Description: "冷熱皆有"})

	mockCategoryGw.EXPECT().
		CreateCategory(ctx, gateway.CategoryDraft{Name: "飲料", Description: "冷熱皆有"}).
		Return(nil).Once()
	expectCatalogRefetch(ctx, mockCategoryGw, mockProductGw)

	require.NoError(t, form.Create(ctx))

	state := form.State()
	assert.Empty(t, state.Draft.Name)
	assert.Nil(t, state.EditingID)
	require.NotNil(t, state.Status)
	assert.Equal(t, "建立成功", state.Status.Text)
	assert.True(t, state.Status.Success)
}

func TestCategoryForm_Create_BlankNameRejectedBeforeNetwork(t *testing.T) {
	form, _, _, _ := createTestCategoryForm(t)
	ctx := context.Background()

	form.UpdateDraft(gateway.CategoryDraft{Name: "   "})

	// No CreateCategory expectation: validation failures never reach the
	// gateway.
	err := form.Create(ctx)
	assert.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, "分類名稱不得為空白", appErr.Message())

	state := form.State()
	require.NotNil(t, state.Status)
	assert.Equal(t, "分類名稱不得為空白", state.Status.Text)
	assert.False(t, state.Status.Success)
}

func TestCategoryForm_Update_WithoutBoundTarget(t *testing.T) {
	form, _, _, _ := createTestCategoryForm(t)
	ctx := context.Background()

	form.UpdateDraft(gateway.CategoryDraft{Name: "飲料"})

	err := form.Update(ctx)
	assert.Equal(t, domainerrors.ErrMissingTarget, err)

	state := form.State()
	require.NotNil(t, state.Status)
	assert.Equal(t, domainerrors.ErrMissingTarget.Message(), state.Status.Text)
}

func TestCategoryForm_Bind_ConsumesEditIntent(t *testing.T) {
	form, store, _, _ := createTestCategoryForm(t)

	store.SetEditIntent(entity.EditIntent{
		Kind:     entity.KindCategory,
		Category: &entity.Category{ID: 3, Name: "湯品", Description: "每日例湯"},
	})

	require.True(t, form.Bind())

	state := form.State()
	assert.Equal(t, "湯品", state.Draft.Name)
	assert.Equal(t, "每日例湯", state.Draft.Description)
	require.NotNil(t, state.EditingID)
	assert.Equal(t, int64(3), *state.EditingID)

	// The intent was cleared on consumption.
	assert.False(t, form.Bind())
}

func TestCategoryForm_Update_Success(t *testing.T) {
	form, store, mockCategoryGw, mockProductGw := createTestCategoryForm(t)
	ctx := context.Background()

	store.SetEditIntent(entity.EditIntent{
		Kind:     entity.KindCategory,
		Category: &entity.Category{ID: 3, Name: "湯品"},
	})
	require.True(t, form.Bind())

	form.UpdateDraft(gateway.CategoryDraft{Name: "湯品區", Description: "改名"})

	mockCategoryGw.EXPECT().
		UpdateCategory(ctx, int64(3), gateway.CategoryDraft{Name: "湯品區", Description: "改名"}).
		Return(nil).Once()
	expectCatalogRefetch(ctx, mockCategoryGw, mockProductGw)

	require.NoError(t, form.Submit(ctx))

	state := form.State()
	assert.Empty(t, state.Draft.Name)
	assert.Nil(t, state.EditingID)
	require.NotNil(t, state.Status)
	assert.Equal(t, "更新成功", state.Status.Text)
}

func TestCategoryForm_Submit_FailurePreservesDraft(t *testing.T) {
	form, _, mockCategoryGw, _ := createTestCategoryForm(t)
	ctx := context.Background()

	draft := gateway.CategoryDraft{Name: "飲料", Description: "冷熱皆有"}
	form.UpdateDraft(draft)

	mockCategoryGw.EXPECT().
		CreateCategory(ctx, draft).
		Return(errors.New("backend down")).Once()

	err := form.Submit(ctx)
	assert.Error(t, err)

	state := form.State()
	assert.Equal(t, draft, state.Draft)
	require.NotNil(t, state.Status)
	assert.Equal(t, "儲存失敗", state.Status.Text)
	assert.False(t, state.Status.Success)
}

func TestCategoryForm_Submit_RemoteMessageSurfaced(t *testing.T) {
	form, _, mockCategoryGw, _ := createTestCategoryForm(t)
	ctx := context.Background()

	form.UpdateDraft(gateway.CategoryDraft{Name: "飲料"})

	remoteErr := domainerrors.NewRemoteError(409, "DUPLICATE", "分類名稱已存在")
	mockCategoryGw.EXPECT().
		CreateCategory(ctx, gateway.CategoryDraft{Name: "飲料"}).
		Return(remoteErr).Once()

	err := form.Submit(ctx)
	assert.Error(t, err)

	state := form.State()
	require.NotNil(t, state.Status)
	assert.Equal(t, "分類名稱已存在", state.Status.Text)
}

func TestCategoryForm_ProcessPendingDelete_Success(t *testing.T) {
	form, store, mockCategoryGw, mockProductGw := createTestCategoryForm(t)
	ctx := context.Background()

	require.True(t, store.RequestDelete(entity.KindCategory, 5, nil))

	mockCategoryGw.EXPECT().DeleteCategory(ctx, int64(5)).Return(nil).Once()
	expectCatalogRefetch(ctx, mockCategoryGw, mockProductGw)

	require.NoError(t, form.ProcessPendingDelete(ctx))

	_, pending := store.PendingDelete(entity.KindCategory)
	assert.False(t, pending)

	state := form.State()
	require.NotNil(t, state.Status)
	assert.Equal(t, "刪除成功", state.Status.Text)
	assert.True(t, state.Status.Success)
}

func TestCategoryForm_ProcessPendingDelete_AlreadyGoneCountsAsSuccess(t *testing.T) {
	form, store, mockCategoryGw, mockProductGw := createTestCategoryForm(t)
	ctx := context.Background()

	require.True(t, store.RequestDelete(entity.KindCategory, 5, nil))

	mockCategoryGw.EXPECT().DeleteCategory(ctx, int64(5)).Return(gateway.ErrNotFound).Once()
	expectCatalogRefetch(ctx, mockCategoryGw, mockProductGw)

	require.NoError(t, form.ProcessPendingDelete(ctx))

	state := form.State()
	require.NotNil(t, state.Status)
	assert.Equal(t, "刪除成功", state.Status.Text)
}

func TestCategoryForm_ProcessPendingDelete_FailureStillAcknowledges(t *testing.T) {
	form, store, mockCategoryGw, _ := createTestCategoryForm(t)
	ctx := context.Background()

	require.True(t, store.RequestDelete(entity.KindCategory, 5, nil))

	mockCategoryGw.EXPECT().DeleteCategory(ctx, int64(5)).Return(errors.New("backend down")).Once()

	err := form.ProcessPendingDelete(ctx)
	assert.Error(t, err)

	// The intent is acknowledged even on failure so it cannot get stuck.
	_, pending := store.PendingDelete(entity.KindCategory)
	assert.False(t, pending)

	state := form.State()
	require.NotNil(t, state.Status)
	assert.Equal(t, "刪除失敗", state.Status.Text)
	assert.False(t, state.Status.Success)
}

func TestCategoryForm_ProcessPendingDelete_NoIntent(t *testing.T) {
	form, _, _, _ := createTestCategoryForm(t)

	require.NoError(t, form.ProcessPendingDelete(context.Background()))
}

func TestCategoryForm_ProcessPendingDelete_ResetsFormWhenTargetEdited(t *testing.T) {
	form, store, mockCategoryGw, mockProductGw := createTestCategoryForm(t)
	ctx := context.Background()

	store.SetEditIntent(entity.EditIntent{
		Kind:     entity.KindCategory,
		Category: &entity.Category{ID: 3, Name: "湯品"},
	})
	require.True(t, form.Bind())

	require.True(t, store.RequestDelete(entity.KindCategory, 3, nil))

	mockCategoryGw.EXPECT().DeleteCategory(ctx, int64(3)).Return(nil).Once()
	expectCatalogRefetch(ctx, mockCategoryGw, mockProductGw)

	require.NoError(t, form.ProcessPendingDelete(ctx))

	state := form.State()
	assert.Empty(t, state.Draft.Name)
	assert.Nil(t, state.EditingID)
}

func TestCategoryForm_StartCreate_ResetsEditMode(t *testing.T) {
	form, store, _, _ := createTestCategoryForm(t)

	store.SetEditIntent(entity.EditIntent{
		Kind:     entity.KindCategory,
		Category: &entity.Category{ID: 3, Name: "湯品"},
	})
	require.True(t, form.Bind())

	form.StartCreate()

	state := form.State()
	assert.Empty(t, state.Draft.Name)
	assert.Nil(t, state.EditingID)
	assert.Nil(t, state.Status)
}
