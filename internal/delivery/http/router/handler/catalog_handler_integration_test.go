package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	mockGateway "storefront/internal/mocks/gateway"
	"storefront/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestConfig() *config.Config {
	return &config.Config{
		Catalog: &config.CatalogConfig{
			StatusMessageTTL: 100 * time.Millisecond,
			SearchMinLength:  1,
		},
	}
}

func createTestCatalogHandler(t *testing.T) (*CatalogHandler, *mockGateway.MockCategoryGateway, *mockGateway.MockProductGateway) {
	t.Helper()

	cfg := createTestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	mockCategoryGw := mockGateway.NewMockCategoryGateway(t)
	mockProductGw := mockGateway.NewMockProductGateway(t)

	searchUC := impl.NewSearchOverlay(mockProductGw, cfg)
	catalogUC := impl.NewCatalogStore(mockCategoryGw, mockProductGw, searchUC, logger)

	handler := &CatalogHandler{
		catalogUC: catalogUC,
		searchUC:  searchUC,
		logger:    logger,
	}

	return handler, mockCategoryGw, mockProductGw
}

func TestCatalogHandler_Refresh_Integration(t *testing.T) {
	handler, mockCategoryGw, mockProductGw := createTestCatalogHandler(t)

	mockCategoryGw.EXPECT().ListCategories(mock.Anything).
		Return([]entity.Category{{ID: 1, Name: "手搖飲"}}, nil).Once()
	mockProductGw.EXPECT().ListProducts(mock.Anything, (*int64)(nil)).
		Return([]entity.Product{{ID: 10, Name: "珍珠奶茶", Price: 65}}, nil).Once()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/catalog/refresh", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Refresh(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, "手搖飲")
	assert.Contains(t, responseBody, "珍珠奶茶")
	assert.Contains(t, responseBody, `"visibleProducts"`)
	assert.NotContains(t, responseBody, "categoriesError")
}

func TestCatalogHandler_Refresh_KeepsStaleListsVisible(t *testing.T) {
	handler, mockCategoryGw, mockProductGw := createTestCatalogHandler(t)

	mockCategoryGw.EXPECT().ListCategories(mock.Anything).
		Return([]entity.Category{{ID: 1, Name: "手搖飲"}}, nil).Once()
	mockProductGw.EXPECT().ListProducts(mock.Anything, (*int64)(nil)).
		Return([]entity.Product{{ID: 10, Name: "珍珠奶茶"}}, nil).Once()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/catalog/refresh", nil)
	rec := httptest.NewRecorder()
	assert.NoError(t, handler.Refresh(e.NewContext(req, rec)))

	// The second refresh fails on both lists; the previous content must
	// still be in the payload alongside the scoped errors.
	mockCategoryGw.EXPECT().ListCategories(mock.Anything).
		Return(nil, assert.AnError).Once()
	mockProductGw.EXPECT().ListProducts(mock.Anything, (*int64)(nil)).
		Return(nil, assert.AnError).Once()

	req = httptest.NewRequest(http.MethodPost, "/catalog/refresh", nil)
	rec = httptest.NewRecorder()
	assert.NoError(t, handler.Refresh(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, "手搖飲")
	assert.Contains(t, responseBody, "珍珠奶茶")
	assert.Contains(t, responseBody, "categoriesError")
	assert.Contains(t, responseBody, "productsError")
}

func TestCatalogHandler_SelectCategory_Integration(t *testing.T) {
	handler, _, mockProductGw := createTestCatalogHandler(t)

	mockProductGw.EXPECT().ListProducts(mock.Anything, mock.MatchedBy(func(id *int64) bool {
		return id != nil && *id == 2
	})).Return([]entity.Product{{ID: 20, Name: "冬瓜茶", CategoryID: 2}}, nil).Once()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/catalog/category", strings.NewReader(`{"categoryId":2}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := handler.SelectCategory(e.NewContext(req, rec))
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "冬瓜茶")
	assert.Contains(t, rec.Body.String(), `"selectedCategoryId":2`)
}

func TestCatalogHandler_Search_Integration(t *testing.T) {
	handler, _, mockProductGw := createTestCatalogHandler(t)

	mockProductGw.EXPECT().SearchProducts(mock.Anything, "奶茶").
		Return([]entity.Product{{ID: 10, Name: "珍珠奶茶"}}, nil).Once()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/catalog/search?query="+url.QueryEscape("奶茶"), nil)
	rec := httptest.NewRecorder()

	err := handler.Search(e.NewContext(req, rec))
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"ready"`)
	assert.Contains(t, rec.Body.String(), "珍珠奶茶")
}
