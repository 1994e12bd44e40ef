package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	SearchUC  usecase.SearchUsecase
	Logger    *slog.Logger
}

// CatalogHandler exposes the shared catalog state: the canonical category
// and product lists, the category filter, and the search overlay.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	searchUC  usecase.SearchUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		searchUC:  params.SearchUC,
		logger:    params.Logger,
	}
}

// SelectCategoryRequest represents the request body for changing the
// category filter. A null categoryId means all products.
type SelectCategoryRequest struct {
	CategoryID *int64 `json:"categoryId"`
}

// searchView is the JSON shape of the search overlay state.
type searchView struct {
	State   string           `json:"state"`
	Query   string           `json:"query"`
	Results []entity.Product `json:"results,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// catalogView is the JSON shape of a catalog snapshot. VisibleProducts is
// what the page should render; Products stays the canonical filtered list.
type catalogView struct {
	Categories         []entity.Category `json:"categories"`
	Products           []entity.Product  `json:"products"`
	VisibleProducts    []entity.Product  `json:"visibleProducts"`
	SelectedCategoryID *int64            `json:"selectedCategoryId,omitempty"`
	ActiveManagerTab   string            `json:"activeManagerTab"`
	CategoriesError    string            `json:"categoriesError,omitempty"`
	ProductsError      string            `json:"productsError,omitempty"`
	Search             searchView        `json:"search"`
}

func (h *CatalogHandler) catalogView() catalogView {
	snapshot := h.catalogUC.Snapshot()
	search := h.searchUC.Snapshot()

	return catalogView{
		Categories:         snapshot.Categories,
		Products:           snapshot.Products,
		VisibleProducts:    snapshot.VisibleProducts,
		SelectedCategoryID: snapshot.SelectedCategoryID,
		ActiveManagerTab:   string(snapshot.ActiveManagerTab),
		CategoriesError:    snapshot.CategoriesError,
		ProductsError:      snapshot.ProductsError,
		Search: searchView{
			State:   string(search.State),
			Query:   search.Query,
			Results: search.Results,
			Error:   search.Error,
		},
	}
}

// GetCatalog handles reading the current catalog snapshot
func (h *CatalogHandler) GetCatalog(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalogView(), "Catalog retrieved successfully")
}

// Refresh handles re-fetching both canonical lists. Fetch failures are
// scoped into the snapshot while the previous lists stay visible, so the
// response is a success either way.
func (h *CatalogHandler) Refresh(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.catalogUC.LoadCategories(ctx); err != nil {
		h.logger.Warn("category refresh failed", slog.Any("error", err))
	}

	if err := h.catalogUC.LoadProducts(ctx); err != nil {
		h.logger.Warn("product refresh failed", slog.Any("error", err))
	}

	return response.Success(c, http.StatusOK, h.catalogView(), "Catalog refreshed")
}

// SelectCategory handles changing the category filter
func (h *CatalogHandler) SelectCategory(c echo.Context) error {
	var req SelectCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category selection")
	}

	if err := h.catalogUC.SelectCategory(c.Request().Context(), req.CategoryID); err != nil {
		h.logger.Warn("product fetch for selected category failed", slog.Any("error", err))
	}

	return response.Success(c, http.StatusOK, h.catalogView(), "Category selected")
}

// Search handles a search overlay lookup. Lookup failures are scoped into
// the overlay state rather than failing the request.
func (h *CatalogHandler) Search(c echo.Context) error {
	if err := h.searchUC.Search(c.Request().Context(), c.QueryParam("query")); err != nil {
		h.logger.Warn("product search failed", slog.Any("error", err))
	}

	return response.Success(c, http.StatusOK, h.catalogView(), "Search executed")
}

// ClearSearch handles deactivating the search overlay
func (h *CatalogHandler) ClearSearch(c echo.Context) error {
	h.searchUC.Clear()

	return response.Success(c, http.StatusOK, h.catalogView(), "Search cleared")
}
