package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/gateway"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	FormUC    usecase.CategoryFormUsecase
	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CategoryHandler exposes the manager's category form: draft editing,
// create/update submission, and the edit and delete handoffs routed
// through the catalog orchestrator.
type CategoryHandler struct {
	formUC    usecase.CategoryFormUsecase
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{
		formUC:    params.FormUC,
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CategoryDraftRequest represents the request body for updating the
// category draft
type CategoryDraftRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// categoryFormView is the JSON shape of the category form state.
type categoryFormView struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	EditingID   *int64      `json:"editingId,omitempty"`
	Submitting  bool        `json:"submitting"`
	Status      *statusView `json:"status,omitempty"`
}

func (h *CategoryHandler) formView() categoryFormView {
	state := h.formUC.State()

	return categoryFormView{
		Name:        state.Draft.Name,
		Description: state.Draft.Description,
		EditingID:   state.EditingID,
		Submitting:  state.Submitting,
		Status:      newStatusView(state.Status),
	}
}

// GetForm handles reading the form state. A pending edit intent is bound
// into the draft first, so the manager page always renders the latest
// handoff.
func (h *CategoryHandler) GetForm(c echo.Context) error {
	h.formUC.Bind()

	return response.Success(c, http.StatusOK, h.formView(), "Category form retrieved successfully")
}

// UpdateDraft handles replacing the draft fields with the user's input
func (h *CategoryHandler) UpdateDraft(c echo.Context) error {
	var req CategoryDraftRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	h.formUC.UpdateDraft(gateway.CategoryDraft{
		Name:        req.Name,
		Description: req.Description,
	})

	return response.Success(c, http.StatusOK, h.formView(), "Category draft updated")
}

// Submit handles persisting the draft, creating or updating depending on
// whether an edit target is bound
func (h *CategoryHandler) Submit(c echo.Context) error {
	if err := h.formUC.Submit(c.Request().Context()); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.formView(), "Category saved successfully")
}

// Reset handles switching the form back to create mode with an empty draft
func (h *CategoryHandler) Reset(c echo.Context) error {
	h.formUC.StartCreate()

	return response.Success(c, http.StatusOK, h.formView(), "Category form reset")
}

// Edit handles recording an edit intent for the given category. The form
// binds it on its next read.
func (h *CategoryHandler) Edit(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid category ID")
	}

	category, ok := h.findCategory(id)
	if !ok {
		return h.handleAppError(c, domainerrors.ErrCategoryNotFound)
	}

	h.catalogUC.SetEditIntent(entity.EditIntent{
		Kind:     entity.KindCategory,
		Category: &category,
	})

	return response.Success(c, http.StatusOK, nil, "Category edit started")
}

// Delete handles the confirm-then-delete flow. The confirmation the
// browser collected travels as the confirm query parameter; a declined
// confirmation records nothing.
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid category ID")
	}

	confirmed := c.QueryParam("confirm") == "true"
	if !h.catalogUC.RequestDelete(entity.KindCategory, id, func() bool { return confirmed }) {
		return response.Success(c, http.StatusOK, h.formView(), "Category delete cancelled")
	}

	if err := h.formUC.ProcessPendingDelete(c.Request().Context()); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.formView(), "Category deleted successfully")
}

func (h *CategoryHandler) findCategory(id int64) (entity.Category, bool) {
	for _, category := range h.catalogUC.Snapshot().Categories {
		if category.ID == id {
			return category, true
		}
	}

	return entity.Category{}, false
}

func (h *CategoryHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
