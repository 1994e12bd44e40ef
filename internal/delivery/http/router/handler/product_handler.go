package handler

import (
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"storefront/config"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/gateway"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// errImageTooLarge marks an upload over the configured size limit.
var errImageTooLarge = errors.New("product image exceeds the size limit")

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	FormUC    usecase.ProductFormUsecase
	CatalogUC usecase.CatalogUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// ProductHandler exposes the manager's product form. Unlike the category
// form the draft travels as multipart form data so an image file can ride
// along with the fields.
type ProductHandler struct {
	formUC    usecase.ProductFormUsecase
	catalogUC usecase.CatalogUsecase
	cfg       *config.Config
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		formUC:    params.FormUC,
		catalogUC: params.CatalogUC,
		cfg:       params.Config,
		logger:    params.Logger,
	}
}

// productFormView is the JSON shape of the product form state. The image
// content itself is never echoed back; AttachedImage only reports the
// filename of a pending attachment.
type productFormView struct {
	Name             string      `json:"name"`
	Description      string      `json:"description"`
	Price            float64     `json:"price"`
	StockQuantity    int         `json:"stockQuantity"`
	CategoryID       int64       `json:"categoryId"`
	AttachedImage    string      `json:"attachedImage,omitempty"`
	ExistingImageURL string      `json:"existingImageUrl,omitempty"`
	EditingID        *int64      `json:"editingId,omitempty"`
	Submitting       bool        `json:"submitting"`
	Status           *statusView `json:"status,omitempty"`
}

func (h *ProductHandler) formView() productFormView {
	state := h.formUC.State()

	view := productFormView{
		Name:             state.Draft.Name,
		Description:      state.Draft.Description,
		Price:            state.Draft.Price,
		StockQuantity:    state.Draft.StockQuantity,
		CategoryID:       state.Draft.CategoryID,
		ExistingImageURL: state.ExistingImageURL,
		EditingID:        state.EditingID,
		Submitting:       state.Submitting,
		Status:           newStatusView(state.Status),
	}
	if state.Draft.Image != nil {
		view.AttachedImage = state.Draft.Image.Filename
	}
	if math.IsNaN(view.Price) {
		view.Price = 0
	}

	return view
}

// GetForm handles reading the form state, binding a pending edit intent
// first
func (h *ProductHandler) GetForm(c echo.Context) error {
	h.formUC.Bind()

	return response.Success(c, http.StatusOK, h.formView(), "Product form retrieved successfully")
}

// UpdateDraft handles replacing the draft with multipart form input. An
// unparsable price or quantity is carried into the draft as an invalid
// marker so submission reports the field-specific message instead of a
// transport error.
func (h *ProductHandler) UpdateDraft(c echo.Context) error {
	draft, err := h.parseDraft(c)
	switch {
	case errors.Is(err, errImageTooLarge):
		return response.BadRequest(c, "IMAGE_TOO_LARGE", "Product image exceeds the size limit")
	case err != nil:
		return response.BadRequest(c, "INVALID_IMAGE", "Product image could not be read")
	}

	h.formUC.UpdateDraft(draft)

	return response.Success(c, http.StatusOK, h.formView(), "Product draft updated")
}

// Submit handles persisting the draft, creating or updating depending on
// whether an edit target is bound
func (h *ProductHandler) Submit(c echo.Context) error {
	if err := h.formUC.Submit(c.Request().Context()); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.formView(), "Product saved successfully")
}

// Reset handles switching the form back to create mode with an empty draft
func (h *ProductHandler) Reset(c echo.Context) error {
	h.formUC.StartCreate()

	return response.Success(c, http.StatusOK, h.formView(), "Product form reset")
}

// Edit handles recording an edit intent for the given product
func (h *ProductHandler) Edit(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, ok := h.findProduct(id)
	if !ok {
		return h.handleAppError(c, domainerrors.ErrProductNotFound)
	}

	h.catalogUC.SetEditIntent(entity.EditIntent{
		Kind:    entity.KindProduct,
		Product: &product,
	})

	return response.Success(c, http.StatusOK, nil, "Product edit started")
}

// Delete handles the confirm-then-delete flow for a product
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	confirmed := c.QueryParam("confirm") == "true"
	if !h.catalogUC.RequestDelete(entity.KindProduct, id, func() bool { return confirmed }) {
		return response.Success(c, http.StatusOK, h.formView(), "Product delete cancelled")
	}

	if err := h.formUC.ProcessPendingDelete(c.Request().Context()); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.formView(), "Product deleted successfully")
}

func (h *ProductHandler) parseDraft(c echo.Context) (usecase.ProductDraftInput, error) {
	draft := usecase.ProductDraftInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
	}

	// NaN marks an unparsable price, mirroring what a browser number
	// input produces for garbage text.
	price, err := strconv.ParseFloat(strings.TrimSpace(c.FormValue("price")), 64)
	if err != nil {
		price = math.NaN()
	}
	draft.Price = price

	stock, err := strconv.Atoi(strings.TrimSpace(c.FormValue("stockQuantity")))
	if err != nil {
		stock = -1
	}
	draft.StockQuantity = stock

	if categoryID, err := strconv.ParseInt(strings.TrimSpace(c.FormValue("categoryId")), 10, 64); err == nil {
		draft.CategoryID = categoryID
	}

	file, err := c.FormFile("image")
	if err != nil {
		// Absent file means the draft keeps the stored image URL.
		return draft, nil
	}

	if limit := h.cfg.Backend.MaxImageSizeBytes; limit > 0 && file.Size > limit {
		return draft, errImageTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return draft, errors.Wrap(err, "open product image")
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return draft, errors.Wrap(err, "read product image")
	}

	draft.Image = &gateway.ImageAttachment{
		Filename: file.Filename,
		Content:  content,
	}

	return draft, nil
}

func (h *ProductHandler) findProduct(id int64) (entity.Product, bool) {
	for _, product := range h.catalogUC.Snapshot().Products {
		if product.ID == id {
			return product, true
		}
	}

	return entity.Product{}, false
}

func (h *ProductHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
