package impl

import (
	"context"
	"math"
	"strings"
	"sync"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
	"storefront/internal/usecase"

	domainerrors "storefront/internal/domain/errors"
	stderrors "storefront/internal/errors"

	"github.com/go-playground/validator/v10"
)

type productForm struct {
	products gateway.ProductGateway
	catalog  usecase.CatalogUsecase
	validate *validator.Validate
	status   *statusSlot

	mu               sync.Mutex
	draft            usecase.ProductDraftInput
	existingImageURL string
	editingID        *int64
	submitting       bool
}

type productDraftRules struct {
	Name          string  `validate:"required"`
	Price         float64 `validate:"gt=0"`
	StockQuantity int     `validate:"gte=0"`
	CategoryID    int64   `validate:"gt=0"`
}

// NewProductForm creates the form service owning the product draft.
func NewProductForm(products gateway.ProductGateway, catalog usecase.CatalogUsecase, cfg *config.Config) usecase.ProductFormUsecase {
	return &productForm{
		products: products,
		catalog:  catalog,
		validate: validator.New(),
		status:   newStatusSlot(cfg.Catalog.StatusMessageTTL),
	}
}

// StartCreate resets the form to create mode with an empty draft.
func (f *productForm) StartCreate() {
	f.status.Clear()

	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = usecase.ProductDraftInput{}
	f.existingImageURL = ""
	f.editingID = nil
}

// Bind consumes a pending product edit intent, loading its fields into the
// draft. The stored image URL is retained separately so an update without
// a new attachment keeps it.
func (f *productForm) Bind() bool {
	intent, ok := f.catalog.ConsumeEditIntent(entity.KindProduct)
	if !ok || intent.Product == nil {
		return false
	}

	f.status.Clear()

	f.mu.Lock()
	defer f.mu.Unlock()
	product := intent.Product
	f.draft = usecase.ProductDraftInput{
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		StockQuantity: product.StockQuantity,
		CategoryID:    product.CategoryID,
	}
	f.existingImageURL = product.ImageURL
	id := product.ID
	f.editingID = &id

	return true
}

// UpdateDraft replaces the draft fields with the user's input.
func (f *productForm) UpdateDraft(draft usecase.ProductDraftInput) {
	f.status.Clear()

	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = draft
}

// Create validates the draft and persists it as a new product.
func (f *productForm) Create(ctx context.Context) error {
	return f.submit(ctx, false)
}

// Update validates the draft and replaces the bound target.
func (f *productForm) Update(ctx context.Context) error {
	return f.submit(ctx, true)
}

// Submit dispatches to Update when an edit is bound, Create otherwise.
func (f *productForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	editing := f.editingID != nil
	f.mu.Unlock()

	return f.submit(ctx, editing)
}

func (f *productForm) submit(ctx context.Context, update bool) error {
	f.status.Clear()

	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()

		return ErrSubmissionInFlight
	}

	draft := f.draft
	draft.Name = strings.TrimSpace(draft.Name)
	existingImageURL := f.existingImageURL
	editingID := copyIDPtr(f.editingID)

	if update && editingID == nil {
		f.mu.Unlock()
		f.status.Set(domainerrors.ErrMissingTarget.Message(), false)

		return domainerrors.ErrMissingTarget
	}

	f.submitting = true
	f.mu.Unlock()

	err := f.validateDraft(draft, update)
	if err == nil {
		if update {
			err = f.performUpdate(ctx, *editingID, draft, existingImageURL)
		} else {
			err = f.products.CreateProduct(ctx, gateway.ProductDraft{
				Name:          draft.Name,
				Description:   strings.TrimSpace(draft.Description),
				Price:         draft.Price,
				StockQuantity: draft.StockQuantity,
				CategoryID:    draft.CategoryID,
				Image:         draft.Image,
			})
		}
	}

	f.mu.Lock()
	f.submitting = false
	if err != nil {
		// The draft stays as entered so the user can correct and retry.
		f.mu.Unlock()
		f.status.Set(userMessage(err, "儲存失敗"), false)

		return err
	}

	f.draft = usecase.ProductDraftInput{}
	f.existingImageURL = ""
	f.editingID = nil
	f.mu.Unlock()

	if update {
		f.status.Set(statusUpdated, true)
	} else {
		f.status.Set(statusCreated, true)
	}
	f.catalog.OnMutated(ctx, entity.KindProduct)

	return nil
}

// performUpdate uploads a replacement image first when one is attached,
// substituting the returned URL; otherwise the previously stored URL is
// retained. Then the JSON update payload is sent.
func (f *productForm) performUpdate(ctx context.Context, id int64, draft usecase.ProductDraftInput, existingImageURL string) error {
	imageURL := existingImageURL
	if draft.Image != nil {
		uploaded, err := f.products.UploadImage(ctx, *draft.Image)
		if err != nil {
			return err
		}
		imageURL = uploaded
	}

	return f.products.UpdateProduct(ctx, id, gateway.ProductDraft{
		Name:          draft.Name,
		Description:   strings.TrimSpace(draft.Description),
		Price:         draft.Price,
		StockQuantity: draft.StockQuantity,
		CategoryID:    draft.CategoryID,
		ImageURL:      imageURL,
	})
}

// validateDraft runs the client-side checks; failures never reach the
// network. An image is mandatory on create only.
func (f *productForm) validateDraft(draft usecase.ProductDraftInput, update bool) error {
	if math.IsNaN(draft.Price) || math.IsInf(draft.Price, 0) {
		return domainerrors.NewValidationError("價格無效")
	}

	err := f.validate.Struct(productDraftRules{
		Name:          draft.Name,
		Price:         draft.Price,
		StockQuantity: draft.StockQuantity,
		CategoryID:    draft.CategoryID,
	})
	if err != nil {
		var fieldErrors validator.ValidationErrors
		if stderrors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			switch fieldErrors[0].StructField() {
			case "Name":
				return domainerrors.NewValidationError("商品名稱不得為空白")
			case "Price":
				return domainerrors.NewValidationError("價格必須為正數")
			case "StockQuantity":
				return domainerrors.NewValidationError("庫存數量必須為非負整數")
			case "CategoryID":
				return domainerrors.NewValidationError("請選擇商品分類")
			}
		}

		return domainerrors.ErrValidationFailed
	}

	if !update && draft.Image == nil {
		return domainerrors.NewValidationError("請附上商品圖片")
	}

	return nil
}

// ProcessPendingDelete attempts the recorded delete intent and
// acknowledges it after the attempt regardless of outcome.
func (f *productForm) ProcessPendingDelete(ctx context.Context) error {
	id, ok := f.catalog.PendingDelete(entity.KindProduct)
	if !ok {
		return nil
	}

	f.mu.Lock()
	if f.submitting {
		// No attempt was made; the intent stays pending for a retry.
		f.mu.Unlock()

		return ErrSubmissionInFlight
	}
	f.submitting = true
	f.mu.Unlock()

	defer f.catalog.AcknowledgeDelete(entity.KindProduct)

	err := f.products.DeleteProduct(ctx, id)

	f.mu.Lock()
	f.submitting = false
	if err != nil && !stderrors.Is(err, gateway.ErrNotFound) {
		f.mu.Unlock()
		f.status.Set(userMessage(err, "刪除失敗"), false)

		return err
	}

	if f.editingID != nil && *f.editingID == id {
		f.draft = usecase.ProductDraftInput{}
		f.existingImageURL = ""
		f.editingID = nil
	}
	f.mu.Unlock()

	f.status.Set(statusDeleted, true)
	f.catalog.OnMutated(ctx, entity.KindProduct)

	return nil
}

// State returns a consistent read of the form.
func (f *productForm) State() usecase.ProductFormState {
	f.mu.Lock()
	defer f.mu.Unlock()

	return usecase.ProductFormState{
		Draft:            f.draft,
		ExistingImageURL: f.existingImageURL,
		EditingID:        copyIDPtr(f.editingID),
		Submitting:       f.submitting,
		Status:           f.status.Current(),
	}
}
