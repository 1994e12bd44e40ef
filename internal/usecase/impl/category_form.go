package impl

import (
	"context"
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

// ErrSubmissionInFlight is returned when a submission is attempted while
// another mutation from the same form is still pending.
var ErrSubmissionInFlight = stderrors.New("a submission is already in flight")

// Status messages shared by both forms.
const (
	statusCreated = "建立成功"
	statusUpdated = "更新成功"
	statusDeleted = "刪除成功"
)

type categoryForm struct {
	categories gateway.CategoryGateway
	catalog    usecase.CatalogUsecase
	validate   *validator.Validate
	status     *statusSlot

	mu         sync.Mutex
	draft      gateway.CategoryDraft
	editingID  *int64
	submitting bool
}

type categoryDraftRules struct {
	Name string `validate:"required"`
}

// NewCategoryForm creates the form service owning the category draft.
func NewCategoryForm(categories gateway.CategoryGateway, catalog usecase.CatalogUsecase, cfg *config.Config) usecase.CategoryFormUsecase {
	return &categoryForm{
		categories: categories,
		catalog:    catalog,
		validate:   validator.New(),
		status:     newStatusSlot(cfg.Catalog.StatusMessageTTL),
	}
}

// StartCreate resets the form to create mode with an empty draft.
func (f *categoryForm) StartCreate() {
	f.status.Clear()

	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = gateway.CategoryDraft{}
	f.editingID = nil
}

// Bind consumes a pending category edit intent, loading its fields into
// the draft and switching the form to edit mode.
func (f *categoryForm) Bind() bool {
	intent, ok := f.catalog.ConsumeEditIntent(entity.KindCategory)
	if !ok || intent.Category == nil {
		return false
	}

	f.status.Clear()

	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = gateway.CategoryDraft{
		Name:        intent.Category.Name,
		Description: intent.Category.Description,
	}
	id := intent.Category.ID
	f.editingID = &id

	return true
}

// UpdateDraft replaces the draft fields with the user's input.
func (f *categoryForm) UpdateDraft(draft gateway.CategoryDraft) {
	f.status.Clear()

	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = draft
}

// Create validates the draft and persists it as a new category.
func (f *categoryForm) Create(ctx context.Context) error {
	return f.submit(ctx, false)
}

// Update validates the draft and replaces the bound target.
func (f *categoryForm) Update(ctx context.Context) error {
	return f.submit(ctx, true)
}

// Submit dispatches to Update when an edit is bound, Create otherwise.
func (f *categoryForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	editing := f.editingID != nil
	f.mu.Unlock()

	return f.submit(ctx, editing)
}

func (f *categoryForm) submit(ctx context.Context, update bool) error {
	f.status.Clear()

	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()

		return ErrSubmissionInFlight
	}

	draft := f.draft
	draft.Name = strings.TrimSpace(draft.Name)
	editingID := copyIDPtr(f.editingID)

	if update && editingID == nil {
		f.mu.Unlock()
		f.status.Set(domainerrors.ErrMissingTarget.Message(), false)

		return domainerrors.ErrMissingTarget
	}

	f.submitting = true
	f.mu.Unlock()

	err := f.validateDraft(draft)
	if err == nil {
		if update {
			err = f.categories.UpdateCategory(ctx, *editingID, draft)
		} else {
			err = f.categories.CreateCategory(ctx, draft)
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

	f.draft = gateway.CategoryDraft{}
	f.editingID = nil
	f.mu.Unlock()

	if update {
		f.status.Set(statusUpdated, true)
	} else {
		f.status.Set(statusCreated, true)
	}
	f.catalog.OnMutated(ctx, entity.KindCategory)

	return nil
}

// validateDraft runs the client-side checks; failures never reach the
// network.
func (f *categoryForm) validateDraft(draft gateway.CategoryDraft) error {
	if err := f.validate.Struct(categoryDraftRules{Name: draft.Name}); err != nil {
		return domainerrors.NewValidationError("分類名稱不得為空白")
	}

	return nil
}

// ProcessPendingDelete attempts the recorded delete intent and
// acknowledges it after the attempt regardless of outcome. An entity that
// is already gone counts as success for the purpose of clearing UI state.
func (f *categoryForm) ProcessPendingDelete(ctx context.Context) error {
	id, ok := f.catalog.PendingDelete(entity.KindCategory)
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

	defer f.catalog.AcknowledgeDelete(entity.KindCategory)

	err := f.categories.DeleteCategory(ctx, id)

	f.mu.Lock()
	f.submitting = false
	if err != nil && !stderrors.Is(err, gateway.ErrNotFound) {
		f.mu.Unlock()
		f.status.Set(userMessage(err, "刪除失敗"), false)

		return err
	}

	if f.editingID != nil && *f.editingID == id {
		// The entity under edit was removed; the form must not keep
		// referencing it.
		f.draft = gateway.CategoryDraft{}
		f.editingID = nil
	}
	f.mu.Unlock()

	f.status.Set(statusDeleted, true)
	f.catalog.OnMutated(ctx, entity.KindCategory)

	return nil
}

// State returns a consistent read of the form.
func (f *categoryForm) State() usecase.CategoryFormState {
	f.mu.Lock()
	defer f.mu.Unlock()

	return usecase.CategoryFormState{
		Draft:      f.draft,
		EditingID:  copyIDPtr(f.editingID),
		Submitting: f.submitting,
		Status:     f.status.Current(),
	}
}
