package usecase

import (
	"context"

	"storefront/internal/domain/gateway"
)

// StatusMessage is the single short-lived feedback slot a form exposes.
// A new message replaces the prior one; it auto-clears after a fixed TTL
// or on the next user action, whichever comes first.
type StatusMessage struct {
	Text    string
	Success bool
}

// CategoryFormState is a point-in-time read of the category form.
type CategoryFormState struct {
	Draft      gateway.CategoryDraft
	EditingID  *int64
	Submitting bool
	Status     *StatusMessage
}

// CategoryFormUsecase owns one editable category draft: it binds pending
// edit intents, validates the draft, and executes create/update/delete
// against the gateway.
type CategoryFormUsecase interface {
	// StartCreate resets the form to create mode with an empty draft.
	StartCreate()

	// Bind consumes a pending category edit intent, if any, loading its
	// fields into the draft and switching the form to edit mode.
	Bind() bool

	// UpdateDraft replaces the draft fields with the user's input. The
	// prior status message is cleared, as on any user action.
	UpdateDraft(draft gateway.CategoryDraft)

	// Create validates the draft and persists it as a new category. On
	// failure the draft is preserved. A submission while one is in flight
	// is rejected.
	Create(ctx context.Context) error

	// Update validates the draft and replaces the bound target. Fails
	// with the missing-target error when no edit is bound.
	Update(ctx context.Context) error

	// Submit dispatches to Update when an edit is bound, Create otherwise.
	Submit(ctx context.Context) error

	// ProcessPendingDelete attempts the recorded delete intent and always
	// acknowledges it afterwards. An already-gone entity counts as
	// success. Deleting the currently edited entity resets the form to
	// create mode.
	ProcessPendingDelete(ctx context.Context) error

	// State returns a consistent read of the form.
	State() CategoryFormState
}

// ProductDraftInput carries the user's product form input; Image is only
// set when a new file was attached.
type ProductDraftInput struct {
	Name          string
	Description   string
	Price         float64
	StockQuantity int
	CategoryID    int64
	Image         *gateway.ImageAttachment
}

// ProductFormState is a point-in-time read of the product form.
type ProductFormState struct {
	Draft            ProductDraftInput
	ExistingImageURL string
	EditingID        *int64
	Submitting       bool
	Status           *StatusMessage
}

// ProductFormUsecase owns one editable product draft, with the image
// handling the category form does not have: create sends the image inline,
// update uploads a replacement first and otherwise retains the stored URL.
type ProductFormUsecase interface {
	StartCreate()
	Bind() bool
	UpdateDraft(draft ProductDraftInput)
	Create(ctx context.Context) error
	Update(ctx context.Context) error
	Submit(ctx context.Context) error
	ProcessPendingDelete(ctx context.Context) error
	State() ProductFormState
}
