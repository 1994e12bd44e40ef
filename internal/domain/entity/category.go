package entity

// Category represents a catalog category as persisted by the backend.
// The canonical list of categories is owned by the catalog store; a draft
// copy is owned by the category form while it is being created or edited.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
