package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SearchState describes the overlay's lifecycle. An empty query means
// inactive; an active query is loading, has results, has explicitly no
// results, or failed.
type SearchState string

const (
	SearchInactive  SearchState = "inactive"
	SearchLoading   SearchState = "loading"
	SearchReady     SearchState = "ready"
	SearchNoResults SearchState = "no_results"
	SearchFailed    SearchState = "failed"
)

// SearchSnapshot is a point-in-time read of the overlay.
type SearchSnapshot struct {
	State   SearchState
	Query   string
	Results []entity.Product
	Error   string
}

// SearchUsecase owns a query string and the result set that eclipses the
// canonical product list while active. Results are superseded wholesale on
// every query change; a response for a superseded query is discarded.
type SearchUsecase interface {
	// Search issues a lookup for the query. An empty or too-short query
	// deactivates the overlay without a lookup.
	Search(ctx context.Context, query string) error

	// Clear deactivates the overlay immediately. An in-flight lookup
	// cannot reactivate it afterwards.
	Clear()

	// Active reports whether the overlay currently eclipses the canonical
	// list.
	Active() bool

	// Snapshot returns a consistent read of the overlay.
	Snapshot() SearchSnapshot
}
