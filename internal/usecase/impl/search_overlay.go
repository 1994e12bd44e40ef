package impl

import (
	"context"
	"strings"
	"sync"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
	"storefront/internal/usecase"
)

type searchOverlay struct {
	products  gateway.ProductGateway
	minLength int

	mu      sync.Mutex
	seq     uint64
	query   string
	state   usecase.SearchState
	results []entity.Product
	errMsg  string
}

// NewSearchOverlay creates the query-driven product lookup that eclipses
// the canonical product view while active.
func NewSearchOverlay(products gateway.ProductGateway, cfg *config.Config) usecase.SearchUsecase {
	minLength := 1
	if cfg.Catalog != nil && cfg.Catalog.SearchMinLength > 0 {
		minLength = cfg.Catalog.SearchMinLength
	}

	return &searchOverlay{
		products:  products,
		minLength: minLength,
		state:     usecase.SearchInactive,
	}
}

// Search issues a lookup for the query. Every call supersedes the previous
// one: a response that arrives for an older query is discarded at the point
// of application, so the displayed set always matches the latest query.
func (s *searchOverlay) Search(ctx context.Context, query string) error {
	trimmed := strings.TrimSpace(query)

	s.mu.Lock()
	s.seq++
	seq := s.seq

	if len([]rune(trimmed)) < s.minLength {
		s.deactivateLocked()
		s.mu.Unlock()

		return nil
	}

	s.query = trimmed
	s.state = usecase.SearchLoading
	s.errMsg = ""
	s.mu.Unlock()

	results, err := s.products.SearchProducts(ctx, trimmed)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		// A newer query or a clear superseded this lookup.
		return nil
	}

	if err != nil {
		s.state = usecase.SearchFailed
		s.results = nil
		s.errMsg = userMessage(err, "搜尋失敗")

		return err
	}

	s.results = results
	if len(results) == 0 {
		s.state = usecase.SearchNoResults
	} else {
		s.state = usecase.SearchReady
	}

	return nil
}

// Clear deactivates the overlay immediately. Bumping the sequence makes
// any in-flight lookup a stale one, so it cannot reactivate the overlay.
func (s *searchOverlay) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.deactivateLocked()
}

// Active reports whether the overlay eclipses the canonical list.
func (s *searchOverlay) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state != usecase.SearchInactive
}

// Snapshot returns a consistent read of the overlay.
func (s *searchOverlay) Snapshot() usecase.SearchSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]entity.Product, len(s.results))
	copy(results, s.results)

	return usecase.SearchSnapshot{
		State:   s.state,
		Query:   s.query,
		Results: results,
		Error:   s.errMsg,
	}
}

func (s *searchOverlay) deactivateLocked() {
	s.query = ""
	s.state = usecase.SearchInactive
	s.results = nil
	s.errMsg = ""
}
