package impl

import (
	"sync"
	"time"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

// statusSlot holds the single visible feedback message of a component. A
// new message replaces the prior one rather than queueing behind it, and
// every message auto-clears after the TTL unless a user action or a newer
// message cleared it first. The generation counter keeps an expired timer
// from wiping a message it did not set.
type statusSlot struct {
	mu      sync.Mutex
	ttl     time.Duration
	gen     uint64
	current *usecase.StatusMessage
}

func newStatusSlot(ttl time.Duration) *statusSlot {
	return &statusSlot{ttl: ttl}
}

// Set replaces the visible message and schedules its expiry.
func (s *statusSlot) Set(text string, success bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	gen := s.gen
	s.current = &usecase.StatusMessage{Text: text, Success: success}

	time.AfterFunc(s.ttl, func() {
		s.clearIfCurrent(gen)
	})
}

// Clear removes the visible message immediately.
func (s *statusSlot) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.current = nil
}

// Current returns a copy of the visible message, or nil.
func (s *statusSlot) Current() *usecase.StatusMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	message := *s.current

	return &message
}

func (s *statusSlot) clearIfCurrent(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen == gen {
		s.current = nil
	}
}

// userMessage extracts the user-facing message from an error, preferring
// the backend-sourced or domain message over the generic fallback.
func userMessage(err error, fallback string) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return fallback
}
