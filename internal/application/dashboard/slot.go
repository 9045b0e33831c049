package dashboard

import (
	"sync"
	"time"

	"github.com/sellerdash/client/internal/domain/seller"
)

// SlotState describes a resource slot's cache lifecycle.
type SlotState string

const (
	// SlotUnloaded means no fetch has ever succeeded or failed.
	SlotUnloaded SlotState = "unloaded"
	// SlotLoaded means the last fetch succeeded and the slot holds its payload.
	SlotLoaded SlotState = "loaded"
	// SlotStale means the last fetch failed; previously loaded data, if
	// any, is retained.
	SlotStale SlotState = "stale-on-error"
)

// SlotStatus is the consumer-visible freshness of one resource slot.
type SlotStatus struct {
	State SlotState
	// LoadedAt is the time of the last applied successful fetch; zero if
	// the slot never loaded.
	LoadedAt time.Time
	// LastError records the most recent failed refresh, nil after a
	// successful one.
	LastError *seller.FetchError
}

// slot is one cached resource. Every fetch draws an issue number before
// hitting the network; an outcome (success or failure) is applied only if
// no later-issued fetch already settled, so two in-flight refreshes of the
// same resource settle by issuance order rather than completion order.
type slot[T any] struct {
	mu       sync.Mutex
	state    SlotState
	data     T
	loadedAt time.Time
	lastErr  *seller.FetchError
	issued   uint64
	applied  uint64
}

func newSlot[T any]() *slot[T] {
	return &slot[T]{state: SlotUnloaded}
}

// begin reserves the next issue number for a fetch about to start.
func (s *slot[T]) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// resolve installs a successful payload. It reports false when a
// later-issued fetch already settled, in which case the payload is
// discarded wholesale.
func (s *slot[T]) resolve(seq uint64, data T, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.applied {
		return false
	}
	s.applied = seq
	s.data = data
	s.state = SlotLoaded
	s.loadedAt = now
	s.lastErr = nil
	return true
}

// fail records a failed refresh. Cached data is never touched; a failure
// issued before the currently settled outcome is ignored entirely. The
// failure advances the watermark, so a success from an earlier-issued
// fetch arriving later cannot overwrite the newer failure record.
func (s *slot[T]) fail(seq uint64, err error, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.applied {
		return
	}
	s.applied = seq
	s.state = SlotStale
	s.lastErr = &seller.FetchError{
		Kind:       seller.KindOf(err),
		Message:    err.Error(),
		OccurredAt: now,
	}
}

// get returns the cached value. Callers copy before exposing it.
func (s *slot[T]) get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

// status reports the slot's freshness.
func (s *slot[T]) status() SlotStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := SlotStatus{State: s.state, LoadedAt: s.loadedAt}
	if s.lastErr != nil {
		errCopy := *s.lastErr
		st.LastError = &errCopy
	}
	return st
}
