package store

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory project store with listener fan-out.
//
// MemoryStore owns an ordered sequence of records (insertion order equals
// creation order and is preserved in every snapshot) and a set of
// registered listeners. Records are append-only: the only permitted
// mutation after creation is a status transition via [MemoryStore.Move].
//
// All methods are safe for concurrent use. Mutations are atomic from the
// caller's perspective; listener notification happens synchronously on the
// mutating call, after the record lock has been released.
type MemoryStore struct {
	mu      sync.RWMutex
	records []Record

	subMu   sync.RWMutex
	subs    []subscriber
	nextSub uint64

	newID  func() string
	logger *slog.Logger
}

// subscriber pairs a listener with the handle ID used for cancellation.
type subscriber struct {
	id uint64
	fn Listener
}

// NewMemoryStore creates a new in-memory store.
//
// newID generates record identifiers; pass nil to use UUIDs. logger
// receives listener panic reports; pass nil to use [slog.Default].
// The store is immediately ready for use. No cleanup is required when done.
func NewMemoryStore(newID func() string, logger *slog.Logger) *MemoryStore {
	if newID == nil {
		newID = uuid.NewString
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &MemoryStore{
		newID:  newID,
		logger: logger,
	}
}

// Add creates a record with a fresh unique ID and status "active", appends
// it to the end of the sequence, and notifies all listeners.
//
// The store performs no validation; callers are responsible for validating
// fields before calling. Add always succeeds and returns a copy of the
// created record.
func (m *MemoryStore) Add(title, description string, people int) Record {
	m.mu.Lock()
	rec := Record{
		ID:          m.newID(),
		Title:       title,
		Description: description,
		People:      people,
		Status:      StatusActive,
		CreatedAt:   time.Now(),
	}
	m.records = append(m.records, rec)
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.notify(snapshot)
	return rec
}

// Move transitions the record with the given ID to the given status and
// notifies all listeners.
//
// If no record with that ID exists, or its status already equals the
// target, Move is a silent no-op: nothing changes and no notification is
// sent. This avoids redundant re-renders when no state actually changed.
// Returns true if a transition happened.
func (m *MemoryStore) Move(id, status string) bool {
	m.mu.Lock()
	var snapshot []Record
	moved := false
	for i := range m.records {
		if m.records[i].ID == id {
			if m.records[i].Status != status {
				m.records[i].Status = status
				snapshot = m.snapshotLocked()
				moved = true
			}
			break
		}
	}
	m.mu.Unlock()

	if moved {
		m.notify(snapshot)
	}
	return moved
}

// All returns a snapshot of the full record sequence in creation order.
//
// The returned slice is a copy; modifications do not affect the store.
func (m *MemoryStore) All() []Record {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked()
}

// Len returns the number of records currently in the store.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// Subscribe registers a listener to be invoked on every future mutation.
//
// The listener is NOT invoked with the current state at registration time;
// callers that need it should use [MemoryStore.All]. Listeners are invoked
// in registration order. A nil listener yields a valid no-op subscription.
//
// The returned [Subscription] cancels delivery when no longer needed.
func (m *MemoryStore) Subscribe(fn Listener) *Subscription {
	m.subMu.Lock()
	defer m.subMu.Unlock()

	m.nextSub++
	id := m.nextSub
	if fn != nil {
		m.subs = append(m.subs, subscriber{id: id, fn: fn})
	}
	return &Subscription{store: m, id: id}
}

// snapshotLocked copies the record sequence. Caller must hold mu.
func (m *MemoryStore) snapshotLocked() []Record {
	snapshot := make([]Record, len(m.records))
	copy(snapshot, m.records)
	return snapshot
}

// notify delivers the snapshot to all active listeners, synchronously and
// in registration order. Each listener receives its own copy, so mutating
// a received snapshot affects neither the store nor any other listener.
func (m *MemoryStore) notify(snapshot []Record) {
	m.subMu.RLock()
	subs := make([]subscriber, len(m.subs))
	copy(subs, m.subs)
	m.subMu.RUnlock()

	for _, sub := range subs {
		own := make([]Record, len(snapshot))
		copy(own, snapshot)
		m.invokeListenerSafe(sub.fn, own)
	}
}

// invokeListenerSafe calls a listener with panic recovery.
// Panics are logged but do not propagate; remaining listeners still run.
func (m *MemoryStore) invokeListenerSafe(fn Listener, snapshot []Record) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("store listener panicked", "panic", r)
		}
	}()
	fn(snapshot)
}

// unsubscribe removes the listener with the given handle ID, preserving
// the registration order of the remaining listeners. Unknown IDs are
// ignored, which makes cancellation idempotent.
func (m *MemoryStore) unsubscribe(id uint64) {
	m.subMu.Lock()
	defer m.subMu.Unlock()

	for i, sub := range m.subs {
		if sub.id == id {
			m.subs = append(m.subs[:i], m.subs[i+1:]...)
			return
		}
	}
}

// Subscription is a handle to a registered listener.
//
// Cancel stops delivery; it is safe to call multiple times and safe to
// call concurrently with notifications.
type Subscription struct {
	store *MemoryStore
	id    uint64
	once  sync.Once
}

// Cancel removes the subscription. After Cancel returns, the listener will
// not be invoked for subsequent mutations. Idempotent.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.store.unsubscribe(s.id)
	})
}
