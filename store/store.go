package store

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/wirebus/wirebus/dispatch"
	"github.com/wirebus/wirebus/subscription"
)

// stateKey is the single registry key under which state listeners live.
// The store's registry has one channel; keys exist so the registry type
// can be shared with the event bus.
const stateKey = "state"

// Listener receives the new snapshot after each committed update.
// It receives the full snapshot, not a diff.
type Listener func(snapshot Snapshot) error

// Store holds the shared state and notifies listeners on every update.
type Store struct {
	mu      sync.RWMutex
	current Snapshot

	subs    *subscription.Registry[Listener]
	invoker *dispatch.Invoker

	// Stats
	updates  atomic.Uint64
	notified atomic.Uint64
}

// Option configures a Store.
type Option func(*Store)

// WithInitialState sets the snapshot the store starts from.
func WithInitialState(values map[string]any) Option {
	return func(s *Store) {
		s.current = NewSnapshot(values)
	}
}

// WithPanicHandler sets a hook called when a listener panics.
// The panic is still isolated and reported in the Set result.
func WithPanicHandler(h dispatch.PanicHandler) Option {
	return func(s *Store) {
		s.invoker = dispatch.NewInvoker(dispatch.WithPanicHandler(h))
	}
}

// New creates a store with an empty initial snapshot.
func New(opts ...Option) *Store {
	s := &Store{
		subs:    subscription.NewRegistry[Listener](),
		invoker: dispatch.NewInvoker(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current snapshot. It never blocks on listener
// activity; delivery happens outside the state lock.
func (s *Store) State() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set merges partial into the current snapshot with a shallow key-wise
// overwrite, commits the result, and then notifies every currently
// subscribed listener in registration order with the new snapshot.
//
// The new snapshot is returned even when listeners fail; listener errors
// and panics are isolated per listener and aggregated into a
// *dispatch.DeliveryError. A nil partial fails with ErrNilPartial and
// leaves the state untouched.
func (s *Store) Set(partial map[string]any) (Snapshot, error) {
	if partial == nil {
		return s.State(), ErrNilPartial
	}

	s.mu.Lock()
	next := s.current.Merge(partial)
	s.current = next
	s.mu.Unlock()

	return next, s.notify(next)
}

// Replace swaps the entire snapshot for a copy of values and notifies
// listeners, like a Set that overwrites every key and removes the rest.
func (s *Store) Replace(values map[string]any) (Snapshot, error) {
	if values == nil {
		return s.State(), ErrNilValues
	}

	next := NewSnapshot(values)

	s.mu.Lock()
	s.current = next
	s.mu.Unlock()

	return next, s.notify(next)
}

// Subscribe registers a listener for state change notifications.
// Listeners are notified in registration order.
func (s *Store) Subscribe(fn Listener) (subscription.Handle, error) {
	if fn == nil {
		return "", subscription.ErrNilListener
	}
	return s.subs.Subscribe(stateKey, fn)
}

// Unsubscribe removes the registration identified by handle.
// It is idempotent. A notification pass already in progress still invokes
// the listener; passes that start after Unsubscribe returns do not.
func (s *Store) Unsubscribe(h subscription.Handle) {
	s.subs.Unsubscribe(h)
}

// Close removes every listener. The store and its snapshot remain
// usable; Close is a teardown convenience for the owning component.
func (s *Store) Close() {
	s.subs.ClearAll()
}

// Subscribers returns the current number of state listeners.
func (s *Store) Subscribers() int {
	return s.subs.CountKey(stateKey)
}

// Stats returns current store statistics.
func (s *Store) Stats() Stats {
	inv := s.invoker.Stats()
	return Stats{
		Updates:         s.updates.Load(),
		Notifications:   s.notified.Load(),
		ListenerErrors:  inv.Failed,
		ListenerPanics:  inv.Panicked,
		AvgListenerTime: inv.AvgDuration,
		Subscribers:     s.subs.CountKey(stateKey),
	}
}

// notify delivers next to every listener registered at the start of the
// pass. The snapshot has already been committed, so listeners that issue
// nested updates trigger passes that observe the newer state.
func (s *Store) notify(next Snapshot) error {
	s.updates.Add(1)

	entries := s.subs.Entries(stateKey)
	if len(entries) == 0 {
		return nil
	}

	var failures []dispatch.Failure
	for _, e := range entries {
		fn := e.Listener
		result := s.invoker.Invoke(func() error {
			return fn(next)
		})

		if result.Success {
			s.notified.Add(1)
		} else {
			failures = append(failures, dispatch.Failure{Handle: e.Handle, Err: result.Err})
		}
	}

	if len(failures) > 0 {
		return &dispatch.DeliveryError{Key: stateKey, Failures: failures}
	}
	return nil
}

// Stats contains store statistics.
type Stats struct {
	// Updates is the number of committed state updates.
	Updates uint64

	// Notifications is the number of successful listener notifications.
	Notifications uint64

	// ListenerErrors is the number of listeners that returned errors.
	ListenerErrors uint64

	// ListenerPanics is the number of listeners that panicked.
	ListenerPanics uint64

	// AvgListenerTime is the average listener execution time.
	AvgListenerTime time.Duration

	// Subscribers is the current number of state listeners.
	Subscribers int
}
