package subscription

import (
	"reflect"
	"sort"
	"sync"
)

// Entry pairs a registered listener with its handle.
type Entry[L any] struct {
	// Handle identifies the registration.
	Handle Handle

	// Listener is the registered listener value.
	Listener L
}

// Registry manages listeners organized by key.
// Listeners for a key are kept in registration order, and that order is
// the delivery order. It is thread-safe for concurrent access.
type Registry[L any] struct {
	mu    sync.RWMutex
	byKey map[string][]Entry[L]
	keyOf map[Handle]string
}

// NewRegistry creates an empty registry.
func NewRegistry[L any]() *Registry[L] {
	return &Registry[L]{
		byKey: make(map[string][]Entry[L]),
		keyOf: make(map[Handle]string),
	}
}

// Subscribe registers a listener under the given key, appending it to the
// end of the key's ordered collection. It returns a handle that is unique
// for the lifetime of the registry.
func (r *Registry[L]) Subscribe(key string, listener L) (Handle, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	if isNil(listener) {
		return "", ErrNilListener
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	h := NewHandle()
	r.byKey[key] = append(r.byKey[key], Entry[L]{Handle: h, Listener: listener})
	r.keyOf[h] = key

	return h, nil
}

// Unsubscribe removes the registration identified by handle.
// It is idempotent: removing an unknown or already-removed handle is a
// no-op. It reports whether a registration was removed.
//
// A delivery pass that captured its entries before this call still holds
// the removed listener; any pass that starts after this call returns will
// not see it.
func (r *Registry[L]) Unsubscribe(h Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	key, exists := r.keyOf[h]
	if !exists {
		return false
	}

	entries := r.byKey[key]
	for i, e := range entries {
		if e.Handle == h {
			r.byKey[key] = append(entries[:i], entries[i+1:]...)
			break
		}
	}

	// Clean up empty key entries
	if len(r.byKey[key]) == 0 {
		delete(r.byKey, key)
	}

	delete(r.keyOf, h)
	return true
}

// Entries returns the current registrations for a key in registration
// order. The result is a copy: a caller iterating it is unaffected by
// later registry mutations. This is the snapshot a delivery pass operates
// over.
func (r *Registry[L]) Entries(key string) []Entry[L] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.byKey[key]
	if len(entries) == 0 {
		return nil
	}

	result := make([]Entry[L], len(entries))
	copy(result, entries)
	return result
}

// Listeners returns the current listeners for a key in registration order.
func (r *Registry[L]) Listeners(key string) []L {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.byKey[key]
	if len(entries) == 0 {
		return nil
	}

	result := make([]L, len(entries))
	for i, e := range entries {
		result[i] = e.Listener
	}
	return result
}

// Has reports whether the handle identifies a live registration.
func (r *Registry[L]) Has(h Handle) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.keyOf[h]
	return exists
}

// Count returns the total number of registrations.
func (r *Registry[L]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.keyOf)
}

// CountKey returns the number of registrations for a key.
func (r *Registry[L]) CountKey(key string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byKey[key])
}

// Keys returns all keys with at least one registration, sorted.
func (r *Registry[L]) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.byKey) == 0 {
		return nil
	}

	keys := make([]string, 0, len(r.byKey))
	for k := range r.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clear removes all registrations for a key.
func (r *Registry[L]) Clear(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.byKey[key] {
		delete(r.keyOf, e.Handle)
	}
	delete(r.byKey, key)
}

// ClearAll removes every registration.
func (r *Registry[L]) ClearAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byKey = make(map[string][]Entry[L])
	r.keyOf = make(map[Handle]string)
}

// isNil reports whether a listener value is nil for kinds that can be.
// Function and interface listeners are the common cases.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Interface, reflect.Map, reflect.Chan, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}
