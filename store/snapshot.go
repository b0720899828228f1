package store

import (
	"reflect"
	"sort"
)

// Snapshot is an immutable point-in-time view of the shared state.
//
// A snapshot is never mutated after construction: Merge produces a new
// snapshot, and accessors that expose collections return copies. A
// snapshot obtained from an earlier notification remains valid and
// unchanged forever.
type Snapshot struct {
	values map[string]any
}

// NewSnapshot creates a snapshot holding a copy of values.
// A nil or empty map yields an empty snapshot.
func NewSnapshot(values map[string]any) Snapshot {
	if len(values) == 0 {
		return Snapshot{}
	}
	copied := make(map[string]any, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return Snapshot{values: copied}
}

// Get returns the value for key and whether it is present.
func (s Snapshot) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// GetOr returns the value for key, or fallback if the key is absent.
func (s Snapshot) GetOr(key string, fallback any) any {
	if v, ok := s.values[key]; ok {
		return v
	}
	return fallback
}

// Has reports whether key is present.
func (s Snapshot) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Len returns the number of keys.
func (s Snapshot) Len() int {
	return len(s.values)
}

// Keys returns all keys, sorted.
func (s Snapshot) Keys() []string {
	if len(s.values) == 0 {
		return nil
	}
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a copy of the snapshot's contents.
// Mutating the returned map does not affect the snapshot.
func (s Snapshot) Map() map[string]any {
	copied := make(map[string]any, len(s.values))
	for k, v := range s.values {
		copied[k] = v
	}
	return copied
}

// Merge returns a new snapshot produced by a shallow key-wise overwrite:
// keys present in partial replace the corresponding key, keys absent in
// partial are preserved. The receiver is unchanged.
func (s Snapshot) Merge(partial map[string]any) Snapshot {
	if len(partial) == 0 {
		return s
	}
	next := make(map[string]any, len(s.values)+len(partial))
	for k, v := range s.values {
		next[k] = v
	}
	for k, v := range partial {
		next[k] = v
	}
	return Snapshot{values: next}
}

// Equal reports whether two snapshots hold deeply equal contents.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s.values) != len(other.values) {
		return false
	}
	for k, v := range s.values {
		ov, ok := other.values[k]
		if !ok || !reflect.DeepEqual(v, ov) {
			return false
		}
	}
	return true
}
