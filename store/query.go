package store

import (
	"encoding/json"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Deep access to snapshot values by dotted path, for state whose values
// are nested maps or slices. Values round-trip through JSON encoding, so
// numbers come back as float64 and values must be JSON-encodable.

// JSON returns the snapshot's contents as a JSON object.
func (s Snapshot) JSON() ([]byte, error) {
	if s.values == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.values)
}

// Path evaluates a gjson path expression against the snapshot, e.g.
// "cart.items.0.sku". The zero Result is returned for missing paths;
// check Result.Exists.
func (s Snapshot) Path(path string) (gjson.Result, error) {
	if path == "" {
		return gjson.Result{}, ErrEmptyPath
	}
	raw, err := s.JSON()
	if err != nil {
		return gjson.Result{}, err
	}
	return gjson.GetBytes(raw, path), nil
}

// SetPath sets a nested value by dotted path, creating intermediate
// objects as needed, then commits the result and notifies listeners like
// Replace. Top-level updates should prefer Set, which does not round-trip
// values through JSON.
func (s *Store) SetPath(path string, value any) (Snapshot, error) {
	if path == "" {
		return s.State(), ErrEmptyPath
	}

	raw, err := s.State().JSON()
	if err != nil {
		return s.State(), err
	}

	updated, err := sjson.SetBytes(raw, path, value)
	if err != nil {
		return s.State(), err
	}

	var values map[string]any
	if err := json.Unmarshal(updated, &values); err != nil {
		return s.State(), err
	}

	return s.Replace(values)
}

// DeletePath removes a nested value by dotted path, then commits the
// result and notifies listeners. Deleting a missing path is a no-op that
// still notifies.
func (s *Store) DeletePath(path string) (Snapshot, error) {
	if path == "" {
		return s.State(), ErrEmptyPath
	}

	raw, err := s.State().JSON()
	if err != nil {
		return s.State(), err
	}

	updated, err := sjson.DeleteBytes(raw, path)
	if err != nil {
		return s.State(), err
	}

	var values map[string]any
	if err := json.Unmarshal(updated, &values); err != nil {
		return s.State(), err
	}

	return s.Replace(values)
}
