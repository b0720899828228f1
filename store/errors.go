package store

import "errors"

// Sentinel errors for the state store.
var (
	// ErrNilPartial is returned when Set is called with a nil partial.
	ErrNilPartial = errors.New("partial state cannot be nil")

	// ErrNilValues is returned when Replace is called with a nil mapping.
	ErrNilValues = errors.New("replacement state cannot be nil")

	// ErrEmptyPath is returned when a path expression is empty.
	ErrEmptyPath = errors.New("state path is empty")
)
