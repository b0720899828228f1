package subscription

import "errors"

// Sentinel errors for the subscription registry.
var (
	// ErrEmptyKey is returned when a subscription key is empty.
	ErrEmptyKey = errors.New("subscription key is empty")

	// ErrNilListener is returned when a nil listener is registered.
	ErrNilListener = errors.New("listener cannot be nil")
)
