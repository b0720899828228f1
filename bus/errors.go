package bus

import "errors"

// Sentinel errors for the event bus.
var (
	// ErrEmptyName is returned when an event name is empty.
	ErrEmptyName = errors.New("event name is empty")

	// ErrNilListener is returned when a nil listener is subscribed.
	ErrNilListener = errors.New("listener cannot be nil")

	// ErrSubscriberClosed is returned when subscribing through a closed
	// Subscriber.
	ErrSubscriberClosed = errors.New("subscriber is closed")
)
