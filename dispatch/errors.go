package dispatch

import (
	"errors"
	"strconv"

	"github.com/wirebus/wirebus/subscription"
)

// ErrListenerPanic is returned when a listener panics during delivery.
var ErrListenerPanic = errors.New("listener panicked")

// PanicError wraps a recovered panic value as an error.
type PanicError struct {
	// Value is the value passed to panic().
	Value any

	// Stack is the stack trace at the time of the panic.
	Stack string
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return "listener panicked: " + formatPanicValue(e.Value)
}

// Is allows errors.Is to match PanicError with ErrListenerPanic.
func (e *PanicError) Is(target error) bool {
	return target == ErrListenerPanic
}

// Failure records one listener's failed delivery within a pass.
type Failure struct {
	// Handle identifies the registration whose listener failed.
	Handle subscription.Handle

	// Err is the error the listener returned, or a PanicError if it
	// panicked.
	Err error
}

// DeliveryError reports a partially failed delivery pass: some listeners
// failed while the rest were still invoked.
type DeliveryError struct {
	// Key is the event name or state key the pass delivered to.
	Key string

	// Failures lists the listeners that failed, in delivery order.
	Failures []Failure
}

// Error implements the error interface.
func (e *DeliveryError) Error() string {
	return "delivery to " + strconv.Itoa(len(e.Failures)) + " listener(s) failed for " + strconv.Quote(e.Key)
}

// Unwrap returns the underlying listener errors for errors.Is/errors.As.
func (e *DeliveryError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f.Err
	}
	return errs
}

// formatPanicValue renders a panic value for an error message.
func formatPanicValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case error:
		return val.Error()
	default:
		return "non-string panic value"
	}
}
