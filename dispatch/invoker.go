package dispatch

import (
	"runtime/debug"
	"sync/atomic"
	"time"
)

// PanicHandler is called when a listener panics.
// Hosts typically bridge this to their logger.
type PanicHandler func(panicValue any, stack []byte)

// Result describes one listener invocation.
type Result struct {
	// Success is true if the listener completed without error or panic.
	Success bool

	// Err is the error returned by the listener, or a PanicError if the
	// listener panicked.
	Err error

	// Panicked is true if the listener panicked.
	Panicked bool

	// Duration is how long the listener ran.
	Duration time.Duration
}

// Invoker executes listeners synchronously in the caller's goroutine.
// It provides panic recovery and per-invocation timing.
type Invoker struct {
	panicHandler PanicHandler

	// Stats
	invoked     atomic.Uint64
	succeeded   atomic.Uint64
	failed      atomic.Uint64
	panicked    atomic.Uint64
	totalTimeNs atomic.Int64
}

// InvokerOption configures an Invoker.
type InvokerOption func(*Invoker)

// WithPanicHandler sets the panic handler for the invoker.
func WithPanicHandler(h PanicHandler) InvokerOption {
	return func(i *Invoker) {
		if h != nil {
			i.panicHandler = h
		}
	}
}

// NewInvoker creates a new invoker.
func NewInvoker(opts ...InvokerOption) *Invoker {
	i := &Invoker{}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Invoke runs fn to completion and reports the outcome.
// A panic inside fn is recovered, reported to the panic handler if one is
// set, and surfaced as a PanicError in the result.
func (i *Invoker) Invoke(fn func() error) Result {
	i.invoked.Add(1)

	result := i.run(fn)
	i.totalTimeNs.Add(result.Duration.Nanoseconds())

	switch {
	case result.Panicked:
		i.panicked.Add(1)
	case result.Err != nil:
		i.failed.Add(1)
	default:
		i.succeeded.Add(1)
	}

	return result
}

// run executes fn with panic recovery and timing.
func (i *Invoker) run(fn func() error) (result Result) {
	start := time.Now()

	defer func() {
		result.Duration = time.Since(start)
		if r := recover(); r != nil {
			stack := debug.Stack()
			result.Success = false
			result.Panicked = true
			result.Err = &PanicError{Value: r, Stack: string(stack)}
			if i.panicHandler != nil {
				i.panicHandler(r, stack)
			}
		}
	}()

	err := fn()
	result.Success = err == nil
	result.Err = err
	return result
}

// Stats returns invocation statistics.
// Values are read without a mutex and may be slightly inconsistent if
// stats are being updated concurrently.
func (i *Invoker) Stats() InvokerStats {
	invoked := i.invoked.Load()
	totalNs := i.totalTimeNs.Load()

	var avgNs int64
	if invoked > 0 {
		avgNs = totalNs / int64(invoked)
	}

	return InvokerStats{
		Invoked:       invoked,
		Succeeded:     i.succeeded.Load(),
		Failed:        i.failed.Load(),
		Panicked:      i.panicked.Load(),
		TotalDuration: time.Duration(totalNs),
		AvgDuration:   time.Duration(avgNs),
	}
}

// ResetStats resets all statistics to zero.
func (i *Invoker) ResetStats() {
	i.invoked.Store(0)
	i.succeeded.Store(0)
	i.failed.Store(0)
	i.panicked.Store(0)
	i.totalTimeNs.Store(0)
}

// InvokerStats contains statistics for an invoker.
type InvokerStats struct {
	// Invoked is the total number of listener invocations.
	Invoked uint64

	// Succeeded is the number of listeners that completed cleanly.
	Succeeded uint64

	// Failed is the number of listeners that returned errors.
	Failed uint64

	// Panicked is the number of listeners that panicked.
	Panicked uint64

	// TotalDuration is the cumulative time spent in listeners.
	TotalDuration time.Duration

	// AvgDuration is the average listener execution time.
	AvgDuration time.Duration
}
