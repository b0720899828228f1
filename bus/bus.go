package bus

import (
	"sync/atomic"

	"github.com/wirebus/wirebus/dispatch"
	"github.com/wirebus/wirebus/subscription"
)

// Listener handles one published event. The payload is whatever value the
// publisher passed; listeners type-assert as needed.
type Listener func(payload any) error

// boundListener couples a listener with its per-subscription config.
type boundListener struct {
	fn     Listener
	filter FilterFunc
	once   bool
}

// shouldDeliver reports whether the payload passes the listener's filter.
func (b *boundListener) shouldDeliver(payload any) bool {
	return b.filter == nil || b.filter(payload)
}

// Bus is a synchronous in-process event bus.
// It owns its own subscription registry, independent from any state
// store's registry.
type Bus struct {
	subs    *subscription.Registry[*boundListener]
	invoker *dispatch.Invoker

	// Stats
	published atomic.Uint64
	delivered atomic.Uint64
}

// Option configures a Bus.
type Option func(*Bus)

// WithPanicHandler sets a hook called when a listener panics.
// The panic is still isolated and reported in the Publish result.
func WithPanicHandler(h dispatch.PanicHandler) Option {
	return func(b *Bus) {
		b.invoker = dispatch.NewInvoker(dispatch.WithPanicHandler(h))
	}
}

// New creates a new event bus.
func New(opts ...Option) *Bus {
	b := &Bus{
		subs:    subscription.NewRegistry[*boundListener](),
		invoker: dispatch.NewInvoker(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers a listener for the given event name.
// Listeners are invoked in registration order.
func (b *Bus) Subscribe(name string, fn Listener, opts ...SubscribeOption) (subscription.Handle, error) {
	if name == "" {
		return "", ErrEmptyName
	}
	if fn == nil {
		return "", ErrNilListener
	}

	config := defaultSubscribeConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return b.subs.Subscribe(name, &boundListener{
		fn:     fn,
		filter: config.filter,
		once:   config.once,
	})
}

// Unsubscribe removes the registration identified by handle.
// It is idempotent: removing an unknown or already-removed handle is a
// no-op. A delivery pass already in progress still invokes the listener;
// passes that start after Unsubscribe returns do not.
func (b *Bus) Unsubscribe(h subscription.Handle) {
	b.subs.Unsubscribe(h)
}

// Publish synchronously delivers payload to every listener currently
// registered for name, in registration order. The pass operates over a
// snapshot of the listener order taken when Publish begins; listeners
// registered or removed during the pass do not affect it.
//
// A listener error or panic never prevents delivery to the remaining
// listeners. After all listeners have been attempted, Publish returns nil
// if every listener succeeded, or a *dispatch.DeliveryError listing the
// failed handles and their errors.
func (b *Bus) Publish(name string, payload any) error {
	if name == "" {
		return ErrEmptyName
	}

	entries := b.subs.Entries(name)
	if len(entries) == 0 {
		return nil // No subscribers
	}

	b.published.Add(1)

	var failures []dispatch.Failure
	for _, e := range entries {
		bl := e.Listener
		if !bl.shouldDeliver(payload) {
			continue
		}

		result := b.invoker.Invoke(func() error {
			return bl.fn(payload)
		})

		if result.Success {
			b.delivered.Add(1)
		} else {
			failures = append(failures, dispatch.Failure{Handle: e.Handle, Err: result.Err})
		}

		// One-time subscriptions are removed after their first
		// successful delivery.
		if bl.once && result.Success {
			b.subs.Unsubscribe(e.Handle)
		}
	}

	if len(failures) > 0 {
		return &dispatch.DeliveryError{Key: name, Failures: failures}
	}
	return nil
}

// Clear removes all listeners for an event name.
func (b *Bus) Clear(name string) {
	b.subs.Clear(name)
}

// Close removes every listener. The bus remains usable afterwards; Close
// is a teardown convenience for the owning component.
func (b *Bus) Close() {
	b.subs.ClearAll()
}

// Count returns the number of registered listeners across all names.
func (b *Bus) Count() int {
	return b.subs.Count()
}

// CountName returns the number of listeners registered for name.
func (b *Bus) CountName(name string) int {
	return b.subs.CountKey(name)
}

// Names returns all event names with at least one listener, sorted.
func (b *Bus) Names() []string {
	return b.subs.Keys()
}

// Stats returns current bus statistics.
func (b *Bus) Stats() Stats {
	inv := b.invoker.Stats()
	return Stats{
		EventsPublished:   b.published.Load(),
		EventsDelivered:   b.delivered.Load(),
		ListenerErrors:    inv.Failed,
		ListenerPanics:    inv.Panicked,
		AvgDeliveryTime:   inv.AvgDuration,
		ActiveSubscribers: b.subs.Count(),
	}
}

// On registers a type-safe listener for the given event name.
// Payloads that are not of type T are skipped silently, matching the
// behavior of a filter that rejects them.
func On[T any](b *Bus, name string, fn func(payload T) error, opts ...SubscribeOption) (subscription.Handle, error) {
	if fn == nil {
		return "", ErrNilListener
	}
	wrapped := func(payload any) error {
		if p, ok := payload.(T); ok {
			return fn(p)
		}
		if env, ok := payload.(Envelope); ok {
			if p, ok := env.Payload.(T); ok {
				return fn(p)
			}
		}
		// Type mismatch - skip silently
		return nil
	}
	return b.Subscribe(name, wrapped, opts...)
}
