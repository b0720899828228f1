package bus

import (
	"sync"

	"github.com/wirebus/wirebus/subscription"
)

// Subscriber provides a simplified API for subscribing to events.
// It tracks the subscriptions it creates and removes them all on Close,
// giving the owning module a single teardown point.
type Subscriber struct {
	bus     *Bus
	handles []subscription.Handle
	mu      sync.Mutex
	closed  bool
}

// NewSubscriber creates a new Subscriber wrapping the given bus.
func NewSubscriber(b *Bus) *Subscriber {
	return &Subscriber{
		bus:     b,
		handles: make([]subscription.Handle, 0),
	}
}

// Subscribe registers a listener for name and tracks it for cleanup.
func (s *Subscriber) Subscribe(name string, fn Listener, opts ...SubscribeOption) (subscription.Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return "", ErrSubscriberClosed
	}

	h, err := s.bus.Subscribe(name, fn, opts...)
	if err != nil {
		return "", err
	}

	s.handles = append(s.handles, h)
	return h, nil
}

// SubscribeOnce registers a listener that auto-removes after its first
// successful delivery.
func (s *Subscriber) SubscribeOnce(name string, fn Listener, opts ...SubscribeOption) (subscription.Handle, error) {
	opts = append(opts, WithOnce())
	return s.Subscribe(name, fn, opts...)
}

// Unsubscribe removes a specific tracked subscription.
func (s *Subscriber) Unsubscribe(h subscription.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, tracked := range s.handles {
		if tracked == h {
			s.handles = append(s.handles[:i], s.handles[i+1:]...)
			break
		}
	}

	s.bus.Unsubscribe(h)
}

// UnsubscribeAll removes all subscriptions managed by this subscriber.
func (s *Subscriber) UnsubscribeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, h := range s.handles {
		s.bus.Unsubscribe(h)
	}
	s.handles = s.handles[:0]
}

// Close removes all tracked subscriptions and prevents new ones.
// It is safe to call Close multiple times.
func (s *Subscriber) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	for _, h := range s.handles {
		s.bus.Unsubscribe(h)
	}
	s.handles = nil
}

// Count returns the number of tracked subscriptions.
func (s *Subscriber) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handles)
}

// IsClosed returns true if the subscriber has been closed.
func (s *Subscriber) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Bus returns the underlying bus.
func (s *Subscriber) Bus() *Bus {
	return s.bus
}
