package bus

import "time"

// SubscribeOption configures a single subscription.
type SubscribeOption func(*subscribeConfig)

// subscribeConfig contains per-subscription configuration.
type subscribeConfig struct {
	// filter is an optional predicate; events are only delivered when it
	// returns true.
	filter FilterFunc

	// once indicates the subscription auto-removes after the first
	// successful delivery.
	once bool
}

// defaultSubscribeConfig returns the default subscription configuration.
func defaultSubscribeConfig() subscribeConfig {
	return subscribeConfig{}
}

// WithFilter sets a filter predicate for the subscription.
func WithFilter(f FilterFunc) SubscribeOption {
	return func(c *subscribeConfig) {
		c.filter = f
	}
}

// WithOnce makes the subscription auto-remove after its first successful
// delivery.
func WithOnce() SubscribeOption {
	return func(c *subscribeConfig) {
		c.once = true
	}
}

// Stats contains event bus statistics.
type Stats struct {
	// EventsPublished is the number of Publish calls that had at least
	// one subscriber.
	EventsPublished uint64

	// EventsDelivered is the number of successful listener deliveries.
	EventsDelivered uint64

	// ListenerErrors is the number of listeners that returned errors.
	ListenerErrors uint64

	// ListenerPanics is the number of listeners that panicked.
	ListenerPanics uint64

	// AvgDeliveryTime is the average listener execution time.
	AvgDeliveryTime time.Duration

	// ActiveSubscribers is the current number of registrations.
	ActiveSubscribers int
}
