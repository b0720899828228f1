package bus

// Publisher provides a simplified API for publishing events.
// It wraps a Bus and stamps published envelopes with a fixed source,
// identifying the module the events originate from.
type Publisher struct {
	bus    *Bus
	source string
}

// NewPublisher creates a new Publisher wrapping the given bus.
// The source parameter identifies where events originate (e.g., "cart",
// "checkout").
func NewPublisher(b *Bus, source string) *Publisher {
	return &Publisher{
		bus:    b,
		source: source,
	}
}

// Publish sends a raw payload to listeners of name.
func (p *Publisher) Publish(name string, payload any) error {
	return p.bus.Publish(name, payload)
}

// PublishEnvelope wraps payload in an envelope stamped with the
// publisher's source and sends it to listeners of name.
func (p *Publisher) PublishEnvelope(name string, payload any) error {
	return p.bus.Publish(name, NewEnvelope(name, payload, p.source))
}

// Source returns the publisher's source identifier.
func (p *Publisher) Source() string {
	return p.source
}

// Bus returns the underlying bus.
func (p *Publisher) Bus() *Bus {
	return p.bus
}
