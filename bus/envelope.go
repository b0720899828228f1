package bus

import (
	"time"

	"github.com/google/uuid"
)

// timeNow is a variable to allow testing with fixed timestamps.
var timeNow = time.Now

// Metadata contains standard information attached to an envelope.
type Metadata struct {
	// ID is a unique identifier for this event instance.
	ID string

	// Timestamp is when the envelope was created.
	Timestamp time.Time

	// Source identifies the module that published the event.
	Source string
}

// Envelope wraps a payload with event metadata.
// Publishing an envelope is optional; the bus treats it as any other
// payload and passes it to listeners unmodified.
type Envelope struct {
	// Name is the event name the envelope was published under.
	Name string

	// Payload is the caller-defined event data.
	Payload any

	// Metadata describes the event instance.
	Metadata Metadata
}

// NewEnvelope creates an envelope with generated metadata.
func NewEnvelope(name string, payload any, source string) Envelope {
	return Envelope{
		Name:    name,
		Payload: payload,
		Metadata: Metadata{
			ID:        uuid.NewString(),
			Timestamp: timeNow(),
			Source:    source,
		},
	}
}
