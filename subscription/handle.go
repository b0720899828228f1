package subscription

import "github.com/google/uuid"

// Handle is an opaque token identifying a single registration.
// It is used only to cancel that registration; callers should not
// interpret its contents.
type Handle string

// NewHandle generates a unique handle.
// Handles are never reused, even after the registration they identify
// has been removed.
func NewHandle() Handle {
	return Handle(uuid.NewString())
}
