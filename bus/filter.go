package bus

// Common filter predicates for event subscription.

// FilterFunc is a predicate for filtering events.
// Return true to allow the event, false to filter it out.
type FilterFunc func(payload any) bool

// FilterPayload creates a filter based on a typed payload predicate.
// Payloads of other types are rejected.
func FilterPayload[T any](predicate func(payload T) bool) FilterFunc {
	return func(payload any) bool {
		if p, ok := payload.(T); ok {
			return predicate(p)
		}
		if env, ok := payload.(Envelope); ok {
			if p, ok := env.Payload.(T); ok {
				return predicate(p)
			}
		}
		return false
	}
}

// FilterSource creates a filter that only allows envelopes from the
// specified source. Payloads that are not envelopes are rejected.
func FilterSource(source string) FilterFunc {
	return func(payload any) bool {
		if env, ok := payload.(Envelope); ok {
			return env.Metadata.Source == source
		}
		return false
	}
}

// FilterAnd combines multiple filters with AND logic.
// All filters must pass for the event to be delivered.
func FilterAnd(filters ...FilterFunc) FilterFunc {
	return func(payload any) bool {
		for _, f := range filters {
			if !f(payload) {
				return false
			}
		}
		return true
	}
}

// FilterOr combines multiple filters with OR logic.
// At least one filter must pass for the event to be delivered.
func FilterOr(filters ...FilterFunc) FilterFunc {
	return func(payload any) bool {
		for _, f := range filters {
			if f(payload) {
				return true
			}
		}
		return false
	}
}

// FilterNot negates a filter.
func FilterNot(filter FilterFunc) FilterFunc {
	return func(payload any) bool {
		return !filter(payload)
	}
}

// FilterAll allows all events (no filtering).
func FilterAll() FilterFunc {
	return func(payload any) bool {
		return true
	}
}

// FilterNone blocks all events.
func FilterNone() FilterFunc {
	return func(payload any) bool {
		return false
	}
}
