// Package subscription provides the ordered listener registry shared by the
// event bus and the state store.
//
// A Registry maps a string key to an ordered collection of listeners.
// Insertion order is delivery order, and that ordering is an explicit
// contract: callers that deliver to listeners iterate the slice returned by
// Entries, which is a point-in-time copy. Mutating the registry while a
// delivery pass is iterating its copy never affects that pass.
//
// Each registered listener is identified by an opaque Handle. Handles are
// unique for the lifetime of the registry and are never reused, even after
// the listener is removed.
package subscription
