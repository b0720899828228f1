// Package store provides a reactive shared-state container.
//
// The store holds an immutable Snapshot of key/value state. Every update
// merges a partial mapping into the current snapshot, producing a new
// snapshot value; snapshots already held by callers are never mutated.
// After the new snapshot is committed, every subscribed listener is
// notified synchronously, in registration order, with the new snapshot.
//
// The store owns its own subscription registry, independent from any
// event bus. State notifications and bus events are two orthogonal
// channels that a module may use together.
//
// # Re-entrancy
//
// A listener may call Set from within its own notification. The nested
// call commits its snapshot and runs its own full notification pass to
// completion before the outer pass resumes; nested passes always observe
// the latest committed snapshot because the commit happens before
// notification begins.
package store
