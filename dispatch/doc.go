// Package dispatch provides synchronous listener invocation with panic
// recovery, and the delivery failure types shared by the event bus and
// the state store.
//
// An Invoker runs a single listener to completion in the caller's
// goroutine. A listener that returns an error or panics is isolated: the
// failure is captured in a Result and the caller decides how to aggregate
// it. A DeliveryError reports the per-listener failures of one delivery
// pass without interrupting delivery to the remaining listeners.
package dispatch
