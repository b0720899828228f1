// Package bus provides a synchronous in-process event bus.
//
// The bus is a coordination backbone for independently developed modules:
// publishers and subscribers communicate through named events without
// direct references to each other.
//
// # Delivery
//
// Publish invokes every listener currently registered for the event name,
// in registration order, in the caller's goroutine. The payload is passed
// to each listener unmodified. A listener that returns an error or panics
// never prevents delivery to the remaining listeners; Publish reports the
// aggregate outcome as a *dispatch.DeliveryError after all listeners have
// been attempted.
//
// # Re-entrancy
//
// Every Publish pass operates over a snapshot of the listener order taken
// when the pass begins. Listeners may publish, subscribe, or unsubscribe
// from within their own invocation; those calls affect only passes that
// start afterwards. A nested Publish runs its own full pass to completion
// before control returns to the enclosing pass.
//
// # Basic Usage
//
//	b := bus.New()
//
//	handle, err := b.Subscribe("order.placed", func(payload any) error {
//	    fmt.Println("order placed:", payload)
//	    return nil
//	})
//	if err != nil {
//	    return err
//	}
//	defer b.Unsubscribe(handle)
//
//	if err := b.Publish("order.placed", orderID); err != nil {
//	    var de *dispatch.DeliveryError
//	    if errors.As(err, &de) {
//	        // some listeners failed, the rest were still invoked
//	    }
//	}
//
// # Typed Listeners
//
// Use On for compile-time payload typing:
//
//	bus.On(b, "order.placed", func(id string) error {
//	    fmt.Println("order placed:", id)
//	    return nil
//	})
//
// Payloads that do not match the listener's type are skipped silently.
package bus
