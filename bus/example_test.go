package bus_test

import (
	"errors"
	"fmt"

	"github.com/wirebus/wirebus/bus"
	"github.com/wirebus/wirebus/dispatch"
)

// Example_basicUsage demonstrates ordered synchronous delivery.
func Example_basicUsage() {
	b := bus.New()

	_, _ = b.Subscribe("ready", func(payload any) error {
		fmt.Println("X received", payload)
		return nil
	})
	_, _ = b.Subscribe("ready", func(payload any) error {
		fmt.Println("Y received", payload)
		return nil
	})

	if err := b.Publish("ready", 42); err != nil {
		fmt.Println("publish failed:", err)
	}

	// Output:
	// X received 42
	// Y received 42
}

// Example_partialFailure shows that one failing listener never prevents
// delivery to the others.
func Example_partialFailure() {
	b := bus.New()

	_, _ = b.Subscribe("order.placed", func(payload any) error {
		return errors.New("inventory check failed")
	})
	_, _ = b.Subscribe("order.placed", func(payload any) error {
		fmt.Println("receipt sent for", payload)
		return nil
	})

	err := b.Publish("order.placed", "order-7")

	var de *dispatch.DeliveryError
	if errors.As(err, &de) {
		fmt.Println("failed listeners:", len(de.Failures))
	}

	// Output:
	// receipt sent for order-7
	// failed listeners: 1
}

// Example_moduleTeardown shows a module using a Subscriber as its single
// teardown point.
func Example_moduleTeardown() {
	b := bus.New()
	sub := bus.NewSubscriber(b)

	_, _ = sub.Subscribe("cart.updated", func(any) error { return nil })
	_, _ = sub.Subscribe("user.login", func(any) error { return nil })
	fmt.Println("registrations:", b.Count())

	sub.Close()
	fmt.Println("registrations after close:", b.Count())

	// Output:
	// registrations: 2
	// registrations after close: 0
}
