package subscription

import "testing"

type recorder struct {
	calls []string
}

func listenerFor(r *recorder, tag string) func() {
	return func() {
		r.calls = append(r.calls, tag)
	}
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry[func()]()

	if r == nil {
		t.Fatal("expected non-nil registry")
	}
	if r.Count() != 0 {
		t.Errorf("expected count 0, got %d", r.Count())
	}
}

func TestRegistry_Subscribe(t *testing.T) {
	r := NewRegistry[func()]()

	h1, err := r.Subscribe("ready", func() {})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h2, err := r.Subscribe("closed", func() {})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if h1 == h2 {
		t.Error("expected distinct handles for distinct registrations")
	}
	if r.Count() != 2 {
		t.Errorf("expected count 2, got %d", r.Count())
	}
}

func TestRegistry_Subscribe_EmptyKey(t *testing.T) {
	r := NewRegistry[func()]()

	_, err := r.Subscribe("", func() {})
	if err != ErrEmptyKey {
		t.Errorf("expected ErrEmptyKey, got %v", err)
	}
	if r.Count() != 0 {
		t.Error("failed subscribe should not register anything")
	}
}

func TestRegistry_Subscribe_NilListener(t *testing.T) {
	r := NewRegistry[func()]()

	_, err := r.Subscribe("ready", nil)
	if err != ErrNilListener {
		t.Errorf("expected ErrNilListener, got %v", err)
	}
}

func TestRegistry_Listeners_RegistrationOrder(t *testing.T) {
	r := NewRegistry[func()]()
	rec := &recorder{}

	for _, tag := range []string{"a", "b", "c", "d"} {
		if _, err := r.Subscribe("ready", listenerFor(rec, tag)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	for _, fn := range r.Listeners("ready") {
		fn()
	}

	expected := []string{"a", "b", "c", "d"}
	if len(rec.calls) != len(expected) {
		t.Fatalf("expected %d calls, got %d", len(expected), len(rec.calls))
	}
	for i, tag := range expected {
		if rec.calls[i] != tag {
			t.Errorf("position %d: expected %s, got %s", i, tag, rec.calls[i])
		}
	}
}

func TestRegistry_Unsubscribe(t *testing.T) {
	r := NewRegistry[func()]()

	h, _ := r.Subscribe("ready", func() {})
	if _, err := r.Subscribe("ready", func() {}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !r.Unsubscribe(h) {
		t.Error("expected Unsubscribe to report removal for a live handle")
	}
	if r.Count() != 1 {
		t.Errorf("expected count 1 after removal, got %d", r.Count())
	}
	if r.Has(h) {
		t.Error("removed handle should not be live")
	}
}

func TestRegistry_Unsubscribe_Idempotent(t *testing.T) {
	r := NewRegistry[func()]()

	h, _ := r.Subscribe("ready", func() {})

	if !r.Unsubscribe(h) {
		t.Error("first Unsubscribe should report removal")
	}
	if r.Unsubscribe(h) {
		t.Error("second Unsubscribe should be a no-op")
	}
	if r.Unsubscribe(Handle("never-registered")) {
		t.Error("unknown handle should be a no-op")
	}
	if r.Count() != 0 {
		t.Errorf("expected count 0, got %d", r.Count())
	}
}

func TestRegistry_Unsubscribe_LastForKey(t *testing.T) {
	r := NewRegistry[func()]()

	h, _ := r.Subscribe("ready", func() {})
	r.Unsubscribe(h)

	for _, key := range r.Keys() {
		if key == "ready" {
			t.Error("expected key to be removed when last registration removed")
		}
	}
}

func TestRegistry_Entries_SnapshotIsolation(t *testing.T) {
	r := NewRegistry[func()]()

	h1, _ := r.Subscribe("ready", func() {})
	if _, err := r.Subscribe("ready", func() {}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := r.Entries("ready")
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	// Mutations after the snapshot do not affect it.
	r.Unsubscribe(h1)
	if _, err := r.Subscribe("ready", func() {}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 2 {
		t.Errorf("expected snapshot to remain at 2 entries, got %d", len(entries))
	}
	if entries[0].Handle != h1 {
		t.Error("expected snapshot to retain the removed registration")
	}
}

func TestRegistry_HandleNeverReused(t *testing.T) {
	r := NewRegistry[func()]()
	seen := make(map[Handle]bool)

	for i := 0; i < 100; i++ {
		h, err := r.Subscribe("ready", func() {})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[h] {
			t.Fatalf("handle %s was reused", h)
		}
		seen[h] = true
		r.Unsubscribe(h)
	}
}

func TestRegistry_Clear(t *testing.T) {
	r := NewRegistry[func()]()

	h1, _ := r.Subscribe("ready", func() {})
	if _, err := r.Subscribe("ready", func() {}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h3, _ := r.Subscribe("closed", func() {})

	r.Clear("ready")

	if r.CountKey("ready") != 0 {
		t.Errorf("expected 0 listeners for cleared key, got %d", r.CountKey("ready"))
	}
	if r.Has(h1) {
		t.Error("cleared handle should not be live")
	}
	if !r.Has(h3) {
		t.Error("other keys should be untouched by Clear")
	}
}

func TestRegistry_ClearAll(t *testing.T) {
	r := NewRegistry[func()]()

	if _, err := r.Subscribe("ready", func() {}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.Subscribe("closed", func() {}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r.ClearAll()

	if r.Count() != 0 {
		t.Errorf("expected count 0 after ClearAll, got %d", r.Count())
	}
	if r.Keys() != nil {
		t.Errorf("expected no keys after ClearAll, got %v", r.Keys())
	}
}

func TestRegistry_Keys_Sorted(t *testing.T) {
	r := NewRegistry[func()]()

	for _, key := range []string{"cart.updated", "app.ready", "user.login"} {
		if _, err := r.Subscribe(key, func() {}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	keys := r.Keys()
	expected := []string{"app.ready", "cart.updated", "user.login"}
	if len(keys) != len(expected) {
		t.Fatalf("expected %d keys, got %d", len(expected), len(keys))
	}
	for i, k := range expected {
		if keys[i] != k {
			t.Errorf("position %d: expected %s, got %s", i, k, keys[i])
		}
	}
}

func TestRegistry_InterfaceListener_NilCheck(t *testing.T) {
	type doer interface{ Do() }
	r := NewRegistry[doer]()

	var nilDoer doer
	if _, err := r.Subscribe("ready", nilDoer); err != ErrNilListener {
		t.Errorf("expected ErrNilListener for nil interface, got %v", err)
	}
}
