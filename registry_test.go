package keytrap

import (
	"errors"
	"testing"
)

func TestRegistryDuplicate(t *testing.T) {
	reg := newRegistry()
	hotkey := Hotkey{KeyCode: KeyA, Modifiers: ModControl}

	var first, second int
	if err := reg.register(hotkey, func() { first++ }); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if err := reg.register(hotkey, func() { second++ }); !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}

	// The original callback must remain active.
	reg.dispatch(hotkey)
	if first != 1 || second != 0 {
		t.Errorf("expected original callback to fire, got first=%d second=%d", first, second)
	}
}

func TestRegistryUnregisterMissing(t *testing.T) {
	reg := newRegistry()
	hotkey := Hotkey{KeyCode: KeyB}

	if err := reg.unregister(hotkey); !errors.Is(err, ErrNotRegistered) {
		t.Fatalf("expected ErrNotRegistered, got %v", err)
	}

	// The failed unregister must leave the registry unchanged.
	if err := reg.register(hotkey, func() {}); err != nil {
		t.Errorf("register after failed unregister: %v", err)
	}
}

func TestRegistryUnregister(t *testing.T) {
	reg := newRegistry()
	hotkey := Hotkey{KeyCode: KeyC, Modifiers: ModAlt}

	fired := 0
	if err := reg.register(hotkey, func() { fired++ }); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := reg.unregister(hotkey); err != nil {
		t.Fatalf("unregister failed: %v", err)
	}

	reg.dispatch(hotkey)
	if fired != 0 {
		t.Errorf("expected no callback after unregister, fired %d times", fired)
	}
}

// TestRegistryDispatchUnmatched checks that combinations nobody registered
// are discarded silently.
func TestRegistryDispatchUnmatched(t *testing.T) {
	reg := newRegistry()
	reg.dispatch(Hotkey{KeyCode: KeyD}) // must not panic
}

// TestRegistryCallbackPanic checks that a panicking callback releases the
// lock and leaves the registry usable.
func TestRegistryCallbackPanic(t *testing.T) {
	reg := newRegistry()
	hotkey := Hotkey{KeyCode: KeyE}

	if err := reg.register(hotkey, func() { panic("misbehaving callback") }); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	reg.dispatch(hotkey) // must not propagate the panic

	if err := reg.unregister(hotkey); err != nil {
		t.Errorf("registry unusable after callback panic: %v", err)
	}
}
