package keytrap

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

// Scan codes used throughout the tests (PS/2 set 1).
const (
	scControlLeft = 0x001D
	scShiftLeft   = 0x002A
	scKeyA        = 0x001E
	scNumpad8     = 0x0048
)

type fakeMsg struct {
	ev       rawKeyEvent
	shutdown bool
	err      error
}

// fakeProvider drives the engine state machine without any OS hook. Like
// the real provider, it invokes the key handler from inside pump, on the
// engine goroutine.
type fakeProvider struct {
	installErr error
	consume    bool
	translated map[uint32]uint32
	resolved   map[uint32]string

	handle      func(rawKeyEvent)
	msgs        chan fakeMsg
	installed   chan struct{}
	uninstalled chan struct{}
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		msgs:        make(chan fakeMsg, 64),
		installed:   make(chan struct{}),
		uninstalled: make(chan struct{}),
	}
}

func (p *fakeProvider) install(handle func(rawKeyEvent)) error {
	if p.installErr != nil {
		return p.installErr
	}
	p.handle = handle
	close(p.installed)
	return nil
}

func (p *fakeProvider) uninstall() {
	close(p.uninstalled)
}

func (p *fakeProvider) pump() (pumpResult, error) {
	m := <-p.msgs
	if m.err != nil {
		return pumpContinue, m.err
	}
	if m.shutdown {
		return pumpShutdown, nil
	}
	p.handle(m.ev)
	return pumpContinue, nil
}

func (p *fakeProvider) postShutdown() {
	p.msgs <- fakeMsg{shutdown: true}
}

func (p *fakeProvider) translateVirtualKey(virtualKey uint32) uint32 {
	return p.translated[virtualKey]
}

func (p *fakeProvider) resolveText(scanCode uint32) (string, bool) {
	text, ok := p.resolved[scanCode]
	return text, ok
}

func (p *fakeProvider) canConsume() bool {
	return p.consume
}

func (p *fakeProvider) press(scanCode uint32, extended bool) {
	p.msgs <- fakeMsg{ev: rawKeyEvent{scanCode: scanCode, extended: extended, down: true}}
}

func (p *fakeProvider) release(scanCode uint32, extended bool) {
	p.msgs <- fakeMsg{ev: rawKeyEvent{scanCode: scanCode, extended: extended}}
}

func waitClosed(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func waitFired(t *testing.T, fired <-chan string, want string) {
	t.Helper()
	select {
	case got := <-fired:
		if got != want {
			t.Fatalf("expected %q to fire, got %q", want, got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %q to fire", want)
	}
}

func TestNewMustConsumeRejected(t *testing.T) {
	provider := newFakeProvider()

	if _, err := newHook(provider, MustConsume); !errors.Is(err, ErrUnmatchedPreference) {
		t.Fatalf("expected ErrUnmatchedPreference, got %v", err)
	}

	// The preference is checked before any thread is spawned.
	select {
	case <-provider.installed:
		t.Error("expected no install attempt after a rejected preference")
	default:
	}
}

func TestNewInstallFailure(t *testing.T) {
	provider := newFakeProvider()
	provider.installErr = fmt.Errorf("%w: simulated", ErrHookInstall)

	if _, err := newHook(provider, NoConsume); !errors.Is(err, ErrHookInstall) {
		t.Fatalf("expected ErrHookInstall, got %v", err)
	}
}

// TestHotkeyScenario walks the full register/press/repeat/release sequence:
// Ctrl then A fires Ctrl+KeyA exactly once, auto-repeat of A fires nothing,
// and A alone afterwards fires the plain KeyA binding instead.
func TestHotkeyScenario(t *testing.T) {
	provider := newFakeProvider()
	hook, err := newHook(provider, NoConsume)
	if err != nil {
		t.Fatalf("newHook failed: %v", err)
	}
	defer hook.Close()

	fired := make(chan string, 16)
	ctrlA := Hotkey{KeyCode: KeyA, Modifiers: ModControl}
	plainA := Hotkey{KeyCode: KeyA}
	if err := hook.Register(ctrlA, func() { fired <- ctrlA.String() }); err != nil {
		t.Fatalf("register %v failed: %v", ctrlA, err)
	}
	if err := hook.Register(plainA, func() { fired <- plainA.String() }); err != nil {
		t.Fatalf("register %v failed: %v", plainA, err)
	}

	provider.press(scControlLeft, false) // dispatches ControlLeft, unmatched
	provider.press(scKeyA, false)
	waitFired(t, fired, "Ctrl+KeyA")

	// OS auto-repeat redelivers key-down while A is held; only the first
	// up→down transition may dispatch.
	provider.press(scKeyA, false)
	provider.press(scKeyA, false)

	provider.release(scKeyA, false)
	provider.release(scControlLeft, false)

	// A alone is a different combination now that Ctrl is up.
	provider.press(scKeyA, false)
	waitFired(t, fired, "KeyA")

	select {
	case extra := <-fired:
		t.Fatalf("unexpected extra dispatch %q", extra)
	default:
	}
}

// TestModifierOwnPressExcluded checks that pressing a modifier key itself
// dispatches with the bit not yet set, and that releasing one modifier while
// holding another keeps the remaining bits.
func TestModifierOwnPressExcluded(t *testing.T) {
	events := make(chan Hotkey, 16)
	state := &engineState{provider: newFakeProvider(), events: events}

	state.handleKey(rawKeyEvent{scanCode: scControlLeft, down: true})
	state.handleKey(rawKeyEvent{scanCode: scShiftLeft, down: true})
	state.handleKey(rawKeyEvent{scanCode: scControlLeft}) // ctrl up
	state.handleKey(rawKeyEvent{scanCode: scKeyA, down: true})

	want := []Hotkey{
		{KeyCode: ControlLeft},
		{KeyCode: ShiftLeft, Modifiers: ModControl},
		{KeyCode: KeyA, Modifiers: ModShift},
	}
	for i, wantEvent := range want {
		got := <-events
		if got != wantEvent {
			t.Errorf("event %d: expected %v, got %v", i, wantEvent, got)
		}
	}
}

// TestVirtualKeyFallback checks that events with scan code zero are
// translated from the virtual key code before the table lookup.
func TestVirtualKeyFallback(t *testing.T) {
	provider := newFakeProvider()
	provider.translated = map[uint32]uint32{0x41: scKeyA} // VK_A

	events := make(chan Hotkey, 1)
	state := &engineState{provider: provider, events: events}

	state.handleKey(rawKeyEvent{virtualKey: 0x41, down: true})

	got := <-events
	if got.KeyCode != KeyA {
		t.Errorf("expected KeyA from virtual-key fallback, got %v", got.KeyCode)
	}
}

// TestExtendedFold checks that the extended flag separates navigation keys
// from their numpad twins.
func TestExtendedFold(t *testing.T) {
	events := make(chan Hotkey, 2)
	state := &engineState{provider: newFakeProvider(), events: events}

	state.handleKey(rawKeyEvent{scanCode: scNumpad8, down: true})
	state.handleKey(rawKeyEvent{scanCode: scNumpad8, extended: true, down: true})

	if got := <-events; got.KeyCode != Numpad8 {
		t.Errorf("expected Numpad8, got %v", got.KeyCode)
	}
	if got := <-events; got.KeyCode != ArrowUp {
		t.Errorf("expected ArrowUp, got %v", got.KeyCode)
	}
}

// TestUnrecognizedScanCodeIgnored checks that gaps in the table produce no
// logical event at all.
func TestUnrecognizedScanCodeIgnored(t *testing.T) {
	events := make(chan Hotkey, 1)
	state := &engineState{provider: newFakeProvider(), events: events}

	state.handleKey(rawKeyEvent{scanCode: 0x0055, down: true})
	state.handleKey(rawKeyEvent{scanCode: scKeyA, down: true})

	if got := <-events; got.KeyCode != KeyA {
		t.Errorf("expected only KeyA, got %v", got.KeyCode)
	}
}

func TestRegisterErrorsViaHook(t *testing.T) {
	provider := newFakeProvider()
	hook, err := newHook(provider, NoConsume)
	if err != nil {
		t.Fatalf("newHook failed: %v", err)
	}
	defer hook.Close()

	hotkey := Hotkey{KeyCode: F7, Modifiers: ModControl | ModShift}
	if err := hook.Register(hotkey, func() {}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := hook.Register(hotkey, func() {}); !errors.Is(err, ErrAlreadyRegistered) {
		t.Errorf("expected ErrAlreadyRegistered, got %v", err)
	}
	if err := hook.Unregister(Hotkey{KeyCode: F8}); !errors.Is(err, ErrNotRegistered) {
		t.Errorf("expected ErrNotRegistered, got %v", err)
	}
	if err := hook.Unregister(hotkey); err != nil {
		t.Errorf("unregister failed: %v", err)
	}
}

// TestCloseShutsDown checks that destroying the hook terminates both
// background goroutines and uninstalls the native interception.
func TestCloseShutsDown(t *testing.T) {
	provider := newFakeProvider()
	hook, err := newHook(provider, NoConsume)
	if err != nil {
		t.Fatalf("newHook failed: %v", err)
	}

	hook.Close()
	hook.Close() // idempotent

	waitClosed(t, provider.uninstalled, "the hook to be uninstalled")
	waitClosed(t, hook.dispatcherDone, "the dispatcher to exit")
}

// TestEventLoopFailure checks that a native loop error after installation
// terminates the engine without reaching the application.
func TestEventLoopFailure(t *testing.T) {
	provider := newFakeProvider()
	hook, err := newHook(provider, NoConsume)
	if err != nil {
		t.Fatalf("newHook failed: %v", err)
	}

	provider.msgs <- fakeMsg{err: errors.New("simulated loop failure")}

	waitClosed(t, provider.uninstalled, "the hook to be uninstalled")
	waitClosed(t, hook.dispatcherDone, "the dispatcher to exit")
}

func TestTryResolve(t *testing.T) {
	provider := newFakeProvider()
	provider.resolved = map[uint32]string{scKeyA: "a"}

	hook, err := newHook(provider, NoConsume)
	if err != nil {
		t.Fatalf("newHook failed: %v", err)
	}
	defer hook.Close()

	if text, ok := hook.TryResolve(KeyA); !ok || text != "a" {
		t.Errorf("expected KeyA to resolve to %q, got %q (ok=%v)", "a", text, ok)
	}

	// No reverse mapping for keys that cannot produce a character.
	if text, ok := hook.TryResolve(F1); ok {
		t.Errorf("expected F1 not to resolve, got %q", text)
	}

	// Reverse mapping exists but the layout produces nothing.
	if text, ok := hook.TryResolve(KeyB); ok {
		t.Errorf("expected KeyB not to resolve, got %q", text)
	}
}
