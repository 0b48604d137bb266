// Package keytrap registers callbacks for key combinations that fire even
// when the application does not have input focus, by observing raw keyboard
// events at the operating-system level.
//
// A Hook owns two background goroutines: the hook engine, locked to its own
// OS thread, intercepts native key events and translates them into logical
// hotkey events; the dispatcher drains those events and invokes the matching
// registered callback. The hook only observes input, it never swallows it.
package keytrap

import "sync"

// ConsumePreference states whether matched input should still reach other
// applications. The low-level keyboard hook used here is observer-only, so
// MustConsume cannot be satisfied and fails New.
type ConsumePreference uint8

const (
	// NoConsume requires that input is never swallowed.
	NoConsume ConsumePreference = iota
	// PreferConsume requests swallowing matched input where the platform
	// supports it, without requiring it.
	PreferConsume
	// MustConsume requires that matched input is swallowed.
	MustConsume
)

// eventQueueCap bounds the hotkey event queue between the engine and the
// dispatcher. Callbacks are required to be short, so the queue only has to
// absorb small bursts.
const eventQueueCap = 64

// Hook is the externally visible owner of the capture engine. All methods
// are safe for concurrent use.
type Hook struct {
	provider       provider
	hotkeys        *registry
	closeOnce      sync.Once
	dispatcherDone chan struct{}
}

// New validates the consume preference, spawns the hook engine and the
// dispatcher, and blocks until the native interception is installed. On any
// installation failure no goroutines are left behind.
func New(consume ConsumePreference) (*Hook, error) {
	return newHook(newProvider(), consume)
}

func newHook(p provider, consume ConsumePreference) (*Hook, error) {
	if consume == MustConsume && !p.canConsume() {
		return nil, ErrUnmatchedPreference
	}

	h := &Hook{
		provider:       p,
		hotkeys:        newRegistry(),
		dispatcherDone: make(chan struct{}),
	}

	ready := make(chan error, 1)
	events := make(chan Hotkey, eventQueueCap)

	go runEngine(p, ready, events)
	go func() {
		defer close(h.dispatcherDone)
		for hotkey := range events {
			h.hotkeys.dispatch(hotkey)
		}
	}()

	err, ok := <-ready
	if !ok {
		// The engine exited without reporting; nothing to clean up, its
		// deferred close already terminated the dispatcher.
		return nil, ErrThreadStopped
	}
	if err != nil {
		return nil, err
	}
	return h, nil
}

// Register binds a callback to a key combination. It fails with
// ErrAlreadyRegistered when the exact combination is already bound; there is
// no implicit replace. There is no ordering guarantee between Register and
// events already queued for dispatch: an event dispatched just before a
// matching registration completes is dropped as unmatched.
func (h *Hook) Register(hotkey Hotkey, callback Callback) error {
	return h.hotkeys.register(hotkey, callback)
}

// Unregister removes a binding. It fails with ErrNotRegistered when the
// combination is not bound.
func (h *Hook) Unregister(hotkey Hotkey) error {
	return h.hotkeys.unregister(hotkey)
}

// TryResolve reports the character a physical key currently produces under
// the active keyboard layout, e.g. KeyZ resolving to "y" on a German layout.
// Keys that produce no character (modifiers, function keys, media keys)
// report false.
func (h *Hook) TryResolve(keyCode KeyCode) (string, bool) {
	scanCode, ok := scanCodeFromKeyCode(keyCode)
	if !ok {
		return "", false
	}
	return h.provider.resolveText(scanCode)
}

// Close signals the hook engine to leave its native event loop and release
// the interception. It does not wait for the background goroutines to exit;
// the dispatcher terminates once the engine closes the event queue. Close is
// idempotent.
func (h *Hook) Close() {
	h.closeOnce.Do(h.provider.postShutdown)
}
