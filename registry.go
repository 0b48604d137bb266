package keytrap

import "sync"

// registry is the shared hotkey → callback map. It is the only piece of
// state in this package touched by more than one goroutine: the application
// registers and unregisters, the dispatcher looks up and invokes. A single
// mutex protects it; the callback is invoked while the lock is held so that
// a hotkey can never run concurrently with its own re-registration.
type registry struct {
	mu      sync.Mutex
	hotkeys map[Hotkey]Callback
}

func newRegistry() *registry {
	return &registry{hotkeys: make(map[Hotkey]Callback)}
}

func (r *registry) register(hotkey Hotkey, callback Callback) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.hotkeys[hotkey]; exists {
		return ErrAlreadyRegistered
	}
	r.hotkeys[hotkey] = callback
	return nil
}

func (r *registry) unregister(hotkey Hotkey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.hotkeys[hotkey]; !exists {
		return ErrNotRegistered
	}
	delete(r.hotkeys, hotkey)
	return nil
}

// dispatch invokes the callback registered for the combination, if any. An
// unmatched combination is not an error: most key presses correspond to no
// registered hotkey and are discarded silently.
func (r *registry) dispatch(hotkey Hotkey) {
	r.mu.Lock()
	defer r.mu.Unlock()

	callback, ok := r.hotkeys[hotkey]
	if !ok {
		return
	}
	invoke(hotkey, callback)
}

// invoke shields the dispatcher from a misbehaving callback. The deferred
// unlock in dispatch still runs, so the registry stays usable and no panic
// reaches the application.
func invoke(hotkey Hotkey, callback Callback) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error().
				Stringer("hotkey", hotkey).
				Interface("panic", rec).
				Msg("hotkey callback panicked")
		}
	}()
	callback()
}
