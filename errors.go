package keytrap

import "errors"

var (
	// ErrHookInstall is returned when the native keyboard interception
	// could not be installed.
	ErrHookInstall = errors.New("failed to install the low-level keyboard hook")

	// ErrThreadStopped is returned when the background hook thread stopped
	// before reporting whether installation succeeded.
	ErrThreadStopped = errors.New("the background hook thread stopped unexpectedly")

	// ErrEventLoop indicates that the native event loop failed after the
	// hook was installed. Nothing awaits the loop at that point, so this
	// error is only ever logged, never returned.
	ErrEventLoop = errors.New("the native event loop failed")

	// ErrAlreadyRegistered is returned when a hotkey is registered twice
	ErrAlreadyRegistered = errors.New("hotkey already registered")

	// ErrNotRegistered is returned when unregistering a hotkey that was
	// never registered
	ErrNotRegistered = errors.New("hotkey is not registered")

	// ErrUnmatchedPreference is returned when the requested consume
	// preference cannot be satisfied by this platform's hook mechanism
	ErrUnmatchedPreference = errors.New("consume preference cannot be satisfied on this platform")

	// ErrUnsupportedPlatform is returned when no hook mechanism exists for
	// the current OS
	ErrUnsupportedPlatform = errors.New("global hotkeys are not supported on this platform")
)
