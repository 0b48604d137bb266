package keytrap

import "runtime"

// rawKeyEvent is a single native key transition as the platform hands it
// over: the hardware scan code, the extended-code flag, the virtual key the
// driver reported, and the transition direction.
type rawKeyEvent struct {
	scanCode   uint32
	virtualKey uint32
	extended   bool
	down       bool
}

type pumpResult int

const (
	// pumpContinue means a native message was processed; keep looping.
	pumpContinue pumpResult = iota
	// pumpShutdown means the shutdown message posted by postShutdown
	// arrived; leave the loop and uninstall.
	pumpShutdown
)

// provider abstracts the OS interception mechanism so the engine state
// machine is written once. The Windows implementation lives in
// trap_windows.go; tests drive the same interface with an in-memory fake.
//
// install and pump run on the engine goroutine, which is locked to its OS
// thread. The handler passed to install is invoked synchronously on that
// same goroutine for every native key transition observed during pump.
// postShutdown, translateVirtualKey, resolveText, and canConsume may be
// called from any goroutine.
type provider interface {
	install(handle func(rawKeyEvent)) error
	uninstall()
	pump() (pumpResult, error)
	postShutdown()

	// translateVirtualKey maps a virtual key code to a folded scan code.
	// Used when the keyboard driver reported no scan code at all.
	translateVirtualKey(virtualKey uint32) uint32

	// resolveText maps an unextended scan code to the character it
	// currently produces under the active keyboard layout.
	resolveText(scanCode uint32) (string, bool)

	// canConsume reports whether this mechanism can swallow matched input
	// instead of merely observing it.
	canConsume() bool
}

// engineState is the hook engine's mutable state. It is constructed inside
// runEngine and never leaves that goroutine, so no lock guards it.
type engineState struct {
	provider  provider
	events    chan<- Hotkey
	modifiers Modifiers
	keys      keyState
}

// handleKey processes one native key transition. Only the first down
// transition of a held key produces a dispatched hotkey; key-up events just
// release state. The hotkey carries the modifiers held at the moment of the
// press, so pressing a modifier key itself dispatches with the bit not yet
// set.
func (s *engineState) handleKey(ev rawKeyEvent) {
	scanCode := ev.scanCode
	if scanCode != 0 {
		if ev.extended {
			scanCode += extendedScanCode
		}
	} else {
		// Some keyboard drivers emit only virtual key codes for certain
		// keys. The OS can translate those back into scan codes.
		scanCode = s.provider.translateVirtualKey(ev.virtualKey)
	}

	keyCode, ok := keyCodeFromScanCode(scanCode)
	if !ok {
		return
	}

	if ev.down {
		if s.keys.isDown(keyCode) {
			return
		}
		s.keys.setDown(keyCode)

		select {
		case s.events <- Hotkey{KeyCode: keyCode, Modifiers: s.modifiers}:
		default:
			logger.Warn().
				Stringer("key", keyCode).
				Msg("event queue full, dropping key event")
		}

		s.modifiers |= keyCode.modifier()
	} else {
		s.keys.setUp(keyCode)
		s.modifiers &^= keyCode.modifier()
	}
}

// runEngine is the hook engine goroutine. It installs the native hook,
// reports the outcome through the one-shot ready channel, then blocks in the
// native event loop until the shutdown message arrives. Closing the events
// channel on the way out is what terminates the dispatcher.
//
// A loop error after successful installation has no caller left to report
// to; the engine logs it and stops processing events, matching the behavior
// of installation-time errors as closely as the situation allows.
func runEngine(p provider, ready chan<- error, events chan<- Hotkey) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(events)
	defer close(ready)

	state := &engineState{provider: p, events: events}

	if err := p.install(state.handleKey); err != nil {
		ready <- err
		return
	}
	ready <- nil

	for {
		result, err := p.pump()
		if err != nil {
			logger.Error().Err(err).Msg(ErrEventLoop.Error())
			break
		}
		if result == pumpShutdown {
			break
		}
	}

	p.uninstall()
}
