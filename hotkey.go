package keytrap

import (
	"fmt"
	"strings"
)

// Hotkey is a key combination: a single non-modifier key plus the modifiers
// that must be held when it is pressed. It is a comparable value and serves
// as the registry key, so two registrations of the same combination collide.
type Hotkey struct {
	KeyCode   KeyCode
	Modifiers Modifiers
}

// Callback is the unit of work invoked when a matching key combination is
// pressed. It runs on the dispatcher goroutine while the registry lock is
// held, so it must be short and must not call back into Register or
// Unregister.
type Callback func()

// String renders the hotkey as "Ctrl+Shift+KeyA" style text. The modifier
// order matches Modifiers.String.
func (h Hotkey) String() string {
	if mods := h.Modifiers.String(); mods != "" {
		return mods + "+" + h.KeyCode.String()
	}
	return h.KeyCode.String()
}

// ParseHotkey parses text of the form "Ctrl+Shift+KeyA". The last '+'
// separated token is the key's W3C code name, everything before it is a
// modifier. Modifier aliases (Control, Win, Super, Cmd, Option) are accepted
// case-insensitively; key names are matched exactly.
func ParseHotkey(s string) (Hotkey, error) {
	parts := strings.Split(s, "+")
	if len(parts) == 0 || parts[len(parts)-1] == "" {
		return Hotkey{}, fmt.Errorf("invalid hotkey %q", s)
	}

	var mods Modifiers
	for _, part := range parts[:len(parts)-1] {
		mod, ok := parseModifier(strings.TrimSpace(part))
		if !ok {
			return Hotkey{}, fmt.Errorf("invalid hotkey %q: unknown modifier %q", s, part)
		}
		mods |= mod
	}

	name := strings.TrimSpace(parts[len(parts)-1])
	key, ok := ParseKeyCode(name)
	if !ok {
		return Hotkey{}, fmt.Errorf("invalid hotkey %q: unknown key %q", s, name)
	}

	return Hotkey{KeyCode: key, Modifiers: mods}, nil
}
