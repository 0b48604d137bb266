package keytrap

import "strings"

// Modifiers is a bitset of the modifier keys currently held. Left and right
// variants of a modifier map to the same bit.
type Modifiers uint8

const (
	ModAlt Modifiers = 1 << iota
	ModControl
	ModMeta
	ModShift
)

// Has reports whether every bit of m is set.
func (m Modifiers) Has(mask Modifiers) bool {
	return m&mask == mask
}

// String returns the held modifiers joined with '+', e.g. "Ctrl+Shift".
func (m Modifiers) String() string {
	if m == 0 {
		return ""
	}
	parts := make([]string, 0, 4)
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModControl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModMeta) {
		parts = append(parts, "Meta")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}

// parseModifier maps a single modifier name to its bit. Aliases cover the
// spellings in common use across platforms.
func parseModifier(name string) (Modifiers, bool) {
	switch strings.ToLower(name) {
	case "alt", "option":
		return ModAlt, true
	case "ctrl", "control":
		return ModControl, true
	case "meta", "win", "super", "cmd":
		return ModMeta, true
	case "shift":
		return ModShift, true
	}
	return 0, false
}
