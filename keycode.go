package keytrap

// KeyCode identifies a physical key independent of platform and keyboard
// layout. The names follow the W3C UI Events code values, so a KeyCode
// describes the position/function of a key, not the character it produces.
// All values fit in a single byte, which the key-state bitset relies on.
type KeyCode uint8

const (
	// Writing system keys
	Backquote KeyCode = iota
	Backslash
	BracketLeft
	BracketRight
	Comma
	Digit0
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9
	Equal
	IntlBackslash
	IntlRo
	IntlYen
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Minus
	Period
	Quote
	Semicolon
	Slash

	// Functional keys
	AltLeft
	AltRight
	Backspace
	CapsLock
	ContextMenu
	ControlLeft
	ControlRight
	Enter
	MetaLeft
	MetaRight
	ShiftLeft
	ShiftRight
	Space
	Tab

	// Japanese and Korean layout keys
	Convert
	KanaMode
	Lang1
	Lang2
	Lang3
	Lang4
	NonConvert

	// Control pad
	Delete
	End
	Help
	Home
	Insert
	PageDown
	PageUp

	// Arrow pad
	ArrowDown
	ArrowLeft
	ArrowRight
	ArrowUp

	// Numpad
	NumLock
	Numpad0
	Numpad1
	Numpad2
	Numpad3
	Numpad4
	Numpad5
	Numpad6
	Numpad7
	Numpad8
	Numpad9
	NumpadAdd
	NumpadComma
	NumpadDecimal
	NumpadDivide
	NumpadEnter
	NumpadEqual
	NumpadMultiply
	NumpadSubtract

	// Function section
	Escape
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	F13
	F14
	F15
	F16
	F17
	F18
	F19
	F20
	F21
	F22
	F23
	F24
	PrintScreen
	ScrollLock
	Pause

	// Media and browser keys
	AudioVolumeDown
	AudioVolumeMute
	AudioVolumeUp
	BrowserBack
	BrowserFavorites
	BrowserForward
	BrowserHome
	BrowserRefresh
	BrowserSearch
	BrowserStop
	Eject
	LaunchApp1
	LaunchApp2
	LaunchMail
	MediaPlayPause
	MediaSelect
	MediaStop
	MediaTrackNext
	MediaTrackPrevious
	Power
	Sleep
	WakeUp

	// Legacy editing keys
	Copy
	Cut
	Paste
	Undo
)

var keyCodeNames = [...]string{
	Backquote:          "Backquote",
	Backslash:          "Backslash",
	BracketLeft:        "BracketLeft",
	BracketRight:       "BracketRight",
	Comma:              "Comma",
	Digit0:             "Digit0",
	Digit1:             "Digit1",
	Digit2:             "Digit2",
	Digit3:             "Digit3",
	Digit4:             "Digit4",
	Digit5:             "Digit5",
	Digit6:             "Digit6",
	Digit7:             "Digit7",
	Digit8:             "Digit8",
	Digit9:             "Digit9",
	Equal:              "Equal",
	IntlBackslash:      "IntlBackslash",
	IntlRo:             "IntlRo",
	IntlYen:            "IntlYen",
	KeyA:               "KeyA",
	KeyB:               "KeyB",
	KeyC:               "KeyC",
	KeyD:               "KeyD",
	KeyE:               "KeyE",
	KeyF:               "KeyF",
	KeyG:               "KeyG",
	KeyH:               "KeyH",
	KeyI:               "KeyI",
	KeyJ:               "KeyJ",
	KeyK:               "KeyK",
	KeyL:               "KeyL",
	KeyM:               "KeyM",
	KeyN:               "KeyN",
	KeyO:               "KeyO",
	KeyP:               "KeyP",
	KeyQ:               "KeyQ",
	KeyR:               "KeyR",
	KeyS:               "KeyS",
	KeyT:               "KeyT",
	KeyU:               "KeyU",
	KeyV:               "KeyV",
	KeyW:               "KeyW",
	KeyX:               "KeyX",
	KeyY:               "KeyY",
	KeyZ:               "KeyZ",
	Minus:              "Minus",
	Period:             "Period",
	Quote:              "Quote",
	Semicolon:          "Semicolon",
	Slash:              "Slash",
	AltLeft:            "AltLeft",
	AltRight:           "AltRight",
	Backspace:          "Backspace",
	CapsLock:           "CapsLock",
	ContextMenu:        "ContextMenu",
	ControlLeft:        "ControlLeft",
	ControlRight:       "ControlRight",
	Enter:              "Enter",
	MetaLeft:           "MetaLeft",
	MetaRight:          "MetaRight",
	ShiftLeft:          "ShiftLeft",
	ShiftRight:         "ShiftRight",
	Space:              "Space",
	Tab:                "Tab",
	Convert:            "Convert",
	KanaMode:           "KanaMode",
	Lang1:              "Lang1",
	Lang2:              "Lang2",
	Lang3:              "Lang3",
	Lang4:              "Lang4",
	NonConvert:         "NonConvert",
	Delete:             "Delete",
	End:                "End",
	Help:               "Help",
	Home:               "Home",
	Insert:             "Insert",
	PageDown:           "PageDown",
	PageUp:             "PageUp",
	ArrowDown:          "ArrowDown",
	ArrowLeft:          "ArrowLeft",
	ArrowRight:         "ArrowRight",
	ArrowUp:            "ArrowUp",
	NumLock:            "NumLock",
	Numpad0:            "Numpad0",
	Numpad1:            "Numpad1",
	Numpad2:            "Numpad2",
	Numpad3:            "Numpad3",
	Numpad4:            "Numpad4",
	Numpad5:            "Numpad5",
	Numpad6:            "Numpad6",
	Numpad7:            "Numpad7",
	Numpad8:            "Numpad8",
	Numpad9:            "Numpad9",
	NumpadAdd:          "NumpadAdd",
	NumpadComma:        "NumpadComma",
	NumpadDecimal:      "NumpadDecimal",
	NumpadDivide:       "NumpadDivide",
	NumpadEnter:        "NumpadEnter",
	NumpadEqual:        "NumpadEqual",
	NumpadMultiply:     "NumpadMultiply",
	NumpadSubtract:     "NumpadSubtract",
	Escape:             "Escape",
	F1:                 "F1",
	F2:                 "F2",
	F3:                 "F3",
	F4:                 "F4",
	F5:                 "F5",
	F6:                 "F6",
	F7:                 "F7",
	F8:                 "F8",
	F9:                 "F9",
	F10:                "F10",
	F11:                "F11",
	F12:                "F12",
	F13:                "F13",
	F14:                "F14",
	F15:                "F15",
	F16:                "F16",
	F17:                "F17",
	F18:                "F18",
	F19:                "F19",
	F20:                "F20",
	F21:                "F21",
	F22:                "F22",
	F23:                "F23",
	F24:                "F24",
	PrintScreen:        "PrintScreen",
	ScrollLock:         "ScrollLock",
	Pause:              "Pause",
	AudioVolumeDown:    "AudioVolumeDown",
	AudioVolumeMute:    "AudioVolumeMute",
	AudioVolumeUp:      "AudioVolumeUp",
	BrowserBack:        "BrowserBack",
	BrowserFavorites:   "BrowserFavorites",
	BrowserForward:     "BrowserForward",
	BrowserHome:        "BrowserHome",
	BrowserRefresh:     "BrowserRefresh",
	BrowserSearch:      "BrowserSearch",
	BrowserStop:        "BrowserStop",
	Eject:              "Eject",
	LaunchApp1:         "LaunchApp1",
	LaunchApp2:         "LaunchApp2",
	LaunchMail:         "LaunchMail",
	MediaPlayPause:     "MediaPlayPause",
	MediaSelect:        "MediaSelect",
	MediaStop:          "MediaStop",
	MediaTrackNext:     "MediaTrackNext",
	MediaTrackPrevious: "MediaTrackPrevious",
	Power:              "Power",
	Sleep:              "Sleep",
	WakeUp:             "WakeUp",
	Copy:               "Copy",
	Cut:                "Cut",
	Paste:              "Paste",
	Undo:               "Undo",
}

var keyCodeByName = make(map[string]KeyCode, len(keyCodeNames))

func init() {
	for i, name := range keyCodeNames {
		keyCodeByName[name] = KeyCode(i)
	}
}

// String returns the W3C code name of the key, e.g. "KeyA" or "ArrowUp".
func (k KeyCode) String() string {
	if int(k) < len(keyCodeNames) {
		return keyCodeNames[k]
	}
	return "Unknown"
}

// ParseKeyCode resolves a W3C code name back to its KeyCode.
func ParseKeyCode(name string) (KeyCode, bool) {
	k, ok := keyCodeByName[name]
	return k, ok
}

// modifier returns the modifier bit a key contributes while held, or zero
// for non-modifier keys. Left and right variants collapse to the same bit.
func (k KeyCode) modifier() Modifiers {
	switch k {
	case AltLeft, AltRight:
		return ModAlt
	case ControlLeft, ControlRight:
		return ModControl
	case MetaLeft, MetaRight:
		return ModMeta
	case ShiftLeft, ShiftRight:
		return ModShift
	}
	return 0
}
