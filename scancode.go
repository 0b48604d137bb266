package keytrap

// Windows delivers PS/2 scan code set 1 make codes. Extended codes arrive as
// `e0 xx` and are folded into a single lookup key by adding extendedScanCode
// before consulting the table; without the fold the numpad and navigation
// keys collide with their non-extended twins.
const extendedScanCode = 0xE000

// keyCodeFromScanCode maps a folded scan code to its canonical KeyCode. The
// mapping is total and order-independent; unknown codes report false.
func keyCodeFromScanCode(scanCode uint32) (KeyCode, bool) {
	switch scanCode {
	case 0x0001:
		return Escape, true
	case 0x0002:
		return Digit1, true
	case 0x0003:
		return Digit2, true
	case 0x0004:
		return Digit3, true
	case 0x0005:
		return Digit4, true
	case 0x0006:
		return Digit5, true
	case 0x0007:
		return Digit6, true
	case 0x0008:
		return Digit7, true
	case 0x0009:
		return Digit8, true
	case 0x000A:
		return Digit9, true
	case 0x000B:
		return Digit0, true
	case 0x000C:
		return Minus, true
	case 0x000D:
		return Equal, true
	case 0x000E:
		return Backspace, true
	case 0x000F:
		return Tab, true
	case 0x0010:
		return KeyQ, true
	case 0x0011:
		return KeyW, true
	case 0x0012:
		return KeyE, true
	case 0x0013:
		return KeyR, true
	case 0x0014:
		return KeyT, true
	case 0x0015:
		return KeyY, true
	case 0x0016:
		return KeyU, true
	case 0x0017:
		return KeyI, true
	case 0x0018:
		return KeyO, true
	case 0x0019:
		return KeyP, true
	case 0x001A:
		return BracketLeft, true
	case 0x001B:
		return BracketRight, true
	case 0x001C:
		return Enter, true
	case 0x001D:
		return ControlLeft, true
	case 0x001E:
		return KeyA, true
	case 0x001F:
		return KeyS, true
	case 0x0020:
		return KeyD, true
	case 0x0021:
		return KeyF, true
	case 0x0022:
		return KeyG, true
	case 0x0023:
		return KeyH, true
	case 0x0024:
		return KeyJ, true
	case 0x0025:
		return KeyK, true
	case 0x0026:
		return KeyL, true
	case 0x0027:
		return Semicolon, true
	case 0x0028:
		return Quote, true
	case 0x0029:
		return Backquote, true
	case 0x002A:
		return ShiftLeft, true
	case 0x002B:
		return Backslash, true
	case 0x002C:
		return KeyZ, true
	case 0x002D:
		return KeyX, true
	case 0x002E:
		return KeyC, true
	case 0x002F:
		return KeyV, true
	case 0x0030:
		return KeyB, true
	case 0x0031:
		return KeyN, true
	case 0x0032:
		return KeyM, true
	case 0x0033:
		return Comma, true
	case 0x0034:
		return Period, true
	case 0x0035:
		return Slash, true
	case 0x0036:
		return ShiftRight, true
	case 0x0037:
		return NumpadMultiply, true
	case 0x0038:
		return AltLeft, true
	case 0x0039:
		return Space, true
	case 0x003A:
		return CapsLock, true
	case 0x003B:
		return F1, true
	case 0x003C:
		return F2, true
	case 0x003D:
		return F3, true
	case 0x003E:
		return F4, true
	case 0x003F:
		return F5, true
	case 0x0040:
		return F6, true
	case 0x0041:
		return F7, true
	case 0x0042:
		return F8, true
	case 0x0043:
		return F9, true
	case 0x0044:
		return F10, true
	case 0x0045:
		return Pause, true
	case 0x0046:
		return ScrollLock, true
	case 0x0047:
		return Numpad7, true
	case 0x0048:
		return Numpad8, true
	case 0x0049:
		return Numpad9, true
	case 0x004A:
		return NumpadSubtract, true
	case 0x004B:
		return Numpad4, true
	case 0x004C:
		return Numpad5, true
	case 0x004D:
		return Numpad6, true
	case 0x004E:
		return NumpadAdd, true
	case 0x004F:
		return Numpad1, true
	case 0x0050:
		return Numpad2, true
	case 0x0051:
		return Numpad3, true
	case 0x0052:
		return Numpad0, true
	case 0x0053:
		return NumpadDecimal, true
	case 0x0054:
		return PrintScreen, true
	case 0x0056:
		return IntlBackslash, true
	case 0x0057:
		return F11, true
	case 0x0058:
		return F12, true
	case 0x0059:
		return NumpadEqual, true
	case 0x0064:
		return F13, true
	case 0x0065:
		return F14, true
	case 0x0066:
		return F15, true
	case 0x0067:
		return F16, true
	case 0x0068:
		return F17, true
	case 0x0069:
		return F18, true
	case 0x006A:
		return F19, true
	case 0x006B:
		return F20, true
	case 0x006C:
		return F21, true
	case 0x006D:
		return F22, true
	case 0x006E:
		return F23, true
	case 0x0070:
		return KanaMode, true
	case 0x0071:
		return Lang2, true
	case 0x0072:
		return Lang1, true
	case 0x0073:
		return IntlRo, true
	case 0x0076:
		// Overlaps with Lang5 on some layouts.
		return F24, true
	case 0x0077:
		return Lang4, true
	case 0x0078:
		return Lang3, true
	case 0x0079:
		return Convert, true
	case 0x007B:
		return NonConvert, true
	case 0x007D:
		return IntlYen, true
	case 0x007E:
		return NumpadComma, true
	case 0xE008:
		return Undo, true
	case 0xE00A:
		return Paste, true
	case 0xE010:
		return MediaTrackPrevious, true
	case 0xE017:
		return Cut, true
	case 0xE018:
		return Copy, true
	case 0xE019:
		return MediaTrackNext, true
	case 0xE01C:
		return NumpadEnter, true
	case 0xE01D:
		return ControlRight, true
	case 0xE01E:
		return LaunchMail, true
	case 0xE020:
		return AudioVolumeMute, true
	case 0xE021:
		return LaunchApp2, true
	case 0xE022:
		return MediaPlayPause, true
	case 0xE024:
		return MediaStop, true
	case 0xE02C:
		return Eject, true
	case 0xE02E:
		return AudioVolumeDown, true
	case 0xE030:
		return AudioVolumeUp, true
	case 0xE032:
		return BrowserHome, true
	case 0xE035:
		return NumpadDivide, true
	case 0xE036:
		// Somehow reported as extended by the low-level hook.
		return ShiftRight, true
	case 0xE037:
		return PrintScreen, true
	case 0xE038:
		return AltRight, true
	case 0xE03B:
		return Help, true
	case 0xE045:
		return NumLock, true
	case 0xE046:
		return Pause, true
	case 0xE047:
		return Home, true
	case 0xE048:
		return ArrowUp, true
	case 0xE049:
		return PageUp, true
	case 0xE04B:
		return ArrowLeft, true
	case 0xE04D:
		return ArrowRight, true
	case 0xE04F:
		return End, true
	case 0xE050:
		return ArrowDown, true
	case 0xE051:
		return PageDown, true
	case 0xE052:
		return Insert, true
	case 0xE053:
		return Delete, true
	case 0xE05B:
		return MetaLeft, true
	case 0xE05C:
		return MetaRight, true
	case 0xE05D:
		return ContextMenu, true
	case 0xE05E:
		return Power, true
	case 0xE05F:
		return Sleep, true
	case 0xE063:
		return WakeUp, true
	case 0xE065:
		return BrowserSearch, true
	case 0xE066:
		return BrowserFavorites, true
	case 0xE067:
		return BrowserRefresh, true
	case 0xE068:
		return BrowserStop, true
	case 0xE069:
		return BrowserForward, true
	case 0xE06A:
		return BrowserBack, true
	case 0xE06B:
		return LaunchApp1, true
	case 0xE06C:
		return LaunchMail, true
	case 0xE06D:
		return MediaSelect, true
	case 0xE0F1:
		return Lang2, true
	case 0xE0F2:
		return Lang1, true
	}
	return 0, false
}

// scanCodeFromKeyCode is the reverse mapping used to resolve what character
// a physical key currently produces under the active layout. It only covers
// keys that can plausibly produce a character; function, modifier, and media
// keys report false.
func scanCodeFromKeyCode(keyCode KeyCode) (uint32, bool) {
	switch keyCode {
	case Backquote:
		return 0x0029, true
	case Backslash:
		return 0x002B, true
	case BracketLeft:
		return 0x001A, true
	case BracketRight:
		return 0x001B, true
	case Comma:
		return 0x0033, true
	case Digit1:
		return 0x0002, true
	case Digit2:
		return 0x0003, true
	case Digit3:
		return 0x0004, true
	case Digit4:
		return 0x0005, true
	case Digit5:
		return 0x0006, true
	case Digit6:
		return 0x0007, true
	case Digit7:
		return 0x0008, true
	case Digit8:
		return 0x0009, true
	case Digit9:
		return 0x000A, true
	case Digit0:
		return 0x000B, true
	case Equal:
		return 0x000D, true
	case IntlBackslash:
		return 0x0056, true
	case IntlRo:
		return 0x0073, true
	case IntlYen:
		return 0x007D, true
	case KeyA:
		return 0x001E, true
	case KeyB:
		return 0x0030, true
	case KeyC:
		return 0x002E, true
	case KeyD:
		return 0x0020, true
	case KeyE:
		return 0x0012, true
	case KeyF:
		return 0x0021, true
	case KeyG:
		return 0x0022, true
	case KeyH:
		return 0x0023, true
	case KeyI:
		return 0x0017, true
	case KeyJ:
		return 0x0024, true
	case KeyK:
		return 0x0025, true
	case KeyL:
		return 0x0026, true
	case KeyM:
		return 0x0032, true
	case KeyN:
		return 0x0031, true
	case KeyO:
		return 0x0018, true
	case KeyP:
		return 0x0019, true
	case KeyQ:
		return 0x0010, true
	case KeyR:
		return 0x0013, true
	case KeyS:
		return 0x001F, true
	case KeyT:
		return 0x0014, true
	case KeyU:
		return 0x0016, true
	case KeyV:
		return 0x002F, true
	case KeyW:
		return 0x0011, true
	case KeyX:
		return 0x002D, true
	case KeyY:
		return 0x0015, true
	case KeyZ:
		return 0x002C, true
	case Minus:
		return 0x000C, true
	case Period:
		return 0x0034, true
	case Quote:
		return 0x0028, true
	case Semicolon:
		return 0x0027, true
	case Slash:
		return 0x0035, true
	}
	return 0, false
}
