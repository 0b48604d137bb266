//go:build windows

package keytrap

import (
	"fmt"
	"syscall"
	"unicode/utf8"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	kernel32                = windows.NewLazySystemDLL("kernel32.dll")
	procSetWindowsHookEx    = user32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx      = user32.NewProc("CallNextHookEx")
	procGetMessage          = user32.NewProc("GetMessageW")
	procPostThreadMessage   = user32.NewProc("PostThreadMessageW")
	procMapVirtualKey       = user32.NewProc("MapVirtualKeyW")
	procGetModuleHandle     = kernel32.NewProc("GetModuleHandleW")
	procGetCurrentThreadId  = kernel32.NewProc("GetCurrentThreadId")
)

const (
	whKeyboardLL = 13

	wmKeyDown    = 0x0100
	wmKeyUp      = 0x0101
	wmSysKeyDown = 0x0104
	wmSysKeyUp   = 0x0105

	llkhfExtended = 0x01

	// Posted to the hook thread's message queue to break the event loop.
	// First message id in the WM_USER range.
	msgExit = 0x0400

	mapvkVKToChar  = 2
	mapvkVSCToVKEx = 3
	mapvkVKToVSCEx = 4

	// MapVirtualKey marks dead keys (diacritics) by setting the top bit of
	// the produced character value.
	deadKeyMask = 0x7FFFFFFF
)

type kbdllHookStruct struct {
	VkCode      uint32
	ScanCode    uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

type msg struct {
	Hwnd    syscall.Handle
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      struct{ X, Y int32 }
}

// windowsTrap implements the provider interface with a WH_KEYBOARD_LL hook.
// The hook is installed on the engine goroutine's locked OS thread; the OS
// invokes hookProc on that same thread while pump sits in GetMessageW, so
// handle runs thread-confined as the engine requires.
type windowsTrap struct {
	hook     uintptr
	threadID uint32
	handle   func(rawKeyEvent)
}

func newProvider() provider {
	return &windowsTrap{}
}

func (t *windowsTrap) install(handle func(rawKeyEvent)) error {
	t.handle = handle

	hMod, _, _ := procGetModuleHandle.Call(0)
	hook, _, err := procSetWindowsHookEx.Call(
		whKeyboardLL,
		syscall.NewCallback(t.hookProc),
		hMod,
		0,
	)
	if hook == 0 {
		return fmt.Errorf("%w: SetWindowsHookEx: %v", ErrHookInstall, err)
	}
	t.hook = hook

	tid, _, _ := procGetCurrentThreadId.Call()
	t.threadID = uint32(tid)
	return nil
}

func (t *windowsTrap) uninstall() {
	if t.hook != 0 {
		procUnhookWindowsHookEx.Call(t.hook)
		t.hook = 0
	}
}

// pump blocks in GetMessageW for one message. The low-level hook needs no
// TranslateMessage/DispatchMessage: the OS calls hookProc directly while
// this thread waits inside GetMessageW.
func (t *windowsTrap) pump() (pumpResult, error) {
	var m msg
	ret, _, err := procGetMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
	if int32(ret) < 0 {
		return pumpContinue, fmt.Errorf("GetMessage: %v", err)
	}
	if int32(ret) == 0 || m.Message == msgExit {
		return pumpShutdown, nil
	}
	return pumpContinue, nil
}

func (t *windowsTrap) postShutdown() {
	procPostThreadMessage.Call(uintptr(t.threadID), msgExit, 0, 0)
}

func (t *windowsTrap) hookProc(nCode int, wParam uintptr, lParam uintptr) uintptr {
	if int32(nCode) >= 0 {
		kbd := (*kbdllHookStruct)(unsafe.Pointer(lParam))

		down := wParam == wmKeyDown || wParam == wmSysKeyDown
		up := wParam == wmKeyUp || wParam == wmSysKeyUp
		if down || up {
			t.handle(rawKeyEvent{
				scanCode:   kbd.ScanCode,
				virtualKey: kbd.VkCode,
				extended:   kbd.Flags&llkhfExtended != 0,
				down:       down,
			})
		}
	}

	// Always forward to the next hook in the chain. This hook observes
	// input, it must never swallow it system-wide.
	ret, _, _ := procCallNextHookEx.Call(t.hook, uintptr(nCode), wParam, lParam)
	return ret
}

func (t *windowsTrap) translateVirtualKey(virtualKey uint32) uint32 {
	ret, _, _ := procMapVirtualKey.Call(uintptr(virtualKey), mapvkVKToVSCEx)
	return uint32(ret)
}

func (t *windowsTrap) resolveText(scanCode uint32) (string, bool) {
	vk, _, _ := procMapVirtualKey.Call(uintptr(scanCode), mapvkVSCToVKEx)
	if vk == 0 {
		return "", false
	}
	ch, _, _ := procMapVirtualKey.Call(vk, mapvkVKToChar)
	if ch == 0 {
		return "", false
	}
	r := rune(uint32(ch) & deadKeyMask)
	if !utf8.ValidRune(r) {
		return "", false
	}
	return string(r), true
}

func (t *windowsTrap) canConsume() bool {
	return false
}
