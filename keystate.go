package keytrap

// keyState records which physical keys are currently held, one bit per
// KeyCode value. It exists to suppress the duplicate key-down notifications
// the OS delivers while a key auto-repeats: only the first up→down
// transition may produce a logical event.
//
// The bitset covers the full byte range of KeyCode, so no bounds checks are
// needed.
type keyState [256 / 8]byte

func (s *keyState) isDown(k KeyCode) bool {
	return s[k/8]&(1<<(k%8)) != 0
}

func (s *keyState) setDown(k KeyCode) {
	s[k/8] |= 1 << (k % 8)
}

// setUp clears the bit unconditionally; clearing an already-up key is fine.
func (s *keyState) setUp(k KeyCode) {
	s[k/8] &^= 1 << (k % 8)
}
