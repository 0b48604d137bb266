//go:build !windows

package keytrap

// stubTrap is the provider for platforms without a hook mechanism yet. New
// fails cleanly instead of pretending to capture anything.
type stubTrap struct{}

func newProvider() provider {
	return stubTrap{}
}

func (stubTrap) install(func(rawKeyEvent)) error {
	return ErrUnsupportedPlatform
}

func (stubTrap) uninstall() {}

func (stubTrap) pump() (pumpResult, error) {
	return pumpShutdown, nil
}

func (stubTrap) postShutdown() {}

func (stubTrap) translateVirtualKey(uint32) uint32 {
	return 0
}

func (stubTrap) resolveText(uint32) (string, bool) {
	return "", false
}

func (stubTrap) canConsume() bool {
	return false
}
