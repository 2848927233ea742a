//go:build !linux

// ABOUTME: Console tone device stub for platforms without KIOCSOUND
// ABOUTME: Every tone request fails so callers fall back to the bell
package tone

// Console tone device (stub)
type Console struct{}

// OpenConsole returns a stub console; path is ignored
func OpenConsole(path string) (*Console, error) {
	return &Console{}, nil
}

// SetTone always fails with ErrUnsupported
func (c *Console) SetTone(divisor uint32) error {
	return ErrUnsupported
}

// Close releases resources
func (c *Console) Close() error {
	return nil
}
