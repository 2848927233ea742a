// ABOUTME: Tone device interface and divisor conversion
// ABOUTME: Common interface for the real console control and in-memory fakes
package tone

import "errors"

// ReferenceClockRate is the PIT base clock in Hz.
const ReferenceClockRate = 1193180

// ErrUnsupported is returned by devices on platforms without a console
// sound generator.
var ErrUnsupported = errors.New("console tone control not supported on this platform")

// Device represents a console sound generator
type Device interface {
	// SetTone programs the generator with a timer divisor (0 silences it)
	SetTone(divisor uint32) error

	// Close releases the device
	Close() error
}

// Divisor converts a frequency to the sound generator divisor.
// Zero is the silence encoding.
func Divisor(frequencyHz uint32) uint32 {
	if frequencyHz == 0 {
		return 0
	}
	return ReferenceClockRate / frequencyHz
}
