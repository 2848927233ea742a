// ABOUTME: In-memory tone device that records divisors
// ABOUTME: Lets callers exercise emission without console privileges
package tone

import "errors"

// ErrFakeFailure is returned by a Fake configured to fail
var ErrFakeFailure = errors.New("fake tone device failure")

// Fake records every divisor it receives.
//
// FailStart makes the first SetTone call fail; FailStop makes every
// SetTone(0) after a successful start fail.
type Fake struct {
	FailStart bool
	FailStop  bool

	Divisors []uint32
	Closed   bool
}

// SetTone records the divisor, then applies the configured failures
func (f *Fake) SetTone(divisor uint32) error {
	first := len(f.Divisors) == 0
	f.Divisors = append(f.Divisors, divisor)

	if first && f.FailStart {
		return ErrFakeFailure
	}
	if !first && divisor == 0 && f.FailStop {
		return ErrFakeFailure
	}
	return nil
}

// Close marks the device closed
func (f *Fake) Close() error {
	f.Closed = true
	return nil
}

// Calls returns the number of SetTone calls
func (f *Fake) Calls() int {
	return len(f.Divisors)
}
