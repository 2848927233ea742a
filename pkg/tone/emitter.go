// ABOUTME: Frequency-level start/stop commands for a tone device
// ABOUTME: Translates Hz into divisors and forwards them to the device
package tone

import "fmt"

// Emitter issues start and stop commands against a Device
type Emitter struct {
	dev Device
}

// NewEmitter creates an emitter for the given device
func NewEmitter(dev Device) *Emitter {
	return &Emitter{dev: dev}
}

// Start begins a continuous tone at frequencyHz. A frequency of 0 silences
// the speaker instead.
func (e *Emitter) Start(frequencyHz uint32) error {
	divisor := Divisor(frequencyHz)
	if err := e.dev.SetTone(divisor); err != nil {
		return fmt.Errorf("set tone divisor %d: %w", divisor, err)
	}
	return nil
}

// Stop silences the speaker. It is legal whether or not a tone is active.
func (e *Emitter) Stop() error {
	return e.Start(0)
}
