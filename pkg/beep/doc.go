// ABOUTME: Timed beep orchestration with bell fallback
// ABOUTME: Sequences start, wait and stop on a tone emitter
// Package beep sequences a timed PC speaker beep and applies the bell
// fallback when the speaker cannot be driven.
//
// Emit performs a single synchronous attempt:
//   - Start the tone; on failure return Failed without waiting or stopping
//   - Block for the requested duration
//   - Stop the tone, ignoring the result
//
// Alert wraps Emit with the caller-level policy: a failed emission writes the
// ASCII bell (0x07) to the configured output instead.
//
// Example:
//
//	dev, _ := tone.OpenConsole("")
//	o := beep.New(beep.Config{Emitter: tone.NewEmitter(dev), Stdout: os.Stdout})
//	outcome := o.Alert(beep.Request{FrequencyHz: 440, DurationMs: 1000}, false)
package beep
