// ABOUTME: PC speaker tone control package
// ABOUTME: Converts frequencies to PIT divisors and drives the console sound generator
// Package tone drives the console's PC speaker through the kernel
// sound-generation control (KIOCSOUND).
//
// A Device accepts a raw timer divisor; an Emitter converts frequencies to
// divisors and issues start/stop commands against a Device.
//
// The console sound generator is a single system-wide resource. Only one tone
// is audible at a time and separate processes driving the same console race
// on it; nothing in this package serializes across processes.
//
// Example:
//
//	dev, err := tone.OpenConsole("")
//	em := tone.NewEmitter(dev)
//	err = em.Start(440)
//	time.Sleep(time.Second)
//	_ = em.Stop()
package tone
