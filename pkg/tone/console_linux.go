//go:build linux

// ABOUTME: Linux console tone device using the KIOCSOUND ioctl
// ABOUTME: Drives the PC speaker through a console file descriptor
package tone

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// kiocsound starts the sound generator; an argument of 0 turns it off.
const kiocsound = 0x4B2F

// Console is a tone device backed by a console file descriptor
type Console struct {
	fd    int
	owned bool
}

// OpenConsole opens the console at path. An empty path uses standard output.
func OpenConsole(path string) (*Console, error) {
	if path == "" {
		return &Console{fd: unix.Stdout}, nil
	}

	fd, err := unix.Open(path, unix.O_WRONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open console %s: %w", path, err)
	}
	return &Console{fd: fd, owned: true}, nil
}

// SetTone issues KIOCSOUND with the divisor
func (c *Console) SetTone(divisor uint32) error {
	if err := unix.IoctlSetInt(c.fd, kiocsound, int(divisor)); err != nil {
		return fmt.Errorf("KIOCSOUND: %w", err)
	}
	return nil
}

// Close releases the descriptor if it was opened by OpenConsole
func (c *Console) Close() error {
	if !c.owned {
		return nil
	}
	c.owned = false
	return unix.Close(c.fd)
}
