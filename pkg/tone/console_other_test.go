//go:build !linux

// ABOUTME: Tests for the console stub
// ABOUTME: Verifies tone requests fail with ErrUnsupported off linux
package tone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleStubUnsupported(t *testing.T) {
	c, err := OpenConsole("/dev/tty0")
	require.NoError(t, err)

	assert.ErrorIs(t, c.SetTone(2711), ErrUnsupported)
	assert.NoError(t, c.Close())
}
