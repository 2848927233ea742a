//go:build linux

// ABOUTME: Tests for the linux console device
// ABOUTME: Verifies open/close behavior and ioctl failure on non-console files
package tone

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenConsoleMissingPath(t *testing.T) {
	_, err := OpenConsole(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestConsoleRejectsRegularFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-console")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	c, err := OpenConsole(path)
	require.NoError(t, err)
	defer c.Close()

	// A regular file has no sound generator
	assert.Error(t, c.SetTone(2711))
}

func TestConsoleStdoutNotClosed(t *testing.T) {
	c, err := OpenConsole("")
	require.NoError(t, err)

	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close())
}
