// ABOUTME: Tests for divisor conversion
// ABOUTME: Verifies the PIT clock arithmetic and the silence encoding
package tone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDivisor(t *testing.T) {
	tests := []struct {
		name      string
		frequency uint32
		expected  uint32
	}{
		{"silence", 0, 0},
		{"A4", 440, 2711},
		{"1kHz", 1000, 1193},
		{"one hertz", 1, ReferenceClockRate},
		{"clock rate", ReferenceClockRate, 1},
		{"above clock rate", ReferenceClockRate + 1, 0},
		{"max uint32", ^uint32(0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Divisor(tt.frequency))
		})
	}
}

func TestDivisorMatchesIntegerDivision(t *testing.T) {
	for f := uint32(1); f < 20000; f += 37 {
		assert.Equal(t, uint32(ReferenceClockRate/f), Divisor(f), "frequency %d", f)
	}
}

func TestConsoleImplementsDevice(t *testing.T) {
	var _ Device = (*Console)(nil)
	var _ Device = (*Fake)(nil)
}
