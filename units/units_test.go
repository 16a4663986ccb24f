package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEMUConversions(t *testing.T) {
	tests := []struct {
		name string
		emu  int64
		in   float64
		pt   float64
	}{
		{"zero", 0, 0, 0},
		{"one inch", 914400, 1, 72},
		{"half inch", 457200, 0.5, 36},
		{"one point", 12700, 1.0 / 72, 1},
		{"slide width", 9144000, 10, 720},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.in, EMUToInches(tt.emu), 1e-9)
			assert.InDelta(t, tt.pt, EMUToPoints(tt.emu), 1e-9)
		})
	}
}

func TestInchesToEMU(t *testing.T) {
	assert.Equal(t, int64(914400), InchesToEMU(1))
	assert.Equal(t, int64(6858000), InchesToEMU(7.5))
	assert.Equal(t, EMUToInches(InchesToEMU(3.25)), 3.25)
}

func TestAngleAndFontUnits(t *testing.T) {
	assert.Equal(t, 90.0, AngleToDegrees(5400000))
	assert.Equal(t, 0.0, AngleToDegrees(0))
	assert.Equal(t, 18.0, HundredthsToPoints(1800))
	assert.Equal(t, 10.5, HundredthsToPoints(1050))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 7.13, Round(7.1299999, 2))
	assert.Equal(t, 0.34, Round(0.3355, 2))
	assert.Equal(t, 1.0, Round(0.9999, 2))
}
