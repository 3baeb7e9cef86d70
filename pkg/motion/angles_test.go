package motion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAngleConverter_Convert(t *testing.T) {
	c := DefaultAngleConverter()

	tests := []struct {
		raw      float64
		expected float64
	}{
		{0, 0},
		{1024, 90},
		{2048, 180},
		{4096, 360},
		{-1024, -90},
	}

	for _, tt := range tests {
		got := c.Convert(tt.raw)
		if math.Abs(got-tt.expected) > 0.001 {
			t.Errorf("Convert(%f) = %f, want %f", tt.raw, got, tt.expected)
		}
	}
}

func TestAngleConverter_OffsetRanges(t *testing.T) {
	c := AngleConverter{
		In:  Range{Min: 1000, Max: 3000},
		Out: Range{Min: -100, Max: 100},
	}

	assert.InDelta(t, -100, c.Convert(1000), 1e-9)
	assert.InDelta(t, 0, c.Convert(2000), 1e-9)
	assert.InDelta(t, 50, c.Convert(2500), 1e-9)

	for raw := 1000.0; raw <= 3000; raw += 100 {
		assert.InDelta(t, raw, c.Invert(c.Convert(raw)), 1e-9)
	}
}

func TestAngleConverter_JointAngles(t *testing.T) {
	c := DefaultAngleConverter()
	pos := Vector5{1024, 512, 2048, 3072, 100}

	angles := c.JointAngles(pos)

	assert.InDelta(t, c.Convert(1024+512), angles.Get(1), 1e-9)
	assert.InDelta(t, c.Convert(1024-512), angles.Get(2), 1e-9)
	assert.InDelta(t, 180, angles.Get(3), 1e-9)
	assert.InDelta(t, 270, angles.Get(4), 1e-9)
	assert.InDelta(t, c.Convert(100), angles.Get(5), 1e-9)

	// pure: same input, same output
	assert.Equal(t, angles, c.JointAngles(pos))
}

func TestAngleConverter_PositionsRoundTrip(t *testing.T) {
	c := DefaultAngleConverter()
	pos := Vector5{1200, 300, 10, 4000, 2048}

	back := c.Positions(c.JointAngles(pos))
	for i := range pos {
		assert.InDelta(t, pos[i], back[i], 1e-9, "slot %d", i+1)
	}
}
