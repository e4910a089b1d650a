package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoistureMapRamp(t *testing.T) {
	m, err := NewMoistureMap(mustGrid(t, 10, 4))
	require.NoError(t, err)

	g := m.Generate(0, 0, 10, 4)

	for y := 0; y < 4; y++ {
		assert.Zero(t, g.At(0, y))
		assert.InDelta(t, 40.0, g.At(2, y), 1e-9)
		assert.InDelta(t, float64(MaxMoisture), g.At(5, y), 1e-9)
		assert.InDelta(t, 20.0, g.At(9, y), 1e-9)
	}
}

func TestMoistureMapClipsAndResets(t *testing.T) {
	m, err := NewMoistureMap(mustGrid(t, 10, 4))
	require.NoError(t, err)

	full := m.Generate(-5, -5, 100, 100).Clone()
	assert.InDelta(t, float64(MaxMoisture), full.At(5, 3), 1e-9, "ramp peaks at the clipped width")
	assert.InDelta(t, 20.0, full.At(9, 3), 1e-9)

	g := m.Generate(2, 1, 6, 3)
	assert.Zero(t, g.At(0, 0), "outside the rectangle")
	assert.Zero(t, g.At(7, 2), "stale values cleared")
	assert.InDelta(t, 2.0/3*MaxMoisture, g.At(2, 1), 1e-9)

	g = m.Generate(5, 0, 5, 4)
	assert.Equal(t, make([]float64, 40), g.Cells)
}
