package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBaseMap(t *testing.T) {
	m, err := CreateBaseMap(16, 12, 5)
	require.NoError(t, err)

	assert.Len(t, m.Elevations(), 16*12)
	assert.Equal(t, make([]float64, 16*12), m.Elevations())
	assert.Equal(t, ShapeCircle, m.Shape)

	_, err = CreateBaseMap(0, 12, 5)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestMapFaultAndReset(t *testing.T) {
	m, err := CreateBaseMap(16, 16, 5)
	require.NoError(t, err)

	m.AddFault()
	assert.NotEqual(t, make([]float64, 256), m.Elevations())

	m.ResetMap()
	assert.Equal(t, make([]float64, 256), m.Elevations())
}

func TestMapGenerateElevationsSharesBuffer(t *testing.T) {
	m, err := CreateBaseMap(10, 10, 8)
	require.NoError(t, err)

	g := m.GenerateElevations(5)
	assert.Same(t, m.Grid, g)

	direct := mustGrid(t, 10, 10)
	Generate(direct, NewSource(8), 5)
	assert.Equal(t, direct.Cells, m.Elevations())
}

func TestMapRegenerate(t *testing.T) {
	a, err := CreateBaseMap(16, 16, 21)
	require.NoError(t, err)
	b, err := CreateBaseMap(16, 16, 21)
	require.NoError(t, err)

	a.AddFault()
	a.Regenerate(6)

	b.AddFault()
	b.ResetMap()
	b.GenerateElevations(6)

	assert.Equal(t, b.Elevations(), a.Elevations())
}

func TestNewMapUsesGivenSource(t *testing.T) {
	g := mustGrid(t, 4, 4)
	m := NewMap(g, &scriptedSource{floats: []float64{0.5, 0.5}, ints: []int{0}})

	m.AddFault()
	assert.Equal(t, 1.0, g.At(2, 2))
}
