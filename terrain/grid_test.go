package terrain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)
	require.Len(t, g.Cells, 6)
	for i, v := range g.Cells {
		assert.Zero(t, v, "cell %d not zeroed", i)
	}
}

func TestNewGridRejects(t *testing.T) {
	tests := []struct {
		width, height int
		want          error
	}{
		{0, 10, ErrInvalidDimensions},
		{10, 0, ErrInvalidDimensions},
		{-1, -1, ErrInvalidDimensions},
		{MaxCells, 2, ErrGridTooLarge},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d", tt.width, tt.height), func(t *testing.T) {
			g, err := NewGrid(tt.width, tt.height)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGridResetClearsEveryCell(t *testing.T) {
	g, err := NewGrid(17, 9)
	require.NoError(t, err)
	for i := range g.Cells {
		g.Cells[i] = float64(i%11) - 5
	}

	g.Reset()

	for i, v := range g.Cells {
		assert.Zero(t, v, "cell %d survived reset", i)
	}
}

func TestGridIndex(t *testing.T) {
	g, err := NewGrid(4, 3)
	require.NoError(t, err)

	assert.Equal(t, 0, g.Index(0, 0))
	assert.Equal(t, 3, g.Index(3, 0))
	assert.Equal(t, 4, g.Index(0, 1))
	assert.Equal(t, 11, g.Index(3, 2))

	g.Set(2, 1, 42)
	assert.Equal(t, 42.0, g.At(2, 1))
	assert.Equal(t, 42.0, g.Cells[6])

	assert.Panics(t, func() { g.At(4, 0) })
	assert.Panics(t, func() { g.At(0, 3) })
	assert.Panics(t, func() { g.Set(-1, 0, 1) })
}

func TestGridClone(t *testing.T) {
	g, err := NewGrid(2, 2)
	require.NoError(t, err)
	g.Set(1, 1, 3)

	c := g.Clone()
	c.Set(1, 1, 9)

	assert.Equal(t, 3.0, g.At(1, 1))
	assert.Equal(t, 9.0, c.At(1, 1))
}

func TestGridStats(t *testing.T) {
	g := &Grid{Width: 2, Height: 2, Cells: []float64{-2, 0, 4, 2}}
	s := g.Stats()
	assert.Equal(t, -2.0, s.Min)
	assert.Equal(t, 4.0, s.Max)
	assert.Equal(t, 1.0, s.Mean)
	assert.Equal(t, 0.5, s.Land)
}
