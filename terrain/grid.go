package terrain

import (
	"errors"
	"fmt"
)

// Elevation band
const (
	MaxElevation = 500
	MinElevation = -500
)

// MaxCells caps a single grid allocation.
const MaxCells = 1 << 26

var (
	ErrInvalidDimensions = errors.New("terrain: invalid dimensions")
	ErrGridTooLarge      = errors.New("terrain: grid too large")
)

// Grid is a row-major elevation buffer. Cells[y*Width+x] holds the
// elevation of (x, y).
type Grid struct {
	Width, Height int
	Cells         []float64
}

// NewGrid allocates a zeroed width x height grid.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > MaxCells/height {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrGridTooLarge, width, height, MaxCells)
	}

	return &Grid{
		Width:  width,
		Height: height,
		Cells:  make([]float64, width*height),
	}, nil
}

// Reset zeroes every cell.
func (g *Grid) Reset() {
	clear(g.Cells)
}

func (g *Grid) Index(x, y int) int {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		panic(fmt.Sprintf("terrain: cell (%d, %d) outside %dx%d grid", x, y, g.Width, g.Height))
	}
	return y*g.Width + x
}

func (g *Grid) At(x, y int) float64 {
	return g.Cells[g.Index(x, y)]
}

func (g *Grid) Set(x, y int, v float64) {
	g.Cells[g.Index(x, y)] = v
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	cells := make([]float64, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{Width: g.Width, Height: g.Height, Cells: cells}
}

// Stats summarises a grid for logging.
type Stats struct {
	Min, Max, Mean float64
	// Fraction of cells above sea level (elevation > 0).
	Land float64
}

func (g *Grid) Stats() Stats {
	if len(g.Cells) == 0 {
		return Stats{}
	}

	s := Stats{Min: g.Cells[0], Max: g.Cells[0]}
	sum := 0.0
	land := 0
	for _, v := range g.Cells {
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
		sum += v
		if v > 0 {
			land++
		}
	}
	s.Mean = sum / float64(len(g.Cells))
	s.Land = float64(land) / float64(len(g.Cells))
	return s
}

func clamp(v float64) float64 {
	return max(min(v, MaxElevation), MinElevation)
}
