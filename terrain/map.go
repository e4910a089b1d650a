package terrain

// Map pairs an elevation grid with the random stream that drives it.
type Map struct {
	Grid  *Grid
	Shape Shape
	src   Source
}

// CreateBaseMap allocates a zeroed width x height map seeded with seed. A
// zero seed is taken from the clock.
func CreateBaseMap(width, height int, seed int64) (*Map, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	return &Map{Grid: g, Shape: ShapeCircle, src: NewSource(seed)}, nil
}

// NewMap wraps an existing grid and source.
func NewMap(g *Grid, src Source) *Map {
	return &Map{Grid: g, Shape: ShapeCircle, src: src}
}

func (m *Map) GenerateElevations(iterations int) *Grid {
	return GenerateShape(m.Grid, m.src, m.Shape, iterations)
}

// AddFault applies a single fault of the map's shape.
func (m *Map) AddFault() {
	m.Shape.Sample(m.src, m.Grid.Width, m.Grid.Height).Apply(m.Grid)
}

func (m *Map) ResetMap() {
	m.Grid.Reset()
}

// Regenerate clears the map and faults it again from scratch.
func (m *Map) Regenerate(iterations int) *Grid {
	m.ResetMap()
	return m.GenerateElevations(iterations)
}

// Elevations exposes the row-major cell buffer, index y*Width+x.
func (m *Map) Elevations() []float64 {
	return m.Grid.Cells
}
