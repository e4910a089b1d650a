package terrain

// MaxMoisture is the wettest value a moisture map holds.
const MaxMoisture = 100

// MoistureMap is a moisture field laid over an elevation grid.
type MoistureMap struct {
	Elevation *Grid
	Moisture  *Grid
}

func NewMoistureMap(elevation *Grid) (*MoistureMap, error) {
	moisture, err := NewGrid(elevation.Width, elevation.Height)
	if err != nil {
		return nil, err
	}
	return &MoistureMap{Elevation: elevation, Moisture: moisture}, nil
}

// Generate resets the map and fills the rectangle [minX,maxX) x [minY,maxY)
// with a ramp peaking at maxX/2 and falling off to both sides.
func (m *MoistureMap) Generate(minX, minY, maxX, maxY int) *Grid {
	g := m.Moisture
	g.Reset()

	minX, maxX = max(minX, 0), min(maxX, g.Width)
	minY, maxY = max(minY, 0), min(maxY, g.Height)
	if minX >= maxX || minY >= maxY {
		return g
	}

	half := float64(maxX) / 2
	for x := minX; x < maxX; x++ {
		var level float64
		if float64(x) < half {
			level = float64(x) / half * MaxMoisture
		} else {
			level = float64(maxX-x) / half * MaxMoisture
		}
		for y := minY; y < maxY; y++ {
			g.Cells[y*g.Width+x] = level
		}
	}
	return g
}
