package terrain

// DefaultIterations is the number of faults applied when the caller does
// not ask for a positive count.
const DefaultIterations = 1000

// Generate applies iterations circle faults to g and returns g.
func Generate(g *Grid, src Source, iterations int) *Grid {
	return GenerateShape(g, src, ShapeCircle, iterations)
}

func GenerateShape(g *Grid, src Source, shape Shape, iterations int) *Grid {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	for i := 0; i < iterations; i++ {
		shape.Sample(src, g.Width, g.Height).Apply(g)
	}
	return g
}
