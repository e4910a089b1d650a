package terrain

import (
	"errors"
	"fmt"
	"math"
)

// GradientThreshold is the half-width of the band around a fault where the
// elevation change tapers instead of saturating.
const GradientThreshold = 7

var ErrUnknownShape = errors.New("terrain: unknown fault shape")

// Fault moves every cell of a grid according to its side of the fault.
type Fault interface {
	Apply(g *Grid)
}

// Shape selects how faults are sampled.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeLine
)

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeLine:
		return "line"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

func ParseShape(name string) (Shape, error) {
	switch name {
	case "circle", "":
		return ShapeCircle, nil
	case "line":
		return ShapeLine, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// Sample draws one fault of this shape for a width x height grid.
func (s Shape) Sample(src Source, width, height int) Fault {
	if s == ShapeLine {
		return SampleLineFault(src, width, height)
	}
	return SampleCircleFault(src, width, height)
}

// CircleFault raises the disk of Radius around the centre by Sign and
// lowers everything outside it. Distances wrap around the grid edges.
type CircleFault struct {
	CenterX, CenterY float64
	Radius           float64
	Sign             float64
}

func SampleCircleFault(src Source, width, height int) CircleFault {
	return CircleFault{
		CenterX: src.Float64() * float64(width),
		CenterY: src.Float64() * float64(height),
		Radius:  float64(min(width, height) / 3),
		Sign:    sign(src),
	}
}

// Apply mutates every cell of g. g must have positive dimensions.
func (f CircleFault) Apply(g *Grid) {
	w, h := g.Width, g.Height
	reach := f.Radius + GradientThreshold
	radiusSquared := f.Radius * f.Radius

	for x := 0; x < w; x++ {
		dx := wrap(x, w, f.CenterX, reach) - f.CenterX
		dxSquared := dx * dx
		for y := 0; y < h; y++ {
			dy := wrap(y, h, f.CenterY, reach) - f.CenterY
			dSquared := dxSquared + dy*dy

			distanceFromLine := math.Abs(math.Sqrt(dSquared) - f.Radius)
			delta := f.Sign * min(distanceFromLine, GradientThreshold)

			i := y*w + x
			if dSquared < radiusSquared {
				g.Cells[i] = clamp(g.Cells[i] + delta)
			} else {
				g.Cells[i] = clamp(g.Cells[i] - delta)
			}
		}
	}
}

// wrap moves coordinate c one full period towards center when it is
// further than reach from it on a straight line.
func wrap(c, period int, center, reach float64) float64 {
	v := float64(c)
	if math.Abs(v-center) <= reach {
		return v
	}
	if v > center {
		return v - float64(period)
	}
	return v + float64(period)
}

// LineFault splits the grid along y = Slope*x + Intercept. Cells below the
// line in grid coordinates (larger y) move by Sign, the rest by -Sign.
type LineFault struct {
	Slope, Intercept float64
	Sign             float64
}

func SampleLineFault(src Source, width, height int) LineFault {
	slope := src.Float64() * 10
	orientation := src.Float64()
	if orientation < 0.5 && slope != 0 {
		slope = 1 / slope
	}
	if orientation < 0.25 || orientation >= 0.75 {
		slope = -slope
	}
	centerX := src.Float64() * float64(width)
	centerY := src.Float64() * float64(height)

	return LineFault{
		Slope:     slope,
		Intercept: centerY - slope*centerX,
		Sign:      sign(src),
	}
}

func (f LineFault) Apply(g *Grid) {
	divisor := math.Sqrt(1 + f.Slope*f.Slope)

	for y := 0; y < g.Height; y++ {
		row := g.Cells[y*g.Width : (y+1)*g.Width]
		for x := range row {
			line := f.Slope*float64(x) + f.Intercept
			delta := f.Sign * min(math.Abs(line-float64(y))/divisor, GradientThreshold)
			if line < float64(y) {
				row[x] = clamp(row[x] + delta)
			} else {
				row[x] = clamp(row[x] - delta)
			}
		}
	}
}

// AddFault samples one circle fault and applies it to g.
func AddFault(g *Grid, src Source) {
	SampleCircleFault(src, g.Width, g.Height).Apply(g)
}
