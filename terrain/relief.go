package terrain

import (
	"errors"
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

var ErrUnknownRelief = errors.New("terrain: unknown relief")

// Relief is the noise laid down on a grid before faulting.
type Relief int

const (
	ReliefFlat Relief = iota
	ReliefPerlin
	ReliefSimplex
)

func (r Relief) String() string {
	switch r {
	case ReliefFlat:
		return "flat"
	case ReliefPerlin:
		return "perlin"
	case ReliefSimplex:
		return "simplex"
	}
	return fmt.Sprintf("Relief(%d)", int(r))
}

func ParseRelief(name string) (Relief, error) {
	switch name {
	case "flat", "":
		return ReliefFlat, nil
	case "perlin":
		return ReliefPerlin, nil
	case "simplex":
		return ReliefSimplex, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRelief, name)
}

func (r Relief) noise(seed int64) (func(x, y float64) float64, error) {
	switch r {
	case ReliefFlat:
		return nil, nil
	case ReliefPerlin:
		p := perlin.NewPerlin(2, 2, 3, seed)
		return p.Noise2D, nil
	case ReliefSimplex:
		return opensimplex.New(seed).Eval2, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownRelief, r)
}

// ApplyRelief adds amplitude*noise(x*scale, y*scale) to every cell of g.
// ReliefFlat leaves g untouched.
func ApplyRelief(g *Grid, r Relief, seed int64, amplitude, scale float64) error {
	noise, err := r.noise(seed)
	if err != nil {
		return err
	}
	if noise == nil {
		return nil
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i := y*g.Width + x
			g.Cells[i] = clamp(g.Cells[i] + amplitude*noise(float64(x)*scale, float64(y)*scale))
		}
	}
	return nil
}
