package terrain

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

var ErrInvalidIterations = errors.New("terrain: invalid iterations")

// Config describes one generation run.
type Config struct {
	Width, Height int
	Iterations    int
	// Zero seeds from the clock.
	Seed  int64
	Shape Shape

	Relief          Relief
	ReliefAmplitude float64
	ReliefScale     float64
}

func DefaultConfig() Config {
	return Config{
		Width:           256,
		Height:          256,
		Iterations:      DefaultIterations,
		Shape:           ShapeCircle,
		Relief:          ReliefFlat,
		ReliefAmplitude: 40,
		ReliefScale:     0.02,
	}
}

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	var err error
	if c.Width <= 0 || c.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.Width, c.Height))
	} else if c.Width > MaxCells/c.Height {
		err = multierr.Append(err, fmt.Errorf("%w: %dx%d", ErrGridTooLarge, c.Width, c.Height))
	}
	if c.Iterations < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: %d", ErrInvalidIterations, c.Iterations))
	}
	if c.Shape != ShapeCircle && c.Shape != ShapeLine {
		err = multierr.Append(err, fmt.Errorf("%w: %v", ErrUnknownShape, c.Shape))
	}
	switch c.Relief {
	case ReliefFlat, ReliefPerlin, ReliefSimplex:
	default:
		err = multierr.Append(err, fmt.Errorf("%w: %v", ErrUnknownRelief, c.Relief))
	}
	return err
}

// Build validates c and returns a map with its relief already applied.
func (c Config) Build() (*Map, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	m, err := CreateBaseMap(c.Width, c.Height, c.Seed)
	if err != nil {
		return nil, err
	}
	m.Shape = c.Shape

	// Relief noise gets its own seed drawn from the map's stream so a fixed
	// Seed reproduces the whole run.
	reliefSeed := int64(m.src.Intn(1 << 30))
	if err := ApplyRelief(m.Grid, c.Relief, reliefSeed, c.ReliefAmplitude, c.ReliefScale); err != nil {
		return nil, err
	}
	return m, nil
}
