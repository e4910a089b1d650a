package terrain

import (
	"math/rand"
	"time"
)

// Source is the random stream faults are sampled from. *rand.Rand
// satisfies it.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// NewSource returns a seeded generator. A zero seed is replaced by the
// current time.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// sign draws +1 or -1 with equal probability.
func sign(src Source) float64 {
	if src.Intn(2) == 0 {
		return 1
	}
	return -1
}
