package shared

import (
	"math/rand"
	"time"
)

// Random is an abstraction over the randomness used by the simulation
// (demand drift, bonus-output rolls, order generation), allowing tests
// to substitute a seeded source.
type Random interface {
	// Float64 returns a value in [0.0, 1.0)
	Float64() float64
	// Intn returns a value in [0, n)
	Intn(n int) int
}

type pseudoRandom struct {
	r *rand.Rand
}

// NewRandom creates a Random seeded from the current time
func NewRandom() Random {
	return &pseudoRandom{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededRandom creates a deterministic Random for tests
func NewSeededRandom(seed int64) Random {
	return &pseudoRandom{r: rand.New(rand.NewSource(seed))}
}

func (p *pseudoRandom) Float64() float64 {
	return p.r.Float64()
}

func (p *pseudoRandom) Intn(n int) int {
	return p.r.Intn(n)
}
