package service

import (
	"math/rand"
	"sync"
	"time"
)

// rng is a mutex-guarded source of pseudo-random values shared by the mock
// generators. math/rand.Rand is not safe for concurrent use, and handlers
// run on arbitrary goroutines.
type rng struct {
	mu sync.Mutex
	r  *rand.Rand
}

func newRNG(seed int64) *rng {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &rng{r: rand.New(rand.NewSource(seed))}
}

func (g *rng) Float64() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.r.Float64()
}

func (g *rng) Intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.r.Intn(n)
}

// Uniform returns a value in [lo, hi).
func (g *rng) Uniform(lo, hi float64) float64 {
	return lo + g.Float64()*(hi-lo)
}

// IntBetween returns a value in [lo, hi).
func (g *rng) IntBetween(lo, hi int) int {
	return lo + g.Intn(hi-lo)
}
