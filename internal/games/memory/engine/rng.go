package engine

import (
	"math/rand"
	"time"
)

// Random is the random source used for shuffling.
type Random interface {
	// IntRange returns a uniform integer in [a, b].
	IntRange(a, b int) int
}

// Rand is the default Random backed by math/rand.
type Rand struct {
	r *rand.Rand
}

// NewRand creates a seeded Random. A zero seed uses the current time.
func NewRand(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// IntRange returns a uniform integer in [a, b]. It returns a when b <= a.
func (r *Rand) IntRange(a, b int) int {
	if b <= a {
		return a
	}
	return a + r.r.Intn(b-a+1)
}
