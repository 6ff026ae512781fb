package evolve

import (
	"fmt"
	"math/rand"
)

// Selector samples individuals from an evaluated population. Implementations
// must draw all randomness from the supplied generator so selection stays a
// pure function of (population, rng).
type Selector[S Solution[S]] interface {
	Name() string

	// Select returns count population indices. Sampling is with
	// replacement; the same index may appear more than once.
	Select(rng *rand.Rand, pop *Population[S], count int) []int
}

// Tournament selects by repeatedly sampling size individuals uniformly at
// random with replacement and keeping the fittest. Within a round, the
// first-sampled individual wins ties, so the outcome is deterministic for a
// given stream.
type Tournament[S Solution[S]] struct {
	size int
}

// NewTournament validates the round size at construction.
func NewTournament[S Solution[S]](size int) (Tournament[S], error) {
	if size < 1 {
		return Tournament[S]{}, fmt.Errorf("tournament size must be >= 1, got %d", size)
	}
	return Tournament[S]{size: size}, nil
}

func (Tournament[S]) Name() string {
	return "tournament"
}

func (t Tournament[S]) Select(rng *rand.Rand, pop *Population[S], count int) []int {
	winners := make([]int, 0, count)
	for round := 0; round < count; round++ {
		best := rng.Intn(pop.Len())
		for i := 1; i < t.size; i++ {
			idx := rng.Intn(pop.Len())
			if pop.At(idx).fitness > pop.At(best).fitness {
				best = idx
			}
		}
		winners = append(winners, best)
	}
	return winners
}
