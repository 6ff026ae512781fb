package evolve

import "math/rand"

// Solution is the capability contract a candidate representation implements.
// The whole engine is generic over this interface; implement it on a pointer
// type to get anything done.
//
// Evaluate must be a pure function of the genome: it is called concurrently
// on distinct individuals, its result is cached, and it must return the same
// value every time for an unchanged genome. Keep randomness out of it.
// Crossover and Mutate modify genomes in place and must draw all randomness
// from the *rand.Rand they are handed, never from package-level state.
type Solution[S any] interface {
	// Clone returns a deep copy that shares no mutable state with the
	// receiver.
	Clone() S

	// Evaluate scores the genome. Higher is always better.
	Evaluate() float64

	// Crossover exchanges genetic material between the receiver and other,
	// mutating both in place.
	Crossover(other S, rng *rand.Rand)

	// Mutate perturbs the genome in place.
	Mutate(rng *rand.Rand)
}

// Generator produces one random candidate from the supplied stream.
type Generator[S Solution[S]] func(rng *rand.Rand) S
