package evolve

import "math/rand"

// Individual pairs a genome with a lazily cached fitness. The cache is valid
// only while the genome is untouched: Mutate and Crossover invalidate it, so
// the next Evaluate re-scores the genome.
type Individual[S Solution[S]] struct {
	genome    S
	fitness   float64
	evaluated bool
}

// NewIndividual wraps a genome with an empty fitness cache.
func NewIndividual[S Solution[S]](genome S) *Individual[S] {
	return &Individual[S]{genome: genome}
}

// Genome returns the wrapped genome. Mutating it directly bypasses cache
// invalidation; use Mutate and Crossover instead.
func (ind *Individual[S]) Genome() S {
	return ind.genome
}

// Fitness returns the cached fitness and whether the cache is valid.
func (ind *Individual[S]) Fitness() (float64, bool) {
	return ind.fitness, ind.evaluated
}

// Evaluate returns the individual's fitness, scoring the genome only when
// the cache is invalid. Safe to call concurrently on distinct individuals.
func (ind *Individual[S]) Evaluate() float64 {
	if !ind.evaluated {
		ind.fitness = ind.genome.Evaluate()
		ind.evaluated = true
	}
	return ind.fitness
}

// Mutate perturbs the genome and invalidates the fitness cache.
func (ind *Individual[S]) Mutate(rng *rand.Rand) {
	ind.genome.Mutate(rng)
	ind.evaluated = false
}

// Crossover exchanges genetic material between a and b and invalidates both
// fitness caches.
func Crossover[S Solution[S]](a, b *Individual[S], rng *rand.Rand) {
	a.genome.Crossover(b.genome, rng)
	a.evaluated = false
	b.evaluated = false
}

// Clone deep-copies the individual, carrying the fitness cache along.
func (ind *Individual[S]) Clone() *Individual[S] {
	return &Individual[S]{
		genome:    ind.genome.Clone(),
		fitness:   ind.fitness,
		evaluated: ind.evaluated,
	}
}
