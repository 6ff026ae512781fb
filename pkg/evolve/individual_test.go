package evolve

import (
	"math/rand"
	"sync/atomic"
	"testing"
)

func countedGene(value float64) (*Individual[*gene], *atomic.Int64) {
	var evals atomic.Int64
	return NewIndividual(&gene{value: value, evals: &evals}), &evals
}

func TestEvaluateCachesFitness(t *testing.T) {
	ind, evals := countedGene(0.5)

	if _, ok := ind.Fitness(); ok {
		t.Fatal("fresh individual should not carry a valid fitness")
	}

	first := ind.Evaluate()
	second := ind.Evaluate()
	if first != second {
		t.Fatalf("cached fitness changed: %v vs %v", first, second)
	}
	if got := evals.Load(); got != 1 {
		t.Fatalf("expected 1 genome evaluation, got %d", got)
	}
	if fitness, ok := ind.Fitness(); !ok || fitness != first {
		t.Fatalf("cache not populated: fitness=%v ok=%t", fitness, ok)
	}
}

func TestMutateInvalidatesCache(t *testing.T) {
	ind, evals := countedGene(0.5)
	rng := rand.New(rand.NewSource(1))

	ind.Evaluate()
	ind.Mutate(rng)
	if _, ok := ind.Fitness(); ok {
		t.Fatal("mutation should invalidate the fitness cache")
	}

	ind.Evaluate()
	if got := evals.Load(); got != 2 {
		t.Fatalf("expected 2 genome evaluations, got %d", got)
	}
}

func TestCrossoverInvalidatesBothCaches(t *testing.T) {
	a, _ := countedGene(0.1)
	b, _ := countedGene(0.9)
	rng := rand.New(rand.NewSource(1))

	a.Evaluate()
	b.Evaluate()
	Crossover(a, b, rng)

	if _, ok := a.Fitness(); ok {
		t.Fatal("crossover should invalidate the first cache")
	}
	if _, ok := b.Fitness(); ok {
		t.Fatal("crossover should invalidate the second cache")
	}
}

func TestCloneCarriesCache(t *testing.T) {
	ind, evals := countedGene(0.5)
	fitness := ind.Evaluate()

	clone := ind.Clone()
	if got, ok := clone.Fitness(); !ok || got != fitness {
		t.Fatalf("clone lost the cache: fitness=%v ok=%t", got, ok)
	}
	clone.Evaluate()
	if got := evals.Load(); got != 1 {
		t.Fatalf("clone re-evaluated a valid cache: %d evaluations", got)
	}

	// The clone owns its genome; mutating it leaves the original intact.
	clone.Mutate(rand.New(rand.NewSource(1)))
	if _, ok := ind.Fitness(); !ok {
		t.Fatal("mutating the clone invalidated the original's cache")
	}
}
