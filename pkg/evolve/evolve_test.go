package evolve

import (
	"math"
	"math/rand"
	"sync/atomic"
)

// gene is the single-float test genome: fitness peaks at 0.7 and falls off
// linearly. evals counts genome scorings so cache behavior is observable.
type gene struct {
	value float64
	evals *atomic.Int64
}

func newGene(rng *rand.Rand) *gene {
	return &gene{value: rng.Float64()}
}

func (g *gene) Clone() *gene {
	return &gene{value: g.value, evals: g.evals}
}

func (g *gene) Evaluate() float64 {
	if g.evals != nil {
		g.evals.Add(1)
	}
	return -math.Abs(g.value - 0.7)
}

func (g *gene) Crossover(other *gene, rng *rand.Rand) {
	blend := rng.Float64()
	a := blend*g.value + (1-blend)*other.value
	b := blend*other.value + (1-blend)*g.value
	g.value, other.value = a, b
}

func (g *gene) Mutate(rng *rand.Rand) {
	g.value += rng.NormFloat64() * 0.1
}

// fixedGene carries a constant fitness, for tests that need exact values.
type fixedGene struct {
	fitness float64
}

func (g *fixedGene) Clone() *fixedGene {
	return &fixedGene{fitness: g.fitness}
}

func (g *fixedGene) Evaluate() float64 {
	return g.fitness
}

func (g *fixedGene) Crossover(_ *fixedGene, _ *rand.Rand) {}

func (g *fixedGene) Mutate(_ *rand.Rand) {}

func fixedPopulation(fitnesses ...float64) *Population[*fixedGene] {
	members := make([]*Individual[*fixedGene], len(fitnesses))
	for i, f := range fitnesses {
		members[i] = NewIndividual(&fixedGene{fitness: f})
		members[i].Evaluate()
	}
	return NewPopulation(members)
}
