package evolve

import (
	"context"
	"fmt"
)

// Algorithm advances a population by one generation. Step receives exclusive
// access to the population for the duration of the call and must leave every
// surviving individual with a valid fitness.
type Algorithm[S Solution[S]] interface {
	Name() string

	// PopulationSize is the population size the algorithm maintains; the
	// evolution driver uses it to build the initial population.
	PopulationSize() int

	// Step produces the next generation in place. All randomness is derived
	// from streams keyed by the generation index, so the outcome is
	// independent of worker scheduling.
	Step(ctx context.Context, streams *Streams, pop *Population[S], generation, workers int) error
}

// AlgorithmConfig carries the parameters shared by the built-in algorithms.
type AlgorithmConfig[S Solution[S]] struct {
	// Mu is the population size maintained between generations.
	Mu int
	// Lambda is the number of offspring produced per generation.
	Lambda int
	// Cxpb is the per-pair crossover probability, in [0, 1].
	Cxpb float64
	// Mutpb is the per-offspring mutation probability, in [0, 1].
	Mutpb float64
	// Selector draws parents from the evaluated population.
	Selector Selector[S]
}

func (cfg AlgorithmConfig[S]) validate() error {
	if cfg.Mu < 1 {
		return fmt.Errorf("mu must be >= 1, got %d", cfg.Mu)
	}
	if cfg.Lambda < 1 {
		return fmt.Errorf("lambda must be >= 1, got %d", cfg.Lambda)
	}
	if cfg.Cxpb < 0 || cfg.Cxpb > 1 {
		return fmt.Errorf("cxpb must be in [0, 1], got %v", cfg.Cxpb)
	}
	if cfg.Mutpb < 0 || cfg.Mutpb > 1 {
		return fmt.Errorf("mutpb must be in [0, 1], got %v", cfg.Mutpb)
	}
	if cfg.Selector == nil {
		return fmt.Errorf("selector is required")
	}
	return nil
}

// MuPlusLambda implements the (μ + λ) strategy: λ offspring are bred from
// the current μ individuals, and the next generation is the μ best of
// parents and offspring together. Parents precede offspring in the union, so
// stable sorting breaks fitness ties in favor of the incumbent.
type MuPlusLambda[S Solution[S]] struct {
	cfg AlgorithmConfig[S]
}

// NewMuPlusLambda validates the configuration at construction; invalid
// probabilities or sizes never reach a running generation step.
func NewMuPlusLambda[S Solution[S]](cfg AlgorithmConfig[S]) (*MuPlusLambda[S], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &MuPlusLambda[S]{cfg: cfg}, nil
}

func (*MuPlusLambda[S]) Name() string {
	return "mu_plus_lambda"
}

func (a *MuPlusLambda[S]) PopulationSize() int {
	return a.cfg.Mu
}

func (a *MuPlusLambda[S]) Step(ctx context.Context, streams *Streams, pop *Population[S], generation, workers int) error {
	if pop.Len() != a.cfg.Mu {
		return fmt.Errorf("population size mismatch: got=%d want=%d", pop.Len(), a.cfg.Mu)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	offspring := breedOffspring(streams, pop, a.cfg, a.cfg.Lambda, generation)
	if err := offspring.EvaluateAll(ctx, workers); err != nil {
		return err
	}

	union := make([]*Individual[S], 0, pop.Len()+offspring.Len())
	union = append(union, pop.Members()...)
	union = append(union, offspring.Members()...)
	merged := NewPopulation(union)
	merged.SortByFitness()
	pop.replaceMembers(merged.Members()[:a.cfg.Mu])
	return nil
}

// MuCommaLambda implements the (μ, λ) strategy: the next generation is the μ
// best of the λ offspring alone, so parents never survive a step. Requires
// μ ≤ λ.
type MuCommaLambda[S Solution[S]] struct {
	cfg AlgorithmConfig[S]
}

func NewMuCommaLambda[S Solution[S]](cfg AlgorithmConfig[S]) (*MuCommaLambda[S], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Mu > cfg.Lambda {
		return nil, fmt.Errorf("(μ, λ) requires mu <= lambda, got mu=%d lambda=%d", cfg.Mu, cfg.Lambda)
	}
	return &MuCommaLambda[S]{cfg: cfg}, nil
}

func (*MuCommaLambda[S]) Name() string {
	return "mu_comma_lambda"
}

func (a *MuCommaLambda[S]) PopulationSize() int {
	return a.cfg.Mu
}

func (a *MuCommaLambda[S]) Step(ctx context.Context, streams *Streams, pop *Population[S], generation, workers int) error {
	if pop.Len() != a.cfg.Mu {
		return fmt.Errorf("population size mismatch: got=%d want=%d", pop.Len(), a.cfg.Mu)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	offspring := breedOffspring(streams, pop, a.cfg, a.cfg.Lambda, generation)
	if err := offspring.EvaluateAll(ctx, workers); err != nil {
		return err
	}

	offspring.SortByFitness()
	pop.replaceMembers(offspring.Members()[:a.cfg.Mu])
	return nil
}

// Simple replaces the whole population every generation: N individuals are
// selected out of N (necessarily with duplicates for a stochastic selector),
// then crossover and mutation are applied in place across adjacent slots.
type Simple[S Solution[S]] struct {
	cfg AlgorithmConfig[S]
}

// NewSimple builds the full-replacement algorithm. Lambda is ignored; the
// population size is Mu throughout.
func NewSimple[S Solution[S]](cfg AlgorithmConfig[S]) (*Simple[S], error) {
	if cfg.Lambda == 0 {
		cfg.Lambda = cfg.Mu
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Simple[S]{cfg: cfg}, nil
}

func (*Simple[S]) Name() string {
	return "simple"
}

func (a *Simple[S]) PopulationSize() int {
	return a.cfg.Mu
}

func (a *Simple[S]) Step(ctx context.Context, streams *Streams, pop *Population[S], generation, workers int) error {
	if pop.Len() != a.cfg.Mu {
		return fmt.Errorf("population size mismatch: got=%d want=%d", pop.Len(), a.cfg.Mu)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	gen := uint64(generation)
	next := make([]*Individual[S], a.cfg.Mu)
	for slot := 0; slot < a.cfg.Mu; slot++ {
		rng := streams.Derive(streamSelect, gen, uint64(slot))
		idx := a.cfg.Selector.Select(rng, pop, 1)[0]
		next[slot] = pop.At(idx).Clone()
	}

	// Vary in place: each slot may cross with its left neighbor and then
	// mutate, both on the slot's own stream.
	for slot := 0; slot < len(next); slot++ {
		rng := streams.Derive(streamVary, gen, uint64(slot))
		if slot != 0 && rng.Float64() < a.cfg.Cxpb {
			Crossover(next[slot-1], next[slot], rng)
		}
		if rng.Float64() < a.cfg.Mutpb {
			next[slot].Mutate(rng)
		}
	}

	replaced := NewPopulation(next)
	if err := replaced.EvaluateAll(ctx, workers); err != nil {
		return err
	}
	pop.replaceMembers(replaced.Members())
	return nil
}

// breedOffspring draws count parents through the selector and applies
// pairwise variation. Each selection slot and each pair derives its own
// stream from (generation, slot), keeping the outcome independent of
// evaluation order. Crossover and mutation probabilities are independent
// draws, not mutually exclusive; an unpaired trailing slot takes the
// mutation-only path.
func breedOffspring[S Solution[S]](streams *Streams, pop *Population[S], cfg AlgorithmConfig[S], count, generation int) *Population[S] {
	gen := uint64(generation)

	offspring := make([]*Individual[S], count)
	for slot := 0; slot < count; slot++ {
		rng := streams.Derive(streamSelect, gen, uint64(slot))
		idx := cfg.Selector.Select(rng, pop, 1)[0]
		offspring[slot] = pop.At(idx).Clone()
	}

	for slot := 0; slot+1 < count; slot += 2 {
		rng := streams.Derive(streamVary, gen, uint64(slot/2))
		if rng.Float64() < cfg.Cxpb {
			Crossover(offspring[slot], offspring[slot+1], rng)
		}
		if rng.Float64() < cfg.Mutpb {
			offspring[slot].Mutate(rng)
		}
		if rng.Float64() < cfg.Mutpb {
			offspring[slot+1].Mutate(rng)
		}
	}
	if count%2 == 1 {
		last := count - 1
		rng := streams.Derive(streamVary, gen, uint64(last/2))
		if rng.Float64() < cfg.Mutpb {
			offspring[last].Mutate(rng)
		}
	}

	return NewPopulation(offspring)
}
