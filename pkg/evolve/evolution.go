package evolve

import (
	"context"
	"fmt"
)

// Config assembles one evolutionary run. All parameters are supplied
// programmatically; there is no ambient configuration.
type Config[S Solution[S]] struct {
	// Algorithm advances the population each generation.
	Algorithm Algorithm[S]
	// HallOfFame archives the best individuals across the run.
	HallOfFame HallOfFame[S]
	// Generator builds the initial population and any reset populations.
	Generator Generator[S]
	// Seed identifies the run's random stream. Use NewSeed for an explicit
	// value or ResolveSeed for env/entropy resolution.
	Seed Seed
	// Workers bounds the parallel fitness evaluation pool; <= 0 means 1.
	// The result of a run does not depend on this value.
	Workers int
	// ResetPeriod discards the live population every ResetPeriod
	// generations and regenerates it from scratch, preserving the hall of
	// fame. 0 disables resets.
	ResetPeriod int
}

// GenerationRecord is one entry of the run log: the generation index, the
// population statistics at that generation, and a snapshot of the hall of
// fame after observing it.
type GenerationRecord[S Solution[S]] struct {
	Generation int             `json:"generation"`
	Stats      GenerationStats `json:"stats"`
	HallOfFame []Entry[S]      `json:"hall_of_fame"`
}

// Log is the result of a run: the seed it can be reproduced with, the
// per-generation records, and the final state. Read-only once returned.
type Log[S Solution[S]] struct {
	Seed            Seed
	Records         []GenerationRecord[S]
	HallOfFame      []Entry[S]
	FinalPopulation *Population[S]
}

// Evolution orchestrates repeated generation steps: evaluate, observe in the
// hall of fame, log, check the stopping predicate, then either step the
// algorithm or perform a periodic full reset. The population is owned by the
// driver and handed to the algorithm exclusively for each step, so no
// locking exists anywhere in a run.
type Evolution[S Solution[S]] struct {
	cfg     Config[S]
	streams *Streams

	pop        *Population[S]
	generation int
	records    []GenerationRecord[S]
}

// New validates the configuration and builds the initial population from the
// generator, one derivation stream per slot.
func New[S Solution[S]](cfg Config[S]) (*Evolution[S], error) {
	if cfg.Algorithm == nil {
		return nil, fmt.Errorf("algorithm is required")
	}
	if cfg.HallOfFame == nil {
		return nil, fmt.Errorf("hall of fame is required")
	}
	if cfg.Generator == nil {
		return nil, fmt.Errorf("generator is required")
	}
	if cfg.ResetPeriod < 0 {
		return nil, fmt.Errorf("reset period must be >= 0, got %d", cfg.ResetPeriod)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	streams := NewStreams(cfg.Seed)
	return &Evolution[S]{
		cfg:     cfg,
		streams: streams,
		pop:     GeneratePopulation(cfg.Generator, cfg.Algorithm.PopulationSize(), streams, 0),
	}, nil
}

// Seed returns the resolved seed the run was built with.
func (e *Evolution[S]) Seed() Seed {
	return e.cfg.Seed
}

// RunFor runs exactly n generations (indices 0 through n-1) and returns the
// accumulated log.
func (e *Evolution[S]) RunFor(ctx context.Context, n int) (Log[S], error) {
	return e.RunUntil(ctx, func(rec GenerationRecord[S]) bool {
		return rec.Generation >= n-1
	})
}

// RunUntil runs generations until the predicate returns true for a logged
// generation. Termination is entirely caller-driven; there is no implicit
// generation cap. Generation 0 is the freshly generated initial population.
func (e *Evolution[S]) RunUntil(ctx context.Context, predicate func(GenerationRecord[S]) bool) (Log[S], error) {
	return e.RunUntilWith(ctx, predicate, nil)
}

// RunUntilWith additionally invokes callback for every logged generation,
// for progress reporting interleaved with the run.
func (e *Evolution[S]) RunUntilWith(ctx context.Context, predicate func(GenerationRecord[S]) bool, callback func(GenerationRecord[S])) (Log[S], error) {
	if predicate == nil {
		return Log[S]{}, fmt.Errorf("predicate is required")
	}

	for {
		if err := ctx.Err(); err != nil {
			return Log[S]{}, err
		}

		if err := e.pop.EvaluateAll(ctx, e.cfg.Workers); err != nil {
			return Log[S]{}, err
		}
		e.cfg.HallOfFame.Observe(e.generation, e.pop)

		rec := GenerationRecord[S]{
			Generation: e.generation,
			Stats:      Analyze(e.pop),
			HallOfFame: e.cfg.HallOfFame.Entries(),
		}
		e.records = append(e.records, rec)
		if callback != nil {
			callback(rec)
		}
		if predicate(rec) {
			break
		}

		e.generation++

		// The generation counter stays monotonic across resets, matching
		// the hall of fame's carry-over.
		if e.cfg.ResetPeriod > 0 && e.generation%e.cfg.ResetPeriod == 0 {
			e.pop = GeneratePopulation(e.cfg.Generator, e.cfg.Algorithm.PopulationSize(), e.streams, uint64(e.generation))
			continue
		}

		if err := e.cfg.Algorithm.Step(ctx, e.streams, e.pop, e.generation, e.cfg.Workers); err != nil {
			return Log[S]{}, err
		}
	}

	return Log[S]{
		Seed:            e.cfg.Seed,
		Records:         e.records,
		HallOfFame:      e.cfg.HallOfFame.Entries(),
		FinalPopulation: e.pop,
	}, nil
}
