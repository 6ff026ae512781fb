package problem

import (
	"context"
	"fmt"

	"mendel/internal/model"
	"mendel/pkg/evolve"
)

// Algorithm names accepted by RunOptions.
const (
	AlgorithmMuPlusLambda  = "mu_plus_lambda"
	AlgorithmMuCommaLambda = "mu_comma_lambda"
	AlgorithmSimple        = "simple"
)

// RunOptions parameterizes one run of a registered problem.
type RunOptions struct {
	Algorithm      string
	Mu             int
	Lambda         int
	Cxpb           float64
	Mutpb          float64
	TournamentSize int
	ArchiveSize    int
	Generations    int
	ResetPeriod    int
	Workers        int
	Seed           evolve.Seed

	// OnGeneration, when set, is invoked after every logged generation.
	OnGeneration func(generation int, stats evolve.GenerationStats)
}

func (o *RunOptions) applyDefaults() {
	if o.Algorithm == "" {
		o.Algorithm = AlgorithmMuPlusLambda
	}
	if o.Mu == 0 {
		o.Mu = 50
	}
	if o.Lambda == 0 {
		o.Lambda = o.Mu
	}
	if o.TournamentSize == 0 {
		o.TournamentSize = 3
	}
	if o.ArchiveSize == 0 {
		o.ArchiveSize = 1
	}
	if o.Workers <= 0 {
		o.Workers = 1
	}
}

// Normalized returns a copy with defaults filled in, so callers that record
// the options see the values the run actually used.
func (o RunOptions) Normalized() RunOptions {
	o.applyDefaults()
	return o
}

func (o RunOptions) validate() error {
	if o.Generations < 1 {
		return fmt.Errorf("generations must be >= 1, got %d", o.Generations)
	}
	return nil
}

// Outcome is the flattened, genome-erased result of a run, ready for the
// archive and the CLI.
type Outcome struct {
	Problem        string
	Algorithm      string
	Seed           evolve.Seed
	Generations    int
	BestFitness    float64
	BestGenome     string
	FitnessHistory []float64
	Diagnostics    []model.GenerationDiagnostics
	HallOfFame     []model.HallOfFameEntry
}

// Runner executes a problem end to end with the given options.
type Runner func(ctx context.Context, opts RunOptions) (Outcome, error)

// run is the generic glue every registered problem shares: it assembles the
// selector, algorithm, archive, and driver for a genome type and flattens the
// resulting log. describe renders a genome for display and archiving.
func run[S evolve.Solution[S]](ctx context.Context, name string, opts RunOptions, generate evolve.Generator[S], describe func(S) string) (Outcome, error) {
	opts.applyDefaults()
	if err := opts.validate(); err != nil {
		return Outcome{}, err
	}

	selector, err := evolve.NewTournament[S](opts.TournamentSize)
	if err != nil {
		return Outcome{}, err
	}

	algCfg := evolve.AlgorithmConfig[S]{
		Mu:       opts.Mu,
		Lambda:   opts.Lambda,
		Cxpb:     opts.Cxpb,
		Mutpb:    opts.Mutpb,
		Selector: selector,
	}

	var algorithm evolve.Algorithm[S]
	switch opts.Algorithm {
	case AlgorithmMuPlusLambda:
		algorithm, err = evolve.NewMuPlusLambda(algCfg)
	case AlgorithmMuCommaLambda:
		algorithm, err = evolve.NewMuCommaLambda(algCfg)
	case AlgorithmSimple:
		algorithm, err = evolve.NewSimple(algCfg)
	default:
		return Outcome{}, fmt.Errorf("unsupported algorithm: %s", opts.Algorithm)
	}
	if err != nil {
		return Outcome{}, err
	}

	hof, err := evolve.NewBestN[S](opts.ArchiveSize)
	if err != nil {
		return Outcome{}, err
	}

	evo, err := evolve.New(evolve.Config[S]{
		Algorithm:   algorithm,
		HallOfFame:  hof,
		Generator:   generate,
		Seed:        opts.Seed,
		Workers:     opts.Workers,
		ResetPeriod: opts.ResetPeriod,
	})
	if err != nil {
		return Outcome{}, err
	}

	var callback func(evolve.GenerationRecord[S])
	if opts.OnGeneration != nil {
		callback = func(rec evolve.GenerationRecord[S]) {
			opts.OnGeneration(rec.Generation, rec.Stats)
		}
	}

	log, err := evo.RunUntilWith(ctx, func(rec evolve.GenerationRecord[S]) bool {
		return rec.Generation >= opts.Generations-1
	}, callback)
	if err != nil {
		return Outcome{}, err
	}

	return flatten(name, opts, log, describe), nil
}

func flatten[S evolve.Solution[S]](name string, opts RunOptions, log evolve.Log[S], describe func(S) string) Outcome {
	out := Outcome{
		Problem:     name,
		Algorithm:   opts.Algorithm,
		Seed:        log.Seed,
		Generations: len(log.Records),
	}

	out.FitnessHistory = make([]float64, 0, len(log.Records))
	out.Diagnostics = make([]model.GenerationDiagnostics, 0, len(log.Records))
	for _, rec := range log.Records {
		out.FitnessHistory = append(out.FitnessHistory, rec.Stats.BestFitness)
		out.Diagnostics = append(out.Diagnostics, model.GenerationDiagnostics{
			Generation:   rec.Generation,
			BestFitness:  rec.Stats.BestFitness,
			MeanFitness:  rec.Stats.MeanFitness,
			MinFitness:   rec.Stats.MinFitness,
			StdevFitness: rec.Stats.StdevFitness,
		})
	}

	out.HallOfFame = make([]model.HallOfFameEntry, 0, len(log.HallOfFame))
	for rank, entry := range log.HallOfFame {
		out.HallOfFame = append(out.HallOfFame, model.HallOfFameEntry{
			Rank:       rank + 1,
			Fitness:    entry.Fitness,
			Generation: entry.Generation,
			Genome:     describe(entry.Solution),
		})
	}

	if best, ok := bestEntry(log); ok {
		out.BestFitness = best.Fitness
		out.BestGenome = describe(best.Solution)
	}
	return out
}

func bestEntry[S evolve.Solution[S]](log evolve.Log[S]) (evolve.Entry[S], bool) {
	if len(log.HallOfFame) == 0 {
		return evolve.Entry[S]{}, false
	}
	return log.HallOfFame[0], true
}
