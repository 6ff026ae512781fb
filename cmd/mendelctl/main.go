package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"mendel/internal/archive"
	"mendel/internal/model"
	"mendel/internal/problem"
	"mendel/internal/profile"
	"mendel/pkg/evolve"
)

const exportsDir = "exports"

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "run":
		return runRun(ctx, args[1:])
	case "profile":
		return runProfile(ctx, args[1:])
	case "runs":
		return runRuns(ctx, args[1:])
	case "fitness":
		return runFitness(ctx, args[1:])
	case "hof":
		return runHallOfFame(ctx, args[1:])
	case "export":
		return runExport(ctx, args[1:])
	case "problems":
		return runProblems(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: mendelctl <run|profile|runs|fitness|hof|export|problems> [flags]", msg)
}

func runRun(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	problemName := fs.String("problem", "sphere", "problem name (see `mendelctl problems`)")
	algorithm := fs.String("algorithm", problem.AlgorithmMuPlusLambda, "algorithm: mu_plus_lambda|mu_comma_lambda|simple")
	mu := fs.Int("mu", 50, "population size (mu)")
	lambda := fs.Int("lambda", 0, "offspring count (lambda, 0 means mu)")
	cxpb := fs.Float64("cxpb", 0.5, "per-pair crossover probability")
	mutpb := fs.Float64("mutpb", 0.2, "per-offspring mutation probability")
	tournament := fs.Int("tournament", 3, "tournament size")
	archiveSize := fs.Int("archive-size", 1, "hall of fame size")
	generations := fs.Int("gens", 100, "generation count")
	resetPeriod := fs.Int("reset-period", 0, "full population reset period (0 disables)")
	workers := fs.Int("workers", 4, "parallel evaluation workers")
	seedValue := fs.Uint64("seed", 0, "explicit rng seed (omit to resolve from "+evolve.SeedEnvVar+" or entropy)")
	progress := fs.Bool("progress", false, "print per-generation best fitness")
	jsonOut := fs.Bool("json", false, "emit the run summary as JSON")
	storeKind := fs.String("store", archive.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "mendel.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	seed := evolve.ResolveSeed()
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seed = evolve.NewSeed(*seedValue)
		}
	})
	warnSeedFallback(seed)

	opts := problem.RunOptions{
		Algorithm:      *algorithm,
		Mu:             *mu,
		Lambda:         *lambda,
		Cxpb:           *cxpb,
		Mutpb:          *mutpb,
		TournamentSize: *tournament,
		ArchiveSize:    *archiveSize,
		Generations:    *generations,
		ResetPeriod:    *resetPeriod,
		Workers:        *workers,
		Seed:           seed,
	}
	opts = opts.Normalized()
	if *progress {
		opts.OnGeneration = func(generation int, stats evolve.GenerationStats) {
			fmt.Printf("gen=%d best=%.6f mean=%.6f\n", generation, stats.BestFitness, stats.MeanFitness)
		}
	}

	store, err := archive.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = archive.CloseIfSupported(store)
	}()
	if err := store.Init(ctx); err != nil {
		return err
	}

	runID, outcome, err := executeAndArchive(ctx, store, *problemName, opts)
	if err != nil {
		return err
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runRecordFrom(runID, opts, outcome))
	}

	fmt.Printf("run_id=%s problem=%s algorithm=%s seed=%d gens=%d best_fitness=%.6f\n",
		runID, outcome.Problem, outcome.Algorithm, outcome.Seed.Value, outcome.Generations, outcome.BestFitness)
	fmt.Printf("best: %s\n", outcome.BestGenome)
	return nil
}

func runProfile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	path := fs.String("file", "", "profile YAML path")
	storeKind := fs.String("store", archive.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "mendel.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return errors.New("profile requires -file")
	}

	f, err := profile.Load(*path)
	if err != nil {
		return err
	}

	store, err := archive.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = archive.CloseIfSupported(store)
	}()
	if err := store.Init(ctx); err != nil {
		return err
	}

	for _, p := range f.Profiles {
		opts := p.RunOptions()
		warnSeedFallback(opts.Seed)
		runID, outcome, err := executeAndArchive(ctx, store, p.Problem, opts)
		if err != nil {
			return fmt.Errorf("profile %s: %w", p.Name, err)
		}
		fmt.Printf("profile=%s run_id=%s problem=%s seed=%d best_fitness=%.6f\n",
			p.Name, runID, outcome.Problem, outcome.Seed.Value, outcome.BestFitness)
	}
	return nil
}

func runRuns(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	limit := fs.Int("limit", 20, "max runs to list")
	jsonOut := fs.Bool("json", false, "emit runs list as JSON")
	storeKind := fs.String("store", archive.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "mendel.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *limit <= 0 {
		return errors.New("limit must be > 0")
	}

	store, err := archive.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = archive.CloseIfSupported(store)
	}()
	if err := store.Init(ctx); err != nil {
		return err
	}

	runs, err := store.ListRuns(ctx, *limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	if *jsonOut || !isatty.IsTerminal(os.Stdout.Fd()) {
		enc := json.NewEncoder(os.Stdout)
		for _, r := range runs {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RUN ID\tAGE\tPROBLEM\tALGORITHM\tSEED\tGENS\tBEST FITNESS")
	for _, r := range runs {
		age := r.CreatedAtUTC
		if created, err := time.Parse(time.RFC3339, r.CreatedAtUTC); err == nil {
			age = humanize.Time(created)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%.6f\n",
			r.RunID, age, r.Problem, r.Algorithm, r.Seed, r.Generations, r.BestFitness)
	}
	return w.Flush()
}

func runFitness(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("fitness", flag.ContinueOnError)
	runID := fs.String("run-id", "", "run id")
	latest := fs.Bool("latest", false, "use the most recent run")
	storeKind := fs.String("store", archive.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "mendel.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := archive.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = archive.CloseIfSupported(store)
	}()
	if err := store.Init(ctx); err != nil {
		return err
	}

	id, err := resolveRunID(ctx, store, *runID, *latest)
	if err != nil {
		return err
	}

	history, ok, err := store.GetFitnessHistory(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no fitness history for run %s", id)
	}
	for generation, best := range history {
		fmt.Printf("gen=%d best_fitness=%.6f\n", generation, best)
	}
	return nil
}

func runHallOfFame(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("hof", flag.ContinueOnError)
	runID := fs.String("run-id", "", "run id")
	latest := fs.Bool("latest", false, "use the most recent run")
	storeKind := fs.String("store", archive.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "mendel.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := archive.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = archive.CloseIfSupported(store)
	}()
	if err := store.Init(ctx); err != nil {
		return err
	}

	id, err := resolveRunID(ctx, store, *runID, *latest)
	if err != nil {
		return err
	}

	entries, ok, err := store.GetHallOfFame(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no hall of fame for run %s", id)
	}
	for _, e := range entries {
		fmt.Printf("rank=%d fitness=%.6f gen=%d genome=%s\n", e.Rank, e.Fitness, e.Generation, e.Genome)
	}
	return nil
}

func runExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	runID := fs.String("run-id", "", "run id")
	latest := fs.Bool("latest", false, "export the most recent run")
	outDir := fs.String("out", exportsDir, "export output directory")
	storeKind := fs.String("store", archive.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "mendel.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := archive.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = archive.CloseIfSupported(store)
	}()
	if err := store.Init(ctx); err != nil {
		return err
	}

	id, err := resolveRunID(ctx, store, *runID, *latest)
	if err != nil {
		return err
	}

	run, ok, err := store.GetRun(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("run not found: %s", id)
	}

	dir := filepath.Join(*outDir, id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	if err := writeJSON(filepath.Join(dir, "run.json"), run); err != nil {
		return err
	}
	if history, ok, err := store.GetFitnessHistory(ctx, id); err != nil {
		return err
	} else if ok {
		if err := writeJSON(filepath.Join(dir, "fitness.json"), history); err != nil {
			return err
		}
	}
	if diagnostics, ok, err := store.GetDiagnostics(ctx, id); err != nil {
		return err
	} else if ok {
		if err := writeJSON(filepath.Join(dir, "diagnostics.json"), diagnostics); err != nil {
			return err
		}
	}
	if entries, ok, err := store.GetHallOfFame(ctx, id); err != nil {
		return err
	} else if ok {
		if err := writeJSON(filepath.Join(dir, "hall_of_fame.json"), entries); err != nil {
			return err
		}
	}

	fmt.Printf("exported run_id=%s to=%s\n", id, filepath.Clean(dir))
	return nil
}

func runProblems(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("problems", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	for _, name := range problem.Names() {
		fmt.Println(name)
	}
	return nil
}

// executeAndArchive resolves the problem, runs it, and persists the complete
// result set under a fresh run id.
func executeAndArchive(ctx context.Context, store archive.Store, problemName string, opts problem.RunOptions) (string, problem.Outcome, error) {
	runner, err := problem.Resolve(problemName)
	if err != nil {
		return "", problem.Outcome{}, err
	}

	opts = opts.Normalized()
	outcome, err := runner(ctx, opts)
	if err != nil {
		return "", problem.Outcome{}, err
	}

	runID := uuid.NewString()
	if err := store.SaveRun(ctx, runRecordFrom(runID, opts, outcome)); err != nil {
		return "", problem.Outcome{}, err
	}
	if err := store.SaveFitnessHistory(ctx, runID, outcome.FitnessHistory); err != nil {
		return "", problem.Outcome{}, err
	}
	if err := store.SaveDiagnostics(ctx, runID, outcome.Diagnostics); err != nil {
		return "", problem.Outcome{}, err
	}
	if err := store.SaveHallOfFame(ctx, runID, outcome.HallOfFame); err != nil {
		return "", problem.Outcome{}, err
	}
	return runID, outcome, nil
}

func runRecordFrom(runID string, opts problem.RunOptions, outcome problem.Outcome) model.RunRecord {
	return model.RunRecord{
		VersionedRecord: model.VersionedRecord{
			SchemaVersion: archive.CurrentSchemaVersion,
			CodecVersion:  archive.CurrentCodecVersion,
		},
		RunID:          runID,
		CreatedAtUTC:   time.Now().UTC().Format(time.RFC3339),
		Problem:        outcome.Problem,
		Algorithm:      outcome.Algorithm,
		Seed:           outcome.Seed.Value,
		SeedSource:     string(outcome.Seed.Source),
		Mu:             opts.Mu,
		Lambda:         opts.Lambda,
		Cxpb:           opts.Cxpb,
		Mutpb:          opts.Mutpb,
		TournamentSize: opts.TournamentSize,
		ArchiveSize:    opts.ArchiveSize,
		ResetPeriod:    opts.ResetPeriod,
		Generations:    outcome.Generations,
		Workers:        opts.Workers,
		BestFitness:    outcome.BestFitness,
		BestGenome:     outcome.BestGenome,
	}
}

func resolveRunID(ctx context.Context, store archive.Store, runID string, latest bool) (string, error) {
	if runID != "" && latest {
		return "", errors.New("use either -run-id or -latest, not both")
	}
	if runID != "" {
		return runID, nil
	}
	if !latest {
		return "", errors.New("a run id is required: pass -run-id or -latest")
	}
	id, ok, err := store.LatestRunID(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.New("no runs available")
	}
	return id, nil
}

func warnSeedFallback(seed evolve.Seed) {
	if seed.EnvErr != nil {
		fmt.Fprintf(os.Stderr, "warning: %v; using %s seed %d\n", seed.EnvErr, seed.Source, seed.Value)
	}
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
