package model

// VersionedRecord captures schema and codec evolution for archived data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// RunRecord describes one completed evolutionary run: the configuration it
// was launched with, the resolved seed that reproduces it, and its outcome.
type RunRecord struct {
	VersionedRecord
	RunID          string  `json:"run_id"`
	CreatedAtUTC   string  `json:"created_at_utc"`
	Problem        string  `json:"problem"`
	Algorithm      string  `json:"algorithm"`
	Seed           uint64  `json:"seed"`
	SeedSource     string  `json:"seed_source"`
	Mu             int     `json:"mu"`
	Lambda         int     `json:"lambda"`
	Cxpb           float64 `json:"cxpb"`
	Mutpb          float64 `json:"mutpb"`
	TournamentSize int     `json:"tournament_size"`
	ArchiveSize    int     `json:"archive_size"`
	ResetPeriod    int     `json:"reset_period"`
	Generations    int     `json:"generations"`
	Workers        int     `json:"workers"`
	BestFitness    float64 `json:"best_fitness"`
	BestGenome     string  `json:"best_genome"`
}

// GenerationDiagnostics is the archived per-generation fitness summary.
type GenerationDiagnostics struct {
	Generation   int     `json:"generation"`
	BestFitness  float64 `json:"best_fitness"`
	MeanFitness  float64 `json:"mean_fitness"`
	MinFitness   float64 `json:"min_fitness"`
	StdevFitness float64 `json:"stdev_fitness"`
}

// HallOfFameEntry is the archived form of a hall-of-fame snapshot. Genome is
// the problem's own rendering of the solution.
type HallOfFameEntry struct {
	Rank       int     `json:"rank"`
	Fitness    float64 `json:"fitness"`
	Generation int     `json:"generation"`
	Genome     string  `json:"genome"`
}
