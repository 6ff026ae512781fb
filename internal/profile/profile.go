// Package profile loads experiment profiles: named run configurations
// declared in YAML, so a batch of runs can be described in one file.
package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mendel/internal/problem"
	"mendel/pkg/evolve"
)

// Profile is one named run configuration. Zero-valued optional fields take
// the same defaults the CLI uses.
type Profile struct {
	Name           string  `yaml:"name"`
	Problem        string  `yaml:"problem"`
	Algorithm      string  `yaml:"algorithm"`
	Mu             int     `yaml:"mu"`
	Lambda         int     `yaml:"lambda"`
	Cxpb           float64 `yaml:"cxpb"`
	Mutpb          float64 `yaml:"mutpb"`
	TournamentSize int     `yaml:"tournament_size"`
	ArchiveSize    int     `yaml:"archive_size"`
	Generations    int     `yaml:"generations"`
	ResetPeriod    int     `yaml:"reset_period"`
	Workers        int     `yaml:"workers"`

	// Seed pins the run's random stream. When nil the seed resolves from the
	// environment or entropy at run time.
	Seed *uint64 `yaml:"seed"`
}

// File is the top-level YAML document: a list of profiles.
type File struct {
	Profiles []Profile `yaml:"profiles"`
}

// Load reads and parses a profile file and validates every profile in it.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}
	f, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile file %s: %w", path, err)
	}
	return f, nil
}

// ParseYAML parses a profile document from YAML bytes and validates it.
func ParseYAML(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse profile yaml: %w", err)
	}
	if err := validate(&f); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return &f, nil
}

func validate(f *File) error {
	if len(f.Profiles) == 0 {
		return fmt.Errorf("at least one profile must be defined")
	}

	names := make(map[string]bool)
	for _, p := range f.Profiles {
		if p.Name == "" {
			return fmt.Errorf("profile name cannot be empty")
		}
		if names[p.Name] {
			return fmt.Errorf("duplicate profile name: %s", p.Name)
		}
		names[p.Name] = true

		if p.Problem == "" {
			return fmt.Errorf("profile %s: problem cannot be empty", p.Name)
		}
		if _, err := problem.Resolve(p.Problem); err != nil {
			return fmt.Errorf("profile %s: %w", p.Name, err)
		}
		if p.Generations < 1 {
			return fmt.Errorf("profile %s: generations must be >= 1, got %d", p.Name, p.Generations)
		}
		if p.Mu < 0 || p.Lambda < 0 {
			return fmt.Errorf("profile %s: mu and lambda cannot be negative", p.Name)
		}
		if p.Cxpb < 0 || p.Cxpb > 1 {
			return fmt.Errorf("profile %s: cxpb must be in [0, 1], got %v", p.Name, p.Cxpb)
		}
		if p.Mutpb < 0 || p.Mutpb > 1 {
			return fmt.Errorf("profile %s: mutpb must be in [0, 1], got %v", p.Name, p.Mutpb)
		}
		if p.ResetPeriod < 0 {
			return fmt.Errorf("profile %s: reset_period cannot be negative", p.Name)
		}
	}
	return nil
}

// RunOptions converts the profile into run options, resolving the seed.
func (p Profile) RunOptions() problem.RunOptions {
	seed := evolve.ResolveSeed()
	if p.Seed != nil {
		seed = evolve.NewSeed(*p.Seed)
	}
	return problem.RunOptions{
		Algorithm:      p.Algorithm,
		Mu:             p.Mu,
		Lambda:         p.Lambda,
		Cxpb:           p.Cxpb,
		Mutpb:          p.Mutpb,
		TournamentSize: p.TournamentSize,
		ArchiveSize:    p.ArchiveSize,
		Generations:    p.Generations,
		ResetPeriod:    p.ResetPeriod,
		Workers:        p.Workers,
		Seed:           seed,
	}
}
