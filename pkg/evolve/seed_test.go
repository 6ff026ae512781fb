package evolve

import (
	"os"
	"testing"
)

func TestNewSeedExplicit(t *testing.T) {
	seed := NewSeed(42)
	if seed.Value != 42 {
		t.Fatalf("expected value 42, got %d", seed.Value)
	}
	if seed.Source != SeedSourceExplicit {
		t.Fatalf("expected explicit source, got %s", seed.Source)
	}
	if seed.EnvErr != nil {
		t.Fatalf("unexpected env error: %v", seed.EnvErr)
	}
}

func TestResolveSeedFromEnv(t *testing.T) {
	t.Setenv(SeedEnvVar, "12345")

	seed := ResolveSeed()
	if seed.Source != SeedSourceEnv {
		t.Fatalf("expected env source, got %s", seed.Source)
	}
	if seed.Value != 12345 {
		t.Fatalf("expected value 12345, got %d", seed.Value)
	}
	if seed.EnvErr != nil {
		t.Fatalf("unexpected env error: %v", seed.EnvErr)
	}
}

func TestResolveSeedEnvWhitespace(t *testing.T) {
	t.Setenv(SeedEnvVar, "  99 ")

	seed := ResolveSeed()
	if seed.Source != SeedSourceEnv {
		t.Fatalf("expected env source, got %s", seed.Source)
	}
	if seed.Value != 99 {
		t.Fatalf("expected value 99, got %d", seed.Value)
	}
}

func TestResolveSeedUnparsableEnvFallsBack(t *testing.T) {
	t.Setenv(SeedEnvVar, "not-a-number")

	seed := ResolveSeed()
	if seed.Source != SeedSourceEntropy {
		t.Fatalf("expected entropy fallback, got %s", seed.Source)
	}
	if seed.EnvErr == nil {
		t.Fatal("expected env parse error to be recorded")
	}
}

func TestResolveSeedUnsetEnv(t *testing.T) {
	// Setenv registers the restore; unset after so the variable is absent.
	t.Setenv(SeedEnvVar, "")
	if err := os.Unsetenv(SeedEnvVar); err != nil {
		t.Fatalf("unsetenv: %v", err)
	}

	seed := ResolveSeed()
	if seed.Source != SeedSourceEntropy {
		t.Fatalf("expected entropy source, got %s", seed.Source)
	}
	if seed.EnvErr != nil {
		t.Fatalf("unexpected env error: %v", seed.EnvErr)
	}
}
