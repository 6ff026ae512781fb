package evolve

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// SeedEnvVar is the environment variable consulted when no explicit seed is
// supplied. Its value is parsed as an unsigned 64-bit integer.
const SeedEnvVar = "MENDEL_SEED"

// SeedSource reports where a run's seed came from.
type SeedSource string

const (
	SeedSourceExplicit SeedSource = "explicit"
	SeedSourceEnv      SeedSource = "env"
	SeedSourceEntropy  SeedSource = "entropy"
)

// Seed identifies a run's random stream. It is resolved once before a run
// starts and immutable afterward; log Value so the run can be reproduced.
type Seed struct {
	Value  uint64
	Source SeedSource

	// EnvErr records a MENDEL_SEED value that could not be parsed. The seed
	// then falls back to entropy; callers that care can surface the warning.
	EnvErr error
}

// NewSeed wraps an explicit caller-supplied seed value.
func NewSeed(value uint64) Seed {
	return Seed{Value: value, Source: SeedSourceExplicit}
}

// ResolveSeed resolves a seed from MENDEL_SEED, falling back to OS entropy
// when the variable is unset or unparsable. A parse failure is not an error;
// it is reported through the returned Seed's EnvErr field.
func ResolveSeed() Seed {
	raw, ok := os.LookupEnv(SeedEnvVar)
	if !ok {
		return entropySeed()
	}
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		seed := entropySeed()
		seed.EnvErr = fmt.Errorf("parse %s=%q: %w", SeedEnvVar, raw, err)
		return seed
	}
	return Seed{Value: value, Source: SeedSourceEnv}
}

func entropySeed() Seed {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		// crypto/rand does not fail on supported platforms; the clock is
		// the last resort.
		return Seed{Value: uint64(time.Now().UnixNano()), Source: SeedSourceEntropy}
	}
	return Seed{Value: binary.LittleEndian.Uint64(buf[:]), Source: SeedSourceEntropy}
}
