package evolve

import "math/rand"

// Stream id tags keep the phases of a run on disjoint substreams. Each
// randomized task derives its generator from (seed, tag, generation, slot),
// so the result of a generation step does not depend on worker scheduling.
const (
	streamGenerate uint64 = iota + 1
	streamSelect
	streamVary
)

// Streams derives independent random generators from a run seed. Derivation
// is a pure function of the seed and the supplied identifiers; no mutable
// cursor is shared between tasks.
type Streams struct {
	seed uint64
}

// NewStreams returns a stream deriver for the given resolved seed.
func NewStreams(seed Seed) *Streams {
	return &Streams{seed: seed.Value}
}

// Seed returns the run seed the streams are derived from.
func (s *Streams) Seed() uint64 {
	return s.seed
}

// Derive returns a generator that is a pure function of (seed, ids). Calling
// it twice with the same identifiers yields identical sequences.
func (s *Streams) Derive(ids ...uint64) *rand.Rand {
	state := s.seed
	for _, id := range ids {
		state = splitmix64(state ^ (id + 0x9E3779B97F4A7C15))
	}
	return rand.New(rand.NewSource(int64(splitmix64(state))))
}

// splitmix64 is the finalizer from the SplitMix64 generator. It is used here
// as a mixing function so nearby identifiers map to distant states.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}
