package problem

import (
	"context"
	"fmt"
	"math"
	"math/rand"
)

const piFracRange = 100_000_000

// PiFrac is an integer fraction evolved to approximate π. Fractions are kept
// in lowest terms so equivalent ratios compare equal.
type PiFrac struct {
	Num uint64
	Den uint64
}

func NewPiFrac(rng *rand.Rand) *PiFrac {
	f := &PiFrac{
		Num: 1 + uint64(rng.Int63n(piFracRange-1)),
		Den: 1 + uint64(rng.Int63n(piFracRange-1)),
	}
	f.normalize()
	return f
}

func (f *PiFrac) Value() float64 {
	return float64(f.Num) / float64(f.Den)
}

func (f *PiFrac) Clone() *PiFrac {
	clone := *f
	return &clone
}

func (f *PiFrac) Evaluate() float64 {
	return -math.Abs(f.Value() - math.Pi)
}

// Crossover blends by redrawing each field uniformly from the range the two
// parents span, inclusive on both ends.
func (f *PiFrac) Crossover(other *PiFrac, rng *rand.Rand) {
	numLo, numHi := ordered(f.Num, other.Num)
	denLo, denHi := ordered(f.Den, other.Den)

	f.Num = uniformIn(rng, numLo, numHi)
	f.Den = uniformIn(rng, denLo, denHi)
	f.normalize()

	other.Num = uniformIn(rng, numLo, numHi)
	other.Den = uniformIn(rng, denLo, denHi)
	other.normalize()
}

// Mutate scales both terms by a random multiplier in [0, 3]. Multiplier 0
// collapses the fraction to 0/0, which normalize rescues to 1/1.
func (f *PiFrac) Mutate(rng *rand.Rand) {
	multiplier := uint64(rng.Int63n(4))
	f.Num = f.Num*multiplier + multiplier
	f.Den = f.Den*multiplier + multiplier
	f.normalize()
}

func (f *PiFrac) String() string {
	return fmt.Sprintf("%d/%d = %v", f.Num, f.Den, f.Value())
}

func (f *PiFrac) normalize() {
	if f.Num == 0 {
		f.Num = 1
	}
	if f.Den == 0 {
		f.Den = 1
	}
	d := gcd(f.Num, f.Den)
	f.Num /= d
	f.Den /= d
}

func ordered(a, b uint64) (uint64, uint64) {
	if a < b {
		return a, b
	}
	return b, a
}

func uniformIn(rng *rand.Rand, lo, hi uint64) uint64 {
	return lo + uint64(rng.Int63n(int64(hi-lo)+1))
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func init() {
	MustRegister("pifrac", func(ctx context.Context, opts RunOptions) (Outcome, error) {
		return run(ctx, "pifrac", opts, NewPiFrac, (*PiFrac).String)
	})
}
