package problem

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"mendel/pkg/evolve/vecop"
)

const (
	sphereDim = 10
	sphereLo  = -5.0
	sphereHi  = 5.0
)

// Sphere is the negated sphere function on a fixed-dimension real vector,
// maximized at the origin. It serves as the smoke benchmark for the numeric
// operators.
type Sphere struct {
	X []float64
}

func NewSphere(rng *rand.Rand) *Sphere {
	x := make([]float64, sphereDim)
	for i := range x {
		x[i] = sphereLo + rng.Float64()*(sphereHi-sphereLo)
	}
	return &Sphere{X: x}
}

func (s *Sphere) Clone() *Sphere {
	return &Sphere{X: append([]float64(nil), s.X...)}
}

func (s *Sphere) Evaluate() float64 {
	var sum float64
	for _, x := range s.X {
		sum += x * x
	}
	return -sum
}

func (s *Sphere) Crossover(other *Sphere, rng *rand.Rand) {
	vecop.Uniform(rng, s.X, other.X)
}

func (s *Sphere) Mutate(rng *rand.Rand) {
	vecop.Gaussian(rng, s.X, 0.2, 0.3)
}

func (s *Sphere) String() string {
	parts := make([]string, len(s.X))
	for i, x := range s.X {
		parts[i] = fmt.Sprintf("%.3f", x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func init() {
	MustRegister("sphere", func(ctx context.Context, opts RunOptions) (Outcome, error) {
		return run(ctx, "sphere", opts, NewSphere, (*Sphere).String)
	})
}
