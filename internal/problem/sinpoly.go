package problem

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"mendel/pkg/evolve/vecop"
)

const sinPolyTestPoints = 100

// sinPolyGrid samples [0, π/2) evenly; the fitness is the negated mean
// absolute error of the polynomial against sine on these points.
var sinPolyGrid = func() []float64 {
	grid := make([]float64, sinPolyTestPoints)
	step := math.Pi / 2 / sinPolyTestPoints
	for i := range grid {
		grid[i] = float64(i) * step
	}
	return grid
}()

// SinPoly is a cubic polynomial a + bx + cx² + dx³ evolved to approximate
// sine on [0, π/2).
type SinPoly struct {
	Coeffs []float64
}

func NewSinPoly(rng *rand.Rand) *SinPoly {
	coeffs := make([]float64, 4)
	for i := range coeffs {
		coeffs[i] = rng.Float64()
	}
	return &SinPoly{Coeffs: coeffs}
}

func (p *SinPoly) At(x float64) float64 {
	return p.Coeffs[0] + p.Coeffs[1]*x + p.Coeffs[2]*x*x + p.Coeffs[3]*x*x*x
}

func (p *SinPoly) Clone() *SinPoly {
	return &SinPoly{Coeffs: append([]float64(nil), p.Coeffs...)}
}

func (p *SinPoly) Evaluate() float64 {
	var sum float64
	for _, x := range sinPolyGrid {
		sum += math.Abs(p.At(x) - math.Sin(x))
	}
	return -sum / float64(len(sinPolyGrid))
}

func (p *SinPoly) Crossover(other *SinPoly, rng *rand.Rand) {
	vecop.OnePoint(rng, p.Coeffs, other.Coeffs)
}

func (p *SinPoly) Mutate(rng *rand.Rand) {
	vecop.Gaussian(rng, p.Coeffs, 0.5, 0.1)
}

func (p *SinPoly) String() string {
	return fmt.Sprintf("%.4f + %.4fx + %.4fx^2 + %.4fx^3",
		p.Coeffs[0], p.Coeffs[1], p.Coeffs[2], p.Coeffs[3])
}

func init() {
	MustRegister("sinpoly", func(ctx context.Context, opts RunOptions) (Outcome, error) {
		return run(ctx, "sinpoly", opts, NewSinPoly, (*SinPoly).String)
	})
}
