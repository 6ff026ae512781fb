package vecop

import (
	"fmt"
	"math"
	"math/rand"
)

// Gaussian rolls an independent chance of indpb per element and adds noise
// drawn from a normal distribution with mean 0 and the given standard
// deviation where the roll succeeds. Panics on a negative, infinite, or NaN
// standard deviation.
func Gaussian(rng *rand.Rand, arr []float64, indpb, stdev float64) {
	mustProbability(indpb)
	if stdev < 0 || math.IsInf(stdev, 0) || math.IsNaN(stdev) {
		panic(fmt.Sprintf("vecop: invalid standard deviation: %v", stdev))
	}
	for i := range arr {
		if rng.Float64() < indpb {
			arr[i] += rng.NormFloat64() * stdev
		}
	}
}

// UniformReplace rolls an independent chance of indpb per element and
// replaces the element with a uniform draw from [lo, hi) where the roll
// succeeds. Panics if lo > hi.
func UniformReplace(rng *rand.Rand, arr []float64, indpb, lo, hi float64) {
	mustProbability(indpb)
	if lo > hi {
		panic(fmt.Sprintf("vecop: invalid range [%v, %v)", lo, hi))
	}
	for i := range arr {
		if rng.Float64() < indpb {
			arr[i] = lo + rng.Float64()*(hi-lo)
		}
	}
}
