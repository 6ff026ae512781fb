package vecop

import (
	"math/rand"
	"testing"
)

func TestGaussianExtremes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	arr := []float64{1, 2, 3, 4}

	Gaussian(rng, arr, 0, 1)
	for i, v := range arr {
		if v != float64(i+1) {
			t.Fatalf("indpb 0 mutated position %d", i)
		}
	}

	Gaussian(rng, arr, 1, 1)
	changed := 0
	for i, v := range arr {
		if v != float64(i+1) {
			changed++
		}
	}
	if changed != len(arr) {
		t.Fatalf("indpb 1 should perturb every position, changed %d", changed)
	}
}

func TestGaussianZeroStdev(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	arr := []float64{1, 2, 3}
	Gaussian(rng, arr, 1, 0)
	for i, v := range arr {
		if v != float64(i+1) {
			t.Fatalf("zero stdev mutated position %d", i)
		}
	}
}

func TestGaussianInvalidStdev(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for negative stdev")
		}
	}()
	Gaussian(rand.New(rand.NewSource(1)), []float64{1}, 0.5, -1)
}

func TestUniformReplaceStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	arr := []float64{100, 200, 300, 400}

	UniformReplace(rng, arr, 1, -5, 5)
	for i, v := range arr {
		if v < -5 || v >= 5 {
			t.Fatalf("position %d out of range: %v", i, v)
		}
	}
}

func TestUniformReplaceInvalidRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for inverted range")
		}
	}()
	UniformReplace(rand.New(rand.NewSource(1)), []float64{1}, 0.5, 5, -5)
}

func TestProbabilityOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for probability > 1")
		}
	}()
	Gaussian(rand.New(rand.NewSource(1)), []float64{1}, 1.5, 1)
}
