package vecop

import (
	"fmt"
	"math/rand"
	"sort"
)

// SwapOne swaps one randomly chosen element between two slices of the same
// length.
func SwapOne[T any](rng *rand.Rand, a, b []T) {
	mustSameLen(a, b)
	i := rng.Intn(len(a))
	a[i], b[i] = b[i], a[i]
}

// SwapN swaps n distinct randomly chosen elements between two slices of the
// same length. Panics if n > len(a).
func SwapN[T any](rng *rand.Rand, n int, a, b []T) {
	mustSameLen(a, b)
	if n > len(a) {
		panic(fmt.Sprintf("vecop: cannot swap %d distinct elements of %d", n, len(a)))
	}
	for _, i := range rng.Perm(len(a))[:n] {
		a[i], b[i] = b[i], a[i]
	}
}

// SwapEachRandom rolls an independent chance of indpb per position and swaps
// the elements where the roll succeeds.
func SwapEachRandom[T any](rng *rand.Rand, indpb float64, a, b []T) {
	mustSameLen(a, b)
	mustProbability(indpb)
	for i := range a {
		if rng.Float64() < indpb {
			a[i], b[i] = b[i], a[i]
		}
	}
}

// Uniform performs uniform crossover (discrete recombination) with the
// standard mixing ratio of 0.5.
func Uniform[T any](rng *rand.Rand, a, b []T) {
	UniformWithRatio(rng, 0.5, a, b)
}

// UniformWithRatio performs uniform crossover with a custom mixing ratio.
// For each position, both offspring independently choose which parent to
// take from; ratio is the probability of choosing from b.
func UniformWithRatio[T any](rng *rand.Rand, ratio float64, a, b []T) {
	mustSameLen(a, b)
	mustProbability(ratio)
	for i := range a {
		aTakesB := rng.Float64() < ratio
		bTakesB := rng.Float64() < ratio
		switch {
		case aTakesB && !bTakesB:
			a[i], b[i] = b[i], a[i]
		case !aTakesB && !bTakesB:
			b[i] = a[i]
		case aTakesB && bTakesB:
			a[i] = b[i]
		}
	}
}

// OnePoint performs one-point crossover: elements after a random pivot are
// swapped. Panics on slices shorter than two elements.
func OnePoint[T any](rng *rand.Rand, a, b []T) {
	NPoint(rng, 1, a, b)
}

// TwoPoint performs two-point crossover: elements between two random pivots
// are swapped. Panics on slices shorter than three elements.
func TwoPoint[T any](rng *rand.Rand, a, b []T) {
	NPoint(rng, 2, a, b)
}

// NPoint chooses n distinct pivots and swaps the segments between
// alternating pivots. Panics if n >= len(a).
func NPoint[T any](rng *rand.Rand, n int, a, b []T) {
	mustSameLen(a, b)
	if n >= len(a) {
		panic(fmt.Sprintf("vecop: cannot choose %d distinct pivots in %d elements", n, len(a)))
	}

	pivots := rng.Perm(len(a) - 1)[:n]
	sort.Ints(pivots)

	swap := false
	next := 0
	for i := range a {
		if swap {
			a[i], b[i] = b[i], a[i]
		}
		if next < len(pivots) && pivots[next] == i {
			swap = !swap
			next++
		}
	}
}

func mustSameLen[T any](a, b []T) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("vecop: slice length mismatch: %d vs %d", len(a), len(b)))
	}
}

func mustProbability(p float64) {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("vecop: probability out of range: %v", p))
	}
}
