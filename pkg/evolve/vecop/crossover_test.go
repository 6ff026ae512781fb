package vecop

import (
	"math/rand"
	"sort"
	"testing"
)

func sortedUnion(a, b []int) []int {
	union := append(append([]int(nil), a...), b...)
	sort.Ints(union)
	return union
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSwapOne(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := []int{1, 2, 3, 4}
	b := []int{5, 6, 7, 8}
	before := sortedUnion(a, b)

	SwapOne(rng, a, b)

	diffs := 0
	for i := range a {
		if a[i] != i+1 {
			diffs++
			if b[i] != i+1 {
				t.Fatalf("position %d was not swapped: a=%d b=%d", i, a[i], b[i])
			}
		}
	}
	if diffs != 1 {
		t.Fatalf("expected exactly 1 swapped position, got %d", diffs)
	}
	if !equalInts(before, sortedUnion(a, b)) {
		t.Fatal("swap changed the combined element multiset")
	}
}

func TestSwapNDistinctPositions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := []int{1, 2, 3, 4, 5}
	b := []int{6, 7, 8, 9, 10}

	SwapN(rng, 3, a, b)

	diffs := 0
	for i := range a {
		if a[i] != i+1 {
			diffs++
		}
	}
	if diffs != 3 {
		t.Fatalf("expected 3 swapped positions, got %d", diffs)
	}
}

func TestSwapNTooMany(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for n > len")
		}
	}()
	SwapN(rand.New(rand.NewSource(1)), 3, []int{1, 2}, []int{3, 4})
}

func TestSwapEachRandomExtremes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := []int{1, 2, 3}
	b := []int{4, 5, 6}

	SwapEachRandom(rng, 0, a, b)
	if a[0] != 1 || b[0] != 4 {
		t.Fatal("indpb 0 should change nothing")
	}

	SwapEachRandom(rng, 1, a, b)
	if a[0] != 4 || b[0] != 1 {
		t.Fatal("indpb 1 should swap every position")
	}
}

func TestUniformTakesParentValues(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := []int{1, 2, 3, 4, 5, 6, 7, 8}
	b := []int{11, 12, 13, 14, 15, 16, 17, 18}

	Uniform(rng, a, b)

	// Both offspring draw per position, so elements may duplicate across the
	// pair, but each position holds one of its two parents' values.
	for i := range a {
		lo, hi := i+1, i+11
		if a[i] != lo && a[i] != hi {
			t.Fatalf("a[%d]=%d is neither parent value", i, a[i])
		}
		if b[i] != lo && b[i] != hi {
			t.Fatalf("b[%d]=%d is neither parent value", i, b[i])
		}
	}
}

func TestOnePointSwapsSuffix(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := []int{1, 2, 3, 4, 5, 6}
	b := []int{11, 12, 13, 14, 15, 16}

	OnePoint(rng, a, b)

	// Exactly one pivot: a prefix stays, the suffix after it is swapped.
	boundary := -1
	for i := range a {
		if a[i] != i+1 {
			boundary = i
			break
		}
	}
	if boundary <= 0 {
		t.Fatalf("expected a non-empty kept prefix, boundary=%d", boundary)
	}
	for i := 0; i < boundary; i++ {
		if a[i] != i+1 || b[i] != i+11 {
			t.Fatalf("prefix position %d changed", i)
		}
	}
	for i := boundary; i < len(a); i++ {
		if a[i] != i+11 || b[i] != i+1 {
			t.Fatalf("suffix position %d was not swapped", i)
		}
	}
}

func TestTwoPointSwapsMiddle(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := []int{1, 2, 3, 4, 5, 6, 7, 8}
	b := []int{11, 12, 13, 14, 15, 16, 17, 18}

	TwoPoint(rng, a, b)

	// The swapped region is a single contiguous segment.
	segments := 0
	inSegment := false
	for i := range a {
		swapped := a[i] != i+1
		if swapped && !inSegment {
			segments++
		}
		inSegment = swapped
	}
	if segments != 1 {
		t.Fatalf("expected 1 swapped segment, got %d", segments)
	}
}

func TestNPointTooManyPivots(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for n >= len")
		}
	}()
	NPoint(rand.New(rand.NewSource(1)), 2, []int{1, 2}, []int{3, 4})
}

func TestLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for mismatched lengths")
		}
	}()
	SwapOne(rand.New(rand.NewSource(1)), []int{1}, []int{2, 3})
}
