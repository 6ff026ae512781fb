package problem

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPiFracEvaluate(t *testing.T) {
	good := &PiFrac{Num: 355, Den: 113}
	rough := &PiFrac{Num: 3, Den: 1}

	assert.Greater(t, good.Evaluate(), rough.Evaluate())
	assert.InDelta(t, 0, good.Evaluate(), 1e-6)
}

func TestPiFracNormalize(t *testing.T) {
	f := &PiFrac{Num: 44, Den: 14}
	f.normalize()
	assert.Equal(t, uint64(22), f.Num)
	assert.Equal(t, uint64(7), f.Den)

	zero := &PiFrac{Num: 0, Den: 0}
	zero.normalize()
	assert.Equal(t, uint64(1), zero.Num)
	assert.Equal(t, uint64(1), zero.Den)
}

func TestPiFracMutateStaysNormalized(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	f := &PiFrac{Num: 22, Den: 7}
	for i := 0; i < 50; i++ {
		f.Mutate(rng)
		require.NotZero(t, f.Num)
		require.NotZero(t, f.Den)
		assert.Equal(t, uint64(1), gcd(f.Num, f.Den), "fraction must stay in lowest terms")
	}
}

func TestPiFracCrossoverBlendsWithinParentRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		a := &PiFrac{Num: 10, Den: 3}
		b := &PiFrac{Num: 100, Den: 30}

		a.Crossover(b, rng)

		// Values are drawn from the span the parents cover; gcd reduction
		// can only shrink them afterward.
		assert.LessOrEqual(t, a.Num, uint64(100))
		assert.LessOrEqual(t, b.Num, uint64(100))
		assert.LessOrEqual(t, a.Den, uint64(30))
		assert.LessOrEqual(t, b.Den, uint64(30))
	}
}

func TestPiFracGenerateRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		f := NewPiFrac(rng)
		require.NotZero(t, f.Num)
		require.NotZero(t, f.Den)
		assert.False(t, math.IsNaN(f.Evaluate()))
	}
}

func TestGCD(t *testing.T) {
	assert.Equal(t, uint64(6), gcd(12, 18))
	assert.Equal(t, uint64(1), gcd(7, 13))
	assert.Equal(t, uint64(5), gcd(5, 0))
	assert.Equal(t, uint64(5), gcd(0, 5))
}
