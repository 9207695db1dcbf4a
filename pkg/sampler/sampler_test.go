package sampler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterminism(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 50; i++ {
		va := a.Uniform(0, 100)
		vb := b.Uniform(0, 100)
		require.Equal(t, va, vb, "draw %d diverged", i)
	}
}

func TestUniformBounds(t *testing.T) {
	s := New(1)
	for i := 0; i < 1000; i++ {
		v := s.Uniform(2, 18)
		assert.GreaterOrEqual(t, v, 2.0)
		assert.Less(t, v, 18.0)
	}
}

func TestExponentialNonNegative(t *testing.T) {
	s := New(7)
	for i := 0; i < 1000; i++ {
		assert.GreaterOrEqual(t, s.Exponential(40.0/60.0), 0.0)
	}
}

func TestNormalNonNegativeNeverNegative(t *testing.T) {
	s := New(3)
	for i := 0; i < 2000; i++ {
		v := s.NormalNonNegative(0.5, 5) // wide sigma relative to mean forces resampling
		assert.GreaterOrEqual(t, v, 0.0)
	}
}

func TestTeenGroupSizeRange(t *testing.T) {
	s := New(9)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		n := s.TeenGroupSize()
		assert.GreaterOrEqual(t, n, 2)
		assert.LessOrEqual(t, n, 6)
		seen[n] = true
	}
	for n := 2; n <= 6; n++ {
		assert.True(t, seen[n], "size %d never drawn in 2000 samples", n)
	}
}

func TestFamilyDepartureHourRange(t *testing.T) {
	s := New(11)
	for i := 0; i < 1000; i++ {
		h := s.FamilyDepartureHour()
		assert.GreaterOrEqual(t, h, 16.0)
		assert.LessOrEqual(t, h, 19.0)
	}
}

func TestWavePoolServiceRange(t *testing.T) {
	s := New(5)
	for i := 0; i < 500; i++ {
		v := s.WavePoolService()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 60.0)
	}
}

func TestWavePoolServiceAvoidsDeadZone(t *testing.T) {
	// f(x) = 0 on (10, 30); acceptance-rejection should never accept there.
	s := New(123)
	for i := 0; i < 2000; i++ {
		v := s.WavePoolService()
		if v > 10 && v < 30 {
			t.Fatalf("sampled %f in the zero-density dead zone", v)
		}
	}
}

func TestKidsPoolServiceRange(t *testing.T) {
	s := New(6)
	for i := 0; i < 1000; i++ {
		minutes := s.KidsPoolService()
		assert.GreaterOrEqual(t, minutes, 60.0)
		assert.LessOrEqual(t, minutes, 120.0)
	}
}

func TestChooseRestaurantDistribution(t *testing.T) {
	s := New(77)
	counts := map[Restaurant]int{}
	const n = 20000
	for i := 0; i < n; i++ {
		counts[s.ChooseRestaurant()]++
	}
	assert.InDelta(t, 0.375, float64(counts[Burger])/n, 0.02)
	assert.InDelta(t, 0.25, float64(counts[Pizza])/n, 0.02)
	assert.InDelta(t, 0.375, float64(counts[Salad])/n, 0.02)
}

func TestPhotoPurchaseTiers(t *testing.T) {
	cases := []struct {
		rating float64
		tier   PhotoTier
		price  int
	}{
		{5.9, PhotoNone, 0},
		{6.0, Photo1, 20},
		{7.49, Photo1, 20},
		{7.5, Photo10, 100},
		{8.49, Photo10, 100},
		{8.5, Photo10Video, 120},
		{10.0, Photo10Video, 120},
	}
	for _, c := range cases {
		tier, price := PhotoPurchase(c.rating)
		assert.Equal(t, c.tier, tier, "rating=%v", c.rating)
		assert.Equal(t, c.price, price, "rating=%v", c.rating)
	}
}

func TestPositiveRatingIncreaseFormula(t *testing.T) {
	got := PositiveRatingIncrease(4, 5)
	want := (float64(3)/5.0)*0.3 + (float64(4)/4.0)*0.7
	assert.InDelta(t, want, got, 1e-12)
}

func TestIntUniformInclusiveBounds(t *testing.T) {
	s := New(4)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		n := s.IntUniform(1, 5)
		require.True(t, n >= 1 && n <= 5)
		seen[n] = true
	}
	for n := 1; n <= 5; n++ {
		assert.True(t, seen[n], "value %d never drawn", n)
	}
}

func TestAcceptRejectConvergesToMean(t *testing.T) {
	// A triangular-ish pdf peaking at x=5 on [0,10]; sanity-check the mean lands near the peak.
	pdf := func(x float64) float64 {
		if x < 5 {
			return x / 25.0
		}
		return (10 - x) / 25.0
	}
	s := New(21)
	sum := 0.0
	const n = 20000
	for i := 0; i < n; i++ {
		sum += s.AcceptReject(0, 10, 0.2, pdf)
	}
	mean := sum / n
	assert.InDelta(t, 5.0, mean, 0.3)
}

func TestNormalMatchesBoxMullerShape(t *testing.T) {
	s := New(55)
	sum, sumSq := 0.0, 0.0
	const n = 50000
	for i := 0; i < n; i++ {
		v := s.Normal(10, 2)
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	variance := sumSq/n - mean*mean
	assert.InDelta(t, 10.0, mean, 0.1)
	assert.InDelta(t, 4.0, variance, 0.3)
}
