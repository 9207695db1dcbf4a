// Package sampler is a stateless façade over a single seeded PRNG stream,
// exposing every named distribution the park simulation draws from.
package sampler

import (
	"math"
	"math/rand"
)

// Sampler wraps one seeded random stream. It is not safe for concurrent use
// from multiple goroutines — the simulation core is single-threaded by
// design, and a single owner per run keeps the stream, and therefore the
// whole simulation, reproducible for a fixed seed.
type Sampler struct {
	rng *rand.Rand
}

// New creates a Sampler seeded deterministically. Two Samplers created with
// the same seed draw identical sequences for identical call sequences.
func New(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Uniform draws from Uniform(a, b) via inverse transform.
func (s *Sampler) Uniform(a, b float64) float64 {
	u := s.rng.Float64()
	return a + (b-a)*u
}

// IntUniform draws a discrete-uniform integer in [a, b] inclusive.
func (s *Sampler) IntUniform(a, b int) int {
	if b <= a {
		return a
	}
	return a + s.rng.Intn(b-a+1)
}

// Exponential draws from Exponential(rate) via inverse transform:
// -ln(1-U)/rate.
func (s *Sampler) Exponential(rate float64) float64 {
	u := s.Uniform(0, 1)
	return -math.Log(1-u) / rate
}

// Normal draws from Normal(mu, sigma) via the Box-Muller transform.
func (s *Sampler) Normal(mu, sigma float64) float64 {
	u1 := s.Uniform(0, 1)
	u2 := s.Uniform(0, 1)
	// u1 == 0 would send the log to -Inf; redraw rather than special-case.
	for u1 == 0 {
		u1 = s.Uniform(0, 1)
	}
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mu + sigma*z
}

// NormalNonNegative draws from Normal(mu, sigma), resampling whenever the
// draw is negative. Used for service durations that must never schedule a
// negative-duration event (spec: sampling out-of-range policy is resample,
// applied consistently everywhere a Normal backs a duration).
func (s *Sampler) NormalNonNegative(mu, sigma float64) float64 {
	for {
		if v := s.Normal(mu, sigma); v >= 0 {
			return v
		}
	}
}

// Bernoulli returns true with probability p.
func (s *Sampler) Bernoulli(p float64) bool {
	return s.Uniform(0, 1) <= p
}

// AcceptReject draws x uniformly from [lo, hi] and accepts it with
// probability pdf(x)/envelope, looping until a draw is accepted. envelope
// must upper-bound pdf over [lo, hi].
func (s *Sampler) AcceptReject(lo, hi, envelope float64, pdf func(float64) float64) float64 {
	for {
		x := s.Uniform(lo, hi)
		u := s.Uniform(0, 1)
		if u <= pdf(x)/envelope {
			return x
		}
	}
}

// InverseTransform draws u ~ Uniform(0,1) and applies the caller-supplied
// piecewise inverse-CDF.
func (s *Sampler) InverseTransform(invCDF func(u float64) float64) float64 {
	return invCDF(s.Uniform(0, 1))
}

// ---- Domain-specific named distributions (spec.md §6) ----

// NumberOfKids samples a family's kid count, discrete-uniform on [1,5].
func (s *Sampler) NumberOfKids() int {
	return s.IntUniform(1, 5)
}

// KidAge samples a single kid's age, continuous-uniform on [2,18].
func (s *Sampler) KidAge() float64 {
	return s.Uniform(2, 18)
}

// FamilyInterArrival samples Family inter-arrival time in minutes,
// Exponential(rate=40/60 per minute).
func (s *Sampler) FamilyInterArrival() float64 {
	return s.Exponential(40.0 / 60.0)
}

// TeenInterArrival samples TeenGroup inter-arrival time in minutes,
// Exponential(rate=500/360 per minute).
func (s *Sampler) TeenInterArrival() float64 {
	return s.Exponential(500.0 / 360.0)
}

// SingleInterArrival samples SingleVisitor inter-arrival time in minutes,
// Exponential(rate=40/60 per minute).
func (s *Sampler) SingleInterArrival() float64 {
	return s.Exponential(40.0 / 60.0)
}

// FamilyDepartureHour samples a family's departure hour-of-day via
// inverse-CDF of f(x) = (2/9)(x-16) on [16,19]: x = 16 + 3*sqrt(u).
func (s *Sampler) FamilyDepartureHour() float64 {
	u := s.Uniform(0, 1)
	return 16 + 3*math.Sqrt(u)
}

// TeenGroupSize samples a teen group's headcount: P(2)=P(3)=0.2,
// P(4)=P(5)=0.25, P(6)=0.1.
func (s *Sampler) TeenGroupSize() int {
	u := s.Uniform(0, 1)
	switch {
	case u <= 0.2:
		return 2
	case u <= 0.4:
		return 3
	case u <= 0.65:
		return 4
	case u <= 0.9:
		return 5
	default:
		return 6
	}
}

// BuysExpressOnEntry returns true with probability 0.25.
func (s *Sampler) BuysExpressOnEntry() bool {
	return s.Bernoulli(0.25)
}

// TicketTime samples reception ticket-purchase duration, Uniform[0.5,2].
func (s *Sampler) TicketTime() float64 {
	return s.Uniform(0.5, 2)
}

// WristbandTime samples reception wristband duration, Exponential(mean=2).
func (s *Sampler) WristbandTime() float64 {
	return s.Exponential(1.0 / 2.0)
}

// PipesRiverService samples Pipes River ride duration, Uniform[20,30].
func (s *Sampler) PipesRiverService() float64 {
	return s.Uniform(20, 30)
}

// SingleSlideService returns the constant Single Slide ride duration.
func (s *Sampler) SingleSlideService() float64 {
	return 3.0
}

// BigPipesService samples Big Pipes Slide duration, Normal(4.8, 1.8322),
// resampled if negative.
func (s *Sampler) BigPipesService() float64 {
	return s.NormalNonNegative(4.8, 1.8322)
}

// SmallPipesService samples Small Pipes Slide duration, Exponential(λ=2.10706).
func (s *Sampler) SmallPipesService() float64 {
	return s.Exponential(2.10706)
}

// wavePoolPDF is the piecewise density backing WavePoolService.
func wavePoolPDF(x float64) float64 {
	switch {
	case x >= 0 && x <= 10:
		return x / 2700.0
	case x > 10 && x < 30:
		return 0
	case x >= 30 && x <= 50:
		return (60-x)/2700.0 + 1.0/30.0
	case x > 50 && x <= 60:
		return (60 - x) / 2700.0
	default:
		return 0
	}
}

// wavePoolEnvelope is the acceptance-rejection envelope M = 2/45 for
// wavePoolPDF over [0,60].
const wavePoolEnvelope = 2.0 / 45.0

// WavePoolService samples Wave Pool duration via acceptance-rejection on
// the piecewise PDF of spec.md §6.
func (s *Sampler) WavePoolService() float64 {
	return s.AcceptReject(0, 60, wavePoolEnvelope, wavePoolPDF)
}

// KidsPoolService samples Kids Pool stay duration (returned in minutes) via
// inverse-CDF on the piecewise density of spec.md §6 (computed in hours).
func (s *Sampler) KidsPoolService() float64 {
	hours := s.InverseTransform(func(u float64) float64 {
		switch {
		case u < 1.0/6.0:
			return 1 + math.Sqrt(3*u/8)
		case u < 5.0/6.0:
			return 0.75*u + 1.125
		default:
			return 2 - math.Sqrt(3*(1-u)/8)
		}
	})
	return hours * 60
}

// SnorkelTourService samples snorkel tour duration, Normal(30, 10),
// resampled if negative.
func (s *Sampler) SnorkelTourService() float64 {
	return s.NormalNonNegative(30, 10)
}

// RestaurantService samples restaurant service duration, Normal(5, 1.5),
// resampled if negative.
func (s *Sampler) RestaurantService() float64 {
	return s.NormalNonNegative(5, 1.5)
}

// MealDuration samples how long a visitor eats, Uniform[15,35].
func (s *Sampler) MealDuration() float64 {
	return s.Uniform(15, 35)
}

// BurgerPrepTime samples burger preparation time per person, Uniform[3,4].
func (s *Sampler) BurgerPrepTime() float64 {
	return s.Uniform(3, 4)
}

// PizzaPrepTime samples pizza preparation time (flat, not per-person), Uniform[4,6].
func (s *Sampler) PizzaPrepTime() float64 {
	return s.Uniform(4, 6)
}

// SaladPrepTime samples salad preparation time per person, Uniform[3,7].
func (s *Sampler) SaladPrepTime() float64 {
	return s.Uniform(3, 7)
}

// TeenBuysExpressAfterAbandon returns true with probability 0.6.
func (s *Sampler) TeenBuysExpressAfterAbandon() bool {
	return s.Bernoulli(0.6)
}

// GoodExperience returns true with probability 0.5.
func (s *Sampler) GoodExperience() bool {
	return s.Bernoulli(0.5)
}

// EatsLunch returns true with probability 0.7.
func (s *Sampler) EatsLunch() bool {
	return s.Bernoulli(0.7)
}

// Restaurant is the choice of restaurant a visitor makes.
type Restaurant int

const (
	Burger Restaurant = iota
	Pizza
	Salad
)

// ChooseRestaurant picks Burger (3/8), Pizza (1/4), or Salad (3/8).
func (s *Sampler) ChooseRestaurant() Restaurant {
	u := s.Uniform(0, 1)
	switch {
	case u < 3.0/8.0:
		return Burger
	case u < 3.0/8.0+1.0/4.0:
		return Pizza
	default:
		return Salad
	}
}

// MealUnsatisfactory returns true with probability 0.1.
func (s *Sampler) MealUnsatisfactory() bool {
	return s.Bernoulli(0.1)
}

// FamilySplits returns true with probability 0.6.
func (s *Sampler) FamilySplits() bool {
	return s.Bernoulli(0.6)
}

// NumSplitGroups returns 2 or 3 with equal probability.
func (s *Sampler) NumSplitGroups() int {
	if s.Bernoulli(0.5) {
		return 2
	}
	return 3
}

// PhotoTier classifies a final rating into a photo-purchase tier.
type PhotoTier int

const (
	PhotoNone PhotoTier = iota
	Photo1
	Photo10
	Photo10Video
)

// PhotoPurchase returns the purchase tier and its price in shekels for a
// given final rating, per spec.md §4.6.
func PhotoPurchase(finalRating float64) (PhotoTier, int) {
	switch {
	case finalRating < 6:
		return PhotoNone, 0
	case finalRating < 7.5:
		return Photo1, 20
	case finalRating < 8.5:
		return Photo10, 100
	default:
		return Photo10Video, 120
	}
}

// PositiveRatingIncrease computes the rating increase formula of spec.md
// §4.6: ((groupSize-1)/5)*0.3 + ((adrenaline-1)/4)*0.7.
func PositiveRatingIncrease(groupSize, adrenaline int) float64 {
	return (float64(groupSize-1)/5.0)*0.3 + (float64(adrenaline-1)/4.0)*0.7
}
