package facilities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseTime() time.Time {
	return time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
}

func TestPipesRiverAdmitsEvenSizeAlone(t *testing.T) {
	p := NewPipesRiver(4, 0, 3, 10) // 4 tubes = capacity 8
	sizes := map[string]int{"a": 4}
	p.Facility.Enqueue("a", false, baseTime())

	admissions := p.TryStart(baseTime(), func(id string) int { return sizes[id] })
	require.Len(t, admissions, 1)
	assert.Equal(t, "a", admissions[0].EntityID)
	assert.Equal(t, 2, p.TubesUsed)
	assert.True(t, p.InService["a"])
}

func TestPipesRiverPairsOddSizedParties(t *testing.T) {
	p := NewPipesRiver(4, 0, 3, 10)
	sizes := map[string]int{"a": 3, "b": 5}
	p.Facility.Enqueue("a", false, baseTime())
	p.Facility.Enqueue("b", false, baseTime())

	admissions := p.TryStart(baseTime(), func(id string) int { return sizes[id] })
	require.Len(t, admissions, 2)
	assert.Equal(t, 4, p.TubesUsed) // ceil((3+5)/2) = 4
	assert.True(t, p.InService["a"])
	assert.True(t, p.InService["b"])
}

func TestPipesRiverOddHeadWithNoPartnerStops(t *testing.T) {
	p := NewPipesRiver(4, 0, 3, 10)
	sizes := map[string]int{"a": 3}
	p.Facility.Enqueue("a", false, baseTime())

	admissions := p.TryStart(baseTime(), func(id string) int { return sizes[id] })
	assert.Empty(t, admissions)
	assert.Equal(t, 1, p.Regular.Len())
}

func TestPipesRiverReleaseWaitsForPartner(t *testing.T) {
	p := NewPipesRiver(4, 0, 3, 10)
	sizes := map[string]int{"a": 3, "b": 5}
	p.Facility.Enqueue("a", false, baseTime())
	p.Facility.Enqueue("b", false, baseTime())
	p.TryStart(baseTime(), func(id string) int { return sizes[id] })

	p.Release("a")
	assert.Equal(t, 4, p.TubesUsed, "tubes stay held until the partner also leaves")
	assert.False(t, p.InService["a"])

	p.Release("b")
	assert.Equal(t, 0, p.TubesUsed)
}

func TestBatchSlideRequiresExactSum(t *testing.T) {
	b := NewBatchSlide("Small Pipes Slide", 3, 0, 4, 10, func() float64 { return 1.0 })
	sizes := map[string]int{"a": 2, "b": 4}
	b.Facility.Enqueue("a", false, baseTime())
	b.Facility.Enqueue("b", false, baseTime())

	admissions := b.TryStart(baseTime(), func(id string) int { return sizes[id] })
	assert.Empty(t, admissions)
	assert.Equal(t, 2, b.Regular.Len(), "neither group is popped when no exact batch exists")

	head, _ := b.Regular.Peek()
	assert.Equal(t, "a", head, "queue order is untouched on a failed search")
}

func TestBatchSlideAdmitsExactSumAndBlocksUntilEmpty(t *testing.T) {
	b := NewBatchSlide("Small Pipes Slide", 3, 0, 4, 10, func() float64 { return 1.0 })
	sizes := map[string]int{"a": 2, "b": 1, "c": 3}
	b.Facility.Enqueue("a", false, baseTime())
	b.Facility.Enqueue("b", false, baseTime())
	b.Facility.Enqueue("c", false, baseTime())

	admissions := b.TryStart(baseTime(), func(id string) int { return sizes[id] })
	require.Len(t, admissions, 2)
	assert.Equal(t, 1, b.Regular.Len())

	// Slide occupied: even though "c" alone sums to 3, no new batch starts.
	admissions = b.TryStart(baseTime(), func(id string) int { return sizes[id] })
	assert.Empty(t, admissions)
}

func TestHeadcountPoolSkipsOversizedHeadForSmallerGroup(t *testing.T) {
	p := NewHeadcountPool("Wave Pool", 5, 0, 2, false, 10, func() float64 { return 20 })
	sizes := map[string]int{"big": 8, "small": 4}
	p.Facility.Enqueue("big", false, baseTime())
	p.Facility.Enqueue("small", false, baseTime())

	admissions := p.TryStart(baseTime(), func(id string) int { return sizes[id] })
	require.Len(t, admissions, 1)
	assert.Equal(t, "small", admissions[0].EntityID)
	assert.Equal(t, 1, p.Regular.Len())
	head, _ := p.Regular.Peek()
	assert.Equal(t, "big", head)
}

func TestHeadcountPoolReleaseFreesOccupancy(t *testing.T) {
	p := NewHeadcountPool("Kids Pool", 5, 0, 1, true, 10, func() float64 { return 90 })
	sizes := map[string]int{"a": 5}
	p.Facility.Enqueue("a", false, baseTime())
	p.TryStart(baseTime(), func(id string) int { return sizes[id] })
	assert.Equal(t, 5, p.occupancy)

	p.Release("a")
	assert.Equal(t, 0, p.occupancy)
	assert.True(t, p.IsKidsOnly)
}

func TestSingleSlideEnforcesLaneCooldown(t *testing.T) {
	s := NewSingleSlide(1, 0, 2, 10)
	sizes := map[string]int{"a": 1, "b": 1}
	_ = sizes
	t0 := baseTime()
	s.Facility.Enqueue("a", false, t0)
	s.Facility.Enqueue("b", false, t0)

	admissions := s.TryStart(t0)
	require.Len(t, admissions, 1)
	assert.Equal(t, "a", admissions[0].EntityID)

	// Too soon for the only lane to cool down.
	admissions = s.TryStart(t0.Add(10 * time.Second))
	assert.Empty(t, admissions)

	admissions = s.TryStart(t0.Add(31 * time.Second))
	require.Len(t, admissions, 1)
	assert.Equal(t, "b", admissions[0].EntityID)
}

func TestSnorkelTourRespectsRestrictedWindow(t *testing.T) {
	s := NewSnorkelTour(1, 30, 14, 1, 10, func() float64 { return 30 })
	sizes := map[string]int{"a": 4}
	restricted := time.Date(2026, 1, 1, 13, 0, 0, 0, time.UTC)
	s.Facility.Enqueue("a", false, restricted)

	_, _, ok := s.TryStart(restricted, func(id string) int { return sizes[id] })
	assert.False(t, ok)
}

func TestSnorkelTourFillsGroupAndTransitionsInstructor(t *testing.T) {
	s := NewSnorkelTour(1, 10, 14, 1, 10, func() float64 { return 30 })
	sizes := map[string]int{"a": 4, "b": 4, "c": 4}
	now := time.Date(2026, 1, 1, 11, 0, 0, 0, time.UTC)
	s.Facility.Enqueue("a", false, now)
	s.Facility.Enqueue("b", false, now)
	s.Facility.Enqueue("c", false, now)

	admissions, instructor, ok := s.TryStart(now, func(id string) int { return sizes[id] })
	require.True(t, ok)
	assert.Equal(t, 0, instructor)
	require.Len(t, admissions, 2, "c would overflow capacity 10 after a+b=8")
	assert.Equal(t, InstructorOnTour, s.Instructors[0])

	done := s.FinishMember("a", 0)
	assert.False(t, done)
	done = s.FinishMember("b", 0)
	assert.True(t, done)
}

func TestSnorkelTourBreakRoutesThroughLunch(t *testing.T) {
	s := NewSnorkelTour(1, 30, 14, 1, 10, func() float64 { return 30 })
	s.Instructors[0] = InstructorOnBreak

	lunchHour := time.Date(2026, 1, 1, 13, 10, 0, 0, time.UTC)
	status := s.EndBreak(0, lunchHour)
	assert.Equal(t, InstructorOnLunch, status)

	s.EndLunch(0)
	assert.Equal(t, InstructorAvailable, s.Instructors[0])
}

func TestReceptionSkipsLineWhenEmptyAndClerkFree(t *testing.T) {
	r := NewReception(2, 10)
	clerk, started := r.Arrive("a", baseTime())
	assert.True(t, started)
	assert.GreaterOrEqual(t, clerk, 0)
	assert.Equal(t, 0, r.Queue.Len())
}

func TestReceptionQueuesWhenLineNonEmpty(t *testing.T) {
	r := NewReception(1, 10)
	r.Arrive("a", baseTime())
	_, started := r.Arrive("b", baseTime())
	assert.False(t, started)
	assert.Equal(t, 1, r.Queue.Len())

	next, startedNext := r.EndService(0, baseTime().Add(time.Minute))
	assert.True(t, startedNext)
	assert.Equal(t, "b", next)
}

func TestRestaurantPricing(t *testing.T) {
	assert.Equal(t, 300, Price(Burger, 3))
	assert.Equal(t, 40, Price(Pizza, 1))
	assert.Equal(t, 100, Price(Pizza, 4))
	assert.Equal(t, 195, Price(Salad, 3))
}
