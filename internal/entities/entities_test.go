package entities

import (
	"testing"
	"time"

	"github.com/dror777-a11y/waterpark-sim/pkg/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arrival() time.Time {
	return time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
}

func TestFamilyGroupSizeAndMinAge(t *testing.T) {
	s := sampler.New(1)
	f := NewFamily(s, arrival())
	assert.Equal(t, len(f.KidsAges)+2, f.GroupSize())
	assert.Equal(t, KindFamily, f.Kind())
	assert.Equal(t, 15*time.Minute, f.AbandonmentThreshold())
	if len(f.KidsAges) > 0 {
		assert.Equal(t, minOf(f.KidsAges), f.MinAge())
	}
}

func TestFamilyRatingAndVisitedTracking(t *testing.T) {
	s := sampler.New(2)
	f := NewFamily(s, arrival())
	assert.Equal(t, 10.0, f.Rating())

	f.IncreaseRating(0.5)
	assert.InDelta(t, 10.5, f.Rating(), 1e-9)

	f.DecreaseRating(20)
	assert.Equal(t, 0.0, f.Rating(), "rating floors at zero")

	assert.False(t, f.HasVisited("pipes_river"))
	f.MarkVisited("pipes_river")
	assert.True(t, f.HasVisited("pipes_river"))
}

func TestFamilySplitProducesAtLeastTwoGroupsOrNone(t *testing.T) {
	s := sampler.New(3)
	for seed := int64(0); seed < 200; seed++ {
		s := sampler.New(seed)
		f := NewFamily(s, arrival())
		total := f.GroupSize()
		entities := f.Split(s)
		if len(entities) == 1 {
			_, ok := entities[0].(*Family)
			assert.True(t, ok)
			continue
		}
		require.GreaterOrEqual(t, len(entities), 2)
		sum := 0
		for _, e := range entities {
			sg, ok := e.(*SubGroup)
			require.True(t, ok)
			assert.Equal(t, f.Rating(), sg.Rating())
			assert.Equal(t, f.ExpressPass(), sg.ExpressPass())
			assert.Equal(t, f.DepartureHour(), sg.DepartureHour())
			sum += sg.GroupSize()
		}
		assert.Equal(t, total, sum, "subgroup sizes must partition the family")
	}
	_ = s
}

func TestTeenGroupSizeAndAbandonment(t *testing.T) {
	s := sampler.New(9)
	tg := NewTeenGroup(s, arrival())
	assert.GreaterOrEqual(t, tg.GroupSize(), 2)
	assert.LessOrEqual(t, tg.GroupSize(), 6)
	assert.Equal(t, 14.0, tg.MinAge())
	assert.Equal(t, 20*time.Minute, tg.AbandonmentThreshold())

	outcome := tg.HandleAbandonment(s, "wave_pool")
	assert.Contains(t, []AbandonmentOutcome{OutcomeBuyExpressAndReturn, OutcomeMoveToNext}, outcome)
	assert.Equal(t, 1, tg.AbandonCount)
	assert.Equal(t, []string{"wave_pool"}, tg.AbandonedFacilities)
}

func TestSingleVisitorAgeRange(t *testing.T) {
	s := sampler.New(4)
	v := NewSingleVisitor(s, arrival())
	assert.GreaterOrEqual(t, v.MinAge(), 18.0)
	assert.LessOrEqual(t, v.MinAge(), 70.0)
	assert.Equal(t, 1, v.GroupSize())
	assert.Equal(t, 30*time.Minute, v.AbandonmentThreshold())
	assert.Equal(t, 19.0, v.DepartureHour())
}
