package entities

import (
	"time"

	"github.com/dror777-a11y/waterpark-sim/pkg/sampler"
	"github.com/dror777-a11y/waterpark-sim/pkg/utils"
)

// Family is a group of two parents plus 1-5 kids. It can split into
// SubGroups after its first ride.
type Family struct {
	base

	KidsAges []float64

	IsSplit              bool
	Subgroups            []*SubGroup
	ActiveSubgroupsCount int
}

// NewFamily draws a family's composition (kid count, ages, departure hour,
// express pass) from s and returns a fresh Family.
func NewFamily(s *sampler.Sampler, arrivalTime time.Time) *Family {
	numKids := s.NumberOfKids()
	ages := make([]float64, numKids)
	for i := range ages {
		ages[i] = s.KidAge()
	}

	f := &Family{
		base:                 newBase(utils.GenerateID(), arrivalTime, s.FamilyDepartureHour()),
		KidsAges:             ages,
		ActiveSubgroupsCount: 1,
	}
	if s.BuysExpressOnEntry() {
		f.SetExpressPass(true)
	}
	return f
}

func (f *Family) Kind() Kind { return KindFamily }

// GroupSize is the number of kids plus two parents.
func (f *Family) GroupSize() int { return len(f.KidsAges) + 2 }

// MinAge is the youngest kid's age, or 14 if the family somehow has none.
func (f *Family) MinAge() float64 {
	if len(f.KidsAges) == 0 {
		return 14
	}
	min := f.KidsAges[0]
	for _, a := range f.KidsAges[1:] {
		if a < min {
			min = a
		}
	}
	return min
}

// AbandonmentThreshold is 15 minutes, same as a SubGroup.
func (f *Family) AbandonmentThreshold() time.Duration { return 15 * time.Minute }

// Split decides whether the family breaks into SubGroups after a ride,
// following the age-bucket rules: under-8s must travel with a parent,
// 12-and-overs may go unsupervised, and the 8-11 bucket travels with
// whichever parent is left over. If fewer than two groups can be formed
// this way, the split is cancelled and the Family is returned unchanged.
// The returned slice is always non-empty.
func (f *Family) Split(s *sampler.Sampler) []Entity {
	if f.IsSplit {
		return []Entity{f}
	}
	if !s.FamilySplits() {
		return []Entity{f}
	}

	numGroups := s.NumSplitGroups()

	var under8, mid8to12, over12 []float64
	for _, age := range f.KidsAges {
		switch {
		case age < 8:
			under8 = append(under8, age)
		case age < 12:
			mid8to12 = append(mid8to12, age)
		default:
			over12 = append(over12, age)
		}
	}

	var subgroups []*SubGroup

	if len(under8) > 0 {
		subgroups = append(subgroups, newSubGroup(f, 1+len(under8), minOf(under8)))
	}

	overTwelveSplit := false
	if len(over12) > 0 && len(subgroups)+1 < numGroups {
		subgroups = append(subgroups, newSubGroup(f, len(over12), minOf(over12)))
		overTwelveSplit = true
	}

	if len(subgroups) < numGroups {
		used := 0
		for _, g := range subgroups {
			used += g.GroupSize()
		}
		remaining := f.GroupSize() - used
		if remaining > 0 {
			rest := mid8to12
			if !overTwelveSplit {
				rest = append(rest, over12...)
			}
			minAge := 14.0
			if len(rest) > 0 {
				minAge = minOf(rest)
			}
			subgroups = append(subgroups, newSubGroup(f, remaining, minAge))
		}
	}

	if len(subgroups) < 2 {
		return []Entity{f}
	}

	f.IsSplit = true
	f.Subgroups = subgroups
	f.ActiveSubgroupsCount = len(subgroups)

	result := make([]Entity, len(subgroups))
	for i, g := range subgroups {
		result[i] = g
	}
	return result
}

func minOf(vs []float64) float64 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
