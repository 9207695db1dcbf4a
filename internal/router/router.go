// Package router selects the next facility for an entity as it leaves
// Reception or finishes a ride: a pure function over the entity's kind,
// visit history, and each candidate facility's current queue length.
package router

import (
	"github.com/dror777-a11y/waterpark-sim/internal/entities"
	"github.com/dror777-a11y/waterpark-sim/internal/facilities"
)

// KidsPoolName is the one facility SingleVisitor routing excludes on
// repeat visits. Candidates flag this via Facility.IsKidsOnly rather
// than a name comparison; this constant only names it for callers that
// construct the facility roster.
const KidsPoolName = "Kids Pool"

// Select returns the best eligible facility for the entity, or nil if
// none qualifies. candidates is consulted in insertion order, which
// also breaks ties between equally-loaded facilities.
func Select(e entities.Entity, firstVisit bool, candidates []*facilities.Facility) *facilities.Facility {
	if kindEligible := kindSpecificEligible(e, firstVisit, candidates); len(kindEligible) > 0 {
		return pickLeastLoaded(kindEligible)
	}

	general := filter(candidates, func(f *facilities.Facility) bool {
		return !e.HasVisited(f.Name) && f.AgeLimit <= e.MinAge()
	})
	return pickLeastLoaded(general)
}

func kindSpecificEligible(e entities.Entity, firstVisit bool, candidates []*facilities.Facility) []*facilities.Facility {
	switch e.Kind() {
	case entities.KindFamily, entities.KindSubGroup:
		if !firstVisit {
			return nil
		}
		return filter(candidates, func(f *facilities.Facility) bool {
			return !e.HasVisited(f.Name) && f.AgeLimit == 0
		})

	case entities.KindTeen:
		return filter(candidates, func(f *facilities.Facility) bool {
			return !e.HasVisited(f.Name) && f.AdrenalineLevel >= 3 && f.AgeLimit <= 14
		})

	case entities.KindSingle:
		if firstVisit {
			return filter(candidates, func(f *facilities.Facility) bool {
				return !e.HasVisited(f.Name) && f.AgeLimit >= 12
			})
		}
		return filter(candidates, func(f *facilities.Facility) bool {
			return !e.HasVisited(f.Name) && !f.IsKidsOnly
		})

	default:
		return nil
	}
}

func filter(candidates []*facilities.Facility, keep func(*facilities.Facility) bool) []*facilities.Facility {
	var out []*facilities.Facility
	for _, f := range candidates {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}

// pickLeastLoaded returns the facility with the smallest combined queue
// length, breaking ties by position in eligible (its insertion order).
func pickLeastLoaded(eligible []*facilities.Facility) *facilities.Facility {
	if len(eligible) == 0 {
		return nil
	}
	best := eligible[0]
	for _, f := range eligible[1:] {
		if f.TotalWaiting() < best.TotalWaiting() {
			best = f
		}
	}
	return best
}
