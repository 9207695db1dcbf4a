package park

import (
	"time"

	"github.com/dror777-a11y/waterpark-sim/internal/engine"
	"github.com/dror777-a11y/waterpark-sim/internal/entities"
	"github.com/dror777-a11y/waterpark-sim/internal/invariant"
	"github.com/dror777-a11y/waterpark-sim/internal/router"
	"github.com/dror777-a11y/waterpark-sim/pkg/sampler"
)

// routeOrExit decides what an entity does next after finishing a ride,
// an abandonment, or a meal: exit once its departure hour has passed or
// the Router finds nothing left to visit, detour to a restaurant during
// the lunch window with probability EatsLunch, or otherwise head to the
// next routed facility.
func (p *Park) routeOrExit(s *engine.Scheduler, e entities.Entity, now time.Time) {
	if hourFraction(now) >= e.DepartureHour() {
		p.completeEntity(s, e, now)
		return
	}

	next := router.Select(e, false, p.roster)
	if next == nil {
		p.completeEntity(s, e, now)
		return
	}

	hour := hourFraction(now)
	if hour >= 13.0 && hour < 15.0 && p.sam.EatsLunch() {
		p.arriveAtRestaurant(s, e, p.sam.ChooseRestaurant(), now)
		return
	}

	p.arriveAtFacility(s, e, next.Name, now)
}

// afterRideExperience applies the ride's effect on an entity's rating,
// then — for a Family only — attempts a split, and routes every
// resulting entity (the Family itself, or its new SubGroups) onward.
func (p *Park) afterRideExperience(s *engine.Scheduler, e entities.Entity, adrenaline int, now time.Time) {
	if p.sam.GoodExperience() {
		e.IncreaseRating(sampler.PositiveRatingIncrease(e.GroupSize(), adrenaline))
	} else {
		e.DecreaseRating(0.1)
	}

	var results []entities.Entity
	if f, ok := e.(*entities.Family); ok {
		results = f.Split(p.sam)
	} else {
		results = []entities.Entity{e}
	}

	for _, r := range results {
		if r != e {
			p.entities[r.ID()] = r
		}
		p.routeOrExit(s, r, now)
	}
}

// completeEntity books a completed visit once an entity leaves the
// park: for a Family's last-standing subgroup (or an unsplit Family),
// the full original GroupSize is credited, not the exiting subgroup's.
func (p *Park) completeEntity(s *engine.Scheduler, e entities.Entity, now time.Time) {
	switch v := e.(type) {
	case *entities.Family:
		v.ActiveSubgroupsCount--
		invariant.Assertf(v.ActiveSubgroupsCount == 0, "family %s completed with active_subgroups_count=%d", v.ID(), v.ActiveSubgroupsCount)
		p.bookCompletion(entities.KindFamily, v.GroupSize(), v.Rating())

	case *entities.SubGroup:
		parent := v.Parent
		parent.ActiveSubgroupsCount--
		invariant.Assertf(parent.ActiveSubgroupsCount >= 0, "family %s active_subgroups_count went negative", parent.ID())
		if parent.ActiveSubgroupsCount > 0 {
			return
		}
		p.bookCompletion(entities.KindFamily, parent.GroupSize(), v.Rating())

	default:
		p.bookCompletion(e.Kind(), e.GroupSize(), e.Rating())
	}
}

func (p *Park) bookCompletion(kind entities.Kind, groupSize int, rating float64) {
	if _, price := sampler.PhotoPurchase(rating); price > 0 {
		p.result.RecordRevenue(price)
		p.rep.AddRevenue(float64(price))
	}
	p.result.RecordCompletion(groupSize, rating)
	p.rep.IncCompletions(string(kind), groupSize)
}
