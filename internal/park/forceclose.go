package park

import (
	"time"

	"github.com/dror777-a11y/waterpark-sim/internal/engine"
	"github.com/dror777-a11y/waterpark-sim/internal/facilities"
	"github.com/dror777-a11y/waterpark-sim/internal/queue"
)

// forceClose runs once the scheduler's event loop exits: it completes
// every entity still in service, dining, or queued at a ride or
// restaurant, so the run's arrived/entered/completed counters balance at
// the horizon. Every facility is drained in a fixed, entity-admission
// order rather than map-iteration order, since completion order is what
// RunResult.Ratings records and the seeded-determinism guarantee covers
// that sequence. Reception's line is deliberately left untouched — those
// entities never entered the park, so spec.md's termination invariant
// doesn't require them to be booked either way, and Reception exposes no
// way to identify which entity currently occupies a given clerk.
func (p *Park) forceClose(s *engine.Scheduler, end time.Time) {
	seen := make(map[string]bool)
	complete := func(id string) {
		if seen[id] {
			return
		}
		seen[id] = true
		if e, ok := p.entities[id]; ok {
			p.completeEntity(s, e, end)
		}
	}

	for _, name := range p.rideOrder {
		re := p.rides[name]
		for _, id := range re.facility.InServiceIDs() {
			complete(id)
		}
		drainQueue(re.facility.Regular, end, complete)
		drainQueue(re.facility.Express, end, complete)
	}

	// Fixed kind order, not a map range: with RunResult.Ratings recording
	// completion order, iterating restaurantService in map order would
	// make the rating sequence depend on Go's randomized map iteration
	// instead of only on the seed.
	for _, kind := range []facilities.RestaurantKind{facilities.Burger, facilities.Pizza, facilities.Salad} {
		if entityID, ok := p.restaurantService[kind]; ok {
			complete(entityID)
		}
	}
	for _, kind := range []facilities.RestaurantKind{facilities.Burger, facilities.Pizza, facilities.Salad} {
		drainQueue(p.restaurants[kind].Queue, end, complete)
	}

	// Entities between EventEndRestaurantService and EventEndMeal hold no
	// station and sit in no queue; dining is their only record.
	for _, id := range p.dining {
		complete(id)
	}
	p.dining = nil
}

func drainQueue(q *queue.Queue, now time.Time, complete func(string)) {
	for q.Len() > 0 {
		id, _, ok := q.Pop(now)
		if !ok {
			return
		}
		complete(id)
	}
}
