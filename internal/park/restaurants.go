package park

import (
	"time"

	"github.com/dror777-a11y/waterpark-sim/internal/engine"
	"github.com/dror777-a11y/waterpark-sim/internal/entities"
	"github.com/dror777-a11y/waterpark-sim/internal/facilities"
	"github.com/dror777-a11y/waterpark-sim/internal/invariant"
	"github.com/dror777-a11y/waterpark-sim/pkg/sampler"
)

// arriveAtRestaurant schedules the entity's ArriveAtRestaurant event,
// keeping the lunch-detour routing decision in routeOrExit symmetric
// with arriveAtFacility's event-driven dispatch.
func (p *Park) arriveAtRestaurant(s *engine.Scheduler, e entities.Entity, choice sampler.Restaurant, now time.Time) {
	kind := facilities.RestaurantKind(choice)
	s.Schedule(&engine.Event{
		Type:       engine.EventArriveAtRestaurant,
		Time:       now,
		EntityID:   e.ID(),
		FacilityID: kind.String(),
		Instructor: -1,
		Slot:       -1,
	})
}

func (p *Park) handleArriveAtRestaurant(s *engine.Scheduler, ev *engine.Event) error {
	now := s.Now()
	kind := restaurantKindFromName(ev.FacilityID)
	r := p.restaurants[kind]

	station, started := r.Arrive(ev.EntityID, now)
	p.rep.SetQueueLength(r.Queue.Name, "regular", r.Queue.Len())
	if started {
		p.beginRestaurantService(s, kind, r, ev.EntityID, station, now)
	}
	return nil
}

func (p *Park) beginRestaurantService(s *engine.Scheduler, kind facilities.RestaurantKind, r *facilities.Restaurant, entityID string, station int, now time.Time) {
	p.restaurantService[kind] = entityID

	groupSize := p.sizeOf(entityID)
	prep := prepTime(p.sam, kind, groupSize)
	service := p.sam.RestaurantService()

	s.Schedule(&engine.Event{
		Type:       engine.EventEndRestaurantService,
		Time:       now.Add(minutesToDuration(prep + service)),
		EntityID:   entityID,
		FacilityID: kind.String(),
		Instructor: -1,
		Slot:       station,
	})
}

func prepTime(s *sampler.Sampler, kind facilities.RestaurantKind, groupSize int) float64 {
	switch kind {
	case facilities.Burger:
		return s.BurgerPrepTime() * float64(groupSize)
	case facilities.Salad:
		return s.SaladPrepTime() * float64(groupSize)
	default: // Pizza: flat, not per-person
		return s.PizzaPrepTime()
	}
}

// handleEndRestaurantService books the meal's price and possible
// satisfaction penalty, schedules EndMeal for the time the entity
// actually finishes eating, and frees the station for whoever is next
// in line.
func (p *Park) handleEndRestaurantService(s *engine.Scheduler, ev *engine.Event) error {
	now := s.Now()
	kind := restaurantKindFromName(ev.FacilityID)
	r := p.restaurants[kind]
	entity := p.mustEntity(ev.EntityID)
	delete(p.restaurantService, kind)

	price := facilities.Price(kind, entity.GroupSize())
	p.result.RecordRevenue(price)
	p.rep.AddRevenue(float64(price))

	if p.sam.MealUnsatisfactory() {
		entity.DecreaseRating(0.8)
	}

	s.Schedule(&engine.Event{
		Type:       engine.EventEndMeal,
		Time:       now.Add(minutesToDuration(p.sam.MealDuration())),
		EntityID:   ev.EntityID,
		Instructor: -1,
		Slot:       -1,
	})
	p.dining = append(p.dining, ev.EntityID)

	nextID, started := r.EndService(ev.Slot, now)
	p.rep.SetQueueLength(r.Queue.Name, "regular", r.Queue.Len())
	if started {
		p.beginRestaurantService(s, kind, r, nextID, ev.Slot, now)
	}
	return nil
}

func (p *Park) handleEndMeal(s *engine.Scheduler, ev *engine.Event) error {
	now := s.Now()
	p.stopDining(ev.EntityID)
	entity := p.mustEntity(ev.EntityID)
	p.routeOrExit(s, entity, now)
	return nil
}

// stopDining removes an entity from the mid-meal list, whether its meal
// ran to completion or it is being force-completed at the horizon.
func (p *Park) stopDining(entityID string) {
	for i, id := range p.dining {
		if id == entityID {
			p.dining = append(p.dining[:i], p.dining[i+1:]...)
			return
		}
	}
}

func restaurantKindFromName(name string) facilities.RestaurantKind {
	switch name {
	case "Burger":
		return facilities.Burger
	case "Pizza":
		return facilities.Pizza
	case "Salad":
		return facilities.Salad
	default:
		invariant.Assertf(false, "unknown restaurant name %q", name)
		return facilities.Burger
	}
}
